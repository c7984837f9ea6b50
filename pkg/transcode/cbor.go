package transcode

import (
	cbor "github.com/fxamacker/cbor/v2"

	"bdoc/pkg/doc"
)

type cborTranscoder struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// CBOR returns a deterministic CBOR transcoder (RFC 8949, core profile).
// Content-Type: application/cbor.
func CBOR() (Transcoder, error) {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return nil, err
	}
	return cborTranscoder{enc: em, dec: dm}, nil
}

func (cborTranscoder) ContentType() string { return "application/cbor" }

func (c cborTranscoder) Marshal(d *doc.Document) ([]byte, error) {
	m, err := docToNative(d)
	if err != nil {
		return nil, err
	}
	return c.enc.Marshal(m)
}

func (c cborTranscoder) Unmarshal(data []byte) (*doc.Document, error) {
	var out any
	if err := c.dec.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	v, err := fromNative(out)
	if err != nil {
		return nil, err
	}
	d, ok := v.(*doc.Document)
	if !ok {
		return nil, errNotDocument(v)
	}
	return d, nil
}
