package codec

import (
	"fmt"

	"bdoc/pkg/doc"
	"bdoc/pkg/wire"
)

// Marshal encodes a document with the default registry.
func Marshal(d *doc.Document) ([]byte, error) {
	return MarshalWith(Default(), d)
}

// MarshalWith encodes a document with the given directory.
func MarshalWith(dir Directory, d *doc.Document) ([]byte, error) {
	c, err := dir.Lookup(tDocument)
	if err != nil {
		return nil, err
	}
	w := wire.NewWriter(256)
	if err := c.Encode(w, d); err != nil {
		return nil, err
	}
	out := make([]byte, w.Len())
	copy(out, w.Bytes())
	return out, nil
}

// Unmarshal decodes a document with the default registry.
func Unmarshal(b []byte) (*doc.Document, error) {
	return UnmarshalWith(Default(), b)
}

// UnmarshalWith decodes a document with the given directory.
func UnmarshalWith(dir Directory, b []byte) (*doc.Document, error) {
	c, err := dir.Lookup(tDocument)
	if err != nil {
		return nil, err
	}
	v, err := c.Decode(wire.NewReader(b))
	if err != nil {
		return nil, err
	}
	d, ok := v.(*doc.Document)
	if !ok {
		return nil, fmt.Errorf("document codec produced %T", v)
	}
	return d, nil
}

// Materialize parses a raw pre-encoded document into its full
// representation using the default registry.
func Materialize(raw doc.Raw) (*doc.Document, error) {
	return MaterializeWith(Default(), raw)
}

// MaterializeWith parses a raw document using the given directory.
func MaterializeWith(dir Directory, raw doc.Raw) (*doc.Document, error) {
	c, err := dir.Lookup(tRaw)
	if err != nil {
		return nil, err
	}
	rc, ok := c.(*rawCodec)
	if !ok {
		// A foreign provider answered for the raw type; go the long way
		// through the document codec.
		if err := validateRawFrame(raw); err != nil {
			return nil, err
		}
		return UnmarshalWith(dir, raw)
	}
	return rc.materialize(raw)
}
