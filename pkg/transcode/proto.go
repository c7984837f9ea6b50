package transcode

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"bdoc/pkg/doc"
)

type protoTranscoder struct{}

// Proto returns a protobuf transcoder mapping documents onto
// structpb.Struct. Content-Type: application/x-protobuf.
func Proto() Transcoder { return protoTranscoder{} }

func (protoTranscoder) ContentType() string { return "application/x-protobuf" }

func (protoTranscoder) Marshal(d *doc.Document) ([]byte, error) {
	m, err := docToNative(d)
	if err != nil {
		return nil, err
	}
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

func (protoTranscoder) Unmarshal(data []byte) (*doc.Document, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	v, err := fromNative(s.AsMap())
	if err != nil {
		return nil, err
	}
	d, ok := v.(*doc.Document)
	if !ok {
		return nil, errNotDocument(v)
	}
	return d, nil
}

func errNotDocument(v doc.Value) error {
	return fmt.Errorf("top-level value is %T, want document", v)
}
