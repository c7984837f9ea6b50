package transcode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"bdoc/pkg/doc"
)

type jsonTranscoder struct{}

// JSON returns a JSON transcoder (RFC 8259). Content-Type: application/json.
// Unlike the map-backed bridges it preserves document key order in both
// directions by streaming objects instead of materializing Go maps.
func JSON() Transcoder { return jsonTranscoder{} }

func (jsonTranscoder) ContentType() string { return "application/json" }

func (jsonTranscoder) Marshal(d *doc.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSONDocument(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSONDocument(buf *bytes.Buffer, d *doc.Document) error {
	if d == nil {
		buf.WriteString("{}")
		return nil
	}
	buf.WriteByte('{')
	for i, el := range d.Elements() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(el.Key)
		if err != nil {
			return err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		if err := writeJSONValue(buf, el.Value); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeJSONValue(buf *bytes.Buffer, v doc.Value) error {
	switch t := v.(type) {
	case *doc.Document:
		return writeJSONDocument(buf, t)
	case *doc.Wrapped:
		return writeJSONDocument(buf, t.Doc)
	case *doc.Array:
		buf.WriteByte('[')
		for i, item := range t.Values() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	default:
		n, err := toNative(v)
		if err != nil {
			return err
		}
		b, err := json.Marshal(n)
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}
}

func (jsonTranscoder) Unmarshal(data []byte) (*doc.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("top-level JSON value is %v, want object", tok)
	}
	d, err := readJSONObject(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON document")
	}
	return d, nil
}

// readJSONObject consumes tokens after an opening '{', keeping key order.
func readJSONObject(dec *json.Decoder) (*doc.Document, error) {
	d := doc.NewDocument()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, want string", tok)
		}
		v, err := readJSONValue(dec)
		if err != nil {
			return nil, err
		}
		d.Append(key, v)
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, err
	}
	return d, nil
}

func readJSONValue(dec *json.Decoder) (doc.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return readJSONObject(dec)
		case '[':
			a := doc.NewArray()
			for dec.More() {
				v, err := readJSONValue(dec)
				if err != nil {
					return nil, err
				}
				a.Append(v)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return nil, err
			}
			return a, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case json.Number:
		s := t.String()
		if strings.ContainsAny(s, ".eE") {
			f, err := t.Float64()
			if err != nil {
				return nil, err
			}
			return doc.Double(f), nil
		}
		n, err := t.Int64()
		if err != nil {
			f, ferr := t.Float64()
			if ferr != nil {
				return nil, err
			}
			return doc.Double(f), nil
		}
		return doc.Int64(n), nil
	case string:
		return doc.String(t), nil
	case bool:
		return doc.Boolean(t), nil
	case nil:
		return doc.Null{}, nil
	}
	return nil, fmt.Errorf("unexpected JSON token %v", tok)
}
