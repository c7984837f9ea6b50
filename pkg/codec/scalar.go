package codec

import (
	"fmt"

	"bdoc/pkg/doc"
	"bdoc/pkg/wire"
)

// Scalar codecs: stateless, one shared instance per registry, exact
// fixed/variable-width layouts. Encode rejects a value of the wrong
// representation type instead of guessing.

func wrongType(c string, v doc.Value) error {
	return fmt.Errorf("%s codec: cannot encode %T", c, v)
}

type doubleCodec struct{}

func (doubleCodec) Encode(w *wire.Writer, v doc.Value) error {
	d, ok := v.(doc.Double)
	if !ok {
		return wrongType("double", v)
	}
	w.WriteDouble(float64(d))
	return nil
}

func (doubleCodec) Decode(r *wire.Reader) (doc.Value, error) {
	f, err := r.ReadDouble()
	if err != nil {
		return nil, err
	}
	return doc.Double(f), nil
}

type stringCodec struct{}

func (stringCodec) Encode(w *wire.Writer, v doc.Value) error {
	s, ok := v.(doc.String)
	if !ok {
		return wrongType("string", v)
	}
	w.WriteString(string(s))
	return nil
}

func (stringCodec) Decode(r *wire.Reader) (doc.Value, error) {
	s, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return doc.String(s), nil
}

type binaryCodec struct{}

func (binaryCodec) Encode(w *wire.Writer, v doc.Value) error {
	b, ok := v.(doc.Binary)
	if !ok {
		return wrongType("binary", v)
	}
	w.WriteInt32(int32(len(b.Data)))
	w.WriteByte(b.Subtype)
	w.WriteBytes(b.Data)
	return nil
}

func (binaryCodec) Decode(r *wire.Reader) (doc.Value, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("binary length %d invalid", n)
	}
	sub, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	data, err := r.ReadBytes(int(n))
	if err != nil {
		return nil, err
	}
	// Legacy subtype 0x02 repeats the length inside the payload; strip it
	// on decode, never emit it on encode.
	if sub == wire.BinaryOld && len(data) >= 4 {
		data = data[4:]
	}
	return doc.Binary{Subtype: sub, Data: data}, nil
}

type undefinedCodec struct{}

func (undefinedCodec) Encode(w *wire.Writer, v doc.Value) error {
	if _, ok := v.(doc.Undefined); !ok {
		return wrongType("undefined", v)
	}
	return nil
}

func (undefinedCodec) Decode(*wire.Reader) (doc.Value, error) {
	return doc.Undefined{}, nil
}

type objectIDCodec struct{}

func (objectIDCodec) Encode(w *wire.Writer, v doc.Value) error {
	id, ok := v.(doc.ObjectID)
	if !ok {
		return wrongType("objectID", v)
	}
	w.WriteBytes(id[:])
	return nil
}

func (objectIDCodec) Decode(r *wire.Reader) (doc.Value, error) {
	b, err := r.ReadBytes(12)
	if err != nil {
		return nil, err
	}
	var id doc.ObjectID
	copy(id[:], b)
	return id, nil
}

type booleanCodec struct{}

func (booleanCodec) Encode(w *wire.Writer, v doc.Value) error {
	b, ok := v.(doc.Boolean)
	if !ok {
		return wrongType("boolean", v)
	}
	if b {
		w.WriteByte(0x01)
	} else {
		w.WriteByte(0x00)
	}
	return nil
}

func (booleanCodec) Decode(r *wire.Reader) (doc.Value, error) {
	b, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	switch b {
	case 0x00:
		return doc.Boolean(false), nil
	case 0x01:
		return doc.Boolean(true), nil
	}
	return nil, fmt.Errorf("boolean byte 0x%02x invalid", b)
}

type dateTimeCodec struct{}

func (dateTimeCodec) Encode(w *wire.Writer, v doc.Value) error {
	d, ok := v.(doc.DateTime)
	if !ok {
		return wrongType("dateTime", v)
	}
	w.WriteInt64(int64(d))
	return nil
}

func (dateTimeCodec) Decode(r *wire.Reader) (doc.Value, error) {
	n, err := r.ReadInt64()
	if err != nil {
		return nil, err
	}
	return doc.DateTime(n), nil
}

type nullCodec struct{}

func (nullCodec) Encode(w *wire.Writer, v doc.Value) error {
	if _, ok := v.(doc.Null); !ok {
		return wrongType("null", v)
	}
	return nil
}

func (nullCodec) Decode(*wire.Reader) (doc.Value, error) {
	return doc.Null{}, nil
}

type regexCodec struct{}

func (regexCodec) Encode(w *wire.Writer, v doc.Value) error {
	re, ok := v.(doc.Regex)
	if !ok {
		return wrongType("regex", v)
	}
	if err := w.WriteCString(re.Pattern); err != nil {
		return err
	}
	return w.WriteCString(re.Options)
}

func (regexCodec) Decode(r *wire.Reader) (doc.Value, error) {
	pattern, err := r.ReadCString()
	if err != nil {
		return nil, err
	}
	options, err := r.ReadCString()
	if err != nil {
		return nil, err
	}
	return doc.Regex{Pattern: pattern, Options: options}, nil
}

type dbPointerCodec struct{}

func (dbPointerCodec) Encode(w *wire.Writer, v doc.Value) error {
	p, ok := v.(doc.DBPointer)
	if !ok {
		return wrongType("dbPointer", v)
	}
	w.WriteString(p.Namespace)
	w.WriteBytes(p.ID[:])
	return nil
}

func (dbPointerCodec) Decode(r *wire.Reader) (doc.Value, error) {
	ns, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	b, err := r.ReadBytes(12)
	if err != nil {
		return nil, err
	}
	p := doc.DBPointer{Namespace: ns}
	copy(p.ID[:], b)
	return p, nil
}

type javaScriptCodec struct{}

func (javaScriptCodec) Encode(w *wire.Writer, v doc.Value) error {
	js, ok := v.(doc.JavaScript)
	if !ok {
		return wrongType("javascript", v)
	}
	w.WriteString(string(js))
	return nil
}

func (javaScriptCodec) Decode(r *wire.Reader) (doc.Value, error) {
	s, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return doc.JavaScript(s), nil
}

type symbolCodec struct{}

func (symbolCodec) Encode(w *wire.Writer, v doc.Value) error {
	s, ok := v.(doc.Symbol)
	if !ok {
		return wrongType("symbol", v)
	}
	w.WriteString(string(s))
	return nil
}

func (symbolCodec) Decode(r *wire.Reader) (doc.Value, error) {
	s, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return doc.Symbol(s), nil
}

type int32Codec struct{}

func (int32Codec) Encode(w *wire.Writer, v doc.Value) error {
	n, ok := v.(doc.Int32)
	if !ok {
		return wrongType("int32", v)
	}
	w.WriteInt32(int32(n))
	return nil
}

func (int32Codec) Decode(r *wire.Reader) (doc.Value, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	return doc.Int32(n), nil
}

type timestampCodec struct{}

func (timestampCodec) Encode(w *wire.Writer, v doc.Value) error {
	ts, ok := v.(doc.Timestamp)
	if !ok {
		return wrongType("timestamp", v)
	}
	w.WriteUint32(ts.I)
	w.WriteUint32(ts.T)
	return nil
}

func (timestampCodec) Decode(r *wire.Reader) (doc.Value, error) {
	i, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	t, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	return doc.Timestamp{T: t, I: i}, nil
}

type int64Codec struct{}

func (int64Codec) Encode(w *wire.Writer, v doc.Value) error {
	n, ok := v.(doc.Int64)
	if !ok {
		return wrongType("int64", v)
	}
	w.WriteInt64(int64(n))
	return nil
}

func (int64Codec) Decode(r *wire.Reader) (doc.Value, error) {
	n, err := r.ReadInt64()
	if err != nil {
		return nil, err
	}
	return doc.Int64(n), nil
}

type minKeyCodec struct{}

func (minKeyCodec) Encode(w *wire.Writer, v doc.Value) error {
	if _, ok := v.(doc.MinKey); !ok {
		return wrongType("minKey", v)
	}
	return nil
}

func (minKeyCodec) Decode(*wire.Reader) (doc.Value, error) {
	return doc.MinKey{}, nil
}

type maxKeyCodec struct{}

func (maxKeyCodec) Encode(w *wire.Writer, v doc.Value) error {
	if _, ok := v.(doc.MaxKey); !ok {
		return wrongType("maxKey", v)
	}
	return nil
}

func (maxKeyCodec) Decode(*wire.Reader) (doc.Value, error) {
	return doc.MaxKey{}, nil
}
