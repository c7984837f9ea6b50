package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"bdoc/pkg/doc"
	"bdoc/pkg/wire"
)

// Composite codecs resolve codecs for the values they contain through the
// directory they were constructed with. Each lookup builds a fresh
// instance; the only state is the directory (or delegate) reference.

type documentCodec struct {
	dir Directory
}

func (c *documentCodec) Encode(w *wire.Writer, v doc.Value) error {
	d, ok := v.(*doc.Document)
	if !ok {
		return wrongType("document", v)
	}
	off := w.BeginDoc()
	for _, el := range d.Elements() {
		if el.Value == nil {
			return fmt.Errorf("document key %q has nil value", el.Key)
		}
		w.WriteByte(byte(el.Value.Type()))
		if err := w.WriteCString(el.Key); err != nil {
			return err
		}
		ec, err := c.dir.Lookup(reflect.TypeOf(el.Value))
		if err != nil {
			return err
		}
		if err := ec.Encode(w, el.Value); err != nil {
			return err
		}
	}
	return w.EndDoc(off)
}

func (c *documentCodec) Decode(r *wire.Reader) (doc.Value, error) {
	length, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if length < 5 || int(length)-4 > r.Remaining() {
		return nil, fmt.Errorf("document length %d invalid", length)
	}
	d := doc.NewDocument()
	for {
		tag, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		if tag == 0x00 {
			return d, nil
		}
		key, err := r.ReadCString()
		if err != nil {
			return nil, err
		}
		rt := TypeFor(wire.Type(tag))
		if rt == nil {
			return nil, fmt.Errorf("unknown wire tag 0x%02x for key %q", tag, key)
		}
		dc, err := c.dir.Lookup(rt)
		if err != nil {
			return nil, err
		}
		val, err := dc.Decode(r)
		if err != nil {
			return nil, err
		}
		d.Append(key, val)
	}
}

type arrayCodec struct {
	dir Directory
}

// Arrays share the document frame: decimal index keys on encode, keys
// ignored on decode.
func (c *arrayCodec) Encode(w *wire.Writer, v doc.Value) error {
	a, ok := v.(*doc.Array)
	if !ok {
		return wrongType("array", v)
	}
	off := w.BeginDoc()
	for i, item := range a.Values() {
		if item == nil {
			return fmt.Errorf("array index %d has nil value", i)
		}
		w.WriteByte(byte(item.Type()))
		if err := w.WriteCString(strconv.Itoa(i)); err != nil {
			return err
		}
		ec, err := c.dir.Lookup(reflect.TypeOf(item))
		if err != nil {
			return err
		}
		if err := ec.Encode(w, item); err != nil {
			return err
		}
	}
	return w.EndDoc(off)
}

func (c *arrayCodec) Decode(r *wire.Reader) (doc.Value, error) {
	length, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if length < 5 || int(length)-4 > r.Remaining() {
		return nil, fmt.Errorf("array length %d invalid", length)
	}
	a := doc.NewArray()
	for {
		tag, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		if tag == 0x00 {
			return a, nil
		}
		if _, err := r.ReadCString(); err != nil {
			return nil, err
		}
		rt := TypeFor(wire.Type(tag))
		if rt == nil {
			return nil, fmt.Errorf("unknown wire tag 0x%02x in array", tag)
		}
		dc, err := c.dir.Lookup(rt)
		if err != nil {
			return nil, err
		}
		val, err := dc.Decode(r)
		if err != nil {
			return nil, err
		}
		a.Append(val)
	}
}

// wrappedCodec defers entirely to the document codec it was constructed
// with.
type wrappedCodec struct {
	delegate Codec
}

func (c *wrappedCodec) Encode(w *wire.Writer, v doc.Value) error {
	wr, ok := v.(*doc.Wrapped)
	if !ok {
		return wrongType("wrapper", v)
	}
	if wr.Doc == nil {
		return errors.New("wrapper codec: nil inner document")
	}
	return c.delegate.Encode(w, wr.Doc)
}

func (c *wrappedCodec) Decode(r *wire.Reader) (doc.Value, error) {
	v, err := c.delegate.Decode(r)
	if err != nil {
		return nil, err
	}
	d, ok := v.(*doc.Document)
	if !ok {
		return nil, fmt.Errorf("wrapper codec: delegate produced %T", v)
	}
	return &doc.Wrapped{Doc: d}, nil
}

// rawCodec moves pre-encoded document bytes without materializing them.
// The delegate document codec is used only when a caller materializes.
type rawCodec struct {
	delegate Codec
}

func (c *rawCodec) Encode(w *wire.Writer, v doc.Value) error {
	raw, ok := v.(doc.Raw)
	if !ok {
		return wrongType("raw document", v)
	}
	if err := validateRawFrame(raw); err != nil {
		return err
	}
	w.WriteBytes(raw)
	return nil
}

func (c *rawCodec) Decode(r *wire.Reader) (doc.Value, error) {
	length, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if length < 5 {
		return nil, fmt.Errorf("document length %d invalid", length)
	}
	rest, err := r.ReadBytes(int(length) - 4)
	if err != nil {
		return nil, err
	}
	if rest[len(rest)-1] != 0x00 {
		return nil, errors.New("document missing terminator")
	}
	out := make(doc.Raw, 0, length)
	out = binary.LittleEndian.AppendUint32(out, uint32(length))
	out = append(out, rest...)
	return out, nil
}

// materialize parses the raw bytes through the delegate document codec.
func (c *rawCodec) materialize(raw doc.Raw) (*doc.Document, error) {
	if err := validateRawFrame(raw); err != nil {
		return nil, err
	}
	v, err := c.delegate.Decode(wire.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return v.(*doc.Document), nil
}

func validateRawFrame(raw doc.Raw) error {
	if len(raw) < 5 {
		return fmt.Errorf("raw document too short: %d bytes", len(raw))
	}
	if n := binary.LittleEndian.Uint32(raw); int(n) != len(raw) {
		return fmt.Errorf("raw document length %d does not match %d bytes", n, len(raw))
	}
	if raw[len(raw)-1] != 0x00 {
		return errors.New("raw document missing terminator")
	}
	return nil
}

// codeWithScopeCodec writes the code text as a plain string and delegates
// the attached scope to the document codec it was constructed with.
type codeWithScopeCodec struct {
	scope Codec
}

func (c *codeWithScopeCodec) Encode(w *wire.Writer, v doc.Value) error {
	cs, ok := v.(*doc.CodeWithScope)
	if !ok {
		return wrongType("codeWithScope", v)
	}
	scope := cs.Scope
	if scope == nil {
		scope = doc.NewDocument()
	}
	start := w.Len()
	w.WriteInt32(0) // total length, patched below
	w.WriteString(cs.Code)
	if err := c.scope.Encode(w, scope); err != nil {
		return err
	}
	return w.PatchInt32(start, int32(w.Len()-start))
}

func (c *codeWithScopeCodec) Decode(r *wire.Reader) (doc.Value, error) {
	start := r.Offset()
	length, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if length < 4+4+1+5 {
		return nil, fmt.Errorf("codeWithScope length %d invalid", length)
	}
	code, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	v, err := c.scope.Decode(r)
	if err != nil {
		return nil, err
	}
	if got := r.Offset() - start; got != int(length) {
		return nil, fmt.Errorf("codeWithScope consumed %d bytes, frame says %d", got, length)
	}
	return &doc.CodeWithScope{Code: code, Scope: v.(*doc.Document)}, nil
}
