package codec

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"bdoc/pkg/doc"
	"bdoc/pkg/wire"
)

func mustOID(t *testing.T, hex string) doc.ObjectID {
	t.Helper()
	id, err := doc.ObjectIDFromHex(hex)
	require.NoError(t, err)
	return id
}

func TestScalarRoundtrips(t *testing.T) {
	oid := mustOID(t, "0102030405060708090a0b0c")
	values := []doc.Value{
		doc.Double(-2.5),
		doc.Double(0),
		doc.String(""),
		doc.String("héllo"),
		doc.Binary{Subtype: wire.BinaryUUID, Data: []byte{1, 2, 3, 4}},
		doc.Undefined{},
		oid,
		doc.Boolean(true),
		doc.Boolean(false),
		doc.DateTime(1724700000000),
		doc.Null{},
		doc.Regex{Pattern: "^x", Options: "im"},
		doc.DBPointer{Namespace: "db.coll", ID: oid},
		doc.JavaScript("return 1"),
		doc.Symbol("sym"),
		doc.Int32(-1),
		doc.Timestamp{T: 100, I: 2},
		doc.Int64(1 << 62),
		doc.MinKey{},
		doc.MaxKey{},
	}

	reg := NewRegistry(NewValueProvider())
	for _, v := range values {
		c, err := reg.Lookup(reflect.TypeOf(v))
		require.NoError(t, err, "%T", v)

		w := wire.NewWriter(64)
		require.NoError(t, c.Encode(w, v), "%T", v)

		got, err := c.Decode(wire.NewReader(w.Bytes()))
		require.NoError(t, err, "%T", v)
		require.Equal(t, v, got)
	}
}

func TestScalarEncodeRejectsWrongType(t *testing.T) {
	reg := NewRegistry(NewValueProvider())
	c, err := reg.Lookup(tDouble)
	require.NoError(t, err)
	require.Error(t, c.Encode(wire.NewWriter(8), doc.String("not a double")))
}

func TestDocumentOrderPreserved(t *testing.T) {
	d := doc.NewDocument().
		Append("b", doc.Int32(1)).
		Append("a", doc.Int32(2)).
		Append("c", doc.Int32(3))

	b, err := Marshal(d)
	require.NoError(t, err)

	got, err := Unmarshal(b)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a", "c"}, got.Keys())
	require.Equal(t, d, got)
}

func TestNestedRoundtrip(t *testing.T) {
	d := doc.NewDocument().
		Append("l1", doc.NewDocument().
			Append("l2", doc.NewDocument().
				Append("l3", doc.NewArray(
					doc.NewDocument().Append("leaf", doc.String("deep")),
					doc.Int64(7),
				)))).
		Append("code", &doc.CodeWithScope{
			Code:  "function(){ return x }",
			Scope: doc.NewDocument().Append("x", doc.NewDocument().Append("y", doc.Double(1.5))),
		})

	b, err := Marshal(d)
	require.NoError(t, err)

	got, err := Unmarshal(b)
	require.NoError(t, err)
	require.Equal(t, d, got)
}

func TestEndToEndDocument(t *testing.T) {
	d := doc.NewDocument().
		Append("a", doc.Int32(1)).
		Append("b", doc.NewArray(doc.Boolean(true), doc.Null{}, doc.String("x"))).
		Append("c", doc.NewDocument().Append("d", doc.Double(2.5)))

	b, err := Marshal(d)
	require.NoError(t, err)

	got, err := Unmarshal(b)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, got.Keys())
	require.Equal(t, d, got)

	inner, ok := got.Get("c").(*doc.Document)
	require.True(t, ok)
	require.Equal(t, []string{"d"}, inner.Keys())
}

func TestWrappedDelegation(t *testing.T) {
	reg := NewRegistry(NewValueProvider())
	c, err := reg.Lookup(tWrapped)
	require.NoError(t, err)

	inner := doc.NewDocument().Append("k", doc.String("v"))
	w := wire.NewWriter(64)
	require.NoError(t, c.Encode(w, &doc.Wrapped{Doc: inner}))

	// The wrapper writes exactly what the document codec writes.
	direct, err := Marshal(inner)
	require.NoError(t, err)
	require.Equal(t, direct, w.Bytes())

	got, err := c.Decode(wire.NewReader(w.Bytes()))
	require.NoError(t, err)
	require.Equal(t, &doc.Wrapped{Doc: inner}, got)

	require.Error(t, c.Encode(wire.NewWriter(8), &doc.Wrapped{}))
}

func TestRawPassthrough(t *testing.T) {
	inner := doc.NewDocument().
		Append("z", doc.Int32(9)).
		Append("a", doc.String("keep order"))
	encoded, err := Marshal(inner)
	require.NoError(t, err)

	reg := NewRegistry(NewValueProvider())
	c, err := reg.Lookup(tRaw)
	require.NoError(t, err)

	w := wire.NewWriter(64)
	require.NoError(t, c.Encode(w, doc.Raw(encoded)))
	require.Equal(t, encoded, w.Bytes())

	got, err := c.Decode(wire.NewReader(encoded))
	require.NoError(t, err)
	require.Equal(t, doc.Raw(encoded), got)

	d, err := Materialize(doc.Raw(encoded))
	require.NoError(t, err)
	require.Equal(t, inner, d)

	// A corrupt frame is rejected before any bytes are written.
	require.Error(t, c.Encode(wire.NewWriter(8), doc.Raw([]byte{1, 2})))
}

func TestRawInsideDocument(t *testing.T) {
	inner := doc.NewDocument().Append("n", doc.Int64(5))
	encoded, err := Marshal(inner)
	require.NoError(t, err)

	outer := doc.NewDocument().Append("raw", doc.Raw(encoded))
	b, err := Marshal(outer)
	require.NoError(t, err)

	// Raw carries the document tag, so it comes back materialized.
	got, err := Unmarshal(b)
	require.NoError(t, err)
	require.Equal(t, inner, got.Get("raw"))
}

func TestDecodeRejectsCorruptInput(t *testing.T) {
	d := doc.NewDocument().Append("ok", doc.Boolean(true))
	b, err := Marshal(d)
	require.NoError(t, err)

	// Unknown tag byte.
	bad := append([]byte(nil), b...)
	bad[4] = 0x42
	_, err = Unmarshal(bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), "0x42")

	// Invalid boolean payload.
	bad = append([]byte(nil), b...)
	bad[len(bad)-2] = 0x05
	_, err = Unmarshal(bad)
	require.Error(t, err)

	// Truncated frame.
	_, err = Unmarshal(b[:len(b)-3])
	require.Error(t, err)
}

func TestMarshalRejectsNilElement(t *testing.T) {
	d := doc.NewDocument().Append("bad", nil)
	_, err := Marshal(d)
	require.Error(t, err)
}
