package transcode

import (
	"reflect"
	"testing"

	"bdoc/pkg/doc"
)

func TestJSONKeepsKeyOrder(t *testing.T) {
	c := JSON()
	in := doc.NewDocument().
		Append("b", doc.Int64(1)).
		Append("a", doc.String("x")).
		Append("c", doc.NewDocument().Append("z", doc.Boolean(true)).Append("y", doc.Null{}))

	b, err := c.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"b":1,"a":"x","c":{"z":true,"y":null}}`
	if string(b) != want {
		t.Fatalf("json = %s, want %s", b, want)
	}

	out, err := c.Unmarshal(b)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(out.Keys(), []string{"b", "a", "c"}) {
		t.Fatalf("keys = %v", out.Keys())
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("roundtrip mismatch: %#v", out)
	}
}

func TestJSONNumberNarrowing(t *testing.T) {
	c := JSON()
	out, err := c.Unmarshal([]byte(`{"i":42,"f":2.5,"e":1e3}`))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v := out.Get("i"); v != doc.Int64(42) {
		t.Fatalf("i = %#v", v)
	}
	if v := out.Get("f"); v != doc.Double(2.5) {
		t.Fatalf("f = %#v", v)
	}
	if v := out.Get("e"); v != doc.Double(1000) {
		t.Fatalf("e = %#v", v)
	}
}

func TestJSONRejectsNonObject(t *testing.T) {
	c := JSON()
	if _, err := c.Unmarshal([]byte(`[1,2]`)); err == nil {
		t.Fatal("array accepted as document")
	}
	if _, err := c.Unmarshal([]byte(`{"a":1} trailing`)); err == nil {
		t.Fatal("trailing data accepted")
	}
}

func TestCBORRoundtrip(t *testing.T) {
	c, err := CBOR()
	if err != nil {
		t.Fatalf("new cbor: %v", err)
	}
	in := doc.NewDocument().
		Append("n", doc.Int64(42)).
		Append("s", doc.String("x")).
		Append("arr", doc.NewArray(doc.Boolean(true), doc.Null{}))

	b, err := c.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out, err := c.Unmarshal(b)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v := out.Get("n"); v != doc.Int64(42) {
		t.Fatalf("n = %#v", v)
	}
	if v := out.Get("s"); v != doc.String("x") {
		t.Fatalf("s = %#v", v)
	}
	arr, ok := out.Get("arr").(*doc.Array)
	if !ok || arr.Len() != 2 || arr.Index(0) != doc.Boolean(true) {
		t.Fatalf("arr = %#v", out.Get("arr"))
	}
}

func TestProtoRoundtrip(t *testing.T) {
	c := Proto()
	in := doc.NewDocument().
		Append("k", doc.String("v")).
		Append("n", doc.Double(2.5)).
		Append("inner", doc.NewDocument().Append("b", doc.Boolean(false)))

	b, err := c.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out, err := c.Unmarshal(b)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v := out.Get("k"); v != doc.String("v") {
		t.Fatalf("k = %#v", v)
	}
	// Struct carries every number as a double.
	if v := out.Get("n"); v != doc.Double(2.5) {
		t.Fatalf("n = %#v", v)
	}
	inner, ok := out.Get("inner").(*doc.Document)
	if !ok || inner.Get("b") != doc.Boolean(false) {
		t.Fatalf("inner = %#v", out.Get("inner"))
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	if r.Get("application/json") == nil {
		t.Fatal("json not preloaded")
	}
	if r.Get("application/x-protobuf") == nil {
		t.Fatal("proto not preloaded")
	}
	if r.Get("application/cbor") != nil {
		t.Fatal("cbor registered without init")
	}
	c, err := CBOR()
	if err != nil {
		t.Fatalf("new cbor: %v", err)
	}
	r.Register(c)
	if r.Get("application/cbor") == nil {
		t.Fatal("cbor lookup failed after register")
	}
}

func TestRicherTypesDegrade(t *testing.T) {
	oid, err := doc.ObjectIDFromHex("0102030405060708090a0b0c")
	if err != nil {
		t.Fatalf("oid: %v", err)
	}
	in := doc.NewDocument().
		Append("oid", oid).
		Append("re", doc.Regex{Pattern: "^a", Options: "i"}).
		Append("min", doc.MinKey{})

	b, err := JSON().Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"oid":"0102030405060708090a0b0c","re":{"options":"i","pattern":"^a"},"min":{"$minKey":1}}`
	if string(b) != want {
		t.Fatalf("json = %s", b)
	}
}
