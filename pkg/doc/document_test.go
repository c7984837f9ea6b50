package doc

import (
	"reflect"
	"testing"
)

func TestDocumentOrder(t *testing.T) {
	d := NewDocument().
		Append("b", Int32(1)).
		Append("a", Int32(2)).
		Append("c", Int32(3))

	want := []string{"b", "a", "c"}
	if got := d.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}

	// Set replaces in place, keeping position.
	d.Set("a", String("two"))
	if got := d.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("keys after Set = %v, want %v", got, want)
	}
	if v := d.Get("a"); v != String("two") {
		t.Fatalf("a = %v", v)
	}

	// Set appends when absent.
	d.Set("d", Null{})
	if d.Len() != 4 || d.Keys()[3] != "d" {
		t.Fatalf("keys after append-Set = %v", d.Keys())
	}
}

func TestDocumentLookupDelete(t *testing.T) {
	d := NewDocument().Append("x", Boolean(true))
	if _, ok := d.Lookup("y"); ok {
		t.Fatal("lookup of absent key succeeded")
	}
	if v := d.Get("y"); v != nil {
		t.Fatalf("get of absent key = %v", v)
	}
	if !d.Delete("x") || d.Len() != 0 {
		t.Fatal("delete failed")
	}
	if d.Delete("x") {
		t.Fatal("second delete succeeded")
	}
}

func TestObjectIDHex(t *testing.T) {
	id, err := NewObjectID()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	back, err := ObjectIDFromHex(id.Hex())
	if err != nil {
		t.Fatalf("from hex: %v", err)
	}
	if back != id {
		t.Fatalf("roundtrip mismatch: %v vs %v", back, id)
	}

	if _, err := ObjectIDFromHex("zz"); err == nil {
		t.Fatal("bad hex accepted")
	}
	if _, err := ObjectIDFromHex("abcd"); err == nil {
		t.Fatal("short hex accepted")
	}
}

func TestWireTags(t *testing.T) {
	// Wrapper identities present the document tag.
	var w Value = &Wrapped{Doc: NewDocument()}
	if w.Type() != (&Document{}).Type() {
		t.Fatal("wrapped tag differs from document tag")
	}
	var r Value = Raw(nil)
	if r.Type() != (&Document{}).Type() {
		t.Fatal("raw tag differs from document tag")
	}
}
