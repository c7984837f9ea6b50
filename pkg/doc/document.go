package doc

import "bdoc/pkg/wire"

// Element is a single key/value pair inside a document.
type Element struct {
	Key   string
	Value Value
}

// Document is an ordered mapping of string keys to values. Insertion order
// is part of the value: it is preserved on encode and decode.
type Document struct {
	elems []Element
}

// NewDocument builds a document from pairs in order.
func NewDocument(elems ...Element) *Document {
	return &Document{elems: elems}
}

func (*Document) Type() wire.Type { return wire.TypeDocument }

// Append adds a key/value pair at the end, returning the document for
// chaining. Duplicate keys are allowed; Get sees the first.
func (d *Document) Append(key string, v Value) *Document {
	d.elems = append(d.elems, Element{Key: key, Value: v})
	return d
}

// Set replaces the first element with the given key in place, or appends
// when the key is absent.
func (d *Document) Set(key string, v Value) *Document {
	for i := range d.elems {
		if d.elems[i].Key == key {
			d.elems[i].Value = v
			return d
		}
	}
	return d.Append(key, v)
}

// Get returns the value for key, or nil when absent.
func (d *Document) Get(key string) Value {
	v, _ := d.Lookup(key)
	return v
}

// Lookup returns the value for key and whether it was present.
func (d *Document) Lookup(key string) (Value, bool) {
	for i := range d.elems {
		if d.elems[i].Key == key {
			return d.elems[i].Value, true
		}
	}
	return nil, false
}

// Delete removes the first element with the given key, reporting whether
// anything was removed.
func (d *Document) Delete(key string) bool {
	for i := range d.elems {
		if d.elems[i].Key == key {
			d.elems = append(d.elems[:i], d.elems[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of elements.
func (d *Document) Len() int { return len(d.elems) }

// Keys returns the keys in insertion order.
func (d *Document) Keys() []string {
	out := make([]string, len(d.elems))
	for i := range d.elems {
		out[i] = d.elems[i].Key
	}
	return out
}

// Elements returns the underlying element slice in order. Callers must not
// reorder it.
func (d *Document) Elements() []Element { return d.elems }

// Array is an ordered sequence of values.
type Array struct {
	items []Value
}

// NewArray builds an array from values in order.
func NewArray(items ...Value) *Array {
	return &Array{items: items}
}

func (*Array) Type() wire.Type { return wire.TypeArray }

// Append adds a value at the end, returning the array for chaining.
func (a *Array) Append(v Value) *Array {
	a.items = append(a.items, v)
	return a
}

// Len returns the number of values.
func (a *Array) Len() int { return len(a.items) }

// Index returns the value at position i.
func (a *Array) Index(i int) Value { return a.items[i] }

// Values returns the underlying slice in order.
func (a *Array) Values() []Value { return a.items }
