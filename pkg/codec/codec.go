// Package codec resolves encoder/decoder pairs for document values.
//
// A Registry aggregates providers and is the directory composite codecs use
// to resolve codecs for the values they contain. ValueProvider is the
// built-in provider covering every representation type of the format:
// scalars are pre-built and shared, composite shapes are constructed lazily
// per lookup with the directory injected.
package codec

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"bdoc/pkg/doc"
	"bdoc/pkg/wire"
)

// Codec encodes and decodes values of one representation type.
type Codec interface {
	Encode(w *wire.Writer, v doc.Value) error
	Decode(r *wire.Reader) (doc.Value, error)
}

// Directory is the ambient lookup service consulted for nested values.
// Composite codecs hold one by reference; they never own or mutate it.
type Directory interface {
	Lookup(t reflect.Type) (Codec, error)
}

// Provider is a single source of codecs inside a Directory. A nil result
// means "not mine, ask the next provider" and is never an error.
type Provider interface {
	Lookup(t reflect.Type, dir Directory) Codec
}

// ErrNoCodec reports that no provider in a registry knows the requested
// representation type.
var ErrNoCodec = errors.New("no codec for type")

// Registry is an ordered provider chain. It is immutable once constructed
// and safe for concurrent lookups. Provider results are deliberately not
// cached: a provider may hand out directory-parameterized codecs per call.
type Registry struct {
	providers []Provider
}

// NewRegistry builds a registry consulting providers in the given order.
func NewRegistry(providers ...Provider) *Registry {
	return &Registry{providers: providers}
}

// Lookup resolves a codec for the representation type t, first provider
// wins. A full miss yields ErrNoCodec.
func (r *Registry) Lookup(t reflect.Type) (Codec, error) {
	for _, p := range r.providers {
		if c := p.Lookup(t, r); c != nil {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w %s", ErrNoCodec, t)
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry holding the value provider.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry(NewValueProvider())
	})
	return defaultReg
}
