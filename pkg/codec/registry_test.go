package codec

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"bdoc/pkg/doc"
	"bdoc/pkg/wire"
)

// pair is a representation type deliberately outside the format: neither a
// simple type nor one of the composite shapes.
type pair struct {
	K string
	V doc.Value
}

var tPair = reflect.TypeOf(pair{})

func TestScalarLookupsShareOneInstance(t *testing.T) {
	reg := NewRegistry(NewValueProvider())
	for _, rt := range []reflect.Type{tDouble, tString, tBoolean, tInt32, tInt64, tObjectID, tNull, tMinKey, tMaxKey, tTimestamp} {
		c1, err := reg.Lookup(rt)
		require.NoError(t, err)
		c2, err := reg.Lookup(rt)
		require.NoError(t, err)
		require.True(t, c1 == c2, "scalar codec for %s not identity-stable", rt)
	}
}

func TestCompositeLookupsBuildFreshCodecs(t *testing.T) {
	reg := NewRegistry(NewValueProvider())
	for _, rt := range []reflect.Type{tArray, tDocument, tWrapped, tRaw, tCodeWithScope} {
		c1, err := reg.Lookup(rt)
		require.NoError(t, err)
		c2, err := reg.Lookup(rt)
		require.NoError(t, err)
		require.NotSame(t, c1, c2, "composite codec for %s was cached", rt)
		require.IsType(t, c1, c2)
	}
}

func TestUnknownTypeMisses(t *testing.T) {
	reg := NewRegistry(NewValueProvider())

	require.NotPanics(t, func() {
		_, err := reg.Lookup(tPair)
		require.ErrorIs(t, err, ErrNoCodec)
	})

	p := NewValueProvider()
	require.Nil(t, p.Lookup(tPair, reg))
}

// pairCodec and pairProvider exercise the fall-through contract: the value
// provider's miss lets the registry consult the next provider.
type pairCodec struct{}

func (pairCodec) Encode(w *wire.Writer, v doc.Value) error { return errors.New("not wired") }
func (pairCodec) Decode(r *wire.Reader) (doc.Value, error) { return nil, errors.New("not wired") }

type pairProvider struct{}

func (pairProvider) Lookup(rt reflect.Type, _ Directory) Codec {
	if rt == tPair {
		return pairCodec{}
	}
	return nil
}

func TestRegistryFallsThroughToNextProvider(t *testing.T) {
	reg := NewRegistry(NewValueProvider(), pairProvider{})

	c, err := reg.Lookup(tPair)
	require.NoError(t, err)
	require.IsType(t, pairCodec{}, c)

	// Known types still resolve from the first provider.
	c, err = reg.Lookup(tDocument)
	require.NoError(t, err)
	require.IsType(t, &documentCodec{}, c)
}

// emptyDirectory refuses every lookup.
type emptyDirectory struct{}

func (emptyDirectory) Lookup(rt reflect.Type) (Codec, error) {
	return nil, ErrNoCodec
}

func TestDelegatingShapesMissWithoutDocumentCodec(t *testing.T) {
	// A wrapper needs the directory to resolve the document codec. When
	// the directory cannot, the provider misses instead of failing hard.
	p := NewValueProvider()
	require.Nil(t, p.Lookup(tWrapped, emptyDirectory{}))
	require.Nil(t, p.Lookup(tRaw, emptyDirectory{}))
	require.Nil(t, p.Lookup(tCodeWithScope, emptyDirectory{}))

	// Array and document codecs only use the directory at encode/decode
	// time, so they still construct.
	require.NotNil(t, p.Lookup(tArray, emptyDirectory{}))
	require.NotNil(t, p.Lookup(tDocument, emptyDirectory{}))
}

func TestDefaultRegistryIsStable(t *testing.T) {
	require.Same(t, Default(), Default())
}

func TestConcurrentLookups(t *testing.T) {
	reg := NewRegistry(NewValueProvider())
	simple := []reflect.Type{tDouble, tString, tBoolean, tInt32, tInt64}
	composite := []reflect.Type{tArray, tDocument}

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rt := simple[i%len(simple)]
			if i%7 < 2 {
				rt = composite[i%len(composite)]
			}
			c, err := reg.Lookup(rt)
			if err != nil || c == nil {
				t.Errorf("lookup %s: %v", rt, err)
				return
			}
			if rt != tDocument {
				return
			}
			// Exercise a full round trip through the fresh codec.
			d := doc.NewDocument().Append("n", doc.Int32(int32(i)))
			w := wire.NewWriter(32)
			if err := c.Encode(w, d); err != nil {
				t.Errorf("encode: %v", err)
				return
			}
			got, err := c.Decode(wire.NewReader(w.Bytes()))
			if err != nil {
				t.Errorf("decode: %v", err)
				return
			}
			if !reflect.DeepEqual(got, d) {
				t.Errorf("roundtrip mismatch: %#v", got)
			}
		}(i)
	}
	wg.Wait()
}
