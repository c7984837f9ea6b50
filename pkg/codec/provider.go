package codec

import "reflect"

// ValueProvider resolves codecs for every representation type of the
// format. The simple types get one shared codec each, built at
// construction; the composite shapes (array, document, wrapper, raw,
// code-with-scope) need a directory for nested resolution, so they are
// constructed lazily per lookup with the caller's directory injected.
// Registering them eagerly would require a directory to exist before the
// provider that belongs inside it.
type ValueProvider struct {
	scalars map[reflect.Type]Codec
}

// NewValueProvider builds a provider with one codec per simple type.
func NewValueProvider() *ValueProvider {
	p := &ValueProvider{scalars: make(map[reflect.Type]Codec, 17)}
	p.scalars[tDouble] = doubleCodec{}
	p.scalars[tString] = stringCodec{}
	p.scalars[tBinary] = binaryCodec{}
	p.scalars[tUndefined] = undefinedCodec{}
	p.scalars[tObjectID] = objectIDCodec{}
	p.scalars[tBoolean] = booleanCodec{}
	p.scalars[tDateTime] = dateTimeCodec{}
	p.scalars[tNull] = nullCodec{}
	p.scalars[tRegex] = regexCodec{}
	p.scalars[tDBPointer] = dbPointerCodec{}
	p.scalars[tJavaScript] = javaScriptCodec{}
	p.scalars[tSymbol] = symbolCodec{}
	p.scalars[tInt32] = int32Codec{}
	p.scalars[tTimestamp] = timestampCodec{}
	p.scalars[tInt64] = int64Codec{}
	p.scalars[tMinKey] = minKeyCodec{}
	p.scalars[tMaxKey] = maxKeyCodec{}
	return p
}

// Lookup resolves a codec for t, or returns nil when t is not a
// representation type of this format so the directory can fall through to
// its next provider.
func (p *ValueProvider) Lookup(t reflect.Type, dir Directory) Codec {
	if c, ok := p.scalars[t]; ok {
		return c
	}

	switch t {
	case tArray:
		return &arrayCodec{dir: dir}
	case tDocument:
		return &documentCodec{dir: dir}
	case tWrapped:
		// The wrapper defers to the document codec resolved once here,
		// not to a fresh by-name lookup at encode time. Resolving through
		// the directory would recurse between "wrapper needs document"
		// and "document is also looked up by name".
		dc, err := dir.Lookup(tDocument)
		if err != nil {
			return nil
		}
		return &wrappedCodec{delegate: dc}
	case tRaw:
		dc, err := dir.Lookup(tDocument)
		if err != nil {
			return nil
		}
		return &rawCodec{delegate: dc}
	case tCodeWithScope:
		dc, err := dir.Lookup(tDocument)
		if err != nil {
			return nil
		}
		return &codeWithScopeCodec{scope: dc}
	}
	return nil
}

var _ Provider = (*ValueProvider)(nil)
