package doc

import "bdoc/pkg/wire"

// Wrapped defers entirely to an inner document. It has no wire tag of its
// own: it serializes under the document tag through the document codec,
// but keeps a distinct representation identity so codec resolution can
// treat it separately.
type Wrapped struct {
	Doc *Document
}

func (*Wrapped) Type() wire.Type { return wire.TypeDocument }

// Raw is a pre-encoded document kept as wire bytes and materialized only on
// demand. Like Wrapped it presents the document tag.
type Raw []byte

func (Raw) Type() wire.Type { return wire.TypeDocument }
