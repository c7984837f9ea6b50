package codec

import (
	"reflect"

	"bdoc/pkg/doc"
	"bdoc/pkg/wire"
)

// Representation types, one reflect.Type per concrete value shape.
var (
	tDouble        = reflect.TypeOf(doc.Double(0))
	tString        = reflect.TypeOf(doc.String(""))
	tDocument      = reflect.TypeOf((*doc.Document)(nil))
	tArray         = reflect.TypeOf((*doc.Array)(nil))
	tBinary        = reflect.TypeOf(doc.Binary{})
	tUndefined     = reflect.TypeOf(doc.Undefined{})
	tObjectID      = reflect.TypeOf(doc.ObjectID{})
	tBoolean       = reflect.TypeOf(doc.Boolean(false))
	tDateTime      = reflect.TypeOf(doc.DateTime(0))
	tNull          = reflect.TypeOf(doc.Null{})
	tRegex         = reflect.TypeOf(doc.Regex{})
	tDBPointer     = reflect.TypeOf(doc.DBPointer{})
	tJavaScript    = reflect.TypeOf(doc.JavaScript(""))
	tSymbol        = reflect.TypeOf(doc.Symbol(""))
	tCodeWithScope = reflect.TypeOf((*doc.CodeWithScope)(nil))
	tInt32         = reflect.TypeOf(doc.Int32(0))
	tTimestamp     = reflect.TypeOf(doc.Timestamp{})
	tInt64         = reflect.TypeOf(doc.Int64(0))
	tMinKey        = reflect.TypeOf(doc.MinKey{})
	tMaxKey        = reflect.TypeOf(doc.MaxKey{})
	tWrapped       = reflect.TypeOf((*doc.Wrapped)(nil))
	tRaw           = reflect.TypeOf(doc.Raw(nil))
)

// TypeFor answers which representation type models the given wire tag.
// The switch enumerates every tag in the closed set; it is total over
// wire.Types and fixed for the process lifetime. Only a corrupt tag byte
// reaches the nil return, and the document codec reports that as a decode
// error.
func TypeFor(t wire.Type) reflect.Type {
	switch t {
	case wire.TypeDouble:
		return tDouble
	case wire.TypeString:
		return tString
	case wire.TypeDocument:
		return tDocument
	case wire.TypeArray:
		return tArray
	case wire.TypeBinary:
		return tBinary
	case wire.TypeUndefined:
		return tUndefined
	case wire.TypeObjectID:
		return tObjectID
	case wire.TypeBoolean:
		return tBoolean
	case wire.TypeDateTime:
		return tDateTime
	case wire.TypeNull:
		return tNull
	case wire.TypeRegex:
		return tRegex
	case wire.TypeDBPointer:
		return tDBPointer
	case wire.TypeJavaScript:
		return tJavaScript
	case wire.TypeSymbol:
		return tSymbol
	case wire.TypeCodeWithScope:
		return tCodeWithScope
	case wire.TypeInt32:
		return tInt32
	case wire.TypeTimestamp:
		return tTimestamp
	case wire.TypeInt64:
		return tInt64
	case wire.TypeMinKey:
		return tMinKey
	case wire.TypeMaxKey:
		return tMaxKey
	}
	return nil
}
