// Package wire defines the type tags and byte cursors of the binary
// document format. All integer fields are little-endian.
package wire

import "fmt"

// Type is the one-byte discriminator that prefixes every element value
// in the serialized stream.
type Type byte

// Wire type tags. The set is closed; values are fixed by the format.
const (
	TypeDouble        Type = 0x01
	TypeString        Type = 0x02
	TypeDocument      Type = 0x03
	TypeArray         Type = 0x04
	TypeBinary        Type = 0x05
	TypeUndefined     Type = 0x06
	TypeObjectID      Type = 0x07
	TypeBoolean       Type = 0x08
	TypeDateTime      Type = 0x09
	TypeNull          Type = 0x0A
	TypeRegex         Type = 0x0B
	TypeDBPointer     Type = 0x0C
	TypeJavaScript    Type = 0x0D
	TypeSymbol        Type = 0x0E
	TypeCodeWithScope Type = 0x0F
	TypeInt32         Type = 0x10
	TypeTimestamp     Type = 0x11
	TypeInt64         Type = 0x12
	TypeMaxKey        Type = 0x7F
	TypeMinKey        Type = 0xFF
)

// Types lists every tag in the closed set.
var Types = []Type{
	TypeDouble, TypeString, TypeDocument, TypeArray, TypeBinary,
	TypeUndefined, TypeObjectID, TypeBoolean, TypeDateTime, TypeNull,
	TypeRegex, TypeDBPointer, TypeJavaScript, TypeSymbol,
	TypeCodeWithScope, TypeInt32, TypeTimestamp, TypeInt64,
	TypeMaxKey, TypeMinKey,
}

func (t Type) String() string {
	switch t {
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypeDocument:
		return "document"
	case TypeArray:
		return "array"
	case TypeBinary:
		return "binary"
	case TypeUndefined:
		return "undefined"
	case TypeObjectID:
		return "objectID"
	case TypeBoolean:
		return "boolean"
	case TypeDateTime:
		return "dateTime"
	case TypeNull:
		return "null"
	case TypeRegex:
		return "regex"
	case TypeDBPointer:
		return "dbPointer"
	case TypeJavaScript:
		return "javascript"
	case TypeSymbol:
		return "symbol"
	case TypeCodeWithScope:
		return "codeWithScope"
	case TypeInt32:
		return "int32"
	case TypeTimestamp:
		return "timestamp"
	case TypeInt64:
		return "int64"
	case TypeMaxKey:
		return "maxKey"
	case TypeMinKey:
		return "minKey"
	}
	return fmt.Sprintf("invalid(0x%02x)", byte(t))
}

// Binary subtypes carried alongside TypeBinary payloads.
const (
	BinaryGeneric     byte = 0x00
	BinaryFunction    byte = 0x01
	BinaryOld         byte = 0x02
	BinaryUUIDOld     byte = 0x03
	BinaryUUID        byte = 0x04
	BinaryMD5         byte = 0x05
	BinaryUserDefined byte = 0x80
)
