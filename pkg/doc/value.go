// Package doc models the in-memory values of the binary document format:
// one representation type per wire tag, plus wrapper identities that share
// the document tag.
package doc

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"bdoc/pkg/wire"
)

// Value is implemented by every representation type. Type reports the wire
// tag the value serializes under.
type Value interface {
	Type() wire.Type
}

// Double is a 64-bit IEEE 754 floating point value.
type Double float64

func (Double) Type() wire.Type { return wire.TypeDouble }

// String is a UTF-8 string value.
type String string

func (String) Type() wire.Type { return wire.TypeString }

// Binary is a byte blob with a subtype marker.
type Binary struct {
	Subtype byte
	Data    []byte
}

func (Binary) Type() wire.Type { return wire.TypeBinary }

// Undefined is the deprecated undefined value.
type Undefined struct{}

func (Undefined) Type() wire.Type { return wire.TypeUndefined }

// ObjectID is a 12-byte object identifier.
type ObjectID [12]byte

func (ObjectID) Type() wire.Type { return wire.TypeObjectID }

// NewObjectID returns a random object identifier.
func NewObjectID() (ObjectID, error) {
	var id ObjectID
	_, err := io.ReadFull(rand.Reader, id[:])
	return id, err
}

// Hex renders the identifier as 24 lowercase hex digits.
func (id ObjectID) Hex() string { return hex.EncodeToString(id[:]) }

// ObjectIDFromHex parses a 24-digit hex identifier.
func ObjectIDFromHex(s string) (ObjectID, error) {
	var id ObjectID
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, err
	}
	if len(b) != len(id) {
		return id, fmt.Errorf("objectID hex must decode to %d bytes, got %d", len(id), len(b))
	}
	copy(id[:], b)
	return id, nil
}

// Boolean is a true/false value.
type Boolean bool

func (Boolean) Type() wire.Type { return wire.TypeBoolean }

// DateTime is milliseconds since the Unix epoch, UTC.
type DateTime int64

func (DateTime) Type() wire.Type { return wire.TypeDateTime }

// Null is the null value.
type Null struct{}

func (Null) Type() wire.Type { return wire.TypeNull }

// Regex is a regular expression pattern with options.
type Regex struct {
	Pattern string
	Options string
}

func (Regex) Type() wire.Type { return wire.TypeRegex }

// DBPointer is the deprecated namespace pointer value.
type DBPointer struct {
	Namespace string
	ID        ObjectID
}

func (DBPointer) Type() wire.Type { return wire.TypeDBPointer }

// JavaScript is code without a scope.
type JavaScript string

func (JavaScript) Type() wire.Type { return wire.TypeJavaScript }

// Symbol is the deprecated symbol value.
type Symbol string

func (Symbol) Type() wire.Type { return wire.TypeSymbol }

// CodeWithScope is code text with an attached variable-binding document.
type CodeWithScope struct {
	Code  string
	Scope *Document
}

func (*CodeWithScope) Type() wire.Type { return wire.TypeCodeWithScope }

// Int32 is a 32-bit signed integer.
type Int32 int32

func (Int32) Type() wire.Type { return wire.TypeInt32 }

// Timestamp is an internal timestamp: seconds since epoch plus an ordinal.
type Timestamp struct {
	T uint32 // seconds
	I uint32 // increment
}

func (Timestamp) Type() wire.Type { return wire.TypeTimestamp }

// Int64 is a 64-bit signed integer.
type Int64 int64

func (Int64) Type() wire.Type { return wire.TypeInt64 }

// MinKey sorts before every other value.
type MinKey struct{}

func (MinKey) Type() wire.Type { return wire.TypeMinKey }

// MaxKey sorts after every other value.
type MaxKey struct{}

func (MaxKey) Type() wire.Type { return wire.TypeMaxKey }
