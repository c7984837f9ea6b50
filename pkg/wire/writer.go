package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"
)

// Writer is an append-only byte cursor for one serialized document.
// The zero value is ready to use.
type Writer struct {
	buf []byte
}

// NewWriter returns a writer with preallocated capacity.
func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

// Bytes returns the accumulated buffer. The slice aliases the writer's
// internal storage and is valid until the next write.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Reset truncates the buffer, keeping capacity.
func (w *Writer) Reset() { w.buf = w.buf[:0] }

// WriteByte appends a single byte. The error is always nil; the signature
// satisfies io.ByteWriter.
func (w *Writer) WriteByte(b byte) error {
	w.buf = append(w.buf, b)
	return nil
}

func (w *Writer) WriteBytes(p []byte) {
	w.buf = append(w.buf, p...)
}

func (w *Writer) WriteInt32(v int32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(v))
}

func (w *Writer) WriteInt64(v int64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, uint64(v))
}

func (w *Writer) WriteUint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// WriteDouble writes the IEEE 754 bit pattern of v.
func (w *Writer) WriteDouble(v float64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, math.Float64bits(v))
}

// WriteCString writes the bytes of s followed by a NUL terminator.
// s must not contain a NUL itself; the framing has no escape for it.
func (w *Writer) WriteCString(s string) error {
	if strings.IndexByte(s, 0x00) >= 0 {
		return fmt.Errorf("cstring %q contains NUL", s)
	}
	w.buf = append(w.buf, s...)
	w.buf = append(w.buf, 0x00)
	return nil
}

// WriteString writes a length-prefixed string: int32 byte count including
// the trailing NUL, the bytes, then the NUL.
func (w *Writer) WriteString(s string) {
	w.WriteInt32(int32(len(s) + 1))
	w.buf = append(w.buf, s...)
	w.buf = append(w.buf, 0x00)
}

// PatchInt32 overwrites a previously written int32 at off.
func (w *Writer) PatchInt32(off int, v int32) error {
	if off < 0 || off+4 > len(w.buf) {
		return errors.New("patch offset out of range")
	}
	binary.LittleEndian.PutUint32(w.buf[off:off+4], uint32(v))
	return nil
}

// BeginDoc reserves an int32 length slot and returns its offset for EndDoc.
func (w *Writer) BeginDoc() int {
	off := len(w.buf)
	w.buf = append(w.buf, 0, 0, 0, 0)
	return off
}

// EndDoc writes the 0x00 terminator and back-patches the length reserved at
// off to cover the whole frame, prefix and terminator included.
func (w *Writer) EndDoc(off int) error {
	if off < 0 || off+4 > len(w.buf) {
		return errors.New("length slot out of range")
	}
	w.buf = append(w.buf, 0x00)
	binary.LittleEndian.PutUint32(w.buf[off:off+4], uint32(len(w.buf)-off))
	return nil
}
