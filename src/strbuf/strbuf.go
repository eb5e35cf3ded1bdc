package strbuf

import (
	"github.com/hyperbolic-timechamber/collections-go/src/list"
)

// Buffer accumulates bytes in a list.List and converts them to strings.
// The zero Buffer is ready for use.
type Buffer struct {
	bytes list.List[byte]
}

func New() *Buffer {
	return &Buffer{}
}

// NewWithCapacity creates a buffer with room for n bytes preallocated.
func NewWithCapacity(n int) *Buffer {
	b := &Buffer{}
	b.bytes.Reserve(n)
	return b
}

func (b *Buffer) Len() int {
	return b.bytes.Len()
}

func (b *Buffer) Cap() int {
	return b.bytes.Cap()
}

// Write appends p. It implements io.Writer and never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.bytes.AppendAll(p...)
	return len(p), nil
}

// WriteByte appends a single byte. It implements io.ByteWriter and never
// fails.
func (b *Buffer) WriteByte(c byte) error {
	b.bytes.Append(c)
	return nil
}

// WriteString appends s. It implements io.StringWriter and never fails.
func (b *Buffer) WriteString(s string) (int, error) {
	b.bytes.AppendAll([]byte(s)...)
	return len(s), nil
}

// String returns the accumulated bytes as a string. The buffer keeps its
// contents.
func (b *Buffer) String() string {
	return string(b.bytes.Data())
}

// Take returns the accumulated bytes as a string and resets the buffer,
// releasing its storage in one ownership handoff.
func (b *Buffer) Take() string {
	return string(b.bytes.StealData())
}

// Reset discards the contents but keeps the allocated storage.
func (b *Buffer) Reset() {
	b.bytes.Clear()
}

// Truncate shortens the buffer to n bytes. n must be in [0, Len()].
func (b *Buffer) Truncate(n int) error {
	return b.bytes.Truncate(n)
}
