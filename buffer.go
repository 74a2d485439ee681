package tagwire

// Buffer is a zero-copy cursor over a borrowed, immutable byte slice. It
// never mutates or copies the underlying bytes; sub-buffers produced by
// [Buffer.Take] alias the same backing array as their parent.
//
// A Buffer is not safe for concurrent use: it carries a mutable read
// position. Distinct Buffers (including sub-buffers taken before concurrent
// use begins) may be used from separate goroutines freely.
type Buffer struct {
	data []byte
}

// NewBuffer wraps b in a Buffer. The caller must not mutate b for as long as
// the Buffer or any sub-buffer derived from it is in use.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{data: b}
}

// Len returns the number of unread bytes remaining.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Empty reports whether no bytes remain.
func (b *Buffer) Empty() bool {
	return len(b.data) == 0
}

// Bytes returns the remaining bytes without consuming them. The returned
// slice aliases the Buffer's backing array and must not be mutated.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Take returns a sub-buffer covering the next n bytes and advances past
// them. It fails with InsufficientData if n exceeds the number of bytes
// remaining.
func (b *Buffer) Take(n int) (*Buffer, error) {
	if n > len(b.data) {
		return nil, ErrInsufficientData(n, len(b.data))
	}
	sub := &Buffer{data: b.data[:n]}
	b.data = b.data[n:]
	return sub, nil
}

// PeekByte returns the next byte without consuming it. It fails with
// InsufficientData if the buffer is empty.
func (b *Buffer) PeekByte() (byte, error) {
	if len(b.data) == 0 {
		return 0, ErrInsufficientData(1, 0)
	}
	return b.data[0], nil
}

// ReadByte consumes and returns the next byte. It fails with
// InsufficientData if the buffer is empty.
func (b *Buffer) ReadByte() (byte, error) {
	if len(b.data) == 0 {
		return 0, ErrInsufficientData(1, 0)
	}
	v := b.data[0]
	b.data = b.data[1:]
	return v, nil
}

// ToOwnedSlice returns a zero-copy handle over the remaining bytes and
// advances the cursor to empty. The returned slice aliases the Buffer's
// backing array and must not be mutated.
func (b *Buffer) ToOwnedSlice() []byte {
	rest := b.data
	b.data = nil
	return rest
}
