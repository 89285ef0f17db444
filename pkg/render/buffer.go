package render

// Buffer is the byte sink all rendering writes into: an append-only
// growable byte sequence. Writes cannot fail.
//
// A plain buffer just accumulates. A stream buffer additionally spills
// a full chunk to its spill function every time the pending bytes reach
// the chunk size, which is how progressive streaming interleaves
// traversal with delivery. When the spill function reports an error
// (stream cancelled), the buffer goes dead and every later write is a
// no-op, so traversal unwinds without producing further output.
type Buffer struct {
	data  []byte
	off   int // data[off:] is pending, not yet spilled
	chunk int
	spill func(p []byte) error
	dead  bool
}

// NewBuffer returns a plain buffer with the given capacity reserved.
func NewBuffer(reserve int) *Buffer {
	if reserve < 0 {
		reserve = 0
	}
	return &Buffer{data: make([]byte, 0, reserve)}
}

// newStreamBuffer returns a buffer that spills every chunk bytes.
func newStreamBuffer(chunk int, spill func(p []byte) error) *Buffer {
	return &Buffer{
		data:  make([]byte, 0, chunk),
		chunk: chunk,
		spill: spill,
	}
}

// WriteString appends s.
func (b *Buffer) WriteString(s string) {
	if b.dead {
		return
	}
	b.data = append(b.data, s...)
	b.spillFull()
}

// Write appends p.
func (b *Buffer) Write(p []byte) {
	if b.dead {
		return
	}
	b.data = append(b.data, p...)
	b.spillFull()
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) {
	if b.dead {
		return
	}
	b.data = append(b.data, c)
	b.spillFull()
}

// Bytes returns the accumulated bytes of a plain buffer.
func (b *Buffer) Bytes() []byte {
	return b.data[b.off:]
}

// Len returns the number of pending bytes.
func (b *Buffer) Len() int {
	return len(b.data) - b.off
}

// spillFull hands off chunks while at least one full chunk is pending.
// Chunks are copied: the receiver keeps them past the next write.
func (b *Buffer) spillFull() {
	if b.spill == nil {
		return
	}
	for len(b.data)-b.off >= b.chunk {
		out := make([]byte, b.chunk)
		copy(out, b.data[b.off:])
		if err := b.spill(out); err != nil {
			b.dead = true
			b.data = b.data[:0]
			b.off = 0
			return
		}
		b.off += b.chunk
	}
	// Compact so the backing array stays near chunk size.
	if b.off > 0 {
		n := copy(b.data, b.data[b.off:])
		b.data = b.data[:n]
		b.off = 0
	}
}

// finish spills whatever is still pending as a final short chunk.
// After cancellation there is nothing to finish: a partial chunk is
// never delivered.
func (b *Buffer) finish() {
	if b.spill == nil || b.dead {
		return
	}
	if pending := b.data[b.off:]; len(pending) > 0 {
		out := make([]byte, len(pending))
		copy(out, pending)
		b.spill(out)
	}
	b.data = b.data[:0]
	b.off = 0
}
