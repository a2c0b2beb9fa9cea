// Package capture provides a bounded, order-preserving record of a
// stream's lines. Each relay owns exactly one Buffer; once the relay
// finishes, the Buffer is read-only.
package capture

import "strings"

// DefaultCapacity is the per-stream line limit used when no explicit
// capacity is configured (limits.max_lines).
const DefaultCapacity = 10000

// Buffer is a fixed-capacity FIFO of lines. When full, appending a new
// line evicts the oldest one. Buffer is not safe for concurrent use;
// it is designed for single-owner mutation.
type Buffer struct {
	capacity int
	lines    []string
	start    int // index of the oldest line once the ring is full
}

// NewBuffer returns a Buffer holding at most capacity lines.
// A capacity of zero or less falls back to DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{capacity: capacity}
}

// Append adds a line, evicting the oldest line if the buffer is full.
func (b *Buffer) Append(line string) {
	if len(b.lines) < b.capacity {
		b.lines = append(b.lines, line)
		return
	}
	b.lines[b.start] = line
	b.start = (b.start + 1) % b.capacity
}

// Len returns the number of lines currently held.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Capacity returns the maximum number of lines the buffer can hold.
func (b *Buffer) Capacity() int {
	return b.capacity
}

// Lines returns the held lines in arrival order. The returned slice is
// a copy; mutating it does not affect the buffer.
func (b *Buffer) Lines() []string {
	out := make([]string, 0, len(b.lines))
	out = append(out, b.lines[b.start:]...)
	out = append(out, b.lines[:b.start]...)
	return out
}

// Join returns the held lines joined with sep, in arrival order.
func (b *Buffer) Join(sep string) string {
	return strings.Join(b.Lines(), sep)
}
