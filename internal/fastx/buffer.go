// internal/fastx/buffer.go
package fastx

import (
	"bytes"
	"errors"
	"io"
	"syscall"
)

// DefaultBufferSize matches the 100 KiB chunk used by the stat pipeline.
const DefaultBufferSize = 100 * 1024

// skipBulkMin is the skip length from which SkipBases counts newlines in bulk.
const skipBulkMin = 10

const maxEmptyReads = 100

// Buffer is a fixed-capacity byte window with a read cursor.
// Invariant: 0 <= pos <= n <= len(buf). It never grows; Fill overwrites it.
type Buffer struct {
	buf []byte
	n   int // valid bytes from the last Fill
	pos int // next unread offset
}

// NewBuffer allocates a buffer of the given capacity (minimum 1).
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{buf: make([]byte, capacity)}
}

func (b *Buffer) Cap() int       { return len(b.buf) }
func (b *Buffer) Len() int       { return b.n }
func (b *Buffer) Empty() bool    { return b.n == 0 }
func (b *Buffer) Remaining() int { return b.n - b.pos }

// Reset empties the buffer without touching its storage.
func (b *Buffer) Reset() { b.n, b.pos = 0, 0 }

// Fill reads from r until the buffer is full or r is exhausted and returns
// the number of bytes now held. The error is io.EOF once r has no more data,
// even when some bytes were read by this call.
func (b *Buffer) Fill(r io.Reader) (int, error) {
	b.Reset()
	empty := 0
	for b.n < len(b.buf) {
		m, err := r.Read(b.buf[b.n:])
		b.n += m
		switch {
		case err == nil:
			if m > 0 {
				empty = 0
			} else if empty++; empty >= maxEmptyReads {
				return b.n, io.ErrNoProgress
			}
		case err == io.EOF:
			return b.n, io.EOF
		case errors.Is(err, syscall.EINTR):
		default:
			return b.n, err
		}
	}
	return b.n, nil
}

// NextByte returns the byte at the cursor without consuming it, first
// stepping over newlines when skipNewlines is set. ok is false when the
// buffer is exhausted.
func (b *Buffer) NextByte(skipNewlines bool) (c byte, ok bool) {
	if skipNewlines {
		b.skipNewlines()
	}
	if b.pos >= b.n {
		return 0, false
	}
	return b.buf[b.pos], true
}

// NextLineLength consumes up to and including the next newline and returns
// the line length without it. terminated is false when the buffer ended
// before a newline was found. ok is false when nothing was left.
func (b *Buffer) NextLineLength() (n int, terminated, ok bool) {
	if b.pos >= b.n {
		return 0, false, false
	}
	if i := bytes.IndexByte(b.buf[b.pos:b.n], '\n'); i >= 0 {
		b.pos += i + 1
		return i, true, true
	}
	n = b.n - b.pos
	b.pos = b.n
	return n, false, true
}

// SkipLines discards up to n newline-terminated lines and returns how many
// were fully skipped. A trailing partial line is consumed but not counted.
func (b *Buffer) SkipLines(n int) int {
	skipped := 0
	for skipped < n {
		_, terminated, ok := b.NextLineLength()
		if !ok || !terminated {
			break
		}
		skipped++
	}
	return skipped
}

// SkipBases discards n non-newline bytes; newlines in between are skipped
// for free. It returns the number of non-newline bytes actually skipped,
// which is less than n only when the buffer ran out.
func (b *Buffer) SkipBases(n int) int {
	skipped := 0
	for skipped < n && b.pos < b.n {
		want := n - skipped
		if want >= skipBulkMin && b.pos+want <= b.n {
			nl := bytes.Count(b.buf[b.pos:b.pos+want], []byte{'\n'})
			b.pos += want
			skipped += want - nl
			continue
		}
		if b.buf[b.pos] != '\n' {
			skipped++
		}
		b.pos++
	}
	return skipped
}

func (b *Buffer) skipNewlines() int {
	start := b.pos
	for b.pos < b.n && b.buf[b.pos] == '\n' {
		b.pos++
	}
	return b.pos - start
}
