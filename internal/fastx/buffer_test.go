package fastx

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func filled(t *testing.T, s string) *Buffer {
	t.Helper()
	b := NewBuffer(len(s) + 1)
	if _, err := b.Fill(strings.NewReader(s)); err != io.EOF {
		t.Fatalf("fill: %v", err)
	}
	return b
}

func TestFillFullAndEOF(t *testing.T) {
	b := NewBuffer(4)
	r := strings.NewReader("abcdef")
	n, err := b.Fill(r)
	if n != 4 || err != nil {
		t.Fatalf("first fill: n=%d err=%v", n, err)
	}
	n, err = b.Fill(r)
	if n != 2 || err != io.EOF {
		t.Fatalf("second fill: n=%d err=%v", n, err)
	}
	n, err = b.Fill(r)
	if n != 0 || err != io.EOF || !b.Empty() {
		t.Fatalf("third fill: n=%d err=%v", n, err)
	}
}

func TestFillShortReads(t *testing.T) {
	b := NewBuffer(8)
	n, err := b.Fill(iotest.OneByteReader(strings.NewReader("abcdefghij")))
	if n != 8 || err != nil {
		t.Fatalf("fill: n=%d err=%v", n, err)
	}
}

func TestFillPropagatesErrors(t *testing.T) {
	b := NewBuffer(8)
	_, err := b.Fill(iotest.ErrReader(io.ErrUnexpectedEOF))
	if err != io.ErrUnexpectedEOF {
		t.Fatalf("got %v", err)
	}
}

func TestNextLineLength(t *testing.T) {
	b := filled(t, "ACGT\nAC")
	n, term, ok := b.NextLineLength()
	if n != 4 || !term || !ok {
		t.Fatalf("line 1: %d %v %v", n, term, ok)
	}
	n, term, ok = b.NextLineLength()
	if n != 2 || term || !ok {
		t.Fatalf("line 2: %d %v %v", n, term, ok)
	}
	if _, _, ok = b.NextLineLength(); ok {
		t.Fatal("expected exhausted buffer")
	}
}

func TestNextByte(t *testing.T) {
	b := filled(t, "\n\n>x")
	if c, ok := b.NextByte(false); !ok || c != '\n' {
		t.Fatalf("without skipping: %q %v", c, ok)
	}
	if c, ok := b.NextByte(true); !ok || c != '>' {
		t.Fatalf("with skipping: %q %v", c, ok)
	}
	if b.Remaining() != 2 {
		t.Fatalf("NextByte must not consume, remaining=%d", b.Remaining())
	}
}

func TestSkipLines(t *testing.T) {
	b := filled(t, "@r1 desc\nACGT\n+\nII")
	if got := b.SkipLines(3); got != 3 {
		t.Fatalf("skipped %d lines", got)
	}
	if got := b.SkipLines(1); got != 0 {
		t.Fatalf("partial line must not count, got %d", got)
	}
	if b.Remaining() != 0 {
		t.Fatalf("partial line must be consumed")
	}
}

func TestSkipBases(t *testing.T) {
	for _, tc := range []struct {
		in   string
		n    int
		want int
		rest string
	}{
		{"IIII\n@next", 4, 4, "\n@next"},
		{"II\nII\n@n", 4, 4, "\n@n"},
		{"IIIIIIIIII\nIIIII\n@n", 15, 15, "\n@n"},
		{"IIIIIIIIII\nIIIII\n@n", 10, 10, "\nIIIII\n@n"},
		{"III", 5, 3, ""},
		{"IIIIIII\nIIIII", 20, 12, ""},
	} {
		b := filled(t, tc.in)
		if got := b.SkipBases(tc.n); got != tc.want {
			t.Fatalf("%q skip %d: got %d want %d", tc.in, tc.n, got, tc.want)
		}
		if rest := string(b.buf[b.pos:b.n]); rest != tc.rest {
			t.Fatalf("%q skip %d: rest %q want %q", tc.in, tc.n, rest, tc.rest)
		}
	}
}
