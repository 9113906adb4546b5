// internal/pipeline/state.go
package pipeline

import (
	"fxtools/internal/fastx"
)

// parser carries record reconstruction state across buffer boundaries.
// Pending line skips (header or FASTQ separator) drain before pending base
// skips (FASTQ quality); length resets to 0 exactly when a record closes.
type parser struct {
	minLen uint64

	skipLines int
	skipBases int
	inRecord  bool
	midLine   bool // previous buffer ended inside a sequence line
	length    uint64

	lens  []uint64
	total uint64
}

func newParser(minLen uint64) *parser {
	return &parser{minLen: minLen, lens: make([]uint64, 0, 1<<16)}
}

// consume scans buf at record-boundary granularity. It returns when buf is
// exhausted; state needed to continue in the next buffer is kept.
func (p *parser) consume(buf *fastx.Buffer) error {
	for {
		if p.skipLines > 0 {
			p.skipLines -= buf.SkipLines(p.skipLines)
			if p.skipLines > 0 {
				return nil
			}
		}
		if p.skipBases > 0 {
			p.skipBases -= buf.SkipBases(p.skipBases)
			if p.skipBases > 0 {
				return nil
			}
		}

		if !p.inRecord {
			c, ok := buf.NextByte(true)
			if !ok {
				return nil
			}
			if c != '>' && c != '@' {
				return fastx.ErrNotFastx
			}
			p.inRecord = true
			p.skipLines = 1
			continue
		}

		if !p.midLine {
			c, ok := buf.NextByte(false)
			if !ok {
				return nil
			}
			switch c {
			case '>', '@':
				p.closeRecord()
				continue
			case '+':
				qual := p.length
				p.closeRecord()
				p.skipLines = 1
				p.skipBases = int(qual)
				continue
			}
		}

		n, terminated, ok := buf.NextLineLength()
		if !ok {
			return nil
		}
		p.length += uint64(n)
		p.midLine = !terminated
	}
}

// endOfStream closes the trailing record of a stream and resets state for
// the next one.
func (p *parser) endOfStream() error {
	if p.skipLines > 0 || p.skipBases > 0 {
		p.reset()
		return fastx.ErrTruncated
	}
	if p.inRecord {
		p.closeRecord()
	}
	p.reset()
	return nil
}

func (p *parser) closeRecord() {
	if p.length > p.minLen {
		p.lens = append(p.lens, p.length)
		p.total += p.length
	}
	p.length = 0
	p.inRecord = false
	p.midLine = false
}

func (p *parser) reset() {
	p.skipLines, p.skipBases = 0, 0
	p.inRecord, p.midLine = false, false
	p.length = 0
}
