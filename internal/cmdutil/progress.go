package cmdutil

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

const progressTemplate = `{{string . "prefix"}}{{counters . }} {{speed . }}`

// Progress reports bytes read to stderr. The zero value is a no-op, so
// callers can always use Add and Finish.
type Progress struct {
	bar *pb.ProgressBar
}

// NewProgress starts a byte counter on w when enabled.
func NewProgress(w io.Writer, enabled bool, prefix string) *Progress {
	if !enabled || w == nil {
		return &Progress{}
	}
	bar := pb.New64(0)
	bar.Set(pb.Bytes, true)
	bar.Set("prefix", prefix+" ")
	bar.SetTemplateString(progressTemplate)
	bar.SetWriter(w)
	bar.Start()
	return &Progress{bar: bar}
}

// Add is safe to call from any goroutine.
func (p *Progress) Add(n int) {
	if p.bar != nil {
		p.bar.Add(n)
	}
}

func (p *Progress) Finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
