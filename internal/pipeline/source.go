// internal/pipeline/source.go
package pipeline

import (
	"io"

	"fxtools/internal/fastx"
)

// Source is one raw byte stream consumed by the reader stage.
// *fastx.Stream satisfies it; tests can supply their own.
type Source interface {
	io.ReadCloser
	Path() string
}

// Sources adapts resolved streams to the reader stage.
func Sources(ss []*fastx.Stream) []Source {
	out := make([]Source, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func closeAll(srcs []Source) {
	for _, s := range srcs {
		_ = s.Close()
	}
}
