// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"io"

	"github.com/twotwotwo/sorts/sortutil"
	"golang.org/x/sync/errgroup"

	"fxtools/internal/fastx"
)

// DefaultBuffers is the default size of the buffer pool.
const DefaultBuffers = 2

// Config controls the streaming length collector.
type Config struct {
	BufferSize int    // bytes per buffer; 0 = fastx.DefaultBufferSize
	Buffers    int    // pool size (>=1); 0 = DefaultBuffers
	MinLen     uint64 // records must be strictly longer to be kept

	// OnFill, if set, is called by the reader stage with the byte count of
	// every filled buffer.
	OnFill func(n int)
}

// Lengths is the outcome of a run: accepted record lengths in ascending
// order and their sum.
type Lengths struct {
	Values []uint64
	Total  uint64
}

// batch is a filled buffer plus the stream it came from. An empty buffer
// marks the end of that stream.
type batch struct {
	buf    *fastx.Buffer
	stream string
}

// Collect streams every record of streams (in order) through a reader stage
// and a parser stage and returns the accepted lengths. Streams are closed.
//
// The two stages share a fixed pool of buffers: the reader blocks when all of
// them are with the parser, so memory stays at Buffers*BufferSize. The first
// error from either stage cancels the other.
func Collect(ctx context.Context, cfg Config, streams []Source) (Lengths, error) {
	if cfg.BufferSize < 1 {
		cfg.BufferSize = fastx.DefaultBufferSize
	}
	if cfg.Buffers < 1 {
		cfg.Buffers = DefaultBuffers
	}
	defer closeAll(streams)

	free := make(chan *fastx.Buffer, cfg.Buffers)
	for i := 0; i < cfg.Buffers; i++ {
		free <- fastx.NewBuffer(cfg.BufferSize)
	}
	// Never more than cfg.Buffers batches exist, so sends here do not block.
	filled := make(chan batch, cfg.Buffers)

	g, gctx := errgroup.WithContext(ctx)

	// Reader stage
	g.Go(func() error {
		for _, s := range streams {
			if err := readStream(gctx, cfg, s, free, filled); err != nil {
				return err
			}
			_ = s.Close()
		}
		close(filled)
		// Wait until the parser has handed every buffer back.
		for i := 0; i < cfg.Buffers; i++ {
			select {
			case <-free:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	// Parse/aggregate stage
	p := newParser(cfg.MinLen)
	g.Go(func() error {
		for {
			var b batch
			select {
			case next, ok := <-filled:
				if !ok {
					return nil
				}
				b = next
			case <-gctx.Done():
				return gctx.Err()
			}

			var err error
			if b.buf.Empty() {
				err = p.endOfStream()
			} else {
				err = p.consume(b.buf)
			}
			select {
			case free <- b.buf:
			case <-gctx.Done():
				return gctx.Err()
			}
			if err != nil {
				return fastx.FormatError(b.stream, err)
			}
		}
	})

	if err := g.Wait(); err != nil {
		return Lengths{}, err
	}
	sortutil.Uint64s(p.lens)
	return Lengths{Values: p.lens, Total: p.total}, nil
}

func readStream(ctx context.Context, cfg Config, s Source, free <-chan *fastx.Buffer, filled chan<- batch) error {
	take := func() (*fastx.Buffer, error) {
		select {
		case buf := <-free:
			return buf, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	for {
		buf, err := take()
		if err != nil {
			return err
		}
		n, ferr := buf.Fill(s)
		if ferr != nil && ferr != io.EOF {
			// Lazily opened streams already report a classified error.
			var fe *fastx.Error
			if errors.As(ferr, &fe) {
				return ferr
			}
			return &fastx.Error{Kind: fastx.KindIO, Path: s.Path(), Err: ferr}
		}
		if cfg.OnFill != nil && n > 0 {
			cfg.OnFill(n)
		}
		filled <- batch{buf: buf, stream: s.Path()}
		if buf.Empty() {
			return nil
		}
		if ferr == io.EOF {
			marker, err := take()
			if err != nil {
				return err
			}
			marker.Reset()
			filled <- batch{buf: marker, stream: s.Path()}
			return nil
		}
	}
}
