// internal/fastx/path.go
package fastx

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"github.com/mattn/go-isatty"
)

const (
	readerSize   = 64 * 1024
	maxFofnDepth = 8
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Stream is one raw FASTA/FASTQ byte source. File streams are opened on
// first Read, so resolving many inputs holds no descriptors or decompressors;
// stdin is opened during resolution. Closing a stream closes the
// decompressor (if any) and then the underlying file.
type Stream struct {
	Name    string
	br      *bufio.Reader
	closers []io.Closer
	closed  bool
}

// NewStream wraps an already open reader; closing the stream closes r when
// it is an io.Closer.
func NewStream(name string, r io.Reader) *Stream {
	st := &Stream{Name: name, br: bufio.NewReaderSize(r, readerSize)}
	if c, ok := r.(io.Closer); ok {
		st.closers = []io.Closer{c}
	}
	return st
}

func (s *Stream) Path() string { return s.Name }

// Opened reports whether the stream holds an open source.
func (s *Stream) Opened() bool { return s.br != nil && !s.closed }

func (s *Stream) Read(p []byte) (int, error) {
	if s.closed {
		return 0, os.ErrClosed
	}
	if s.br == nil {
		o, err := openStream(s.Name, false)
		if err != nil {
			return 0, err
		}
		s.br, s.closers = o.br, o.closers
	}
	return s.br.Read(p)
}

func (s *Stream) Close() error {
	var err error
	for _, c := range s.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	s.closers = nil
	s.closed = true
	return err
}

// Resolve turns a path specifier into the ordered streams it denotes:
// "-" for stdin, a plain/gzip/zstd FASTA/FASTQ file, or a file of filenames
// whose entries are resolved the same way, relative to the listing's directory.
func Resolve(path string) ([]*Stream, error) {
	return resolve(path, 0)
}

// ResolveAll resolves every path in order and concatenates the results.
func ResolveAll(paths []string) ([]*Stream, error) {
	var out []*Stream
	for _, p := range paths {
		ss, err := Resolve(p)
		if err != nil {
			CloseAll(out)
			return nil, err
		}
		out = append(out, ss...)
	}
	return out, nil
}

// CloseAll closes every stream, ignoring errors.
func CloseAll(ss []*Stream) {
	for _, s := range ss {
		_ = s.Close()
	}
}

func resolve(path string, depth int) ([]*Stream, error) {
	if depth > maxFofnDepth {
		return nil, formatError(path, ErrFofnDepth)
	}
	// Files are sniffed with synchronous decoders and closed again; only
	// stdin, which cannot be reopened, stays open.
	st, err := openStream(path, path != "-")
	if err != nil {
		return nil, err
	}
	head, err := st.br.Peek(1)
	if len(head) == 0 {
		_ = st.Close()
		if err == nil || err == io.EOF {
			return nil, &Error{Kind: KindIO, Path: path, Err: ErrEmpty}
		}
		return nil, ioError(path, err, "read")
	}
	if head[0] == '>' || head[0] == '@' {
		if path == "-" {
			return []*Stream{st}, nil
		}
		_ = st.Close()
		return []*Stream{{Name: path}}, nil
	}
	defer func() { _ = st.Close() }()
	return resolveFofn(path, st, depth)
}

func resolveFofn(path string, st *Stream, depth int) ([]*Stream, error) {
	parent := filepath.Dir(path)
	sc := bufio.NewScanner(st)
	sc.Buffer(make([]byte, 0, readerSize), 1<<20)

	var out []*Stream
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !filepath.IsAbs(line) {
			line = filepath.Join(parent, line)
		}
		ss, err := resolve(line, depth+1)
		if err != nil {
			CloseAll(out)
			return nil, err
		}
		out = append(out, ss...)
	}
	if err := sc.Err(); err != nil {
		CloseAll(out)
		return nil, ioError(path, err, "read file of filenames")
	}
	return out, nil
}

// openStream opens path (or stdin for "-") and unwraps gzip/zstd by magic
// number. sniff selects decoders that start no goroutines, for peeking only.
func openStream(path string, sniff bool) (*Stream, error) {
	var (
		src     io.Reader
		closers []io.Closer
	)
	if path == "-" {
		fd := os.Stdin.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return nil, &Error{Kind: KindConfig, Path: path, Err: ErrTerminal}
		}
		src = os.Stdin
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, ioError(path, err, "open")
		}
		src = fh
		closers = append(closers, fh)
	}
	st := &Stream{Name: path, br: bufio.NewReaderSize(src, readerSize), closers: closers}

	sig, err := st.br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF && len(sig) == 0 {
		_ = st.Close()
		return nil, ioError(path, err, "read")
	}
	switch {
	case bytes.HasPrefix(sig, gzipMagic):
		var gr io.ReadCloser
		var err error
		if sniff {
			gr, err = gzip.NewReader(st.br)
		} else {
			gr, err = pgzip.NewReader(st.br)
		}
		if err != nil {
			_ = st.Close()
			return nil, ioError(path, err, "gzip")
		}
		st.closers = append([]io.Closer{gr}, st.closers...)
		st.br = bufio.NewReaderSize(gr, readerSize)
	case bytes.HasPrefix(sig, zstdMagic):
		var opts []zstd.DOption
		if sniff {
			opts = append(opts, zstd.WithDecoderConcurrency(1))
		}
		zr, err := zstd.NewReader(st.br, opts...)
		if err != nil {
			_ = st.Close()
			return nil, ioError(path, err, "zstd")
		}
		rc := zr.IOReadCloser()
		st.closers = append([]io.Closer{rc}, st.closers...)
		st.br = bufio.NewReaderSize(rc, readerSize)
	}
	return st, nil
}
