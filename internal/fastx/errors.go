package fastx

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies failures for exit-code mapping.
type Kind int

const (
	KindIO Kind = iota
	KindConfig
	KindFormat
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindFormat:
		return "format"
	default:
		return "io"
	}
}

var (
	ErrTerminal  = stderrors.New("missing input from stdin")
	ErrNotFastx  = stderrors.New("not a valid FASTA/FASTQ stream")
	ErrTruncated = stderrors.New("truncated file")
	ErrEmpty     = stderrors.New("empty input")
	ErrFofnDepth = stderrors.New("file of filenames nested too deeply")
)

// Error carries a Kind and the offending path.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func ioError(path string, err error, msg string) error {
	return &Error{Kind: KindIO, Path: path, Err: errors.Wrap(err, msg)}
}

func formatError(path string, err error) error {
	return &Error{Kind: KindFormat, Path: path, Err: err}
}

// FormatError builds a format failure for callers outside this package.
func FormatError(path string, err error) error { return formatError(path, err) }

// KindOf reports the Kind of err, defaulting to KindIO.
func KindOf(err error) Kind {
	var fe *Error
	if stderrors.As(err, &fe) {
		return fe.Kind
	}
	return KindIO
}
