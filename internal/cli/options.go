// internal/cli/options.go
package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"fxtools/internal/cliutil"
	"fxtools/internal/pipeline"
)

// Flag defaults, shown in help text.
const (
	DefaultMinLen     = "0"
	DefaultGenomeLen  = "0"
	DefaultGapLen     = "0"
	DefaultBufferSize = "100KiB"
	DefaultMinGap     = "1"
)

// UsageError marks bad command-line input (exit status 2).
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

func usagef(format string, a ...any) error {
	return &UsageError{Err: fmt.Errorf(format, a...)}
}

// StatOptions is the validated configuration of `fxtools stat`.
type StatOptions struct {
	Inputs []string

	MinLen    uint64 // keep sequences strictly longer than this
	GenomeLen uint64 // Nx reference; 0 = observed total
	GapLen    uint64 // minimum N run for a gap; 0 = streaming mode

	OutContigs bool

	BufferSize int
	Buffers    int

	Progress bool
	Quiet    bool
}

// StatFlags binds the stat flags; sizes are kept as text until Options.
type StatFlags struct {
	minLen, genomeLen, gapLen, bufferSize string
	opts                                  StatOptions
}

// RegisterStat wires the stat flags onto fs.
func RegisterStat(fs *pflag.FlagSet) *StatFlags {
	f := &StatFlags{}
	fs.StringVarP(&f.minLen, "min_len", "m", DefaultMinLen, "minimum sequence length, shorter or equal sequences are ignored (int[G|M|K])")
	fs.StringVarP(&f.genomeLen, "genome_len", "g", DefaultGenomeLen, "genome size for Nx, 0 means the total of the input (int[G|M|K])")
	fs.StringVarP(&f.gapLen, "n_len", "n", DefaultGapLen, "minimum gap (N) length, 0 means do not stat contig length (int[G|M|K])")
	fs.BoolVarP(&f.opts.OutContigs, "out_ctg", "o", false, "output contig sequences to <INPUT>.ctg.fa (needs --n_len)")
	fs.StringVar(&f.bufferSize, "buffer-size", DefaultBufferSize, "read buffer size of the streaming pipeline (int[G|M|K])")
	fs.IntVar(&f.opts.Buffers, "buffers", pipeline.DefaultBuffers, "number of read buffers in flight")
	fs.BoolVar(&f.opts.Progress, "progress", false, "show bytes read on stderr")
	fs.BoolVarP(&f.opts.Quiet, "quiet", "q", false, "suppress warnings")
	return f
}

// Options parses sizes, expands positionals and validates.
func (f *StatFlags) Options(args []string) (StatOptions, error) {
	o := f.opts
	var err error
	if o.MinLen, err = ParseSize("--min_len", f.minLen); err != nil {
		return o, err
	}
	if o.GenomeLen, err = ParseSize("--genome_len", f.genomeLen); err != nil {
		return o, err
	}
	if o.GapLen, err = ParseSize("--n_len", f.gapLen); err != nil {
		return o, err
	}
	bs, err := ParseSize("--buffer-size", f.bufferSize)
	if err != nil {
		return o, err
	}
	if bs == 0 || bs > math.MaxInt32 {
		return o, usagef("--buffer-size must be between 1 and %d bytes", math.MaxInt32)
	}
	o.BufferSize = int(bs)
	if o.Inputs, err = inputs(args); err != nil {
		return o, err
	}
	return o, ValidateStat(o)
}

// ValidateStat applies stat invariants.
func ValidateStat(o StatOptions) error {
	if o.Buffers < 1 {
		return usagef("--buffers must be >= 1")
	}
	if o.BufferSize < 1 {
		return usagef("--buffer-size must be >= 1")
	}
	if o.GapLen > math.MaxInt32 {
		return usagef("--n_len too large")
	}
	if len(o.Inputs) == 0 {
		return usagef("at least one input is required")
	}
	return nil
}

// FindGapOptions is the validated configuration of `fxtools findgap`.
type FindGapOptions struct {
	Inputs []string
	MinGap int
}

// FindGapFlags binds the findgap flags.
type FindGapFlags struct {
	minGap string
}

// RegisterFindGap wires the findgap flags onto fs.
func RegisterFindGap(fs *pflag.FlagSet) *FindGapFlags {
	f := &FindGapFlags{}
	fs.StringVarP(&f.minGap, "min_len", "m", DefaultMinGap, "minimum gap length, shorter gaps are ignored (int[G|M|K])")
	return f
}

// Options parses and validates the findgap flags.
func (f *FindGapFlags) Options(args []string) (FindGapOptions, error) {
	var o FindGapOptions
	n, err := ParseSize("--min_len", f.minGap)
	if err != nil {
		return o, err
	}
	if n > math.MaxInt32 {
		return o, usagef("--min_len too large")
	}
	o.MinGap = max(int(n), 1)
	o.Inputs, err = inputs(args)
	return o, err
}

// ParseSize reads an integer with an optional byte-unit suffix:
// K/M/G are powers of 1000, Ki/Mi/Gi powers of 1024.
func ParseSize(flag, s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, usagef("%s: empty value", flag)
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, usagef("%s: invalid size %q", flag, s)
	}
	return n, nil
}

func inputs(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{"-"}, nil
	}
	exp, err := cliutil.ExpandPositionals(args)
	if err != nil {
		return nil, &UsageError{Err: err}
	}
	return exp, nil
}
