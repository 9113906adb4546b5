package app

import (
	"context"
	"io"

	"github.com/shenwei356/xopen"

	"fxtools/internal/cli"
	"fxtools/internal/cmdutil"
	"fxtools/internal/fastx"
	"fxtools/internal/gaps"
	"fxtools/internal/output"
	"fxtools/internal/pipeline"
	"fxtools/internal/stats"
)

// ContigPath names the contig FASTA written next to input.
func ContigPath(input string) string {
	if input == "-" {
		return "stdin.ctg.fa"
	}
	return input + ".ctg.fa"
}

func runStat(ctx context.Context, o cli.StatOptions, stdout, stderr io.Writer) error {
	if o.GapLen > 0 {
		return runGapStat(ctx, o, stdout, stderr)
	}
	if o.OutContigs {
		cmdutil.Warnf(stderr, o.Quiet, "--out_ctg has no effect without --n_len")
	}

	streams, err := fastx.ResolveAll(o.Inputs)
	if err != nil {
		return err
	}
	prog := cmdutil.NewProgress(stderr, o.Progress, "reading")
	lens, err := pipeline.Collect(ctx, pipeline.Config{
		BufferSize: o.BufferSize,
		Buffers:    o.Buffers,
		MinLen:     o.MinLen,
		OnFill:     prog.Add,
	}, pipeline.Sources(streams))
	prog.Finish()
	if err != nil {
		return err
	}

	rep, ok := stats.BuildReport(lens.Values, lens.Total, o.GenomeLen)
	if !ok {
		cmdutil.Warnf(stderr, o.Quiet, "no sequence longer than %d bp", o.MinLen)
		return nil
	}
	return output.WriteReport(stdout, rep)
}

// runGapStat reports each input path separately.
func runGapStat(ctx context.Context, o cli.StatOptions, stdout, stderr io.Writer) error {
	for _, in := range o.Inputs {
		sets, err := collectGaps(ctx, in, o)
		if err != nil {
			return err
		}
		if len(sets.Scaffolds) == 0 {
			cmdutil.Warnf(stderr, o.Quiet, "%s: no sequence longer than %d bp", in, o.MinLen)
			continue
		}
		rep := stats.BuildGapReport(sets.Scaffolds, sets.Contigs, sets.Gaps, o.GenomeLen)
		if err := output.WriteGapReport(stdout, rep); err != nil {
			return err
		}
	}
	return nil
}

func collectGaps(ctx context.Context, in string, o cli.StatOptions) (sets gaps.Sets, err error) {
	streams, err := fastx.Resolve(in)
	if err != nil {
		return sets, err
	}
	defer fastx.CloseAll(streams)

	opt := gaps.Options{MinLen: o.MinLen, MinGap: int(o.GapLen)}
	if o.OutContigs {
		w, werr := xopen.Wopen(ContigPath(in))
		if werr != nil {
			return sets, &fastx.Error{Kind: fastx.KindIO, Path: ContigPath(in), Err: werr}
		}
		defer func() {
			if cerr := w.Close(); cerr != nil && err == nil {
				err = &fastx.Error{Kind: fastx.KindIO, Path: ContigPath(in), Err: cerr}
			}
		}()
		opt.ContigOut = w
	}

	err = eachRecords(streams, func(rr fastx.RecordReader) error {
		return gaps.Collect(ctx, rr, opt, &sets)
	})
	return sets, err
}

// eachRecords runs fn over a record reader per stream, opening one stream at
// a time and closing it (and its reader) before the next.
func eachRecords(streams []*fastx.Stream, fn func(fastx.RecordReader) error) error {
	for _, s := range streams {
		rr, err := fastx.NewRecordReader(s)
		if err != nil {
			return err
		}
		err = fn(rr)
		_ = rr.Close()
		_ = s.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func runFindGap(ctx context.Context, o cli.FindGapOptions, stdout, _ io.Writer) error {
	for _, in := range o.Inputs {
		streams, err := fastx.Resolve(in)
		if err != nil {
			return err
		}
		err = eachRecords(streams, func(rr fastx.RecordReader) error {
			_, err := gaps.WriteGaps(ctx, rr, o.MinGap, stdout)
			return err
		})
		fastx.CloseAll(streams)
		if err != nil {
			return err
		}
	}
	return nil
}
