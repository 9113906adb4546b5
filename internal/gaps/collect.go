package gaps

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"fxtools/internal/fastx"
)

// Options controls contig/gap collection.
type Options struct {
	MinLen uint64 // scaffolds must be strictly longer to be kept
	MinGap int    // minimum N run treated as a gap

	// ContigOut, if non-nil, receives every contig as a FASTA record
	// named <head>_ctg<k>.
	ContigOut io.Writer
}

// Sets holds the scaffold, contig and gap lengths of one input.
type Sets struct {
	Scaffolds []uint64
	Contigs   []uint64
	Gaps      []uint64
}

// Collect reads every record of rr and appends its decomposition to sets.
// Contig and gap lengths of a kept scaffold always add up to its length.
func Collect(ctx context.Context, rr fastx.RecordReader, opt Options, sets *Sets) error {
	var bw *bufio.Writer
	if opt.ContigOut != nil {
		bw = bufio.NewWriterSize(opt.ContigOut, 1<<16)
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := rr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if uint64(len(rec.Seq)) <= opt.MinLen {
			continue
		}
		sets.Scaffolds = append(sets.Scaffolds, uint64(len(rec.Seq)))

		k := 0
		var werr error
		Scan(rec.Seq, opt.MinGap, func(seg Segment, gap bool) {
			if gap {
				sets.Gaps = append(sets.Gaps, uint64(seg.Len()))
				return
			}
			sets.Contigs = append(sets.Contigs, uint64(seg.Len()))
			if bw != nil && werr == nil {
				k++
				werr = writeContig(bw, rec.Head, k, rec.Seq[seg.Start:seg.End])
			}
		})
		if werr != nil {
			return errors.Wrap(werr, "write contigs")
		}
	}
	if bw != nil {
		if err := bw.Flush(); err != nil {
			return errors.Wrap(err, "write contigs")
		}
	}
	return nil
}

func writeContig(w *bufio.Writer, head []byte, k int, seq []byte) error {
	if _, err := fmt.Fprintf(w, ">%s_ctg%d\n", head, k); err != nil {
		return err
	}
	if _, err := w.Write(seq); err != nil {
		return err
	}
	return w.WriteByte('\n')
}

// WriteGaps prints every gap of rr as "head\tstart\tend" with 0-based,
// inclusive coordinates.
func WriteGaps(ctx context.Context, rr fastx.RecordReader, minGap int, w io.Writer) (int, error) {
	n := 0
	for {
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		default:
		}
		rec, err := rr.Read()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		var werr error
		Scan(rec.Seq, minGap, func(seg Segment, gap bool) {
			if !gap || werr != nil {
				return
			}
			_, werr = fmt.Fprintf(w, "%s\t%d\t%d\n", rec.Head, seg.Start, seg.End-1)
			n++
		})
		if werr != nil {
			return n, werr
		}
	}
}
