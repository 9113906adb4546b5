// internal/fastx/record.go
package fastx

import (
	"bytes"
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	bfastx "github.com/shenwei356/bio/seqio/fastx"
)

// Record is one parsed FASTA/FASTQ entry. An empty Sep means FASTA.
// Slices may be reused by the next Read; copy what must outlive it.
type Record struct {
	Head []byte
	Desc []byte
	Seq  []byte
	Sep  []byte
	Qual []byte
}

// RecordReader yields records until io.EOF. Close releases the reader but
// not the stream it reads from.
type RecordReader interface {
	Read() (*Record, error)
	Close() error
}

var sepFastq = []byte{'+'}

var disableValidation sync.Once

type recordReader struct {
	name string
	r    *bfastx.Reader
	rec  Record
}

// NewRecordReader parses whole records from s. Sequences are returned as
// read; no alphabet validation is applied.
func NewRecordReader(s *Stream) (RecordReader, error) {
	disableValidation.Do(func() { seq.ValidateSeq = false })
	r, err := bfastx.NewReaderFromIO(seq.Unlimit, s, bfastx.DefaultIDRegexp)
	if err != nil {
		return nil, ioError(s.Name, err, "record reader")
	}
	return &recordReader{name: s.Name, r: r}, nil
}

func (rr *recordReader) Read() (*Record, error) {
	if rr.r == nil {
		return nil, io.EOF
	}
	rec, err := rr.r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, &Error{Kind: KindFormat, Path: rr.name, Err: errors.Wrap(err, "parse record")}
	}
	rr.rec.Head, rr.rec.Desc = splitHeader(rec.Name)
	rr.rec.Seq = rec.Seq.Seq
	rr.rec.Qual = rec.Seq.Qual
	rr.rec.Sep = nil
	if rr.r.IsFastq {
		rr.rec.Sep = sepFastq
	}
	return &rr.rec, nil
}

func (rr *recordReader) Close() error {
	if rr.r != nil {
		rr.r.Close()
		rr.r = nil
	}
	return nil
}

// splitHeader cuts a header line at the first space or tab into the
// identifier and the description, with the separating whitespace dropped.
func splitHeader(name []byte) (head, desc []byte) {
	i := bytes.IndexAny(name, " \t")
	if i < 0 {
		return name, nil
	}
	desc = name[i+1:]
	for len(desc) > 0 && (desc[0] == ' ' || desc[0] == '\t') {
		desc = desc[1:]
	}
	return name[:i], desc
}
