package fastx

import (
	"io"
	"strings"
	"testing"
)

func readAllRecords(t *testing.T, data string) []Record {
	t.Helper()
	rr, err := NewRecordReader(NewStream("mem", strings.NewReader(data)))
	if err != nil {
		t.Fatalf("reader: %v", err)
	}
	var out []Record
	for {
		rec, err := rr.Read()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		out = append(out, Record{
			Head: append([]byte(nil), rec.Head...),
			Desc: append([]byte(nil), rec.Desc...),
			Seq:  append([]byte(nil), rec.Seq...),
			Sep:  append([]byte(nil), rec.Sep...),
			Qual: append([]byte(nil), rec.Qual...),
		})
	}
}

func TestRecordReaderFasta(t *testing.T) {
	recs := readAllRecords(t, ">chr1 first contig\nACGT\nNNAC\n>chr2\nGG\n")
	if len(recs) != 2 {
		t.Fatalf("got %d records", len(recs))
	}
	if string(recs[0].Head) != "chr1" || string(recs[0].Desc) != "first contig" {
		t.Fatalf("header: %q / %q", recs[0].Head, recs[0].Desc)
	}
	if string(recs[0].Seq) != "ACGTNNAC" || len(recs[0].Sep) != 0 {
		t.Fatalf("seq: %q sep %q", recs[0].Seq, recs[0].Sep)
	}
	if string(recs[1].Seq) != "GG" {
		t.Fatalf("second seq: %q", recs[1].Seq)
	}
}

func TestRecordReaderFastq(t *testing.T) {
	recs := readAllRecords(t, "@r1\nACGTA\n+\nIIIII\n@r2\nAC\n+\nII\n")
	if len(recs) != 2 {
		t.Fatalf("got %d records", len(recs))
	}
	if string(recs[0].Sep) != "+" || string(recs[0].Qual) != "IIIII" {
		t.Fatalf("fastq fields: %+v", recs[0])
	}
}

func TestSplitHeader(t *testing.T) {
	for _, tc := range []struct{ in, head, desc string }{
		{"chr1", "chr1", ""},
		{"chr1 some desc", "chr1", "some desc"},
		{"chr1\tlen=10 x", "chr1", "len=10 x"},
		{"chr1  \t padded", "chr1", "padded"},
	} {
		head, desc := splitHeader([]byte(tc.in))
		if string(head) != tc.head || string(desc) != tc.desc {
			t.Fatalf("%q: head %q desc %q", tc.in, head, desc)
		}
	}
}

func TestRecordReaderClose(t *testing.T) {
	rr, err := NewRecordReader(NewStream("mem", strings.NewReader(">a\nAC\n")))
	if err != nil {
		t.Fatal(err)
	}
	if err := rr.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := rr.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if _, err := rr.Read(); err != io.EOF {
		t.Fatalf("read after close: %v", err)
	}
}
