// internal/output/report.go
package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fxtools/internal/stats"
)

// WriteReport prints the histogram, Nx table and summary of a streaming run.
func WriteReport(w io.Writer, rep stats.Report) error {
	bw := bufio.NewWriter(w)
	writeHistogram(bw, rep.Hist, rep.Summary.Count)
	fmt.Fprint(bw, "\n\n\n[length stat]\n")

	w1, w2 := nxWidths(rep.Nx)
	writeNx(bw, rep.Nx, w1, w2)
	fmt.Fprintln(bw)
	s := rep.Summary
	row3(bw, "Min.", "-", num(s.Min), w1, w2)
	row3(bw, "Max.", "-", num(s.Max), w1, w2)
	row3(bw, "Ave.", "-", num(s.Average), w1, w2)
	row3(bw, "Total", strconv.Itoa(s.Count), num(s.Total), w1, w2)
	return bw.Flush()
}

func writeHistogram(w io.Writer, h stats.Histogram, count int) {
	pw := len(num(h.Max))
	cw := len(strconv.Itoa(count))
	fmt.Fprintf(w, "[length histogram ('*' =~ %d reads)]\n", h.Unit)
	for p, v := range h.Counts {
		if v == 0 {
			continue
		}
		lo, hi := h.Range(p)
		fmt.Fprintf(w, "%*d %*d %*d %s\n", pw, lo, pw, hi, cw, v, strings.Repeat("*", v/h.Unit))
	}
}

func nxWidths(nx stats.Nx) (int, int) {
	return max(len(strconv.Itoa(nx.Count[8])), 9), max(len(num(nx.Length[0])), 11)
}

func writeNx(w io.Writer, nx stats.Nx, w1, w2 int) {
	row3(w, "Types", "Count (#)", "Length (bp)", w1, w2)
	for i := 0; i < stats.Deciles-1; i++ {
		row3(w, "N"+strconv.Itoa((i+1)*10), strconv.Itoa(nx.Count[i]), num(nx.Length[i]), w1, w2)
	}
}

func row3(w io.Writer, label, a, b string, w1, w2 int) {
	fmt.Fprintf(w, "%-5s %s %s\n", label, center(a, w1), center(b, w2))
}

// WriteGapReport prints the scaffold/contig/gap table of contig/gap mode.
func WriteGapReport(w io.Writer, rep stats.GapReport) error {
	bw := bufio.NewWriter(w)
	rule := func(fill string) {
		fmt.Fprintln(bw, strings.Repeat(fill, 7+26+26+25))
	}
	rule("=")
	fmt.Fprintf(bw, "%-7s%s%s%s\n", "Types", center("Scaffold", 26), center("Contig", 26), center("Gap", 25))
	gapRow(bw, "", "Length (bp)", "Count (#)", "Length (bp)", "Count (#)", "Length (bp)", "Count (#)")
	rule("-")

	sc, ct, gp := rep.Scaffold, rep.Contig, rep.Gap
	for i := 0; i < stats.Deciles-1; i++ {
		gapRow(bw, "N"+strconv.Itoa((i+1)*10),
			num(sc.Nx.Length[i]), strconv.Itoa(sc.Nx.Count[i]),
			num(ct.Nx.Length[i]), strconv.Itoa(ct.Nx.Count[i]),
			num(gp.Nx.Length[i]), strconv.Itoa(gp.Nx.Count[i]))
	}
	gapRow(bw, "Longest",
		num(sc.Longest()), "1",
		num(ct.Longest()), "1",
		num(gp.Longest()), strconv.Itoa(min(len(gp.Sorted), 1)))
	gapRow(bw, "Total",
		num(sc.Total), strconv.Itoa(len(sc.Sorted)),
		num(ct.Total), strconv.Itoa(len(ct.Sorted)),
		num(gp.Total), strconv.Itoa(len(gp.Sorted)))
	for i, t := range stats.Thresholds {
		gapRow(bw, ">="+humanLen(t),
			num(sc.Thresholds[i].Total), strconv.Itoa(sc.Thresholds[i].Count),
			num(ct.Thresholds[i].Total), strconv.Itoa(ct.Thresholds[i].Count),
			num(gp.Thresholds[i].Total), strconv.Itoa(gp.Thresholds[i].Count))
	}
	rule("=")
	return bw.Flush()
}

func gapRow(w io.Writer, label string, cols ...string) {
	widths := [...]int{16, 10, 16, 10, 16, 9}
	var b strings.Builder
	fmt.Fprintf(&b, "%-7s", label)
	for i, c := range cols {
		b.WriteString(center(c, widths[i]))
	}
	fmt.Fprintln(w, b.String())
}

func humanLen(n uint64) string {
	switch {
	case n >= 1_000_000 && n%1_000_000 == 0:
		return strconv.FormatUint(n/1_000_000, 10) + "mb"
	case n >= 1_000 && n%1_000 == 0:
		return strconv.FormatUint(n/1_000, 10) + "kb"
	}
	return strconv.FormatUint(n, 10)
}

// center pads s on both sides to width; the extra space goes right.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func num(v uint64) string { return strconv.FormatUint(v, 10) }
