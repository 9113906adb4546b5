package stats

import "golang.org/x/sync/errgroup"

// Report is everything printed for a streaming run.
type Report struct {
	Hist    Histogram
	Nx      Nx
	Summary Summary
}

// BuildReport computes the histogram and Nx table side by side. genomeLen of
// 0 means the observed total is the Nx reference. ok is false when sorted is
// empty.
func BuildReport(sorted []uint64, total, genomeLen uint64) (Report, bool) {
	sum, ok := Summarize(sorted, total)
	if !ok {
		return Report{}, false
	}
	rep := Report{Summary: sum}
	var g errgroup.Group
	g.Go(func() error {
		rep.Hist = NewHistogram(sorted)
		return nil
	})
	g.Go(func() error {
		rep.Nx = ComputeNx(sorted, reference(genomeLen, total))
		return nil
	})
	_ = g.Wait()
	return rep, true
}

// LengthSet is one column of the contig/gap report.
type LengthSet struct {
	Sorted     []uint64
	Total      uint64
	Nx         Nx
	Thresholds []Threshold
}

// Longest returns the largest length, or 0 for an empty set.
func (s LengthSet) Longest() uint64 {
	if len(s.Sorted) == 0 {
		return 0
	}
	return s.Sorted[len(s.Sorted)-1]
}

// GapReport is the scaffold/contig/gap table of contig/gap mode.
type GapReport struct {
	Scaffold LengthSet
	Contig   LengthSet
	Gap      LengthSet
}

// BuildGapReport sorts the three length sets and computes their tables.
// Scaffold and contig Nx use genomeLen when non-zero; gap Nx always uses the
// gap total.
func BuildGapReport(scaffolds, contigs, gaps []uint64, genomeLen uint64) GapReport {
	var rep GapReport
	var g errgroup.Group
	g.Go(func() error {
		rep.Scaffold = newLengthSet(scaffolds, genomeLen)
		return nil
	})
	g.Go(func() error {
		rep.Contig = newLengthSet(contigs, genomeLen)
		return nil
	})
	g.Go(func() error {
		rep.Gap = newLengthSet(gaps, 0)
		return nil
	})
	_ = g.Wait()
	return rep
}

func newLengthSet(lens []uint64, genomeLen uint64) LengthSet {
	Sort(lens)
	s := LengthSet{Sorted: lens, Total: Sum(lens)}
	s.Nx = ComputeNx(lens, reference(genomeLen, s.Total))
	for _, t := range Thresholds {
		s.Thresholds = append(s.Thresholds, AtLeast(lens, t))
	}
	return s
}

func reference(genomeLen, total uint64) uint64 {
	if genomeLen > 0 {
		return genomeLen
	}
	return total
}
