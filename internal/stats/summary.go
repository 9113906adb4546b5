package stats

import "github.com/twotwotwo/sorts/sortutil"

// Sort orders lengths ascending using all CPUs.
func Sort(lens []uint64) { sortutil.Uint64s(lens) }

// Sum adds up lengths.
func Sum(lens []uint64) uint64 {
	var t uint64
	for _, l := range lens {
		t += l
	}
	return t
}

// Summary is the min/max/average/total line of a report.
type Summary struct {
	Count   int
	Total   uint64
	Min     uint64
	Max     uint64
	Average uint64
}

// Summarize expects sorted lengths and their total. ok is false for an empty
// set, in which case no report should be produced.
func Summarize(sorted []uint64, total uint64) (s Summary, ok bool) {
	if len(sorted) == 0 {
		return Summary{}, false
	}
	return Summary{
		Count:   len(sorted),
		Total:   total,
		Min:     sorted[0],
		Max:     sorted[len(sorted)-1],
		Average: total / uint64(len(sorted)),
	}, true
}

// Threshold is a cumulative count/total over samples >= MinLen.
type Threshold struct {
	MinLen uint64
	Count  int
	Total  uint64
}

// Thresholds are the fixed cut-offs reported in contig/gap mode.
var Thresholds = []uint64{10_000, 100_000, 1_000_000}

// AtLeast sums the samples of sorted that are >= min.
func AtLeast(sorted []uint64, min uint64) Threshold {
	t := Threshold{MinLen: min}
	for k := len(sorted) - 1; k >= 0 && sorted[k] >= min; k-- {
		t.Count++
		t.Total += sorted[k]
	}
	return t
}
