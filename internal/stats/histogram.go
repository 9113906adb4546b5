package stats

// Histogram bucket layout.
const (
	Buckets  = 30
	unitBins = 200
	minUnit  = 5
)

// Histogram is a fixed 30-bucket length histogram. Bucket 0 holds lengths
// below Start, bucket p in 1..28 holds [Start+Step*(p-1), Start+Step*p), and
// the last bucket absorbs everything longer.
type Histogram struct {
	Unit   int // samples per '*'
	Step   uint64
	Start  uint64
	Min    uint64
	Max    uint64
	Counts [Buckets]int
}

// NewHistogram buckets sorted (ascending, non-empty) lengths. The bucket
// range skips roughly 1% of samples at each end so outliers do not flatten
// the plot; those land in the first and last buckets.
func NewHistogram(sorted []uint64) Histogram {
	n := len(sorted)
	h := Histogram{Unit: max(n/unitBins, minUnit), Step: 1}
	if n == 0 {
		return h
	}
	dev := n / unitBins * 2
	lo, hi := sorted[dev], sorted[n-max(1, dev)]
	h.Step = max((hi-lo)/(Buckets-2), 1)
	h.Start = lo / h.Step * h.Step
	h.Min, h.Max = sorted[0], sorted[n-1]

	idx := 0
	bound := h.Start
	for _, l := range sorted {
		for idx+1 < Buckets && l >= bound {
			idx++
			bound += h.Step
		}
		h.Counts[idx]++
	}
	return h
}

// Range returns the inclusive length range printed for bucket p.
func (h Histogram) Range(p int) (lo, hi uint64) {
	if p == 0 {
		lo = h.Min
	} else {
		lo = h.Start + h.Step*uint64(p-1)
	}
	if p == Buckets-1 {
		hi = h.Max
	} else {
		hi = h.Start + h.Step*uint64(p) - 1
	}
	return lo, hi
}
