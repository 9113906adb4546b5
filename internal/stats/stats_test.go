package stats

import (
	"math/rand"
	"testing"
)

func randomLengths(seed int64, n int) []uint64 {
	r := rand.New(rand.NewSource(seed))
	out := make([]uint64, n)
	for i := range out {
		out[i] = uint64(1 + r.Intn(50_000))
	}
	Sort(out)
	return out
}

func TestComputeNxSmall(t *testing.T) {
	nx := ComputeNx([]uint64{2, 4}, 6)
	for i := 0; i < 6; i++ {
		if nx.Length[i] != 4 || nx.Count[i] != 1 {
			t.Fatalf("N%d = %d/%d, want 4/1", (i+1)*10, nx.Length[i], nx.Count[i])
		}
	}
	for i := 6; i < 9; i++ {
		if nx.Length[i] != 2 || nx.Count[i] != 2 {
			t.Fatalf("N%d = %d/%d, want 2/2", (i+1)*10, nx.Length[i], nx.Count[i])
		}
	}
}

func TestComputeNxInvariants(t *testing.T) {
	lens := randomLengths(1, 5000)
	total := Sum(lens)
	nx := ComputeNx(lens, total)
	for i := 0; i < Deciles-1; i++ {
		c := nx.Count[i]
		if c < 1 || c > len(lens) {
			t.Fatalf("N%d count %d out of range", (i+1)*10, c)
		}
		if nx.Length[i] != lens[len(lens)-c] {
			t.Fatalf("N%d length %d is not the %d-th longest", (i+1)*10, nx.Length[i], c)
		}
		var acc uint64
		for _, l := range lens[len(lens)-c:] {
			acc += l
		}
		if !exceeds(acc, i+1, total) || exceeds(acc-nx.Length[i], i+1, total) {
			t.Fatalf("N%d does not sit on the threshold", (i+1)*10)
		}
		if i > 0 && (nx.Length[i] > nx.Length[i-1] || nx.Count[i] < nx.Count[i-1]) {
			t.Fatalf("N%d not monotone", (i+1)*10)
		}
	}
	if again := ComputeNx(lens, total); again != nx {
		t.Fatal("ComputeNx is not deterministic")
	}
}

func TestComputeNxGenomeLargerThanTotal(t *testing.T) {
	nx := ComputeNx([]uint64{10, 10}, 10_000)
	if nx.Length[0] != 0 {
		t.Fatalf("unreached decile should stay zero, got %d", nx.Length[0])
	}
	nx = ComputeNx([]uint64{10, 100}, 1000)
	if nx.Length[0] != 10 || nx.Count[0] != 2 || nx.Length[1] != 0 {
		t.Fatalf("got %+v", nx)
	}
}

func TestSummarize(t *testing.T) {
	if _, ok := Summarize(nil, 0); ok {
		t.Fatal("empty set must not summarize")
	}
	s, ok := Summarize([]uint64{2, 4, 9}, 15)
	if !ok || s.Count != 3 || s.Min != 2 || s.Max != 9 || s.Average != 5 || s.Total != 15 {
		t.Fatalf("got %+v", s)
	}
}

func TestAtLeast(t *testing.T) {
	lens := []uint64{5, 9_999, 10_000, 250_000}
	got := AtLeast(lens, 10_000)
	if got.Count != 2 || got.Total != 260_000 {
		t.Fatalf("got %+v", got)
	}
	if got := AtLeast(lens, 1_000_000); got.Count != 0 || got.Total != 0 {
		t.Fatalf("got %+v", got)
	}
}

func TestNewHistogramSmall(t *testing.T) {
	lens := []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	h := NewHistogram(lens)
	if h.Unit != 5 || h.Step != 1 || h.Start != 1 {
		t.Fatalf("layout: %+v", h)
	}
	for p := 1; p <= 10; p++ {
		if h.Counts[p] != 1 {
			t.Fatalf("bucket %d = %d", p, h.Counts[p])
		}
		if lo, hi := h.Range(p); lo != uint64(p) || hi != uint64(p) {
			t.Fatalf("bucket %d range %d-%d", p, lo, hi)
		}
	}
}

func TestNewHistogramConservesCount(t *testing.T) {
	lens := randomLengths(2, 10_000)
	h := NewHistogram(lens)
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	if total != len(lens) {
		t.Fatalf("buckets hold %d samples, want %d", total, len(lens))
	}
	if h.Unit != 50 {
		t.Fatalf("unit %d, want 50", h.Unit)
	}
	if lo, _ := h.Range(0); lo != lens[0] {
		t.Fatalf("first bucket starts at %d", lo)
	}
	if _, hi := h.Range(Buckets - 1); hi != lens[len(lens)-1] {
		t.Fatalf("last bucket ends at %d", hi)
	}
}

func TestBuildReport(t *testing.T) {
	if _, ok := BuildReport(nil, 0, 0); ok {
		t.Fatal("empty input must not produce a report")
	}
	lens := randomLengths(3, 1000)
	rep, ok := BuildReport(lens, Sum(lens), 0)
	if !ok {
		t.Fatal("expected report")
	}
	if rep.Nx != ComputeNx(lens, Sum(lens)) || rep.Hist != NewHistogram(lens) {
		t.Fatal("report differs from its parts")
	}
}

func TestBuildGapReport(t *testing.T) {
	rep := BuildGapReport([]uint64{30_000, 18}, []uint64{4, 4, 12_000, 17_990}, []uint64{10, 10}, 0)
	if rep.Scaffold.Longest() != 30_000 || rep.Scaffold.Total != 30_018 {
		t.Fatalf("scaffold: %+v", rep.Scaffold)
	}
	if rep.Contig.Thresholds[0].Count != 2 || rep.Contig.Thresholds[0].Total != 29_990 {
		t.Fatalf("contig >=10kb: %+v", rep.Contig.Thresholds[0])
	}
	if rep.Gap.Nx.Length[0] != 10 || rep.Gap.Total != 20 {
		t.Fatalf("gap: %+v", rep.Gap)
	}
	if len(rep.Scaffold.Thresholds) != len(Thresholds) {
		t.Fatalf("thresholds: %d", len(rep.Scaffold.Thresholds))
	}
}
