package stats

// Deciles is the number of Nx slots kept (N10..N100); only N10..N90 are shown.
const Deciles = 10

// Nx holds, per decile i (N10*(i+1)), the length at which the cumulative sum
// of the longest samples first exceeds that fraction of the reference size,
// and how many samples it took.
type Nx struct {
	Count  [Deciles]int
	Length [Deciles]uint64
}

// ComputeNx walks sorted (ascending) from the longest sample down. ref is the
// reference size; pass the observed total when no genome size is known.
// One sample may cross several deciles.
func ComputeNx(sorted []uint64, ref uint64) Nx {
	var nx Nx
	i := 0
	var acc uint64
	for k := len(sorted) - 1; k >= 0 && i < Deciles; k-- {
		l := sorted[k]
		acc += l
		nx.Count[i]++
		for exceeds(acc, i+1, ref) {
			nx.Length[i] = l
			i++
			if i >= Deciles {
				break
			}
			nx.Count[i] += nx.Count[i-1]
		}
	}
	return nx
}

// exceeds reports acc > tenths/10 * ref without floating point.
func exceeds(acc uint64, tenths int, ref uint64) bool {
	return acc*10 > uint64(tenths)*ref
}
