// Package gaps splits scaffold sequences into contigs at runs of N.
package gaps

// Segment is a half-open [Start, End) span of a sequence.
type Segment struct {
	Start, End int
}

func (s Segment) Len() int { return s.End - s.Start }

// Scan walks seq and reports each contig and gap in order. A gap is a
// maximal run of 'N'/'n' of at least minGap bases; shorter runs stay inside
// their contig. minGap below 1 is treated as 1.
func Scan(seq []byte, minGap int, fn func(seg Segment, gap bool)) {
	if minGap < 1 {
		minGap = 1
	}
	last := 0
	for i := 0; i < len(seq); {
		if !isN(seq[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(seq) && isN(seq[j]) {
			j++
		}
		if j-i >= minGap {
			if i > last {
				fn(Segment{last, i}, false)
			}
			fn(Segment{i, j}, true)
			last = j
		}
		i = j
	}
	if len(seq) > last {
		fn(Segment{last, len(seq)}, false)
	}
}

// Split is Scan collected into slices.
func Split(seq []byte, minGap int) (contigs, gaps []Segment) {
	Scan(seq, minGap, func(seg Segment, gap bool) {
		if gap {
			gaps = append(gaps, seg)
		} else {
			contigs = append(contigs, seg)
		}
	})
	return contigs, gaps
}

func isN(c byte) bool { return c == 'N' || c == 'n' }
