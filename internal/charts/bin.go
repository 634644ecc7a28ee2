package charts

import (
	"math"

	"github.com/rlisboa/stream-eda-tools/internal/stats"
)

// Bin is one equal-width histogram bucket over [Lo, Hi). The last bin is
// closed on both ends so the maximum lands in it.
type Bin struct {
	Lo    float64
	Hi    float64
	Count int
}

// BinValues buckets the non-NaN values of xs into equal-width bins over
// [min, max]. bins <= 0 uses Sturges' rule.
func BinValues(xs []float64, bins int) []Bin {
	vals := stats.DropNaN(xs)
	if len(vals) == 0 {
		return nil
	}
	if bins <= 0 {
		bins = SturgesBins(len(vals))
	}

	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return []Bin{{Lo: lo, Hi: hi, Count: len(vals)}}
	}

	width := (hi - lo) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Lo = lo + float64(i)*width
		out[i].Hi = lo + float64(i+1)*width
	}
	out[bins-1].Hi = hi

	for _, v := range vals {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}

// SturgesBins picks a bin count for n samples: ceil(log2 n) + 1.
func SturgesBins(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}
