// Package stats computes the descriptive statistics the analysis commands
// print: per-column summaries, quantiles, and Pearson correlation.
package stats

import (
	"math"
	"sort"

	moremath "github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the describe-style numbers for one numeric column.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe summarizes xs, ignoring NaN entries. Std is the sample standard
// deviation (n-1). An all-NaN or empty slice yields a zero-count summary
// with NaN statistics.
func Describe(xs []float64) Summary {
	vals := DropNaN(xs)
	s := Summary{Count: len(vals)}
	if len(vals) == 0 {
		s.Mean, s.Std = math.NaN(), math.NaN()
		s.Min, s.Q1, s.Median, s.Q3, s.Max = math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN()
		return s
	}
	sort.Float64s(vals)
	s.Mean = stat.Mean(vals, nil)
	s.Std = math.Sqrt(stat.Variance(vals, nil))
	s.Min = vals[0]
	s.Max = vals[len(vals)-1]
	s.Q1 = Quantile(vals, 0.25)
	s.Median = Quantile(vals, 0.5)
	s.Q3 = Quantile(vals, 0.75)
	return s
}

// Tails returns extreme percentiles (1%, 5%, 95%, 99%) of xs, NaN-filtered.
func Tails(xs []float64) (p1, p5, p95, p99 float64) {
	sample := moremath.Sample{Xs: DropNaN(xs)}
	sample.Sort()
	return sample.Quantile(0.01), sample.Quantile(0.05),
		sample.Quantile(0.95), sample.Quantile(0.99)
}

// Quantile computes the q-quantile of sorted by linear interpolation at
// position q*(n-1), the method pandas defaults to. The IQR outlier fence
// depends on this method; gota's empirical-cumulant Quantile would shift
// the fence.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// Median is the 0.5 Quantile of xs, NaN-filtered; xs need not be sorted.
func Median(xs []float64) float64 {
	vals := DropNaN(xs)
	sort.Float64s(vals)
	return Quantile(vals, 0.5)
}

// DropNaN returns a copy of xs without NaN entries.
func DropNaN(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}

// Matrix is a symmetric Pearson correlation matrix.
type Matrix struct {
	Columns []string
	Values  [][]float64
}

// Pair is one off-diagonal correlation, for the top-pairs listing.
type Pair struct {
	A, B string
	R    float64
}

// Correlations builds the matrix across the given columns, pairwise-complete:
// for each pair, rows where either value is NaN are excluded. Pairs with
// fewer than two complete rows get r=0.
func Correlations(columns []string, data map[string][]float64) Matrix {
	n := len(columns)
	m := Matrix{Columns: columns, Values: make([][]float64, n)}
	for i := range m.Values {
		m.Values[i] = make([]float64, n)
		m.Values[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := pairCorrelation(data[columns[i]], data[columns[j]])
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m
}

func pairCorrelation(xs, ys []float64) float64 {
	var cx, cy []float64
	for k := 0; k < len(xs) && k < len(ys); k++ {
		if math.IsNaN(xs[k]) || math.IsNaN(ys[k]) {
			continue
		}
		cx = append(cx, xs[k])
		cy = append(cy, ys[k])
	}
	if len(cx) < 2 {
		return 0
	}
	r := stat.Correlation(cx, cy, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}

// TopPairs lists the n strongest off-diagonal correlations by |r|.
func (m Matrix) TopPairs(n int) []Pair {
	var pairs []Pair
	for i := 0; i < len(m.Columns); i++ {
		for j := i + 1; j < len(m.Columns); j++ {
			pairs = append(pairs, Pair{A: m.Columns[i], B: m.Columns[j], R: m.Values[i][j]})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		ai, aj := math.Abs(pairs[i].R), math.Abs(pairs[j].R)
		if ai == aj {
			return pairs[i].A+pairs[i].B < pairs[j].A+pairs[j].B
		}
		return ai > aj
	})
	if n > 0 && len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}
