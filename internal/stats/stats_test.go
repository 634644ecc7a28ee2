package stats

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestQuantile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	cases := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
	}
	for _, c := range cases {
		if got := Quantile(sorted, c.q); !almostEqual(got, c.want) {
			t.Errorf("Quantile(%v): expected %v, got %v", c.q, c.want, got)
		}
	}
}

func TestQuantileSingleValue(t *testing.T) {
	if got := Quantile([]float64{7}, 0.5); got != 7 {
		t.Errorf("expected 7, got %v", got)
	}
}

func TestQuantileEmpty(t *testing.T) {
	if got := Quantile(nil, 0.5); !math.IsNaN(got) {
		t.Errorf("expected NaN for empty input, got %v", got)
	}
}

func TestMedian(t *testing.T) {
	// Unsorted with a NaN: median of {10, 20, 30} is 20.
	xs := []float64{30, math.NaN(), 10, 20}
	if got := Median(xs); got != 20 {
		t.Errorf("expected 20, got %v", got)
	}

	xs = []float64{4, 1, 3, 2}
	if got := Median(xs); !almostEqual(got, 2.5) {
		t.Errorf("expected 2.5, got %v", got)
	}
}

func TestDescribe(t *testing.T) {
	xs := []float64{1, 2, 3, 4, math.NaN()}
	s := Describe(xs)

	if s.Count != 4 {
		t.Errorf("expected count 4, got %d", s.Count)
	}
	if !almostEqual(s.Mean, 2.5) {
		t.Errorf("expected mean 2.5, got %v", s.Mean)
	}
	// Sample standard deviation of 1..4.
	if !almostEqual(s.Std, math.Sqrt(5.0/3.0)) {
		t.Errorf("expected std %v, got %v", math.Sqrt(5.0/3.0), s.Std)
	}
	if s.Min != 1 || s.Max != 4 {
		t.Errorf("expected min 1 max 4, got %v %v", s.Min, s.Max)
	}
	if !almostEqual(s.Q1, 1.75) || !almostEqual(s.Median, 2.5) || !almostEqual(s.Q3, 3.25) {
		t.Errorf("expected quartiles 1.75/2.5/3.25, got %v/%v/%v", s.Q1, s.Median, s.Q3)
	}
}

func TestDescribeEmpty(t *testing.T) {
	s := Describe([]float64{math.NaN(), math.NaN()})
	if s.Count != 0 {
		t.Errorf("expected count 0, got %d", s.Count)
	}
	if !math.IsNaN(s.Mean) || !math.IsNaN(s.Median) {
		t.Errorf("expected NaN statistics, got %+v", s)
	}
}

func TestDropNaN(t *testing.T) {
	xs := []float64{1, math.NaN(), 2, math.NaN(), 3}
	got := DropNaN(xs)
	if len(got) != 3 {
		t.Fatalf("expected 3 values, got %v", got)
	}
	for i, w := range []float64{1, 2, 3} {
		if got[i] != w {
			t.Errorf("DropNaN[%d]: expected %v, got %v", i, w, got[i])
		}
	}
	if len(xs) != 5 {
		t.Error("DropNaN must not modify its input")
	}
}

func TestCorrelations(t *testing.T) {
	data := map[string][]float64{
		"a": {1, 2, 3, 4},
		"b": {2, 4, 6, 8},
		"c": {4, 3, 2, 1},
	}
	m := Correlations([]string{"a", "b", "c"}, data)

	if !almostEqual(m.Values[0][0], 1) {
		t.Errorf("expected r(a,a)=1, got %v", m.Values[0][0])
	}
	if !almostEqual(m.Values[0][1], 1) {
		t.Errorf("expected r(a,b)=1, got %v", m.Values[0][1])
	}
	if !almostEqual(m.Values[0][2], -1) {
		t.Errorf("expected r(a,c)=-1, got %v", m.Values[0][2])
	}
	if m.Values[0][1] != m.Values[1][0] {
		t.Error("matrix must be symmetric")
	}
}

func TestCorrelationsPairwiseComplete(t *testing.T) {
	// The NaN row drops out of the (a, b) pair only.
	data := map[string][]float64{
		"a": {1, 2, 3, math.NaN()},
		"b": {2, 4, 6, 100},
	}
	m := Correlations([]string{"a", "b"}, data)
	if !almostEqual(m.Values[0][1], 1) {
		t.Errorf("expected r=1 over complete rows, got %v", m.Values[0][1])
	}
}

func TestCorrelationsTooFewRows(t *testing.T) {
	data := map[string][]float64{
		"a": {1, math.NaN()},
		"b": {2, 3},
	}
	m := Correlations([]string{"a", "b"}, data)
	if m.Values[0][1] != 0 {
		t.Errorf("expected r=0 with one complete row, got %v", m.Values[0][1])
	}
}

func TestTopPairs(t *testing.T) {
	data := map[string][]float64{
		"a": {1, 2, 3, 4},
		"b": {2, 4, 6, 8},
		"c": {1, 5, 2, 8},
	}
	m := Correlations([]string{"a", "b", "c"}, data)

	pairs := m.TopPairs(2)
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].A != "a" || pairs[0].B != "b" {
		t.Errorf("expected (a, b) as the strongest pair, got (%s, %s)", pairs[0].A, pairs[0].B)
	}
	if math.Abs(pairs[0].R) < math.Abs(pairs[1].R) {
		t.Error("pairs must be sorted by |r| descending")
	}

	all := m.TopPairs(0)
	if len(all) != 3 {
		t.Errorf("expected all 3 pairs with n=0, got %d", len(all))
	}
}

func TestTails(t *testing.T) {
	xs := make([]float64, 100)
	for i := range xs {
		xs[i] = float64(i + 1)
	}
	p1, p5, p95, p99 := Tails(xs)
	if p1 >= p5 || p5 >= p95 || p95 >= p99 {
		t.Errorf("expected ordered tails, got %v %v %v %v", p1, p5, p95, p99)
	}
	if p1 < 1 || p99 > 100 {
		t.Errorf("tails outside data range: %v %v", p1, p99)
	}
}
