package cleaning

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-gota/gota/series"

	"github.com/rlisboa/stream-eda-tools/internal/dataset"
	"github.com/rlisboa/stream-eda-tools/internal/stats"
)

// Fence is the IQR outlier boundary for one numeric column. A value is an
// outlier iff it lies outside [Q1-1.5*IQR, Q3+1.5*IQR]. Missing values are
// never flagged.
type Fence struct {
	Column   string
	Q1       float64
	Q3       float64
	IQR      float64
	Lower    float64
	Upper    float64
	Flags    []bool
	Outliers int
}

// FenceFor computes the fence and per-row flags for xs.
func FenceFor(column string, xs []float64) Fence {
	sorted := stats.DropNaN(xs)
	sort.Float64s(sorted)
	q1 := stats.Quantile(sorted, 0.25)
	q3 := stats.Quantile(sorted, 0.75)
	iqr := q3 - q1

	f := Fence{
		Column: column,
		Q1:     q1,
		Q3:     q3,
		IQR:    iqr,
		Lower:  q1 - 1.5*iqr,
		Upper:  q3 + 1.5*iqr,
		Flags:  make([]bool, len(xs)),
	}
	for i, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		if x < f.Lower || x > f.Upper {
			f.Flags[i] = true
			f.Outliers++
		}
	}
	return f
}

// FlagColumn names the boolean flag column derived from a numeric column.
func FlagColumn(name string) string {
	return name + "_outlier"
}

// Fences computes fences for every numeric column of d.
func Fences(d *dataset.Dataset) ([]Fence, error) {
	var fences []Fence
	for _, name := range d.NumericColumns() {
		xs, err := d.Floats(name)
		if err != nil {
			return nil, err
		}
		fences = append(fences, FenceFor(name, xs))
	}
	return fences, nil
}

// AddFlags computes fences and appends a boolean flag column per numeric
// column. Flagged rows stay in the dataset.
func AddFlags(d *dataset.Dataset) ([]Fence, error) {
	fences, err := Fences(d)
	if err != nil {
		return nil, err
	}
	for _, f := range fences {
		d.DF = d.DF.Mutate(series.New(f.Flags, series.Bool, FlagColumn(f.Column)))
		if d.DF.Err != nil {
			return nil, fmt.Errorf("adding %s: %w", FlagColumn(f.Column), d.DF.Err)
		}
	}
	return fences, nil
}
