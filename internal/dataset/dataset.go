// Package dataset loads the most-streamed-songs CSV into a gota DataFrame
// and exposes the fixed column schema the analysis commands work against.
package dataset

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Dataset wraps the working DataFrame. It is loaded once, mutated in place
// by the cleaning pass, and discarded at process exit.
type Dataset struct {
	DF     dataframe.DataFrame
	Source string
}

// Load reads the CSV at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	ds, err := FromCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	ds.Source = path
	return ds, nil
}

// FromCSV reads a dataset from r. All columns are kept as strings: type
// coercion is the cleaning pass's job, and letting gota guess types would
// silently split columns like streams (numeric with comma separators) into
// string-typed oddballs.
func FromCSV(r io.Reader) (*Dataset, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("parsing csv: %w", df.Err)
	}
	if df.Nrow() == 0 {
		return nil, fmt.Errorf("dataset is empty")
	}

	for raw, clean := range renameLookup {
		if hasColumn(df, raw) {
			df = df.Rename(clean, raw)
			if df.Err != nil {
				return nil, fmt.Errorf("renaming %q: %w", raw, df.Err)
			}
		}
	}
	return &Dataset{DF: df}, nil
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// HasColumn reports whether the dataset contains the named column.
func (d *Dataset) HasColumn(name string) bool {
	return hasColumn(d.DF, name)
}

// Column returns the named column. Missing columns are an error: the
// analysis fails fast on an unexpected schema.
func (d *Dataset) Column(name string) (series.Series, error) {
	if !d.HasColumn(name) {
		return series.Series{}, fmt.Errorf("dataset has no column %q", name)
	}
	return d.DF.Col(name), nil
}

// Floats returns the column's values as float64, NaN where the value is
// missing or non-numeric. Thousands separators are stripped first.
func (d *Dataset) Floats(name string) ([]float64, error) {
	col, err := d.Column(name)
	if err != nil {
		return nil, err
	}
	if col.Type() == series.Float || col.Type() == series.Int {
		return col.Float(), nil
	}
	recs := col.Records()
	out := make([]float64, len(recs))
	for i, rec := range recs {
		out[i] = ParseNumber(rec)
	}
	return out, nil
}

// NumericColumns returns the schema's numeric columns present in the
// dataset, in file order.
func (d *Dataset) NumericColumns() []string {
	var out []string
	for _, name := range NumericColumns() {
		if d.HasColumn(name) {
			out = append(out, name)
		}
	}
	return out
}

func (d *Dataset) Nrow() int { return d.DF.Nrow() }
func (d *Dataset) Ncol() int { return d.DF.Ncol() }

// WriteCSV writes the current state of the dataset to w.
func (d *Dataset) WriteCSV(w io.Writer) error {
	if err := d.DF.WriteCSV(w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// ColumnMeta is one row of the overview table: the per-column summary
// printed before and after cleaning.
type ColumnMeta struct {
	Name       string
	Kind       string // numeric|categorical|text
	Unique     int
	Missing    int
	MissingPct float64
	Examples   []string
}

// Metadata profiles every column. Kind is inferred from the values that are
// present: a column is numeric if most non-missing values parse to a number
// (after stripping thousands separators), categorical if it repeats few
// distinct values, text otherwise.
func (d *Dataset) Metadata() []ColumnMeta {
	nrow := d.Nrow()
	metas := make([]ColumnMeta, 0, d.Ncol())
	for _, name := range d.DF.Names() {
		col := d.DF.Col(name)
		recs := col.Records()

		seen := make(map[string]int)
		missing := 0
		numeric := 0
		var examples []string
		for _, rec := range recs {
			if IsMissing(rec) {
				missing++
				continue
			}
			if _, ok := seen[rec]; !ok && len(examples) < 3 {
				examples = append(examples, rec)
			}
			seen[rec]++
			if v := ParseNumber(rec); v == v { // not NaN
				numeric++
			}
		}

		kind := "text"
		nonMissing := nrow - missing
		switch {
		case nonMissing > 0 && numeric*2 > nonMissing:
			kind = "numeric"
		case len(seen) > 0 && len(seen)*4 <= nonMissing:
			kind = "categorical"
		}

		missingPct := 0.0
		if nrow > 0 {
			missingPct = float64(missing) * 100 / float64(nrow)
		}
		metas = append(metas, ColumnMeta{
			Name:       name,
			Kind:       kind,
			Unique:     len(seen),
			Missing:    missing,
			MissingPct: missingPct,
			Examples:   examples,
		})
	}
	return metas
}

// TopValues returns the n most frequent non-missing values of a column,
// ties broken alphabetically.
func (d *Dataset) TopValues(name string, n int) ([]string, []int, error) {
	col, err := d.Column(name)
	if err != nil {
		return nil, nil, err
	}
	counts := make(map[string]int)
	for _, rec := range col.Records() {
		if IsMissing(rec) {
			continue
		}
		counts[rec]++
	}
	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		if counts[values[i]] == counts[values[j]] {
			return values[i] < values[j]
		}
		return counts[values[i]] > counts[values[j]]
	})
	if n > 0 && len(values) > n {
		values = values[:n]
	}
	ns := make([]int, len(values))
	for i, v := range values {
		ns[i] = counts[v]
	}
	return values, ns, nil
}

// IsMissing reports whether a raw record represents a missing value. gota
// renders NaN elements as "NaN"; raw files use empty fields or "NA".
func IsMissing(rec string) bool {
	switch strings.TrimSpace(rec) {
	case "", "NA", "NaN":
		return true
	}
	return false
}

// ParseNumber parses rec as a float64, stripping thousands separators.
// Returns NaN when rec is missing or not a number.
func ParseNumber(rec string) float64 {
	s := strings.TrimSpace(rec)
	if IsMissing(s) {
		return math.NaN()
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
