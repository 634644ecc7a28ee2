// Package cleaning implements the column-cleaning pass: type coercion,
// median/mode imputation, and IQR-based outlier flagging. It mutates the
// dataset in place and never drops a row.
package cleaning

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/series"

	"github.com/rlisboa/stream-eda-tools/internal/dataset"
	"github.com/rlisboa/stream-eda-tools/internal/stats"
)

// Operation records one cleaning step for the operations log.
type Operation struct {
	Column   string
	Op       string
	Affected int
}

const (
	OpDropColumn       = "drop_column"
	OpToNumeric        = "to_numeric"
	OpMedianImputation = "median_imputation"
	OpModeImputation   = "mode_imputation"
)

// Clean applies the cleaning contract to d:
//
//  1. drop the cover_url column;
//  2. coerce every numeric-schema column to float64, stripping thousands
//     separators, with failures becoming NaN;
//  3. impute NaN with the column median for streams, in_deezer_playlists
//     and in_shazam_charts;
//  4. impute missing key values with the most frequent key.
//
// Columns absent from the input are skipped, so a partial export still
// cleans. The row count is never changed.
func Clean(d *dataset.Dataset) ([]Operation, error) {
	var ops []Operation
	rowsBefore := d.Nrow()

	if d.HasColumn(dataset.ColCoverURL) {
		d.DF = d.DF.Drop(dataset.ColCoverURL)
		if d.DF.Err != nil {
			return nil, fmt.Errorf("dropping %s: %w", dataset.ColCoverURL, d.DF.Err)
		}
		ops = append(ops, Operation{Column: dataset.ColCoverURL, Op: OpDropColumn, Affected: rowsBefore})
	}

	imputed := make(map[string]bool)
	for _, name := range dataset.MedianImputedColumns() {
		imputed[name] = true
	}

	for _, name := range d.NumericColumns() {
		vals, changed, err := coerceNumeric(d, name)
		if err != nil {
			return nil, err
		}
		if changed > 0 {
			ops = append(ops, Operation{Column: name, Op: OpToNumeric, Affected: changed})
		}
		if !imputed[name] {
			continue
		}
		median := stats.Median(vals)
		filled := 0
		for i, v := range vals {
			if math.IsNaN(v) {
				vals[i] = median
				filled++
			}
		}
		if filled > 0 {
			d.DF = d.DF.Mutate(series.New(vals, series.Float, name))
			if d.DF.Err != nil {
				return nil, fmt.Errorf("imputing %s: %w", name, d.DF.Err)
			}
			ops = append(ops, Operation{Column: name, Op: OpMedianImputation, Affected: filled})
		}
	}

	if d.HasColumn(dataset.ColKey) {
		filled, err := imputeMode(d, dataset.ColKey)
		if err != nil {
			return nil, err
		}
		if filled > 0 {
			ops = append(ops, Operation{Column: dataset.ColKey, Op: OpModeImputation, Affected: filled})
		}
	}

	if d.Nrow() != rowsBefore {
		return nil, fmt.Errorf("cleaning changed row count from %d to %d", rowsBefore, d.Nrow())
	}
	return ops, nil
}

// coerceNumeric replaces the named column with a float64 series. Returns the
// values and how many records needed more than a plain parse (separator
// stripping or coercion to NaN).
func coerceNumeric(d *dataset.Dataset, name string) ([]float64, int, error) {
	col, err := d.Column(name)
	if err != nil {
		return nil, 0, err
	}
	if col.Type() == series.Float {
		return col.Float(), 0, nil
	}

	recs := col.Records()
	vals := make([]float64, len(recs))
	changed := 0
	for i, rec := range recs {
		vals[i] = dataset.ParseNumber(rec)
		if math.IsNaN(vals[i]) || !plainNumber(rec) {
			changed++
		}
	}
	d.DF = d.DF.Mutate(series.New(vals, series.Float, name))
	if d.DF.Err != nil {
		return nil, 0, fmt.Errorf("coercing %s: %w", name, d.DF.Err)
	}
	return vals, changed, nil
}

// plainNumber reports whether rec parses as-is, with no separator stripping.
func plainNumber(rec string) bool {
	for _, r := range rec {
		if r == ',' {
			return false
		}
	}
	return true
}

// imputeMode fills missing values of a categorical column with its most
// frequent value. Ties break alphabetically, like pandas mode()[0].
func imputeMode(d *dataset.Dataset, name string) (int, error) {
	top, _, err := d.TopValues(name, 1)
	if err != nil {
		return 0, err
	}
	if len(top) == 0 {
		// Column is entirely missing; nothing to impute with.
		return 0, nil
	}
	mode := top[0]

	col, _ := d.Column(name)
	recs := col.Records()
	filled := 0
	for i, rec := range recs {
		if dataset.IsMissing(rec) {
			recs[i] = mode
			filled++
		}
	}
	if filled == 0 {
		return 0, nil
	}
	d.DF = d.DF.Mutate(series.New(recs, series.String, name))
	if d.DF.Err != nil {
		return 0, fmt.Errorf("imputing %s: %w", name, d.DF.Err)
	}
	return filled, nil
}
