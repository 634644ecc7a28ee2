/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rlisboa/stream-eda-tools/internal/charts"
	"github.com/rlisboa/stream-eda-tools/internal/dataset"
	"github.com/rlisboa/stream-eda-tools/internal/stats"
)

var (
	correlateHeatmap bool
	correlatePairs   int
)

var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "Prints the Pearson correlation matrix for numeric columns",
	Long: `Correlations are pairwise-complete: rows missing either value are
excluded for that pair. Lists the strongest pairs by |r|; --heatmap also
renders a heatmap chart into the output directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printCorrelations(os.Stdout, correlateHeatmap, correlatePairs)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(correlateCmd)
	correlateCmd.Flags().BoolVar(&correlateHeatmap, "heatmap", false, "render a heatmap chart")
	correlateCmd.Flags().IntVarP(&correlatePairs, "pairs", "n", 10, "number of top pairs to list")
}

func printCorrelations(out io.Writer, heatmap bool, pairs int) error {
	ds, _, err := loadCleaned()
	if err != nil {
		return err
	}

	matrix, err := correlationMatrix(ds)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader(append([]string{""}, matrix.Columns...))
	for i, name := range matrix.Columns {
		row := make([]string, 0, len(matrix.Columns)+1)
		row = append(row, name)
		for j := range matrix.Columns {
			row = append(row, fmt.Sprintf("%.2f", matrix.Values[i][j]))
		}
		table.Append(row)
	}
	table.Render()

	fmt.Fprintf(out, "\nTop %d pairs by |r|:\n", pairs)
	for i, p := range matrix.TopPairs(pairs) {
		fmt.Fprintf(out, "%d. %s ~ %s: r=%.3f\n", i+1, p.A, p.B, p.R)
	}

	if heatmap {
		renderer := charts.NewRenderer(viper.GetString("output"))
		path, err := renderer.Heatmap(matrix)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nWrote %s\n", path)
	}
	return nil
}

func correlationMatrix(ds *dataset.Dataset) (stats.Matrix, error) {
	columns := ds.NumericColumns()
	data := make(map[string][]float64, len(columns))
	for _, name := range columns {
		xs, err := ds.Floats(name)
		if err != nil {
			return stats.Matrix{}, err
		}
		data[name] = xs
	}
	return stats.Correlations(columns, data), nil
}
