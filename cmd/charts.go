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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rlisboa/stream-eda-tools/internal/charts"
	"github.com/rlisboa/stream-eda-tools/internal/dataset"
	"github.com/rlisboa/stream-eda-tools/internal/stats"
)

var chartBins int

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Renders the chart suite into the output directory",
	Long: `Renders a histogram per numeric column, a boxplot of the musical
feature columns, bar charts for key/mode/top artists, a pie of mode share,
two scatter plots, and the correlation heatmap, as HTML files.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := renderCharts(os.Stdout, viper.GetString("output"), chartBins)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(chartsCmd)
	chartsCmd.Flags().IntVar(&chartBins, "bins", 0, "histogram bin count (0 = Sturges' rule)")
}

func renderCharts(out io.Writer, outDir string, bins int) error {
	ds, _, err := loadCleaned()
	if err != nil {
		return err
	}

	renderer := charts.NewRenderer(outDir)
	var written []string
	record := func(path string, err error) error {
		if err != nil {
			return err
		}
		written = append(written, path)
		return nil
	}

	// Histogram per numeric column.
	for _, name := range ds.NumericColumns() {
		xs, err := ds.Floats(name)
		if err != nil {
			return err
		}
		if err := record(renderer.Histogram(name, xs, bins)); err != nil {
			return err
		}
	}

	// The feature columns share the 0-100 scale, so one boxplot covers them.
	if path, err := featureBoxPlot(ds, renderer); err != nil {
		return err
	} else if path != "" {
		written = append(written, path)
	}

	// Categorical distributions.
	for _, name := range dataset.CategoricalColumns() {
		if !ds.HasColumn(name) {
			continue
		}
		labels, counts, err := ds.TopValues(name, 0)
		if err != nil {
			return err
		}
		if err := record(renderer.Bar(name, labels, counts)); err != nil {
			return err
		}
	}
	if ds.HasColumn(dataset.ColMode) {
		labels, counts, err := ds.TopValues(dataset.ColMode, 0)
		if err != nil {
			return err
		}
		if err := record(renderer.Pie(dataset.ColMode, labels, counts)); err != nil {
			return err
		}
	}
	if ds.HasColumn(dataset.ColArtistName) {
		labels, counts, err := ds.TopValues(dataset.ColArtistName, 10)
		if err != nil {
			return err
		}
		if err := record(renderer.Bar(dataset.ColArtistName, labels, counts)); err != nil {
			return err
		}
	}

	// Scatter plots for the relationships worth eyeballing.
	scatterPairs := [][2]string{
		{"danceability_pct", "energy_pct"},
		{dataset.ColSpotifyPlaylists, dataset.ColStreams},
	}
	for _, pair := range scatterPairs {
		if !ds.HasColumn(pair[0]) || !ds.HasColumn(pair[1]) {
			continue
		}
		xs, err := ds.Floats(pair[0])
		if err != nil {
			return err
		}
		ys, err := ds.Floats(pair[1])
		if err != nil {
			return err
		}
		if err := record(renderer.Scatter(pair[0], pair[1], xs, ys)); err != nil {
			return err
		}
	}

	// Correlation heatmap.
	matrix, err := correlationMatrix(ds)
	if err != nil {
		return err
	}
	if len(matrix.Columns) >= 2 {
		if err := record(renderer.Heatmap(matrix)); err != nil {
			return err
		}
	}

	for _, path := range written {
		fmt.Fprintln(out, "Wrote", path)
	}
	fmt.Fprintf(out, "%d charts in %s\n", len(written), outDir)
	return nil
}

func featureBoxPlot(ds *dataset.Dataset, renderer *charts.Renderer) (string, error) {
	var columns []string
	var summaries []stats.Summary
	for _, name := range dataset.PercentageColumns() {
		if !ds.HasColumn(name) {
			continue
		}
		xs, err := ds.Floats(name)
		if err != nil {
			return "", err
		}
		columns = append(columns, name)
		summaries = append(summaries, stats.Describe(xs))
	}
	if len(columns) == 0 {
		return "", nil
	}
	return renderer.BoxPlot("features", columns, summaries)
}
