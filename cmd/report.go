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

	"github.com/fatih/color"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rlisboa/stream-eda-tools/internal/charts"
	"github.com/rlisboa/stream-eda-tools/internal/dataset"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Runs the full analysis in one pass",
	Long: `Overview, cleaning log, descriptive statistics, outlier report,
correlations, and a combined chart page: the whole analysis, in order.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printReport(os.Stdout, viper.GetString("output"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

var sectionHeader = color.New(color.FgCyan, color.Bold)

func section(out io.Writer, title string) {
	sectionHeader.Fprintf(out, "\n== %s ==\n\n", title)
}

func printReport(out io.Writer, outDir string) error {
	raw, err := loadDataset()
	if err != nil {
		return err
	}
	section(out, "Overview (raw)")
	if err := printOverview(out, raw); err != nil {
		return err
	}

	ds, ops, err := loadCleaned()
	if err != nil {
		return err
	}
	section(out, "Cleaning")
	printOperations(out, ops)

	section(out, "Descriptive statistics")
	if err := printDescribe(out, false); err != nil {
		return err
	}

	section(out, "Outliers")
	if err := printOutliers(out, ""); err != nil {
		return err
	}

	section(out, "Correlations")
	if err := printCorrelations(out, false, 10); err != nil {
		return err
	}

	section(out, "Charts")
	path, err := renderReportPage(ds, outDir)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Wrote", path)
	return nil
}

// renderReportPage bundles the chart suite into one HTML page.
func renderReportPage(ds *dataset.Dataset, outDir string) (string, error) {
	renderer := charts.NewRenderer(outDir)
	var cs []components.Charter

	for _, name := range ds.NumericColumns() {
		xs, err := ds.Floats(name)
		if err != nil {
			return "", err
		}
		cs = append(cs, charts.HistogramChart(name, xs, 0))
	}

	for _, name := range dataset.CategoricalColumns() {
		if !ds.HasColumn(name) {
			continue
		}
		labels, counts, err := ds.TopValues(name, 0)
		if err != nil {
			return "", err
		}
		cs = append(cs, charts.BarChart(name, labels, counts))
	}

	matrix, err := correlationMatrix(ds)
	if err != nil {
		return "", err
	}
	if len(matrix.Columns) >= 2 {
		cs = append(cs, charts.HeatmapChart(matrix))
	}

	return renderer.Page("report.html", cs...)
}
