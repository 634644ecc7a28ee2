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
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/rlisboa/stream-eda-tools/internal/stats"
)

var describeFull bool

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Prints descriptive statistics for the numeric columns",
	Long: `Count, mean, standard deviation, min, quartiles, and max for every
numeric column of the cleaned dataset. --full adds the 1/5/95/99 percent
tails.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printDescribe(os.Stdout, describeFull)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().BoolVar(&describeFull, "full", false, "include tail percentiles")
}

func printDescribe(out io.Writer, full bool) error {
	ds, _, err := loadCleaned()
	if err != nil {
		return err
	}

	header := []string{"Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"}
	if full {
		header = append(header, "1%", "5%", "95%", "99%")
	}
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)

	for _, name := range ds.NumericColumns() {
		xs, err := ds.Floats(name)
		if err != nil {
			return err
		}
		s := stats.Describe(xs)
		row := []string{
			name,
			strconv.Itoa(s.Count),
			formatStat(s.Mean),
			formatStat(s.Std),
			formatStat(s.Min),
			formatStat(s.Q1),
			formatStat(s.Median),
			formatStat(s.Q3),
			formatStat(s.Max),
		}
		if full {
			p1, p5, p95, p99 := stats.Tails(xs)
			row = append(row, formatStat(p1), formatStat(p5), formatStat(p95), formatStat(p99))
		}
		table.Append(row)
	}
	table.Render()
	return nil
}

func formatStat(v float64) string {
	return fmt.Sprintf("%.6g", v)
}
