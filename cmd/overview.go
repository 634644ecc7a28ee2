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
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/rlisboa/stream-eda-tools/internal/dataset"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Prints dataset shape and per-column metadata",
	Long: `Shows one row per column: inferred kind, unique values, missing
count and percentage, and example values. Run with --cleaned to profile the
dataset after the cleaning pass instead of the raw file.`,
	Run: func(cmd *cobra.Command, args []string) {
		ds, err := overviewDataset()
		if err == nil {
			err = printOverview(os.Stdout, ds)
		}
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

var overviewCleaned bool

func init() {
	rootCmd.AddCommand(overviewCmd)
	overviewCmd.Flags().BoolVar(&overviewCleaned, "cleaned", false, "profile the cleaned dataset")
}

func overviewDataset() (*dataset.Dataset, error) {
	if overviewCleaned {
		ds, _, err := loadCleaned()
		return ds, err
	}
	return loadDataset()
}

func printOverview(out io.Writer, ds *dataset.Dataset) error {
	fmt.Fprintf(out, "Dataset: %s\n", ds.Source)
	fmt.Fprintf(out, "Shape: %d rows x %d columns\n\n", ds.Nrow(), ds.Ncol())

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Column", "Kind", "Unique", "Missing", "Missing %", "Examples"})
	for _, m := range ds.Metadata() {
		table.Append([]string{
			m.Name,
			m.Kind,
			strconv.Itoa(m.Unique),
			strconv.Itoa(m.Missing),
			fmt.Sprintf("%.2f", m.MissingPct),
			strings.Join(m.Examples, ", "),
		})
	}
	table.Render()
	return nil
}
