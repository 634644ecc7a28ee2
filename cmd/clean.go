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

	"github.com/rlisboa/stream-eda-tools/internal/cleaning"
	"github.com/rlisboa/stream-eda-tools/internal/dataset"
)

var cleanOut string

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Runs the cleaning pass and prints an operations log",
	Long: `Drops the cover_url column, coerces numeric columns (stripping
thousands separators), imputes missing values with column median or mode,
and reports what changed. No rows are dropped. Use --out to write the
cleaned dataset to a CSV file.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printClean(os.Stdout, cleanOut)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().StringVar(&cleanOut, "out", "", "write the cleaned dataset to this CSV file")
}

func printClean(out io.Writer, outPath string) error {
	ds, ops, err := loadCleaned()
	if err != nil {
		return err
	}

	printOperations(out, ops)
	fmt.Fprintf(out, "Cleaned %d rows, %d columns remain\n", ds.Nrow(), ds.Ncol())

	if outPath != "" {
		if err := writeCleaned(ds, outPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote cleaned dataset to %s\n", outPath)
	}
	return nil
}

func printOperations(out io.Writer, ops []cleaning.Operation) {
	if len(ops) == 0 {
		fmt.Fprintln(out, "Nothing to clean")
		return
	}
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Column", "Operation", "Affected"})
	for _, op := range ops {
		table.Append([]string{op.Column, op.Op, strconv.Itoa(op.Affected)})
	}
	table.Render()
}

func writeCleaned(ds *dataset.Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return ds.WriteCSV(f)
}
