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
)

var outliersOut string

var outliersCmd = &cobra.Command{
	Use:   "outliers",
	Short: "Reports IQR outliers per numeric column",
	Long: `Flags a value as an outlier when it falls outside
[Q1 - 1.5*IQR, Q3 + 1.5*IQR]. Rows are only flagged, never removed. With
--out, writes the dataset plus one boolean <column>_outlier flag column per
numeric column to a CSV file.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printOutliers(os.Stdout, outliersOut)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(outliersCmd)
	outliersCmd.Flags().StringVar(&outliersOut, "out", "", "write the dataset with flag columns to this CSV file")
}

func printOutliers(out io.Writer, outPath string) error {
	ds, _, err := loadCleaned()
	if err != nil {
		return err
	}

	var fences []cleaning.Fence
	if outPath != "" {
		fences, err = cleaning.AddFlags(ds)
	} else {
		fences, err = cleaning.Fences(ds)
	}
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Column", "Q1", "Q3", "IQR", "Lower", "Upper", "Outliers", "%"})
	for _, f := range fences {
		pct := 0.0
		if ds.Nrow() > 0 {
			pct = float64(f.Outliers) * 100 / float64(ds.Nrow())
		}
		table.Append([]string{
			f.Column,
			formatStat(f.Q1),
			formatStat(f.Q3),
			formatStat(f.IQR),
			formatStat(f.Lower),
			formatStat(f.Upper),
			strconv.Itoa(f.Outliers),
			fmt.Sprintf("%.2f", pct),
		})
	}
	table.Render()

	if outPath != "" {
		if err := writeCleaned(ds, outPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote flagged dataset to %s\n", outPath)
	}
	return nil
}
