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

	"github.com/rlisboa/stream-eda-tools/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports the cleaned dataset to a SQLite database",
	Long: `Writes one Track table with the cleaned columns, replacing any
previous export, so the dataset can be queried with plain SQL.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := exportDataset(os.Stdout, viper.GetString("database"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	var databasePath string
	exportCmd.Flags().StringVarP(&databasePath, "database", "d", "./stream-eda.db", "Path to the SQLite database")
	viper.BindPFlag("database", exportCmd.Flags().Lookup("database"))
}

func exportDataset(out io.Writer, dbPath string) error {
	ds, _, err := loadCleaned()
	if err != nil {
		return err
	}

	st, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	written, err := st.WriteDataset(ds)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Exported %d tracks to %s\n", written, dbPath)
	return nil
}
