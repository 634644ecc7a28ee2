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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/rlisboa/stream-eda-tools/internal/cleaning"
	"github.com/rlisboa/stream-eda-tools/internal/dataset"
)

var cfgFile string
var csvPath string
var outputDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stream-eda",
	Short: "Exploratory analysis of the most-streamed songs dataset",
	Long: `Loads the "Spotify Most Streamed Songs" CSV, cleans it, and prints
summary statistics and charts.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.stream-eda.yaml)")

	rootCmd.PersistentFlags().StringVarP(
		&csvPath, "csv", "c", "Spotify Most Streamed Songs.csv", "path to the dataset CSV")
	viper.BindPFlag("csv", rootCmd.PersistentFlags().Lookup("csv"))

	rootCmd.PersistentFlags().StringVarP(
		&outputDir, "output", "o", "charts", "directory for rendered charts")
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".stream-eda" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".stream-eda")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}

// loadDataset reads the raw CSV configured via --csv.
func loadDataset() (*dataset.Dataset, error) {
	return dataset.Load(viper.GetString("csv"))
}

// loadCleaned reads the CSV and runs the cleaning pass over it.
func loadCleaned() (*dataset.Dataset, []cleaning.Operation, error) {
	ds, err := loadDataset()
	if err != nil {
		return nil, nil, err
	}
	ops, err := cleaning.Clean(ds)
	if err != nil {
		return nil, nil, fmt.Errorf("cleaning: %w", err)
	}
	return ds, ops, nil
}
