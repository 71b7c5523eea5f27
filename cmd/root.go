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
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/ademuri/streaming-history-tools/internal/analysis"
	"github.com/ademuri/streaming-history-tools/internal/history"
	"github.com/ademuri/streaming-history-tools/internal/logging"
)

var cfgFile string
var topNumber int
var databasePath string
var logLevel string
var logFormat string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "streaming-history-tools",
	Short: "Builds a listening dashboard from a streaming history export",
	Long: `Reads a streaming history export (a JSON array of plays, such as Spotify's
StreamingHistory*.json or extended history Streaming_History_Audio_*.json) and
summarizes it: top tracks and artists, daily trends, listening by hour, and a
weekly heatmap.`,
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
		&cfgFile, "config", "", "config file (default is $HOME/.streaming-history-tools.yaml)")

	rootCmd.PersistentFlags().IntVarP(
		&topNumber, "number", "n", analysis.DefaultTopN, "number of top tracks and artists to return (0 for all)")
	viper.BindPFlag("number", rootCmd.PersistentFlags().Lookup("number"))

	rootCmd.PersistentFlags().StringVarP(
		&databasePath, "database", "d", "./dashboard.db", "Path to the SQLite database used for snapshots")
	viper.BindPFlag("database", rootCmd.PersistentFlags().Lookup("database"))

	rootCmd.PersistentFlags().StringVar(&logLevel, "log_level", "warn", "Log level: debug, info, warn, error")
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log_level"))

	rootCmd.PersistentFlags().StringVar(&logFormat, "log_format", "console", "Log format: console or json")
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log_format"))
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

		// Search config in home directory with name ".streaming-history-tools" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".streaming-history-tools")
	}

	// If a config file is found, read it in.
	configErr := viper.ReadInConfig()

	// See https://github.com/spf13/viper/pull/852
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})

	logging.Init(logging.Config{
		Level:  viper.GetString("log_level"),
		Format: viper.GetString("log_format"),
	})
	if configErr == nil {
		logging.Info().Str("path", viper.ConfigFileUsed()).Msg("Using config file")
	}
}

// loadBundle ingests the export at path and aggregates it, keeping the top
// numToReturn tracks and artists.
func loadBundle(path string, numToReturn int) (*analysis.Bundle, error) {
	batch, err := history.IngestFile(path)
	if err != nil {
		return nil, describeIngestError(path, err)
	}
	if len(batch.Skipped) > 0 {
		logging.Warn().
			Str("file", path).
			Int("skipped", len(batch.Skipped)).
			Msg("Some records had no usable timestamp and were skipped")
	}

	return analysis.AggregateWithConfig(batch.Events, analysis.Config{TopN: numToReturn}), nil
}

func describeIngestError(path string, err error) error {
	var decodeErr *history.DecodeError
	var shapeErr *history.ShapeError
	switch {
	case errors.As(err, &decodeErr):
		return fmt.Errorf("%s is not a valid JSON file: %w", path, err)
	case errors.As(err, &shapeErr):
		return fmt.Errorf("%s is not a streaming history export: %w", path, err)
	default:
		return fmt.Errorf("loading %s: %w", path, err)
	}
}
