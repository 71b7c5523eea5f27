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

	"github.com/ademuri/streaming-history-tools/internal/analysis"
)

var topArtistsThreshold int64
var topArtistsCmd = &cobra.Command{
	Use:   "top-artists <file>",
	Short: "Gets the most played artists",
	Long:  `Counts one play per listen. Listens without an artist name are not ranked.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := AnalyserConfig{viper.GetInt("number"), topArtistsThreshold}
		err := printView(os.Stdout, args[0], TopArtistsAnalyzer{Config: config})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topArtistsCmd)

	topArtistsCmd.Flags().Int64Var(&topArtistsThreshold, "threshold", 0, "only show artists with more plays than this")
}

// printView loads the export at path and renders a single analyser.
func printView(out io.Writer, path string, a Analyser) error {
	b, err := loadBundle(path, 0)
	if err != nil {
		return err
	}
	result, err := a.GetResults(b)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, result)
	return nil
}

type TopArtistsAnalyzer struct {
	Config AnalyserConfig
}

func (t TopArtistsAnalyzer) GetName() string {
	return "Top artists"
}

func (t TopArtistsAnalyzer) GetResults(b *analysis.Bundle) (Analysis, error) {
	return rankingAnalysis("Artist", b.TopArtists, t.Config), nil
}
