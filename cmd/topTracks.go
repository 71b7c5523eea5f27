package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/streaming-history-tools/internal/analysis"
)

var topTracksThreshold int64
var topTracksCmd = &cobra.Command{
	Use:   "top-tracks <file>",
	Short: "Gets the most played tracks",
	Long:  `Counts one play per listen, grouping by track name. Listens without a track name (e.g. podcasts) are not ranked.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := AnalyserConfig{viper.GetInt("number"), topTracksThreshold}
		err := printView(os.Stdout, args[0], TopTracksAnalyzer{Config: config})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topTracksCmd)

	topTracksCmd.Flags().Int64Var(&topTracksThreshold, "threshold", 0, "only show tracks with more plays than this")
}

type TopTracksAnalyzer struct {
	Config AnalyserConfig
}

func (t TopTracksAnalyzer) GetName() string {
	return "Top tracks"
}

func (t TopTracksAnalyzer) GetResults(b *analysis.Bundle) (Analysis, error) {
	return rankingAnalysis("Track", b.TopTracks, t.Config), nil
}
