package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ademuri/streaming-history-tools/internal/analysis"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <file>",
	Short: "Prints total listening time and unique track, artist and day counts",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := printView(os.Stdout, args[0], SummaryAnalyzer{})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

type SummaryAnalyzer struct{}

func (s SummaryAnalyzer) GetName() string {
	return "Summary"
}

func (s SummaryAnalyzer) GetResults(b *analysis.Bundle) (a Analysis, err error) {
	a.results = [][]string{
		{"Stat", "Value"},
		{"Hours listened", fmt.Sprint(b.TotalHours)},
		{"Unique tracks", fmt.Sprint(b.UniqueTrackCount)},
		{"Unique artists", fmt.Sprint(b.UniqueArtistCount)},
		{"Days with listening", fmt.Sprint(b.UniqueDayCount)},
	}
	a.summary = fmt.Sprintf("%d plays\n", len(b.Sessions))
	return
}
