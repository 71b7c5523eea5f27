package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ademuri/streaming-history-tools/internal/analysis"
	"github.com/ademuri/streaming-history-tools/internal/history"
)

var moodCmd = &cobra.Command{
	Use:   "mood <file>",
	Short: "Shows a placeholder mood profile",
	Long: `Scores six moods from a hash of the track names. This is not audio analysis:
the same track names always produce the same profile, and the scores say nothing
about how the music sounds.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := printMood(os.Stdout, args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(moodCmd)
}

func printMood(out io.Writer, path string) error {
	batch, err := history.IngestFile(path)
	if err != nil {
		return describeIngestError(path, err)
	}

	var a Analysis
	a.results = [][]string{{"Mood", "Score", ""}}
	for _, m := range analysis.Moods(batch.Events) {
		a.results = append(a.results, []string{m.Mood, fmt.Sprint(m.Score), strings.Repeat("#", m.Score/5)})
	}
	a.summary = "Placeholder scores derived from track names, not from the audio\n"

	fmt.Fprintln(out, a)
	return nil
}
