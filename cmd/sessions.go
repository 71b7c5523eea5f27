package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ademuri/streaming-history-tools/internal/analysis"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions <file>",
	Short: "Shows when in the day listening happens",
	Long:  `Each listen is one point at its hour of day. Points are grouped by hour for display.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := printView(os.Stdout, args[0], SessionsAnalyzer{})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}

type SessionsAnalyzer struct{}

func (s SessionsAnalyzer) GetName() string {
	return "Listening by hour"
}

func (s SessionsAnalyzer) GetResults(b *analysis.Bundle) (a Analysis, err error) {
	var plays [24]int
	var minutes, longest [24]float64
	for _, session := range b.Sessions {
		if session.Hour < 0 || session.Hour > 23 {
			continue
		}
		plays[session.Hour]++
		minutes[session.Hour] += session.Duration
		if session.Duration > longest[session.Hour] {
			longest[session.Hour] = session.Duration
		}
	}

	a.results = [][]string{{"Hour", "Plays", "Minutes", "Longest play"}}
	peak := -1
	for hour := range plays {
		if plays[hour] == 0 {
			continue
		}
		if peak < 0 || minutes[hour] > minutes[peak] {
			peak = hour
		}
		a.results = append(a.results, []string{
			fmt.Sprintf("%02d:00", hour),
			fmt.Sprint(plays[hour]),
			fmt.Sprintf("%.1f", minutes[hour]),
			fmt.Sprintf("%.1f min", longest[hour]),
		})
	}

	if peak < 0 {
		a.summary = "No plays\n"
		return
	}
	a.summary = fmt.Sprintf("%d plays, most listening at %02d:00\n", len(b.Sessions), peak)
	return
}
