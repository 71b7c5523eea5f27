package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ademuri/streaming-history-tools/internal/analysis"
)

var heatmapDays string
var heatmapCmd = &cobra.Command{
	Use:   "heatmap <file>",
	Short: "Shows minutes listened by day of week and hour",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := printHeatmap(os.Stdout, args[0], heatmapDays)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(heatmapCmd)

	heatmapCmd.Flags().StringVar(&heatmapDays, "days", "", "Comma-separated days of the week to show, e.g. 'sat,sun'")
}

func printHeatmap(out io.Writer, path string, daysFlag string) error {
	days, err := parseWeekdays(daysFlag)
	if err != nil {
		return err
	}
	b, err := loadBundle(path, 0)
	if err != nil {
		return err
	}
	result, err := HeatmapAnalyzer{}.GetResults(b.OnDays(days...))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, result)
	return nil
}

type HeatmapAnalyzer struct{}

func (h HeatmapAnalyzer) GetName() string {
	return "Weekly listening pattern"
}

// GetResults lays the heatmap out as one row per day and one column per
// hour, in whole minutes. Days with no listening are left out.
func (h HeatmapAnalyzer) GetResults(b *analysis.Bundle) (a Analysis, err error) {
	var grid [7][24]string
	var hasDay [7]bool
	var peak analysis.HeatmapCell
	for _, c := range b.Heatmap {
		if c.DayOfWeek < 0 || c.DayOfWeek > 6 || c.Hour < 0 || c.Hour > 23 {
			continue
		}
		grid[c.DayOfWeek][c.Hour] = fmt.Sprint(int(math.Round(c.Intensity)))
		hasDay[c.DayOfWeek] = true
		if c.Intensity > peak.Intensity {
			peak = c
		}
	}

	header := []string{"Day"}
	for hour := 0; hour < 24; hour++ {
		header = append(header, fmt.Sprint(hour))
	}
	a.results = [][]string{header}
	for day := range grid {
		if !hasDay[day] {
			continue
		}
		row := append([]string{time.Weekday(day).String()[:3]}, grid[day][:]...)
		a.results = append(a.results, row)
	}

	if len(b.Heatmap) == 0 {
		a.summary = "No listening\n"
		return
	}
	a.summary = fmt.Sprintf("Minutes per hour. Busiest slot: %s %02d:00 (%s)\n",
		time.Weekday(peak.DayOfWeek), peak.Hour, formatMinutes(peak.Intensity))
	return
}
