package cmd

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/ademuri/streaming-history-tools/internal/analysis"
)

var trendsCmd = &cobra.Command{
	Use:   "trends <file> [from] [to (optional)]",
	Short: "Shows minutes listened per day",
	Long:  `Optionally limited to a date or date range. Date strings look like 'yyyy', 'yyyy-mm', or 'yyyy-mm-dd'.`,
	Args:  cobra.RangeArgs(1, 3),
	Run: func(cmd *cobra.Command, args []string) {
		err := printTrends(os.Stdout, args[0], args[1:])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(trendsCmd)
}

func printTrends(out io.Writer, path string, dateArgs []string) error {
	start, end, err := windowFromArgs(dateArgs)
	if err != nil {
		return err
	}
	b, err := loadBundle(path, 0)
	if err != nil {
		return err
	}
	result, err := TrendsAnalyzer{}.GetResults(b.Window(start, end))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, result)
	return nil
}

type TrendsAnalyzer struct{}

func (t TrendsAnalyzer) GetName() string {
	return "Listening trends"
}

func (t TrendsAnalyzer) GetResults(b *analysis.Bundle) (a Analysis, err error) {
	a.results = [][]string{{"Date", "Minutes", "Time"}}
	var total float64
	var busiest analysis.DailyListening
	for _, d := range b.DailyTrend {
		a.results = append(a.results, []string{d.Date, fmt.Sprintf("%.1f", d.Minutes), formatMinutes(d.Minutes)})
		total += d.Minutes
		if d.Minutes > busiest.Minutes {
			busiest = d
		}
	}

	if len(b.DailyTrend) == 0 {
		a.summary = "No listening in this period\n"
		return
	}
	a.summary = fmt.Sprintf("%d days, %s in total, busiest day %s (%s)\n",
		len(b.DailyTrend), formatMinutes(total), busiest.Date, formatMinutes(busiest.Minutes))
	return
}

// formatMinutes renders minutes as e.g. "2h 05m".
func formatMinutes(minutes float64) string {
	total := int(math.Round(minutes))
	return fmt.Sprintf("%dh %02dm", total/60, total%60)
}
