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
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/streaming-history-tools/internal/analysis"
)

const defaultViews = "summary,top-tracks,top-artists,trends,sessions,heatmap"

var (
	dashboardViews string
	dashboardDays  string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard <file> [from] [to (optional)]",
	Short: "Prints every view of a streaming history export",
	Long: `Prints the summary, top tracks, top artists, daily trends, listening by hour and
the weekly heatmap. The optional date or date range only limits the daily trends.
Date strings look like 'yyyy', 'yyyy-mm', or 'yyyy-mm-dd'.`,
	Args: cobra.RangeArgs(1, 3),
	Run: func(cmd *cobra.Command, args []string) {
		config := DashboardConfig{
			Path:        args[0],
			DateArgs:    args[1:],
			NumToReturn: viper.GetInt("number"),
			Views:       dashboardViews,
			Days:        dashboardDays,
		}
		err := printDashboard(os.Stdout, config)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().StringVar(&dashboardViews, "views", defaultViews, "Comma-separated views to show")
	dashboardCmd.Flags().StringVar(&dashboardDays, "days", "", "Comma-separated days of the week to keep in the heatmap, e.g. 'sat,sun'")
}

type DashboardConfig struct {
	Path        string
	DateArgs    []string
	NumToReturn int
	Views       string
	Days        string
}

func printDashboard(out io.Writer, config DashboardConfig) error {
	start, end, err := windowFromArgs(config.DateArgs)
	if err != nil {
		return err
	}
	days, err := parseWeekdays(config.Days)
	if err != nil {
		return err
	}
	analysers, err := parseViews(config.Views, AnalyserConfig{NumToReturn: config.NumToReturn})
	if err != nil {
		return err
	}

	b, err := loadBundle(config.Path, config.NumToReturn)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Listening dashboard for %s\n", config.Path)
	if !start.IsZero() {
		fmt.Fprintf(out, "Trends period: %s to %s\n", start.Format("2006-01-02"), end.AddDate(0, 0, -1).Format("2006-01-02"))
	}
	fmt.Fprintln(out)

	return printAnalyses(out, b.Window(start, end).OnDays(days...), analysers)
}

func parseViews(views string, config AnalyserConfig) ([]Analyser, error) {
	var analysers []Analyser
	for _, name := range strings.Split(views, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		a, err := getAnalyserFromName(name, config)
		if err != nil {
			return nil, err
		}
		analysers = append(analysers, a)
	}
	if len(analysers) == 0 {
		return nil, fmt.Errorf("No views selected")
	}
	return analysers, nil
}

// bundleViews renders b with every default view. Used for stored snapshots.
func bundleViews(out io.Writer, b *analysis.Bundle, numToReturn int) error {
	analysers, err := parseViews(defaultViews, AnalyserConfig{NumToReturn: numToReturn})
	if err != nil {
		return err
	}
	return printAnalyses(out, b, analysers)
}
