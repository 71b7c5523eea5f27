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
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/ademuri/streaming-history-tools/internal/analysis"
)

type Analysis struct {
	results [][]string
	summary string
}

type AnalyserConfig struct {
	// Number of results to return, default is all results.
	NumToReturn int

	// Only return results with more plays than this. Default is all results.
	FilterThreshold int64
}

// Analyser renders one view of an already aggregated bundle.
type Analyser interface {
	GetResults(b *analysis.Bundle) (Analysis, error)

	GetName() string
}

func (a Analysis) String() string {
	out := new(bytes.Buffer)
	table := tablewriter.NewWriter(out)
	table.Header(a.results[0])
	for _, row := range a.results[1:] {
		if err := table.Append(row); err != nil {
			return fmt.Sprintf("Error rendering table: %v", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Sprintf("Error rendering table: %v", err)
	}
	fmt.Fprintf(out, "%s\n", a.summary)
	return out.String()
}

func getAnalyserFromName(name string, config AnalyserConfig) (Analyser, error) {
	analyserMap := map[string]Analyser{
		"summary":     SummaryAnalyzer{},
		"top-tracks":  TopTracksAnalyzer{Config: config},
		"top-artists": TopArtistsAnalyzer{Config: config},
		"trends":      TrendsAnalyzer{},
		"sessions":    SessionsAnalyzer{},
		"heatmap":     HeatmapAnalyzer{},
	}

	a, ok := analyserMap[name]
	if !ok {
		return nil, fmt.Errorf("Invalid view: %q (valid views: %s)", name, strings.Join(analyserNames(analyserMap), ", "))
	}
	return a, nil
}

func analyserNames(m map[string]Analyser) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// printAnalyses renders each analyser's view of b with a heading.
func printAnalyses(out io.Writer, b *analysis.Bundle, analysers []Analyser) error {
	for _, a := range analysers {
		result, err := a.GetResults(b)
		if err != nil {
			return fmt.Errorf("%s: %w", a.GetName(), err)
		}
		fmt.Fprintf(out, "## %s\n", a.GetName())
		fmt.Fprintln(out, result)
	}
	return nil
}

// rankingAnalysis turns a ranking into table rows, applying config.
func rankingAnalysis(header string, entries []analysis.RankedEntry, config AnalyserConfig) (result Analysis) {
	result.results = [][]string{{"#", header, "Plays"}}
	var numPlays int64
	shown := 0
	for _, e := range entries {
		numPlays += e.Plays
		if config.FilterThreshold != 0 && e.Plays <= config.FilterThreshold {
			continue
		}
		if config.NumToReturn != 0 && shown >= config.NumToReturn {
			continue
		}
		shown++
		result.results = append(result.results, []string{fmt.Sprint(shown), e.Name, fmt.Sprint(e.Plays)})
	}
	result.summary = fmt.Sprintf("Showing %d of %d ranked %ss (%d plays)\n",
		shown, len(entries), strings.ToLower(header), numPlays)
	return
}
