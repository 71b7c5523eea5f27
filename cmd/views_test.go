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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testExport = `[
  {"endTime": "2024-01-01 10:00", "artistName": "Artist A", "trackName": "Track 1", "msPlayed": 3600000},
  {"endTime": "2024-01-01 10:30", "artistName": "Artist A", "trackName": "Track 2", "msPlayed": 1800000},
  {"endTime": "2024-01-06 22:15", "artistName": "Artist B", "trackName": "Track 1", "msPlayed": 1800000}
]`

func writeExport(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "StreamingHistory0.json")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Writing test export: %v", err)
	}
	return path
}

func TestPrintViewFileDoesntExist(t *testing.T) {
	err := printView(new(bytes.Buffer), filepath.Join(t.TempDir(), "missing.json"), SummaryAnalyzer{})
	if err == nil {
		t.Fatalf("printView should have errored with no file")
	}
}

func TestPrintViewNotJson(t *testing.T) {
	path := writeExport(t, "this is not json")
	err := printView(new(bytes.Buffer), path, SummaryAnalyzer{})
	if err == nil {
		t.Fatalf("printView should have errored with invalid JSON")
	}
	if !strings.Contains(err.Error(), "not a valid JSON file") {
		t.Fatalf("printView should have said the file isn't JSON: %v", err)
	}
}

func TestPrintViewNotAnArray(t *testing.T) {
	path := writeExport(t, `{"endTime": "2024-01-01 10:00"}`)
	err := printView(new(bytes.Buffer), path, SummaryAnalyzer{})
	if err == nil {
		t.Fatalf("printView should have errored with an object")
	}
	if !strings.Contains(err.Error(), "not a streaming history export") {
		t.Fatalf("printView should have said the file isn't an export: %v", err)
	}
}

func TestPrintTopArtists(t *testing.T) {
	path := writeExport(t, testExport)
	out := new(bytes.Buffer)
	err := printView(out, path, TopArtistsAnalyzer{Config: AnalyserConfig{NumToReturn: 10}})
	if err != nil {
		t.Fatalf("printView: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Artist A") || !strings.Contains(got, "Artist B") {
		t.Fatalf("Expected both artists in output:\n%s", got)
	}
	if strings.Index(got, "Artist A") > strings.Index(got, "Artist B") {
		t.Fatalf("Expected Artist A to be ranked first:\n%s", got)
	}
	if !strings.Contains(got, "Showing 2 of 2 ranked artists (3 plays)") {
		t.Fatalf("Unexpected summary:\n%s", got)
	}
}

func TestPrintTopTracksThreshold(t *testing.T) {
	path := writeExport(t, testExport)
	out := new(bytes.Buffer)
	err := printView(out, path, TopTracksAnalyzer{Config: AnalyserConfig{FilterThreshold: 1}})
	if err != nil {
		t.Fatalf("printView: %v", err)
	}
	got := out.String()
	if strings.Contains(got, "Track 2") {
		t.Fatalf("Track 2 has one play and should have been filtered:\n%s", got)
	}
	if !strings.Contains(got, "Showing 1 of 2 ranked tracks") {
		t.Fatalf("Unexpected summary:\n%s", got)
	}
}

func TestPrintSummary(t *testing.T) {
	path := writeExport(t, testExport)
	out := new(bytes.Buffer)
	if err := printView(out, path, SummaryAnalyzer{}); err != nil {
		t.Fatalf("printView: %v", err)
	}
	got := out.String()
	for _, want := range []string{"Hours listened", "Days with listening", "3 plays"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %q in output:\n%s", want, got)
		}
	}
}

func TestPrintSessions(t *testing.T) {
	path := writeExport(t, testExport)
	out := new(bytes.Buffer)
	if err := printView(out, path, SessionsAnalyzer{}); err != nil {
		t.Fatalf("printView: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "10:00") || !strings.Contains(got, "22:00") {
		t.Fatalf("Expected hours 10 and 22 in output:\n%s", got)
	}
	if !strings.Contains(got, "3 plays, most listening at 10:00") {
		t.Fatalf("Unexpected summary:\n%s", got)
	}
}

func TestPrintTrends(t *testing.T) {
	path := writeExport(t, testExport)
	out := new(bytes.Buffer)
	if err := printTrends(out, path, nil); err != nil {
		t.Fatalf("printTrends: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "2024-01-01") || !strings.Contains(got, "2024-01-06") {
		t.Fatalf("Expected both days in output:\n%s", got)
	}
	if !strings.Contains(got, "2 days, 2h 00m in total, busiest day 2024-01-01 (1h 30m)") {
		t.Fatalf("Unexpected summary:\n%s", got)
	}

	out.Reset()
	if err := printTrends(out, path, []string{"2024-01-06"}); err != nil {
		t.Fatalf("printTrends: %v", err)
	}
	got = out.String()
	if strings.Contains(got, "2024-01-01") {
		t.Fatalf("2024-01-01 is outside the window:\n%s", got)
	}

	if err := printTrends(out, path, []string{"derp"}); err == nil {
		t.Fatalf("printTrends should have errored with an invalid date string")
	}
}

func TestPrintHeatmap(t *testing.T) {
	path := writeExport(t, testExport)
	out := new(bytes.Buffer)
	if err := printHeatmap(out, path, ""); err != nil {
		t.Fatalf("printHeatmap: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Mon") || !strings.Contains(got, "Sat") {
		t.Fatalf("Expected Monday and Saturday rows:\n%s", got)
	}
	if !strings.Contains(got, "Busiest slot: Monday 10:00 (1h 30m)") {
		t.Fatalf("Unexpected summary:\n%s", got)
	}

	out.Reset()
	if err := printHeatmap(out, path, "sat"); err != nil {
		t.Fatalf("printHeatmap: %v", err)
	}
	if strings.Contains(out.String(), "Mon") {
		t.Fatalf("Monday should have been filtered out:\n%s", out.String())
	}

	if err := printHeatmap(out, path, "funday"); err == nil {
		t.Fatalf("printHeatmap should have errored with an invalid day")
	}
}

func TestFormatMinutes(t *testing.T) {
	for minutes, want := range map[float64]string{
		0:     "0h 00m",
		59.6:  "1h 00m",
		90:    "1h 30m",
		125.2: "2h 05m",
	} {
		if got := formatMinutes(minutes); got != want {
			t.Errorf("formatMinutes(%v) = %q, want %q", minutes, got, want)
		}
	}
}
