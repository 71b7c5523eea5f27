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
	"strings"
	"testing"
	"time"
)

func TestGetImplicitDateRange_year(t *testing.T) {
	doTestGetImplicitDateRange(t, "2020", "2021", "2006")
}

func TestGetImplicitDateRange_month(t *testing.T) {
	doTestGetImplicitDateRange(t, "2020-01", "2020-02", "2006-01")
}

func TestGetImplicitDateRange_day(t *testing.T) {
	doTestGetImplicitDateRange(t, "2020-01-01", "2020-01-02", "2006-01-02")
}

func TestGetImplicitDateRange_invalid(t *testing.T) {
	for _, ds := range []string{"2020-01-0123", "not_real", "20-01", ""} {
		_, _, err := getImplicitDateRange(ds)
		if err == nil {
			t.Fatalf("Expected error parsing %q", ds)
		}
		if !strings.Contains(err.Error(), "Invalid format") {
			t.Fatalf("Should have error with invalid format: %v", err)
		}
	}

	// Matches the pattern but isn't a real month.
	if _, _, err := getImplicitDateRange("2020-13"); err == nil {
		t.Fatalf("Expected error parsing month 13")
	}
}

func doTestGetImplicitDateRange(t *testing.T, startString string, endString string, format string) {
	t.Helper()
	start, end, err := getImplicitDateRange(startString)
	if err != nil {
		t.Fatalf("Parsing %q: %v", startString, err)
	}

	expectedStart, err := time.Parse(format, startString)
	if err != nil {
		t.Fatalf("Constructing expectedStart: %v", err)
	}

	expectedEnd, err := time.Parse(format, endString)
	if err != nil {
		t.Fatalf("Constructing expectedEnd: %v", err)
	}

	if start != expectedStart {
		t.Fatalf("Expected start to be %q, got %q", expectedStart, start)
	}

	if end != expectedEnd {
		t.Fatalf("Expected end to be %q, got %q", expectedEnd, end)
	}
}

func TestGetExplicitDateRange_valid(t *testing.T) {
	const startString = "2020"
	const endString = "2020-02-01"
	expectedStart, err := time.Parse("2006", startString)
	if err != nil {
		t.Fatalf("Constructing expectedStart: %v", err)
	}

	expectedEnd, err := time.Parse("2006-01-02", endString)
	if err != nil {
		t.Fatalf("Constructing expectedEnd: %v", err)
	}

	start, end, err := getExplicitDateRange(startString, endString)
	if err != nil {
		t.Fatalf("getExplicitDateRange(%q, %q): %v", startString, endString, err)
	}

	if start != expectedStart {
		t.Fatalf("Expected start to be %q, got %q", expectedStart, start)
	}

	if end != expectedEnd {
		t.Fatalf("Expected end to be %q, got %q", expectedEnd, end)
	}
}

func TestGetExplicitDateRange_invalid(t *testing.T) {
	_, _, err := getExplicitDateRange("2020", "abc")
	if err == nil {
		t.Fatalf("Expected error when parsing invalid datestring")
	}

	_, _, err = getExplicitDateRange("2020-02", "2020-01")
	if err == nil {
		t.Fatalf("Expected error when end is before start")
	}
}

func TestWindowFromArgs(t *testing.T) {
	start, end, err := windowFromArgs(nil)
	if err != nil {
		t.Fatalf("windowFromArgs(nil): %v", err)
	}
	if !start.IsZero() || !end.IsZero() {
		t.Fatalf("Expected an open window, got %v - %v", start, end)
	}

	if _, _, err := windowFromArgs([]string{"2020", "2021", "2022"}); err == nil {
		t.Fatalf("Expected error with three date arguments")
	}
}

func TestParseWeekdays(t *testing.T) {
	days, err := parseWeekdays("sat, Sunday,MON")
	if err != nil {
		t.Fatalf("parseWeekdays: %v", err)
	}
	want := []time.Weekday{time.Saturday, time.Sunday, time.Monday}
	if len(days) != len(want) {
		t.Fatalf("parseWeekdays = %v, want %v", days, want)
	}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("parseWeekdays = %v, want %v", days, want)
		}
	}

	days, err = parseWeekdays("")
	if err != nil || days != nil {
		t.Fatalf("parseWeekdays(\"\") = %v, %v; want no filter", days, err)
	}

	for _, bad := range []string{"mo", "funday", "mon,,tue"} {
		if _, err := parseWeekdays(bad); err == nil {
			t.Errorf("Expected error parsing %q", bad)
		}
	}
}
