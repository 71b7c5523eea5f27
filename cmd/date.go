package cmd

import (
	"fmt"
	"regexp"
	"time"
)

// ParsedDate is a date string along with the precision it was given in.
type ParsedDate struct {
	Date  time.Time
	Year  bool
	Month bool
	Day   bool
}

var datestringFormats = []struct {
	pattern *regexp.Regexp
	layout  string
	unit    string
}{
	{regexp.MustCompile(`^\d{4}$`), "2006", "year"},
	{regexp.MustCompile(`^\d{4}-\d{2}$`), "2006-01", "month"},
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), "2006-01-02", "day"},
}

// windowFromArgs is parseDateRangeFromArgs, except that no arguments means an
// open window.
func windowFromArgs(args []string) (start time.Time, end time.Time, err error) {
	if len(args) == 0 {
		return
	}
	return parseDateRangeFromArgs(args)
}

func parseDateRangeFromArgs(args []string) (start time.Time, end time.Time, err error) {
	switch len(args) {
	case 1:
		start, end, err = getImplicitDateRange(args[0])

	case 2:
		start, end, err = getExplicitDateRange(args[0], args[1])

	default:
		err = fmt.Errorf("Expected one or two date arguments")
	}
	return
}

// getImplicitDateRange covers the whole year, month or day named by ds.
func getImplicitDateRange(ds string) (start time.Time, end time.Time, err error) {
	date, err := parseSingleDatestring(ds)
	if err != nil {
		return
	}

	start = date.Date
	switch {
	case date.Year:
		end = start.AddDate(1, 0, 0)

	case date.Month:
		end = start.AddDate(0, 1, 0)

	case date.Day:
		end = start.AddDate(0, 0, 1)

	default:
		err = fmt.Errorf("Invalid format: %q", ds)
	}

	return
}

// getExplicitDateRange runs from the start of startString up to, but not
// including, the start of endString.
func getExplicitDateRange(startString, endString string) (start time.Time, end time.Time, err error) {
	startParsed, err := parseSingleDatestring(startString)
	if err != nil {
		return
	}
	start = startParsed.Date

	endParsed, err := parseSingleDatestring(endString)
	if err != nil {
		return
	}
	end = endParsed.Date

	if !end.After(start) {
		err = fmt.Errorf("End date %q must be after start date %q", endString, startString)
	}
	return
}

func parseSingleDatestring(ds string) (date ParsedDate, err error) {
	for _, f := range datestringFormats {
		if !f.pattern.MatchString(ds) {
			continue
		}
		date.Date, err = time.Parse(f.layout, ds)
		if err != nil {
			err = fmt.Errorf("Parsing datestring as %s: %w", f.unit, err)
			return
		}
		switch f.unit {
		case "year":
			date.Year = true
		case "month":
			date.Month = true
		case "day":
			date.Day = true
		}
		return
	}

	err = fmt.Errorf("Invalid format: %q", ds)
	return
}
