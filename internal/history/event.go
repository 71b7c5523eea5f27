// Package history decodes streaming-history exports into play events.
package history

import (
	"fmt"
	"strings"
	"time"
)

// PlayEvent is one recorded play of a track.
type PlayEvent struct {
	// Timestamp holds the literal calendar components of RawTimestamp. No
	// timezone conversion is applied.
	Timestamp    time.Time
	RawTimestamp string

	TrackName  string
	ArtistName string
	AlbumName  string

	MsPlayed float64
}

const dateFormat = "2006-01-02"

// Date returns the calendar date of the play as yyyy-mm-dd.
func (e PlayEvent) Date() string {
	return e.Timestamp.Format(dateFormat)
}

// Hour returns the hour of day, 0-23.
func (e PlayEvent) Hour() int {
	return e.Timestamp.Hour()
}

// DayOfWeek returns 0 for Sunday through 6 for Saturday.
func (e PlayEvent) DayOfWeek() int {
	return int(e.Timestamp.Weekday())
}

// Minutes returns the playback duration in minutes.
func (e PlayEvent) Minutes() float64 {
	return e.MsPlayed / 60000
}

// Accepted layouts, most common first. Spotify's account data export uses
// "2006-01-02 15:04", extended history uses RFC 3339.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	dateFormat,
}

// ParseTimestamp parses a timestamp string, keeping its textual date and time
// components as-is.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
