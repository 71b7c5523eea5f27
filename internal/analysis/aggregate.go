// Package analysis turns play events into the views shown on the dashboard.
//
// Everything here is a pure function of its input. The bundle is recomputed
// in full for every export; there is no incremental update.
package analysis

import (
	"math"
	"sort"

	"github.com/ademuri/streaming-history-tools/internal/history"
)

const (
	msPerMinute = 60000
	msPerHour   = 3600000
)

// Aggregate derives the dashboard bundle using DefaultConfig.
func Aggregate(events []history.PlayEvent) *Bundle {
	return AggregateWithConfig(events, DefaultConfig())
}

// AggregateWithConfig derives the dashboard bundle in a single pass over
// events.
func AggregateWithConfig(events []history.PlayEvent, config Config) *Bundle {
	var acc accumulator
	acc.init(len(events))
	for _, e := range events {
		acc.add(e)
	}

	summary := acc.summary()
	return &Bundle{
		TotalHours:        summary.TotalHours,
		UniqueTrackCount:  summary.UniqueTrackCount,
		UniqueArtistCount: summary.UniqueArtistCount,
		UniqueDayCount:    summary.UniqueDayCount,
		TopTracks:         acc.tracks.ranked(config.TopN),
		TopArtists:        acc.artists.ranked(config.TopN),
		DailyTrend:        acc.days.trend(),
		Sessions:          acc.sessions,
		Heatmap:           acc.heat.cells(),
	}
}

// Summarize returns the headline counters only.
func Summarize(events []history.PlayEvent) Summary {
	var acc accumulator
	acc.init(0)
	for _, e := range events {
		acc.totalMs += e.MsPlayed
		acc.tracks.add(e.TrackName)
		acc.artists.add(e.ArtistName)
		acc.days.add(e.Date(), e.MsPlayed)
	}
	return acc.summary()
}

// RankTracks counts one play per event per track name. Events without a
// track name are ignored. n <= 0 keeps the whole ranking.
func RankTracks(events []history.PlayEvent, n int) []RankedEntry {
	c := newCounter()
	for _, e := range events {
		c.add(e.TrackName)
	}
	return c.ranked(n)
}

// RankArtists is RankTracks for artist names.
func RankArtists(events []history.PlayEvent, n int) []RankedEntry {
	c := newCounter()
	for _, e := range events {
		c.add(e.ArtistName)
	}
	return c.ranked(n)
}

// DailyTrend returns minutes played per calendar date, ascending by date.
func DailyTrend(events []history.PlayEvent) []DailyListening {
	d := dailyTotals{}
	for _, e := range events {
		d.add(e.Date(), e.MsPlayed)
	}
	return d.trend()
}

// Sessions returns one point per event, in input order.
func Sessions(events []history.PlayEvent) []ListeningSession {
	sessions := make([]ListeningSession, 0, len(events))
	for _, e := range events {
		sessions = append(sessions, toSession(e))
	}
	return sessions
}

// Heatmap sums minutes per (day of week, hour) bucket. Only observed
// buckets are returned, ordered by day then hour.
func Heatmap(events []history.PlayEvent) []HeatmapCell {
	var h heatmap
	for _, e := range events {
		h.add(e.DayOfWeek(), e.Hour(), e.MsPlayed)
	}
	return h.cells()
}

type accumulator struct {
	totalMs  float64
	tracks   *counter
	artists  *counter
	days     dailyTotals
	heat     heatmap
	sessions []ListeningSession
}

func (a *accumulator) init(numEvents int) {
	a.tracks = newCounter()
	a.artists = newCounter()
	a.days = dailyTotals{}
	a.sessions = make([]ListeningSession, 0, numEvents)
}

func (a *accumulator) add(e history.PlayEvent) {
	a.totalMs += e.MsPlayed
	a.tracks.add(e.TrackName)
	a.artists.add(e.ArtistName)
	a.days.add(e.Date(), e.MsPlayed)
	a.heat.add(e.DayOfWeek(), e.Hour(), e.MsPlayed)
	a.sessions = append(a.sessions, toSession(e))
}

func (a *accumulator) summary() Summary {
	return Summary{
		TotalHours:        roundHalfUp(a.totalMs / msPerHour),
		UniqueTrackCount:  len(a.tracks.entries),
		UniqueArtistCount: len(a.artists.entries),
		UniqueDayCount:    len(a.days),
	}
}

func toSession(e history.PlayEvent) ListeningSession {
	return ListeningSession{Hour: e.Hour(), Duration: e.Minutes()}
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// counter keeps play counts in first-encounter order so that a stable sort
// breaks ties by earliest appearance.
type counter struct {
	index   map[string]int
	entries []RankedEntry
}

func newCounter() *counter {
	return &counter{index: map[string]int{}}
}

func (c *counter) add(name string) {
	if name == "" {
		return
	}
	i, ok := c.index[name]
	if !ok {
		i = len(c.entries)
		c.index[name] = i
		c.entries = append(c.entries, RankedEntry{Name: name})
	}
	c.entries[i].Plays++
}

func (c *counter) ranked(n int) []RankedEntry {
	out := make([]RankedEntry, len(c.entries))
	copy(out, c.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Plays > out[j].Plays
	})
	return Top(out, n)
}

// dailyTotals maps yyyy-mm-dd to milliseconds played.
type dailyTotals map[string]float64

func (d dailyTotals) add(date string, ms float64) {
	d[date] += ms
}

func (d dailyTotals) trend() []DailyListening {
	trend := make([]DailyListening, 0, len(d))
	for date, ms := range d {
		trend = append(trend, DailyListening{Date: date, Minutes: ms / msPerMinute})
	}
	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Date < trend[j].Date
	})
	return trend
}

type heatmap struct {
	ms   [7][24]float64
	seen [7][24]bool
}

func (h *heatmap) add(day, hour int, ms float64) {
	h.ms[day][hour] += ms
	h.seen[day][hour] = true
}

func (h *heatmap) cells() []HeatmapCell {
	cells := []HeatmapCell{}
	for day := range h.ms {
		for hour := range h.ms[day] {
			if !h.seen[day][hour] {
				continue
			}
			cells = append(cells, HeatmapCell{
				DayOfWeek: day,
				Hour:      hour,
				Intensity: h.ms[day][hour] / msPerMinute,
			})
		}
	}
	return cells
}
