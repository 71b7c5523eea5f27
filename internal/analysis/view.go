package analysis

import (
	"time"
)

// Top returns at most the first n entries. n <= 0 returns all of them.
func Top(entries []RankedEntry, n int) []RankedEntry {
	if entries == nil {
		return []RankedEntry{}
	}
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}

// Window returns a copy of b whose daily trend only covers dates in
// [start, end). Zero times leave that side of the window open.
func (b *Bundle) Window(start, end time.Time) *Bundle {
	out := b.clone()
	out.DailyTrend = make([]DailyListening, 0, len(b.DailyTrend))
	for _, d := range b.DailyTrend {
		date, err := time.Parse(dateFormat, d.Date)
		if err != nil {
			continue
		}
		if !start.IsZero() && date.Before(start) {
			continue
		}
		if !end.IsZero() && !date.Before(end) {
			continue
		}
		out.DailyTrend = append(out.DailyTrend, d)
	}
	return out
}

// OnDays returns a copy of b whose heatmap only keeps the given days of the
// week. No days keeps everything.
func (b *Bundle) OnDays(days ...time.Weekday) *Bundle {
	out := b.clone()
	if len(days) == 0 {
		return out
	}
	var keep [7]bool
	for _, d := range days {
		if d >= time.Sunday && d <= time.Saturday {
			keep[d] = true
		}
	}
	out.Heatmap = make([]HeatmapCell, 0, len(b.Heatmap))
	for _, c := range b.Heatmap {
		if c.DayOfWeek >= 0 && c.DayOfWeek < 7 && keep[c.DayOfWeek] {
			out.Heatmap = append(out.Heatmap, c)
		}
	}
	return out
}

// Limit returns a copy of b with both rankings cut to n entries.
func (b *Bundle) Limit(n int) *Bundle {
	out := b.clone()
	out.TopTracks = Top(out.TopTracks, n)
	out.TopArtists = Top(out.TopArtists, n)
	return out
}

const dateFormat = "2006-01-02"

// clone copies every view so that filtered bundles never share backing
// arrays with b.
func (b *Bundle) clone() *Bundle {
	out := *b
	out.TopTracks = append([]RankedEntry{}, b.TopTracks...)
	out.TopArtists = append([]RankedEntry{}, b.TopArtists...)
	out.DailyTrend = append([]DailyListening{}, b.DailyTrend...)
	out.Sessions = append([]ListeningSession{}, b.Sessions...)
	out.Heatmap = append([]HeatmapCell{}, b.Heatmap...)
	return &out
}
