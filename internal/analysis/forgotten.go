package analysis

import (
	"sort"
	"time"

	"github.com/ademuri/streaming-history-tools/internal/history"
)

type ForgottenConfig struct {
	LastListenAfter   time.Time
	LastListenBefore  time.Time
	FirstListenAfter  time.Time
	FirstListenBefore time.Time
	MinArtistPlays    int
	MinAlbumPlays     int
	ResultsPerBand    int
	SortBy            string // "dormancy" or "listens"
}

type ForgottenArtist struct {
	Artist        string
	TotalPlays    int64
	FirstListen   time.Time
	LastListen    time.Time
	DaysSinceLast int
	Band          string
}

type ForgottenAlbum struct {
	Artist        string
	Album         string
	TotalPlays    int64
	FirstListen   time.Time
	LastListen    time.Time
	DaysSinceLast int
	Band          string
}

const (
	BandObsession = "Obsession"
	BandStrong    = "Strong"
	BandModerate  = "Moderate"

	// Artist Thresholds
	ThresholdArtistObsession = 120
	ThresholdArtistStrong    = 50
	ThresholdArtistModerate  = 15

	// Album Thresholds
	ThresholdAlbumObsession = 60
	ThresholdAlbumStrong    = 30
	ThresholdAlbumModerate  = 10
)

// Bands lists the interest bands from strongest to weakest.
var Bands = []string{BandObsession, BandStrong, BandModerate}

// GetThreshold returns the minimum plays for a given band and type (artist/album).
func GetThreshold(band string, isArtist bool) int {
	if isArtist {
		switch band {
		case BandObsession:
			return ThresholdArtistObsession
		case BandStrong:
			return ThresholdArtistStrong
		case BandModerate:
			return ThresholdArtistModerate
		}
	} else {
		switch band {
		case BandObsession:
			return ThresholdAlbumObsession
		case BandStrong:
			return ThresholdAlbumStrong
		case BandModerate:
			return ThresholdAlbumModerate
		}
	}
	return 0
}

func determineBand(plays int64, isArtist bool) string {
	for _, band := range Bands {
		if plays >= int64(GetThreshold(band, isArtist)) {
			return band
		}
	}
	return ""
}

// listenStats is the play count and listening span of one artist or album.
type listenStats struct {
	artist string
	album  string
	plays  int64
	first  time.Time
	last   time.Time
}

func (s *listenStats) add(e history.PlayEvent) {
	if s.plays == 0 || e.Timestamp.Before(s.first) {
		s.first = e.Timestamp
	}
	if s.plays == 0 || e.Timestamp.After(s.last) {
		s.last = e.Timestamp
	}
	s.plays++
}

// collectStats groups events by key in first-seen order. Events with an empty
// key are ignored.
func collectStats(events []history.PlayEvent, key func(e history.PlayEvent) (string, bool)) []*listenStats {
	index := make(map[string]*listenStats)
	var stats []*listenStats
	for _, e := range events {
		k, ok := key(e)
		if !ok {
			continue
		}
		s, found := index[k]
		if !found {
			s = &listenStats{artist: e.ArtistName, album: e.AlbumName}
			index[k] = s
			stats = append(stats, s)
		}
		s.add(e)
	}
	return stats
}

func (cfg ForgottenConfig) matches(s *listenStats, minPlays int) bool {
	if s.plays < int64(minPlays) {
		return false
	}
	if !cfg.LastListenAfter.IsZero() && !s.last.After(cfg.LastListenAfter) {
		return false
	}
	if !cfg.LastListenBefore.IsZero() && !s.last.Before(cfg.LastListenBefore) {
		return false
	}
	if !cfg.FirstListenAfter.IsZero() && !s.first.After(cfg.FirstListenAfter) {
		return false
	}
	if !cfg.FirstListenBefore.IsZero() && !s.first.Before(cfg.FirstListenBefore) {
		return false
	}
	return true
}

// LatestListen returns the timestamp of the most recent play, or the zero time
// if there are none.
func LatestListen(events []history.PlayEvent) time.Time {
	var latest time.Time
	for _, e := range events {
		if e.Timestamp.After(latest) {
			latest = e.Timestamp
		}
	}
	return latest
}

// ForgottenArtists finds artists with many plays whose last play falls in the
// configured window, grouped by interest band. Dormancy is measured from now.
func ForgottenArtists(events []history.PlayEvent, cfg ForgottenConfig, now time.Time) map[string][]ForgottenArtist {
	stats := collectStats(events, func(e history.PlayEvent) (string, bool) {
		return e.ArtistName, e.ArtistName != ""
	})

	results := make(map[string][]ForgottenArtist)
	for _, s := range stats {
		if !cfg.matches(s, cfg.MinArtistPlays) {
			continue
		}
		a := ForgottenArtist{
			Artist:        s.artist,
			TotalPlays:    s.plays,
			FirstListen:   s.first,
			LastListen:    s.last,
			DaysSinceLast: int(now.Sub(s.last).Hours() / 24),
		}

		a.Band = determineBand(a.TotalPlays, true)
		if a.Band == "" {
			continue
		}

		results[a.Band] = append(results[a.Band], a)
	}

	for band := range results {
		sortArtists(results[band], cfg.SortBy)
		if cfg.ResultsPerBand > 0 && len(results[band]) > cfg.ResultsPerBand {
			results[band] = results[band][:cfg.ResultsPerBand]
		}
	}

	return results
}

// ForgottenAlbums is ForgottenArtists for albums. Plays without an album name,
// as in the account data export, are ignored.
func ForgottenAlbums(events []history.PlayEvent, cfg ForgottenConfig, now time.Time) map[string][]ForgottenAlbum {
	stats := collectStats(events, func(e history.PlayEvent) (string, bool) {
		return e.ArtistName + "\x00" + e.AlbumName, e.AlbumName != ""
	})

	results := make(map[string][]ForgottenAlbum)
	for _, s := range stats {
		if !cfg.matches(s, cfg.MinAlbumPlays) {
			continue
		}
		a := ForgottenAlbum{
			Artist:        s.artist,
			Album:         s.album,
			TotalPlays:    s.plays,
			FirstListen:   s.first,
			LastListen:    s.last,
			DaysSinceLast: int(now.Sub(s.last).Hours() / 24),
		}

		a.Band = determineBand(a.TotalPlays, false)
		if a.Band == "" {
			continue
		}

		results[a.Band] = append(results[a.Band], a)
	}

	for band := range results {
		sortAlbums(results[band], cfg.SortBy)
		if cfg.ResultsPerBand > 0 && len(results[band]) > cfg.ResultsPerBand {
			results[band] = results[band][:cfg.ResultsPerBand]
		}
	}

	return results
}

func sortArtists(artists []ForgottenArtist, sortBy string) {
	sort.SliceStable(artists, func(i, j int) bool {
		if sortBy == "listens" {
			return artists[i].TotalPlays > artists[j].TotalPlays
		}
		// Default to dormancy (longest dormancy first)
		return artists[i].DaysSinceLast > artists[j].DaysSinceLast
	})
}

func sortAlbums(albums []ForgottenAlbum, sortBy string) {
	sort.SliceStable(albums, func(i, j int) bool {
		if sortBy == "listens" {
			return albums[i].TotalPlays > albums[j].TotalPlays
		}
		return albums[i].DaysSinceLast > albums[j].DaysSinceLast
	})
}
