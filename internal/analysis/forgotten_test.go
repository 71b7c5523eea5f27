package analysis

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ademuri/streaming-history-tools/internal/history"
)

// listens returns count plays of one album, the last of them at lastListen.
func listens(artist, album string, count int, lastListen time.Time) []history.PlayEvent {
	var events []history.PlayEvent
	for i := 0; i < count; i++ {
		ts := lastListen.Add(time.Duration(-i) * time.Minute)
		events = append(events, history.PlayEvent{
			Timestamp:  ts,
			TrackName:  fmt.Sprintf("Track %s %s", artist, album),
			ArtistName: artist,
			AlbumName:  album,
			MsPlayed:   180000,
		})
	}
	return events
}

func defaultForgottenConfig(now time.Time) ForgottenConfig {
	return ForgottenConfig{
		LastListenBefore: now.AddDate(0, 0, -90),
		MinArtistPlays:   ThresholdArtistModerate,
		MinAlbumPlays:    ThresholdAlbumModerate,
		ResultsPerBand:   10,
		SortBy:           "dormancy",
	}
}

func TestForgottenArtists(t *testing.T) {
	now := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	twoYearsAgo := now.AddDate(-2, 0, 0)

	var events []history.PlayEvent
	events = append(events, listens("Artist A", "Album A1", ThresholdArtistObsession, twoYearsAgo)...) // Obsession
	events = append(events, listens("Artist B", "Album B1", ThresholdArtistObsession, now)...)         // Recent
	events = append(events, listens("Artist C", "Album C1", ThresholdArtistModerate, twoYearsAgo)...)  // Moderate
	events = append(events, listens("Artist D", "Album D1", 5, twoYearsAgo)...)                        // Ignore

	results := ForgottenArtists(events, defaultForgottenConfig(now), now)

	require.Len(t, results[BandObsession], 1)
	assert.Equal(t, "Artist A", results[BandObsession][0].Artist)
	assert.Equal(t, int64(ThresholdArtistObsession), results[BandObsession][0].TotalPlays)
	assert.Equal(t, 730, results[BandObsession][0].DaysSinceLast)

	assert.Empty(t, results[BandStrong])

	require.Len(t, results[BandModerate], 1)
	assert.Equal(t, "Artist C", results[BandModerate][0].Artist)
}

func TestForgottenAlbums(t *testing.T) {
	now := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	twoYearsAgo := now.AddDate(-2, 0, 0)

	var events []history.PlayEvent
	events = append(events, listens("Artist A", "Album A1", ThresholdAlbumObsession, twoYearsAgo)...)
	events = append(events, listens("Artist A", "Album A2", ThresholdAlbumModerate, twoYearsAgo)...)
	events = append(events, listens("Artist B", "Album B1", ThresholdAlbumObsession, now)...)
	events = append(events, listens("Artist C", "", ThresholdAlbumObsession, twoYearsAgo)...)

	results := ForgottenAlbums(events, defaultForgottenConfig(now), now)

	require.Len(t, results[BandObsession], 1)
	assert.Equal(t, "Album A1", results[BandObsession][0].Album)
	assert.Equal(t, "Artist A", results[BandObsession][0].Artist)

	require.Len(t, results[BandModerate], 1)
	assert.Equal(t, "Album A2", results[BandModerate][0].Album)
}

func TestForgottenArtistsWithDateRange(t *testing.T) {
	now := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	var events []history.PlayEvent
	// Artist A: Last listen 5 years ago
	events = append(events, listens("Artist A", "A1", ThresholdArtistObsession, now.AddDate(-5, 0, 0))...)
	// Artist B: Last listen 2 years ago
	events = append(events, listens("Artist B", "B1", ThresholdArtistObsession, now.AddDate(-2, 0, 0))...)

	config := ForgottenConfig{
		LastListenAfter:  now.AddDate(-3, 0, 0),
		LastListenBefore: now.AddDate(-1, 0, 0),
		MinArtistPlays:   10,
		ResultsPerBand:   10,
	}

	results := ForgottenArtists(events, config, now)
	require.Len(t, results[BandObsession], 1)
	assert.Equal(t, "Artist B", results[BandObsession][0].Artist)
}

func TestForgottenArtistsFirstListenRange(t *testing.T) {
	now := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	var events []history.PlayEvent
	events = append(events, listens("Artist A", "A1", ThresholdArtistStrong, now.AddDate(-5, 0, 0))...)
	events = append(events, listens("Artist B", "B1", ThresholdArtistStrong, now.AddDate(-2, 0, 0))...)

	config := defaultForgottenConfig(now)
	config.FirstListenAfter = now.AddDate(-4, 0, 0)

	results := ForgottenArtists(events, config, now)
	require.Len(t, results[BandStrong], 1)
	assert.Equal(t, "Artist B", results[BandStrong][0].Artist)
}

func TestForgottenArtistsSorting(t *testing.T) {
	now := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	var events []history.PlayEvent
	events = append(events, listens("Recent heavy", "", ThresholdArtistModerate+10, now.AddDate(-1, 0, 0))...)
	events = append(events, listens("Old light", "", ThresholdArtistModerate, now.AddDate(-3, 0, 0))...)

	config := defaultForgottenConfig(now)
	results := ForgottenArtists(events, config, now)
	require.Len(t, results[BandModerate], 2)
	assert.Equal(t, "Old light", results[BandModerate][0].Artist)

	config.SortBy = "listens"
	results = ForgottenArtists(events, config, now)
	require.Len(t, results[BandModerate], 2)
	assert.Equal(t, "Recent heavy", results[BandModerate][0].Artist)

	config.ResultsPerBand = 1
	results = ForgottenArtists(events, config, now)
	assert.Len(t, results[BandModerate], 1)
}

func TestForgottenIgnoresMissingNames(t *testing.T) {
	now := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	events := listens("", "", ThresholdArtistObsession, now.AddDate(-2, 0, 0))

	assert.Empty(t, ForgottenArtists(events, defaultForgottenConfig(now), now))
	assert.Empty(t, ForgottenAlbums(events, defaultForgottenConfig(now), now))
}

func TestGetThreshold(t *testing.T) {
	assert.Equal(t, ThresholdArtistStrong, GetThreshold(BandStrong, true))
	assert.Equal(t, ThresholdAlbumStrong, GetThreshold(BandStrong, false))
	assert.Equal(t, 0, GetThreshold("Unknown", true))

	assert.Equal(t, BandObsession, determineBand(ThresholdArtistObsession, true))
	assert.Equal(t, BandStrong, determineBand(ThresholdArtistObsession-1, true))
	assert.Equal(t, "", determineBand(ThresholdArtistModerate-1, true))
}

func TestLatestListen(t *testing.T) {
	assert.True(t, LatestListen(nil).IsZero())

	now := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	events := append(listens("A", "", 3, now), listens("B", "", 2, now.AddDate(-1, 0, 0))...)
	assert.Equal(t, now, LatestListen(events))
}
