package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ademuri/streaming-history-tools/internal/analysis"
)

const (
	kindTrack  = "track"
	kindArtist = "artist"
)

// SaveBundle writes b as a new snapshot in one transaction and returns the
// snapshot id. source is a free-form label, usually the export's file name.
func (s *Store) SaveBundle(source string, b *analysis.Bundle) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO Snapshot (source, created, total_hours, unique_tracks, unique_artists, unique_days) VALUES (?, ?, ?, ?, ?, ?)",
		source, time.Now(), b.TotalHours, b.UniqueTrackCount, b.UniqueArtistCount, b.UniqueDayCount)
	if err != nil {
		return 0, fmt.Errorf("inserting snapshot %q: %w", source, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading snapshot id: %w", err)
	}

	if err := insertRanking(tx, id, kindTrack, b.TopTracks); err != nil {
		return 0, err
	}
	if err := insertRanking(tx, id, kindArtist, b.TopArtists); err != nil {
		return 0, err
	}
	if err := insertDailyTrend(tx, id, b.DailyTrend); err != nil {
		return 0, err
	}
	if err := insertSessions(tx, id, b.Sessions); err != nil {
		return 0, err
	}
	if err := insertHeatmap(tx, id, b.Heatmap); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return id, nil
}

func insertRanking(tx *sql.Tx, snapshot int64, kind string, entries []analysis.RankedEntry) error {
	stmt, err := tx.Prepare("INSERT INTO RankedEntry (snapshot, kind, position, name, plays) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing %s ranking: %w", kind, err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.Exec(snapshot, kind, i+1, e.Name, e.Plays); err != nil {
			return fmt.Errorf("inserting %s %q: %w", kind, e.Name, err)
		}
	}
	return nil
}

func insertDailyTrend(tx *sql.Tx, snapshot int64, trend []analysis.DailyListening) error {
	stmt, err := tx.Prepare("INSERT INTO DailyListening (snapshot, date, minutes) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing daily trend: %w", err)
	}
	defer stmt.Close()

	for _, d := range trend {
		if _, err := stmt.Exec(snapshot, d.Date, d.Minutes); err != nil {
			return fmt.Errorf("inserting day %s: %w", d.Date, err)
		}
	}
	return nil
}

func insertSessions(tx *sql.Tx, snapshot int64, sessions []analysis.ListeningSession) error {
	stmt, err := tx.Prepare("INSERT INTO ListeningSession (snapshot, position, hour, duration) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing sessions: %w", err)
	}
	defer stmt.Close()

	for i, session := range sessions {
		if _, err := stmt.Exec(snapshot, i, session.Hour, session.Duration); err != nil {
			return fmt.Errorf("inserting session %d: %w", i, err)
		}
	}
	return nil
}

func insertHeatmap(tx *sql.Tx, snapshot int64, cells []analysis.HeatmapCell) error {
	stmt, err := tx.Prepare("INSERT INTO HeatmapCell (snapshot, day_of_week, hour, intensity) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing heatmap: %w", err)
	}
	defer stmt.Close()

	for _, c := range cells {
		if _, err := stmt.Exec(snapshot, c.DayOfWeek, c.Hour, c.Intensity); err != nil {
			return fmt.Errorf("inserting heatmap cell %d/%d: %w", c.DayOfWeek, c.Hour, err)
		}
	}
	return nil
}
