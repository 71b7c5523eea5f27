package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ademuri/streaming-history-tools/internal/analysis"
)

// SnapshotInfo describes a stored snapshot without its views.
type SnapshotInfo struct {
	ID      int64
	Source  string
	Created time.Time
}

// LatestSnapshot returns the most recently saved snapshot. ok is false when
// the database has none.
func (s *Store) LatestSnapshot() (info SnapshotInfo, ok bool, err error) {
	row := s.db.QueryRow("SELECT id, source, created FROM Snapshot ORDER BY id DESC LIMIT 1")
	err = row.Scan(&info.ID, &info.Source, &info.Created)
	if err == sql.ErrNoRows {
		return SnapshotInfo{}, false, nil
	}
	if err != nil {
		return SnapshotInfo{}, false, fmt.Errorf("getting latest snapshot: %w", err)
	}
	return info, true, nil
}

// ListSnapshots returns every stored snapshot, newest first.
func (s *Store) ListSnapshots() ([]SnapshotInfo, error) {
	rows, err := s.db.Query("SELECT id, source, created FROM Snapshot ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []SnapshotInfo
	for rows.Next() {
		var info SnapshotInfo
		if err := rows.Scan(&info.ID, &info.Source, &info.Created); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, info)
	}
	return snapshots, rows.Err()
}

// LoadBundle reads the snapshot with the given id back into a bundle.
func (s *Store) LoadBundle(id int64) (*analysis.Bundle, error) {
	b := &analysis.Bundle{}
	row := s.db.QueryRow(
		"SELECT total_hours, unique_tracks, unique_artists, unique_days FROM Snapshot WHERE id = ?", id)
	err := row.Scan(&b.TotalHours, &b.UniqueTrackCount, &b.UniqueArtistCount, &b.UniqueDayCount)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("snapshot %d doesn't exist", id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %d: %w", id, err)
	}

	if b.TopTracks, err = s.getRanking(id, kindTrack); err != nil {
		return nil, err
	}
	if b.TopArtists, err = s.getRanking(id, kindArtist); err != nil {
		return nil, err
	}
	if b.DailyTrend, err = s.getDailyTrend(id); err != nil {
		return nil, err
	}
	if b.Sessions, err = s.getSessions(id); err != nil {
		return nil, err
	}
	if b.Heatmap, err = s.getHeatmap(id); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Store) getRanking(snapshot int64, kind string) ([]analysis.RankedEntry, error) {
	rows, err := s.db.Query("SELECT name, plays FROM RankedEntry WHERE snapshot = ? AND kind = ? ORDER BY position", snapshot, kind)
	if err != nil {
		return nil, fmt.Errorf("querying %s ranking: %w", kind, err)
	}
	defer rows.Close()

	entries := []analysis.RankedEntry{}
	for rows.Next() {
		var e analysis.RankedEntry
		if err := rows.Scan(&e.Name, &e.Plays); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) getDailyTrend(snapshot int64) ([]analysis.DailyListening, error) {
	rows, err := s.db.Query("SELECT date, minutes FROM DailyListening WHERE snapshot = ? ORDER BY date", snapshot)
	if err != nil {
		return nil, fmt.Errorf("querying daily trend: %w", err)
	}
	defer rows.Close()

	trend := []analysis.DailyListening{}
	for rows.Next() {
		var d analysis.DailyListening
		if err := rows.Scan(&d.Date, &d.Minutes); err != nil {
			return nil, err
		}
		trend = append(trend, d)
	}
	return trend, rows.Err()
}

func (s *Store) getSessions(snapshot int64) ([]analysis.ListeningSession, error) {
	rows, err := s.db.Query("SELECT hour, duration FROM ListeningSession WHERE snapshot = ? ORDER BY position", snapshot)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	sessions := []analysis.ListeningSession{}
	for rows.Next() {
		var session analysis.ListeningSession
		if err := rows.Scan(&session.Hour, &session.Duration); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

func (s *Store) getHeatmap(snapshot int64) ([]analysis.HeatmapCell, error) {
	rows, err := s.db.Query("SELECT day_of_week, hour, intensity FROM HeatmapCell WHERE snapshot = ? ORDER BY day_of_week, hour", snapshot)
	if err != nil {
		return nil, fmt.Errorf("querying heatmap: %w", err)
	}
	defer rows.Close()

	cells := []analysis.HeatmapCell{}
	for rows.Next() {
		var c analysis.HeatmapCell
		if err := rows.Scan(&c.DayOfWeek, &c.Hour, &c.Intensity); err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	return cells, rows.Err()
}
