package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// NewTrack describes a track to catalog.
type NewTrack struct {
	FilePath string
	Title    string
	Artist   string
	Album    string
	Duration float64
}

// AddTrack catalogs an audio file. Adding a file path already in the catalog
// updates its metadata instead of failing.
func (s *Store) AddTrack(ctx context.Context, spec NewTrack) (*Track, error) {
	ctx = ensureContext(ctx)
	if spec.FilePath == "" {
		return nil, errors.New("track file path required")
	}
	now := timestamp()
	if _, err := s.execWithRetry(
		ctx,
		`INSERT INTO tracks (file_path, title, artist, album, duration_seconds, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(file_path) DO UPDATE SET
             title = excluded.title,
             artist = excluded.artist,
             album = excluded.album,
             duration_seconds = excluded.duration_seconds,
             updated_at = excluded.updated_at`,
		spec.FilePath,
		nullableString(spec.Title),
		nullableString(spec.Artist),
		nullableString(spec.Album),
		spec.Duration,
		now,
		now,
	); err != nil {
		return nil, fmt.Errorf("insert track: %w", err)
	}
	return s.TrackByPath(ctx, spec.FilePath)
}

// TrackByID fetches a track by identifier.
func (s *Store) TrackByID(ctx context.Context, id int64) (*Track, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+trackColumns+` FROM tracks WHERE id = ?`, id)
	track, err := scanTrack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("track %d: %w", id, ErrTrackNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get track: %w", err)
	}
	return track, nil
}

// TrackByPath fetches a track by its file path.
func (s *Store) TrackByPath(ctx context.Context, filePath string) (*Track, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+trackColumns+` FROM tracks WHERE file_path = ?`, filePath)
	track, err := scanTrack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("track %q: %w", filePath, ErrTrackNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get track: %w", err)
	}
	return track, nil
}

// ListTracks returns the whole catalog ordered by file path.
func (s *Store) ListTracks(ctx context.Context) ([]Track, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `SELECT `+trackColumns+` FROM tracks ORDER BY file_path`)
	if err != nil {
		return nil, fmt.Errorf("query tracks: %w", err)
	}
	defer rows.Close()
	return collectTracks(rows)
}

// DeleteTrack removes a track from the catalog. Its tags and folder
// memberships cascade away with it.
func (s *Store) DeleteTrack(ctx context.Context, id int64) error {
	ctx = ensureContext(ctx)
	res, err := s.execWithRetry(ctx, `DELETE FROM tracks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete track: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("track %d: %w", id, ErrTrackNotFound)
	}
	return nil
}

func collectTracks(rows *sql.Rows) ([]Track, error) {
	var tracks []Track
	for rows.Next() {
		track, err := scanTrack(rows)
		if err != nil {
			return nil, fmt.Errorf("scan track: %w", err)
		}
		tracks = append(tracks, *track)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tracks: %w", err)
	}
	return tracks, nil
}
