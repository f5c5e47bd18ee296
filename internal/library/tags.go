package library

import (
	"context"
	"fmt"
	"strings"
)

// AddTag attaches a type:value tag to a track. Re-adding an existing tag is
// a no-op.
func (s *Store) AddTag(ctx context.Context, trackID int64, tagType, tagValue string) error {
	ctx = ensureContext(ctx)
	if tagType == "" || tagValue == "" {
		return fmt.Errorf("tag type and value required")
	}
	if _, err := s.TrackByID(ctx, trackID); err != nil {
		return err
	}
	if _, err := s.execWithRetry(
		ctx,
		`INSERT OR IGNORE INTO track_tags (track_id, tag_type, tag_value, created_at) VALUES (?, ?, ?, ?)`,
		trackID,
		tagType,
		tagValue,
		timestamp(),
	); err != nil {
		return fmt.Errorf("add tag: %w", err)
	}
	return nil
}

// RemoveTag detaches a type:value tag from a track.
func (s *Store) RemoveTag(ctx context.Context, trackID int64, tagType, tagValue string) error {
	ctx = ensureContext(ctx)
	if _, err := s.execWithRetry(
		ctx,
		`DELETE FROM track_tags WHERE track_id = ? AND tag_type = ? AND tag_value = ?`,
		trackID,
		tagType,
		tagValue,
	); err != nil {
		return fmt.Errorf("remove tag: %w", err)
	}
	return nil
}

// TagsForTrack returns a track's tags as type:value strings ordered by type
// then value.
func (s *Store) TagsForTrack(ctx context.Context, trackID int64) ([]string, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT tag_type, tag_value FROM track_tags WHERE track_id = ? ORDER BY tag_type, tag_value`,
		trackID,
	)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tagType, tagValue string
		if err := rows.Scan(&tagType, &tagValue); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, tagType+":"+tagValue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return tags, nil
}

// UnfiledTaggedTrackIDs returns tracks that carry at least one tag but are
// not filed in any folder, ordered by id. These are the candidates for an
// organizer run.
func (s *Store) UnfiledTaggedTrackIDs(ctx context.Context) ([]int64, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT DISTINCT tt.track_id
         FROM track_tags tt
         WHERE tt.track_id NOT IN (SELECT track_id FROM folder_contents)
         ORDER BY tt.track_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query unfiled tracks: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan track id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate track ids: %w", err)
	}
	return ids, nil
}

// SplitTag separates a type:value tag string into its parts. A tag with no
// colon is treated as having an empty type.
func SplitTag(tag string) (tagType, tagValue string) {
	if idx := strings.Index(tag, ":"); idx >= 0 {
		return tag[:idx], tag[idx+1:]
	}
	return "", tag
}
