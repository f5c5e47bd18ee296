package library

import (
	"context"
	"fmt"
)

// AddToFolder files a track into a folder, appending it after the current
// last track. Filing the same track into the same folder twice is a no-op
// and reports added=false.
func (s *Store) AddToFolder(ctx context.Context, folderID, trackID int64) (bool, error) {
	ctx = ensureContext(ctx)
	if _, err := s.FolderByID(ctx, folderID); err != nil {
		return false, err
	}
	if _, err := s.TrackByID(ctx, trackID); err != nil {
		return false, err
	}
	res, err := s.execWithRetry(
		ctx,
		`INSERT OR IGNORE INTO folder_contents (folder_id, track_id, track_order, added_at)
         VALUES (?, ?, (SELECT COALESCE(MAX(track_order), 0) + 1 FROM folder_contents WHERE folder_id = ?), ?)`,
		folderID,
		trackID,
		folderID,
		timestamp(),
	)
	if err != nil {
		return false, fmt.Errorf("add track to folder: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// RemoveFromFolder unfiles a track from a folder. Removing a membership that
// does not exist is a no-op.
func (s *Store) RemoveFromFolder(ctx context.Context, folderID, trackID int64) error {
	ctx = ensureContext(ctx)
	if _, err := s.execWithRetry(
		ctx,
		`DELETE FROM folder_contents WHERE folder_id = ? AND track_id = ?`,
		folderID,
		trackID,
	); err != nil {
		return fmt.Errorf("remove track from folder: %w", err)
	}
	return nil
}

// FoldersForTrack returns every folder the track is filed in.
func (s *Store) FoldersForTrack(ctx context.Context, trackID int64) ([]Folder, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+prefixColumns("f", folderColumns)+`
         FROM folders f
         JOIN folder_contents fc ON fc.folder_id = f.id
         WHERE fc.track_id = ?
         ORDER BY f.folder_order, f.name`,
		trackID,
	)
	if err != nil {
		return nil, fmt.Errorf("query folders for track: %w", err)
	}
	defer rows.Close()
	return collectFolders(rows)
}

// TracksInFolder returns the tracks filed directly in a folder in membership
// order.
func (s *Store) TracksInFolder(ctx context.Context, folderID int64) ([]Track, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+prefixColumns("t", trackColumns)+`
         FROM tracks t
         JOIN folder_contents fc ON fc.track_id = t.id
         WHERE fc.folder_id = ?
         ORDER BY fc.track_order, t.id`,
		folderID,
	)
	if err != nil {
		return nil, fmt.Errorf("query tracks in folder: %w", err)
	}
	defer rows.Close()
	return collectTracks(rows)
}

// FolderTrackCount returns the number of tracks filed directly in a folder.
func (s *Store) FolderTrackCount(ctx context.Context, folderID int64) (int64, error) {
	ctx = ensureContext(ctx)
	var count int64
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM folder_contents WHERE folder_id = ?`,
		folderID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count folder tracks: %w", err)
	}
	return count, nil
}

// FolderContentsView assembles a folder with its breadcrumb, subfolders, and
// filed tracks for display.
func (s *Store) FolderContentsView(ctx context.Context, folderID int64) (*FolderContents, error) {
	ctx = ensureContext(ctx)

	folder, err := s.FolderByID(ctx, folderID)
	if err != nil {
		return nil, err
	}
	breadcrumb, err := s.FolderPath(ctx, folderID)
	if err != nil {
		return nil, err
	}
	subfolders, err := s.Children(ctx, &folderID)
	if err != nil {
		return nil, err
	}
	tracks, err := s.TracksInFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}

	counts, err := s.directTrackCounts(ctx)
	if err != nil {
		return nil, err
	}
	nodes := make([]FolderNode, 0, len(subfolders))
	for _, sub := range subfolders {
		total, err := s.recursiveTrackCount(ctx, sub.ID, counts)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, FolderNode{
			Folder:         sub,
			FileCount:      counts[sub.ID],
			TotalFileCount: total,
		})
	}

	return &FolderContents{
		Folder:     *folder,
		Breadcrumb: breadcrumb,
		Subfolders: nodes,
		Tracks:     tracks,
	}, nil
}

func (s *Store) recursiveTrackCount(ctx context.Context, folderID int64, counts map[int64]int64) (int64, error) {
	total := counts[folderID]
	children, err := s.Children(ctx, &folderID)
	if err != nil {
		return 0, err
	}
	for _, child := range children {
		childTotal, err := s.recursiveTrackCount(ctx, child.ID, counts)
		if err != nil {
			return 0, err
		}
		total += childTotal
	}
	return total, nil
}

// FolderTagUnion returns the distinct type:value tags carried by tracks
// filed directly in a folder.
func (s *Store) FolderTagUnion(ctx context.Context, folderID int64) ([]string, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT DISTINCT tt.tag_type, tt.tag_value
         FROM track_tags tt
         JOIN folder_contents fc ON fc.track_id = tt.track_id
         WHERE fc.folder_id = ?
         ORDER BY tt.tag_type, tt.tag_value`,
		folderID,
	)
	if err != nil {
		return nil, fmt.Errorf("query folder tag union: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tagType, tagValue string
		if err := rows.Scan(&tagType, &tagValue); err != nil {
			return nil, fmt.Errorf("scan folder tag: %w", err)
		}
		tags = append(tags, tagType+":"+tagValue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folder tags: %w", err)
	}
	return tags, nil
}
