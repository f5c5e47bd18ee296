package library

import (
	"context"
	"fmt"
)

// folder_contents deliberately carries no foreign key on folder_id: deleting
// a folder with filed tracks leaves its membership rows orphaned rather than
// cascading or rejecting the delete. Callers that care can prune separately.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS tracks (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        file_path TEXT NOT NULL UNIQUE,
        title TEXT,
        artist TEXT,
        album TEXT,
        duration_seconds REAL,
        created_at TEXT NOT NULL,
        updated_at TEXT NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS track_tags (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        track_id INTEGER NOT NULL REFERENCES tracks(id) ON DELETE CASCADE,
        tag_type TEXT NOT NULL,
        tag_value TEXT NOT NULL,
        created_at TEXT NOT NULL,
        UNIQUE (track_id, tag_type, tag_value)
    )`,
	`CREATE TABLE IF NOT EXISTS folders (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        name TEXT NOT NULL,
        description TEXT,
        parent_id INTEGER REFERENCES folders(id),
        folder_order INTEGER NOT NULL DEFAULT 0,
        is_system INTEGER NOT NULL DEFAULT 0,
        metadata TEXT,
        created_at TEXT NOT NULL,
        updated_at TEXT NOT NULL
    )`,
	`CREATE TABLE IF NOT EXISTS folder_contents (
        folder_id INTEGER NOT NULL,
        track_id INTEGER NOT NULL REFERENCES tracks(id) ON DELETE CASCADE,
        track_order INTEGER NOT NULL DEFAULT 0,
        added_at TEXT NOT NULL,
        UNIQUE (folder_id, track_id)
    )`,
	`CREATE INDEX IF NOT EXISTS idx_track_tags_track ON track_tags(track_id)`,
	`CREATE INDEX IF NOT EXISTS idx_folders_parent ON folders(parent_id)`,
	`CREATE INDEX IF NOT EXISTS idx_folder_contents_folder ON folder_contents(folder_id)`,
	`CREATE INDEX IF NOT EXISTS idx_folder_contents_track ON folder_contents(track_id)`,
}

func (s *Store) initSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
