package library

import (
	"database/sql"
	"strings"
	"time"
)

// Folder is a node in the virtual folder taxonomy. ParentID is nil for root
// folders; the parent relation is kept acyclic by MoveFolder.
type Folder struct {
	ID          int64
	Name        string
	Description string
	ParentID    *int64
	Order       int
	IsSystem    bool
	Metadata    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FolderNode is a folder plus its materialized subtree, used for display.
// FileCount is the number of tracks filed directly in the folder;
// TotalFileCount additionally sums every descendant folder.
type FolderNode struct {
	Folder         Folder
	Children       []FolderNode
	FileCount      int64
	TotalFileCount int64
}

// Track is an audio file in the library catalog.
type Track struct {
	ID        int64
	FilePath  string
	Title     string
	Artist    string
	Album     string
	Duration  float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FolderContents is a folder-centric view: the folder itself, its breadcrumb
// path from the root, its direct subfolders with recursive counts, and the
// tracks filed in it in membership order.
type FolderContents struct {
	Folder     Folder
	Breadcrumb []Folder
	Subfolders []FolderNode
	Tracks     []Track
}

const folderColumns = "id, name, description, parent_id, folder_order, is_system, metadata, created_at, updated_at"

func scanFolder(scanner interface{ Scan(dest ...any) error }) (*Folder, error) {
	var (
		id          int64
		name        string
		description sql.NullString
		parentID    sql.NullInt64
		order       int
		isSystem    sql.NullInt64
		metadata    sql.NullString
		createdRaw  sql.NullString
		updatedRaw  sql.NullString
	)
	if err := scanner.Scan(&id, &name, &description, &parentID, &order, &isSystem, &metadata, &createdRaw, &updatedRaw); err != nil {
		return nil, err
	}

	folder := &Folder{
		ID:          id,
		Name:        name,
		Description: description.String,
		Order:       order,
		IsSystem:    isSystem.Int64 != 0,
		Metadata:    metadata.String,
		CreatedAt:   parseTimestamp(createdRaw),
		UpdatedAt:   parseTimestamp(updatedRaw),
	}
	if parentID.Valid {
		value := parentID.Int64
		folder.ParentID = &value
	}
	return folder, nil
}

const trackColumns = "id, file_path, title, artist, album, duration_seconds, created_at, updated_at"

func scanTrack(scanner interface{ Scan(dest ...any) error }) (*Track, error) {
	var (
		id         int64
		filePath   string
		title      sql.NullString
		artist     sql.NullString
		album      sql.NullString
		duration   sql.NullFloat64
		createdRaw sql.NullString
		updatedRaw sql.NullString
	)
	if err := scanner.Scan(&id, &filePath, &title, &artist, &album, &duration, &createdRaw, &updatedRaw); err != nil {
		return nil, err
	}
	return &Track{
		ID:        id,
		FilePath:  filePath,
		Title:     title.String,
		Artist:    artist.String,
		Album:     album.String,
		Duration:  duration.Float64,
		CreatedAt: parseTimestamp(createdRaw),
		UpdatedAt: parseTimestamp(updatedRaw),
	}, nil
}

func parseTimestamp(raw sql.NullString) time.Time {
	if !raw.Valid || raw.String == "" {
		return time.Time{}
	}
	if parsed, err := time.Parse(time.RFC3339Nano, raw.String); err == nil {
		return parsed
	}
	if parsed, err := time.Parse(time.RFC3339, raw.String); err == nil {
		return parsed
	}
	return time.Time{}
}

func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ", ")
	for i, part := range parts {
		parts[i] = alias + "." + part
	}
	return strings.Join(parts, ", ")
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableID(value *int64) any {
	if value == nil {
		return nil
	}
	return *value
}
