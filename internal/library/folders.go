package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// NewFolder describes a folder to create.
type NewFolder struct {
	Name        string
	Description string
	ParentID    *int64
	Order       int
	IsSystem    bool
	Metadata    string
}

// CreateFolder inserts a folder and returns it.
func (s *Store) CreateFolder(ctx context.Context, spec NewFolder) (*Folder, error) {
	ctx = ensureContext(ctx)
	if spec.Name == "" {
		return nil, errors.New("folder name required")
	}
	now := timestamp()
	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO folders (name, description, parent_id, folder_order, is_system, metadata, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		spec.Name,
		nullableString(spec.Description),
		nullableID(spec.ParentID),
		spec.Order,
		spec.IsSystem,
		nullableString(spec.Metadata),
		now,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert folder: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.FolderByID(ctx, id)
}

// FolderByID fetches a folder by identifier.
func (s *Store) FolderByID(ctx context.Context, id int64) (*Folder, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+folderColumns+` FROM folders WHERE id = ?`, id)
	folder, err := scanFolder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("folder %d: %w", id, ErrFolderNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get folder: %w", err)
	}
	return folder, nil
}

// UpdateFolder persists name, description, order, and metadata changes.
// Re-parenting goes through MoveFolder so the cycle guard always runs.
func (s *Store) UpdateFolder(ctx context.Context, folder *Folder) error {
	ctx = ensureContext(ctx)
	res, err := s.execWithRetry(
		ctx,
		`UPDATE folders SET name = ?, description = ?, folder_order = ?, metadata = ?, updated_at = ? WHERE id = ?`,
		folder.Name,
		nullableString(folder.Description),
		folder.Order,
		nullableString(folder.Metadata),
		timestamp(),
		folder.ID,
	)
	if err != nil {
		return fmt.Errorf("update folder: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("folder %d: %w", folder.ID, ErrFolderNotFound)
	}
	return nil
}

// DeleteFolder removes a folder. It fails with ErrFolderNotEmpty when the
// folder still has children. Filed memberships are not checked: deleting a
// folder with contents orphans those rows.
func (s *Store) DeleteFolder(ctx context.Context, id int64) error {
	ctx = ensureContext(ctx)

	var childCount int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM folders WHERE parent_id = ?`, id).Scan(&childCount); err != nil {
		return fmt.Errorf("count children: %w", err)
	}
	if childCount > 0 {
		return fmt.Errorf("folder %d has %d children: %w", id, childCount, ErrFolderNotEmpty)
	}

	res, err := s.execWithRetry(ctx, `DELETE FROM folders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("folder %d: %w", id, ErrFolderNotFound)
	}
	return nil
}

// SearchFolders returns folders whose name contains the query, ordered by name.
func (s *Store) SearchFolders(ctx context.Context, query string) ([]Folder, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+folderColumns+` FROM folders WHERE name LIKE ? ESCAPE '\' ORDER BY name`,
		"%"+escapeLike(query)+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("search folders: %w", err)
	}
	defer rows.Close()
	return collectFolders(rows)
}

func collectFolders(rows *sql.Rows) ([]Folder, error) {
	var folders []Folder
	for rows.Next() {
		folder, err := scanFolder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, *folder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}
	return folders, nil
}

func escapeLike(value string) string {
	out := make([]rune, 0, len(value))
	for _, r := range value {
		switch r {
		case '%', '_', '\\':
			out = append(out, '\\', r)
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
