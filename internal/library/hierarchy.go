package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Children returns the direct children of parentID ordered by folder_order
// then name. A nil parentID selects the root folders.
func (s *Store) Children(ctx context.Context, parentID *int64) ([]Folder, error) {
	ctx = ensureContext(ctx)
	var (
		rows *sql.Rows
		err  error
	)
	if parentID == nil {
		rows, err = s.db.QueryContext(
			ctx,
			`SELECT `+folderColumns+` FROM folders WHERE parent_id IS NULL ORDER BY folder_order, name`,
		)
	} else {
		rows, err = s.db.QueryContext(
			ctx,
			`SELECT `+folderColumns+` FROM folders WHERE parent_id = ? ORDER BY folder_order, name`,
			*parentID,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("query children: %w", err)
	}
	defer rows.Close()
	return collectFolders(rows)
}

// AllFolders returns every folder ordered by folder_order then name.
func (s *Store) AllFolders(ctx context.Context) ([]Folder, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+folderColumns+` FROM folders ORDER BY folder_order, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("query folders: %w", err)
	}
	defer rows.Close()
	return collectFolders(rows)
}

// FolderPath walks the parent chain from the folder up to its root and
// returns the path root-first, ending with the folder itself.
func (s *Store) FolderPath(ctx context.Context, id int64) ([]Folder, error) {
	ctx = ensureContext(ctx)
	var path []Folder
	current := &id
	for current != nil {
		folder, err := s.FolderByID(ctx, *current)
		if err != nil {
			return nil, err
		}
		path = append([]Folder{*folder}, path...)
		current = folder.ParentID
	}
	return path, nil
}

// ResolveFolderPath resolves a slash-separated path like
// "Combat/Combat Phases/Siege" one segment at a time, matching each segment
// by name under the folder resolved so far. It returns (nil, nil) as soon as
// a segment has no match, so an unresolvable mapping path is not an error.
func (s *Store) ResolveFolderPath(ctx context.Context, path string) (*Folder, error) {
	ctx = ensureContext(ctx)
	var current *Folder
	for _, segment := range strings.Split(path, "/") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		var parentID *int64
		if current != nil {
			parentID = &current.ID
		}
		folder, err := s.childByName(ctx, parentID, segment)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			return nil, nil
		}
		current = folder
	}
	return current, nil
}

func (s *Store) childByName(ctx context.Context, parentID *int64, name string) (*Folder, error) {
	var row *sql.Row
	if parentID == nil {
		row = s.db.QueryRowContext(
			ctx,
			`SELECT `+folderColumns+` FROM folders WHERE parent_id IS NULL AND name = ?`,
			name,
		)
	} else {
		row = s.db.QueryRowContext(
			ctx,
			`SELECT `+folderColumns+` FROM folders WHERE parent_id = ? AND name = ?`,
			*parentID,
			name,
		)
	}
	folder, err := scanFolder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve folder segment %q: %w", name, err)
	}
	return folder, nil
}

// CreatePath creates every missing segment of a slash-separated folder path
// and returns the leaf folder. Existing segments are reused.
func (s *Store) CreatePath(ctx context.Context, path string) (*Folder, error) {
	ctx = ensureContext(ctx)
	var current *Folder
	for _, segment := range strings.Split(path, "/") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		var parentID *int64
		if current != nil {
			parentID = &current.ID
		}
		folder, err := s.childByName(ctx, parentID, segment)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			folder, err = s.CreateFolder(ctx, NewFolder{Name: segment, ParentID: parentID})
			if err != nil {
				return nil, err
			}
		}
		current = folder
	}
	if current == nil {
		return nil, fmt.Errorf("empty folder path")
	}
	return current, nil
}

// IsLeaf reports whether the folder has no children.
func (s *Store) IsLeaf(ctx context.Context, id int64) (bool, error) {
	ctx = ensureContext(ctx)
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM folders WHERE parent_id = ?`, id).Scan(&count); err != nil {
		return false, fmt.Errorf("count children: %w", err)
	}
	return count == 0, nil
}

// IsAncestor reports whether candidate sits on the parent chain of folderID.
// A folder is not its own ancestor unless candidate == folderID.
func (s *Store) IsAncestor(ctx context.Context, candidate, folderID int64) (bool, error) {
	ctx = ensureContext(ctx)
	if candidate == folderID {
		return true, nil
	}
	current := folderID
	for {
		var parentID sql.NullInt64
		err := s.db.QueryRowContext(ctx, `SELECT parent_id FROM folders WHERE id = ?`, current).Scan(&parentID)
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("walk ancestors: %w", err)
		}
		if !parentID.Valid {
			return false, nil
		}
		if parentID.Int64 == candidate {
			return true, nil
		}
		current = parentID.Int64
	}
}

// MoveFolder re-parents a folder. It fails with ErrFolderCycle when the new
// parent is the folder itself or one of its descendants.
func (s *Store) MoveFolder(ctx context.Context, id int64, newParentID *int64) error {
	ctx = ensureContext(ctx)
	if _, err := s.FolderByID(ctx, id); err != nil {
		return err
	}
	if newParentID != nil {
		if _, err := s.FolderByID(ctx, *newParentID); err != nil {
			return err
		}
		cycle, err := s.IsAncestor(ctx, id, *newParentID)
		if err != nil {
			return err
		}
		if cycle {
			return fmt.Errorf("folder %d under %d: %w", id, *newParentID, ErrFolderCycle)
		}
	}
	if _, err := s.execWithRetry(
		ctx,
		`UPDATE folders SET parent_id = ?, updated_at = ? WHERE id = ?`,
		nullableID(newParentID),
		timestamp(),
		id,
	); err != nil {
		return fmt.Errorf("move folder: %w", err)
	}
	return nil
}

// FolderTree materializes the whole taxonomy as a forest of FolderNodes with
// direct and recursive track counts.
func (s *Store) FolderTree(ctx context.Context) ([]FolderNode, error) {
	ctx = ensureContext(ctx)

	folders, err := s.AllFolders(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.directTrackCounts(ctx)
	if err != nil {
		return nil, err
	}

	children := make(map[int64][]Folder)
	var roots []Folder
	for _, folder := range folders {
		if folder.ParentID == nil {
			roots = append(roots, folder)
			continue
		}
		children[*folder.ParentID] = append(children[*folder.ParentID], folder)
	}

	var build func(folder Folder) FolderNode
	build = func(folder Folder) FolderNode {
		node := FolderNode{
			Folder:    folder,
			FileCount: counts[folder.ID],
		}
		node.TotalFileCount = node.FileCount
		for _, child := range children[folder.ID] {
			childNode := build(child)
			node.Children = append(node.Children, childNode)
			node.TotalFileCount += childNode.TotalFileCount
		}
		return node
	}

	var tree []FolderNode
	for _, root := range roots {
		tree = append(tree, build(root))
	}
	return tree, nil
}

func (s *Store) directTrackCounts(ctx context.Context) (map[int64]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT folder_id, COUNT(*) FROM folder_contents GROUP BY folder_id`)
	if err != nil {
		return nil, fmt.Errorf("query track counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int64)
	for rows.Next() {
		var (
			folderID int64
			count    int64
		)
		if err := rows.Scan(&folderID, &count); err != nil {
			return nil, fmt.Errorf("scan track count: %w", err)
		}
		counts[folderID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate track counts: %w", err)
	}
	return counts, nil
}
