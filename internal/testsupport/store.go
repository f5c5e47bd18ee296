package testsupport

import (
	"context"
	"testing"

	"soundvault/internal/config"
	"soundvault/internal/library"
)

// MustOpenStore opens a library.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *library.Store {
	t.Helper()

	store, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("library.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// NewFolder creates a folder for tests using the provided store.
func NewFolder(t testing.TB, store *library.Store, name string, parentID *int64) *library.Folder {
	t.Helper()

	folder, err := store.CreateFolder(context.Background(), library.NewFolder{Name: name, ParentID: parentID})
	if err != nil {
		t.Fatalf("store.CreateFolder: %v", err)
	}
	return folder
}

// NewTrack catalogs a track for tests using the provided store.
func NewTrack(t testing.TB, store *library.Store, filePath string) *library.Track {
	t.Helper()

	track, err := store.AddTrack(context.Background(), library.NewTrack{FilePath: filePath})
	if err != nil {
		t.Fatalf("store.AddTrack: %v", err)
	}
	return track
}

// TagTrack attaches type:value tags to a track for tests.
func TagTrack(t testing.TB, store *library.Store, trackID int64, tags ...string) {
	t.Helper()

	for _, tag := range tags {
		tagType, tagValue := library.SplitTag(tag)
		if err := store.AddTag(context.Background(), trackID, tagType, tagValue); err != nil {
			t.Fatalf("store.AddTag(%q): %v", tag, err)
		}
	}
}

// MustCreatePath creates each missing segment of a slash-separated folder
// path and returns the leaf folder.
func MustCreatePath(t testing.TB, store *library.Store, path string) *library.Folder {
	t.Helper()

	folder, err := store.CreatePath(context.Background(), path)
	if err != nil {
		t.Fatalf("store.CreatePath(%q): %v", path, err)
	}
	return folder
}
