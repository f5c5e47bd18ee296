package library_test

import (
	"context"
	"errors"
	"testing"

	"soundvault/internal/library"
	"soundvault/internal/testsupport"
)

func TestAddToFolderIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	folder := testsupport.NewFolder(t, store, "Taverns", nil)
	track := testsupport.NewTrack(t, store, "/music/lute.mp3")

	added, err := store.AddToFolder(ctx, folder.ID, track.ID)
	if err != nil {
		t.Fatalf("AddToFolder failed: %v", err)
	}
	if !added {
		t.Fatal("expected first filing to report added")
	}

	added, err = store.AddToFolder(ctx, folder.ID, track.ID)
	if err != nil {
		t.Fatalf("AddToFolder repeat failed: %v", err)
	}
	if added {
		t.Fatal("expected repeat filing to be a no-op")
	}

	tracks, err := store.TracksInFolder(ctx, folder.ID)
	if err != nil {
		t.Fatalf("TracksInFolder failed: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("expected single membership, got %d", len(tracks))
	}
}

func TestAddToFolderValidatesBothSides(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	folder := testsupport.NewFolder(t, store, "Taverns", nil)
	track := testsupport.NewTrack(t, store, "/music/lute.mp3")

	if _, err := store.AddToFolder(ctx, 999, track.ID); !errors.Is(err, library.ErrFolderNotFound) {
		t.Fatalf("expected ErrFolderNotFound, got %v", err)
	}
	if _, err := store.AddToFolder(ctx, folder.ID, 999); !errors.Is(err, library.ErrTrackNotFound) {
		t.Fatalf("expected ErrTrackNotFound, got %v", err)
	}
}

func TestFilingOrderAppends(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	folder := testsupport.NewFolder(t, store, "Battle", nil)
	first := testsupport.NewTrack(t, store, "/music/drums.mp3")
	second := testsupport.NewTrack(t, store, "/music/horns.mp3")
	third := testsupport.NewTrack(t, store, "/music/anvils.mp3")

	for _, track := range []*library.Track{first, second, third} {
		if _, err := store.AddToFolder(ctx, folder.ID, track.ID); err != nil {
			t.Fatalf("AddToFolder failed: %v", err)
		}
	}

	tracks, err := store.TracksInFolder(ctx, folder.ID)
	if err != nil {
		t.Fatalf("TracksInFolder failed: %v", err)
	}
	if len(tracks) != 3 {
		t.Fatalf("expected 3 tracks, got %d", len(tracks))
	}
	if tracks[0].ID != first.ID || tracks[1].ID != second.ID || tracks[2].ID != third.ID {
		t.Fatalf("unexpected filing order: %#v", tracks)
	}
}

func TestRemoveFromFolder(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	folder := testsupport.NewFolder(t, store, "Battle", nil)
	track := testsupport.NewTrack(t, store, "/music/drums.mp3")

	if _, err := store.AddToFolder(ctx, folder.ID, track.ID); err != nil {
		t.Fatalf("AddToFolder failed: %v", err)
	}
	if count, err := store.FolderTrackCount(ctx, folder.ID); err != nil || count != 1 {
		t.Fatalf("expected count 1, got %d (err %v)", count, err)
	}
	if err := store.RemoveFromFolder(ctx, folder.ID, track.ID); err != nil {
		t.Fatalf("RemoveFromFolder failed: %v", err)
	}
	if count, err := store.FolderTrackCount(ctx, folder.ID); err != nil || count != 0 {
		t.Fatalf("expected count 0 after removal, got %d (err %v)", count, err)
	}
	if err := store.RemoveFromFolder(ctx, folder.ID, track.ID); err != nil {
		t.Fatalf("expected repeat removal to be a no-op, got %v", err)
	}

	tracks, err := store.TracksInFolder(ctx, folder.ID)
	if err != nil {
		t.Fatalf("TracksInFolder failed: %v", err)
	}
	if len(tracks) != 0 {
		t.Fatalf("expected empty folder, got %d tracks", len(tracks))
	}
}

func TestTagsRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	track := testsupport.NewTrack(t, store, "/music/siege.mp3")
	testsupport.TagTrack(t, store, track.ID, "occasion:combat-siege", "mood:epic", "occasion:combat-siege")

	tags, err := store.TagsForTrack(ctx, track.ID)
	if err != nil {
		t.Fatalf("TagsForTrack failed: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("expected duplicate tag to collapse, got %v", tags)
	}
	if tags[0] != "mood:epic" || tags[1] != "occasion:combat-siege" {
		t.Fatalf("unexpected tags: %v", tags)
	}

	if err := store.RemoveTag(ctx, track.ID, "mood", "epic"); err != nil {
		t.Fatalf("RemoveTag failed: %v", err)
	}
	tags, err = store.TagsForTrack(ctx, track.ID)
	if err != nil {
		t.Fatalf("TagsForTrack failed: %v", err)
	}
	if len(tags) != 1 || tags[0] != "occasion:combat-siege" {
		t.Fatalf("unexpected tags after removal: %v", tags)
	}
}

func TestUnfiledTaggedTrackIDs(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	folder := testsupport.NewFolder(t, store, "Battle", nil)

	tagged := testsupport.NewTrack(t, store, "/music/tagged.mp3")
	testsupport.TagTrack(t, store, tagged.ID, "mood:epic")

	filed := testsupport.NewTrack(t, store, "/music/filed.mp3")
	testsupport.TagTrack(t, store, filed.ID, "mood:epic")
	if _, err := store.AddToFolder(ctx, folder.ID, filed.ID); err != nil {
		t.Fatalf("AddToFolder failed: %v", err)
	}

	// Untagged and unfiled: not a candidate.
	testsupport.NewTrack(t, store, "/music/untagged.mp3")

	ids, err := store.UnfiledTaggedTrackIDs(ctx)
	if err != nil {
		t.Fatalf("UnfiledTaggedTrackIDs failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != tagged.ID {
		t.Fatalf("expected only tagged unfiled track, got %v", ids)
	}
}

func TestFolderTagUnion(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	folder := testsupport.NewFolder(t, store, "Battle", nil)

	first := testsupport.NewTrack(t, store, "/music/drums.mp3")
	testsupport.TagTrack(t, store, first.ID, "occasion:combat-siege", "mood:epic")
	second := testsupport.NewTrack(t, store, "/music/horns.mp3")
	testsupport.TagTrack(t, store, second.ID, "mood:epic", "keyword:sfx:horn")

	for _, track := range []*library.Track{first, second} {
		if _, err := store.AddToFolder(ctx, folder.ID, track.ID); err != nil {
			t.Fatalf("AddToFolder failed: %v", err)
		}
	}

	tags, err := store.FolderTagUnion(ctx, folder.ID)
	if err != nil {
		t.Fatalf("FolderTagUnion failed: %v", err)
	}
	if len(tags) != 3 {
		t.Fatalf("expected 3 distinct tags, got %v", tags)
	}
}

func TestFolderContentsView(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	siege := testsupport.MustCreatePath(t, store, "Combat/Combat Phases/Siege")
	phases, err := store.ResolveFolderPath(ctx, "Combat/Combat Phases")
	if err != nil || phases == nil {
		t.Fatalf("resolve phases: %v %v", phases, err)
	}

	track := testsupport.NewTrack(t, store, "/music/siege.mp3")
	if _, err := store.AddToFolder(ctx, siege.ID, track.ID); err != nil {
		t.Fatalf("AddToFolder failed: %v", err)
	}

	view, err := store.FolderContentsView(ctx, phases.ID)
	if err != nil {
		t.Fatalf("FolderContentsView failed: %v", err)
	}
	if view.Folder.ID != phases.ID {
		t.Fatalf("unexpected folder: %#v", view.Folder)
	}
	if len(view.Breadcrumb) != 2 || view.Breadcrumb[0].Name != "Combat" {
		t.Fatalf("unexpected breadcrumb: %#v", view.Breadcrumb)
	}
	if len(view.Subfolders) != 1 || view.Subfolders[0].TotalFileCount != 1 {
		t.Fatalf("unexpected subfolders: %#v", view.Subfolders)
	}
	if len(view.Tracks) != 0 {
		t.Fatalf("expected no direct tracks, got %d", len(view.Tracks))
	}
}

func TestAddTrackUpsertsByPath(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	first, err := store.AddTrack(ctx, library.NewTrack{FilePath: "/music/siege.mp3", Title: "Siege"})
	if err != nil {
		t.Fatalf("AddTrack failed: %v", err)
	}
	second, err := store.AddTrack(ctx, library.NewTrack{FilePath: "/music/siege.mp3", Title: "Siege Drums"})
	if err != nil {
		t.Fatalf("AddTrack repeat failed: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected upsert to keep id %d, got %d", first.ID, second.ID)
	}
	if second.Title != "Siege Drums" {
		t.Fatalf("expected metadata refresh, got %q", second.Title)
	}

	tracks, err := store.ListTracks(ctx)
	if err != nil {
		t.Fatalf("ListTracks failed: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("expected single catalog row, got %d", len(tracks))
	}
}
