package resolver_test

import (
	"context"
	"math"
	"testing"

	"soundvault/internal/resolver"
	"soundvault/internal/rules"
	"soundvault/internal/testsupport"
)

func TestSuggestEmptyTagsReturnsNothing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	track := testsupport.NewTrack(t, store, "/music/untagged.mp3")

	res := resolver.New(store, nil)
	suggestions, err := res.Suggest(context.Background(), track.ID, 5)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %#v", suggestions)
	}
}

func TestSuggestSaturatingAccumulation(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	siege := testsupport.MustCreatePath(t, store, "Combat/Combat Phases/Siege")
	track := testsupport.NewTrack(t, store, "/music/siege.mp3")
	testsupport.TagTrack(t, store, track.ID, "occasion:combat-siege", "mood:epic")

	ruleSet := []rules.Rule{
		{Pattern: "occasion:combat-siege", FolderPath: "Combat/Combat Phases/Siege", Weight: 10},
		{Pattern: "mood:epic", FolderPath: "Combat/Combat Phases/Siege", Weight: 9},
	}
	res := resolver.NewWithRules(store, ruleSet, nil)

	suggestions, err := res.Suggest(context.Background(), track.ID, 5)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if len(suggestions) == 0 {
		t.Fatal("expected a suggestion")
	}
	first := suggestions[0]
	if first.Folder.ID != siege.ID {
		t.Fatalf("expected Siege first, got %#v", first.Folder)
	}
	// 10*10/100 + 9*7/100 saturates at the 1.0 ceiling.
	if first.Confidence != 1.0 {
		t.Fatalf("expected confidence 1.0, got %v", first.Confidence)
	}
}

func TestSuggestPartialScore(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	testsupport.MustCreatePath(t, store, "Moods & Atmosphere/Epic")
	track := testsupport.NewTrack(t, store, "/music/theme.mp3")
	testsupport.TagTrack(t, store, track.ID, "mood:epic")

	ruleSet := []rules.Rule{
		{Pattern: "mood:epic", FolderPath: "Moods & Atmosphere/Epic", Weight: 9},
	}
	res := resolver.NewWithRules(store, ruleSet, nil)

	suggestions, err := res.Suggest(context.Background(), track.ID, 5)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("expected one suggestion, got %#v", suggestions)
	}
	want := 9.0 * 7.0 / 100.0
	if math.Abs(suggestions[0].Confidence-want) > 1e-9 {
		t.Fatalf("expected confidence %v, got %v", want, suggestions[0].Confidence)
	}
}

func TestSuggestSkipsNonLeafFolders(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	testsupport.MustCreatePath(t, store, "Combat/Combat Phases/Siege")
	track := testsupport.NewTrack(t, store, "/music/war.mp3")
	testsupport.TagTrack(t, store, track.ID, "occasion:war")

	// Combat has children, so it is never a filing target.
	ruleSet := []rules.Rule{
		{Pattern: "occasion:war", FolderPath: "Combat", Weight: 10},
	}
	res := resolver.NewWithRules(store, ruleSet, nil)

	suggestions, err := res.Suggest(context.Background(), track.ID, 5)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("expected non-leaf folder to be dropped, got %#v", suggestions)
	}
}

func TestSuggestDropsUnresolvablePaths(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	track := testsupport.NewTrack(t, store, "/music/war.mp3")
	testsupport.TagTrack(t, store, track.ID, "occasion:war")

	ruleSet := []rules.Rule{
		{Pattern: "occasion:war", FolderPath: "Nowhere/At All", Weight: 10},
	}
	res := resolver.NewWithRules(store, ruleSet, nil)

	suggestions, err := res.Suggest(context.Background(), track.ID, 5)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("expected unresolvable path to be dropped, got %#v", suggestions)
	}
}

func TestSuggestFallbackUsesJaccard(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	folder := testsupport.NewFolder(t, store, "Battle", nil)

	filed := testsupport.NewTrack(t, store, "/music/filed.mp3")
	testsupport.TagTrack(t, store, filed.ID, "custom:drums", "custom:war")
	if _, err := store.AddToFolder(ctx, folder.ID, filed.ID); err != nil {
		t.Fatalf("AddToFolder failed: %v", err)
	}

	// No rules match, but the tag sets overlap: intersection 1, union 3.
	candidate := testsupport.NewTrack(t, store, "/music/candidate.mp3")
	testsupport.TagTrack(t, store, candidate.ID, "custom:drums", "custom:horns")

	res := resolver.NewWithRules(store, nil, nil)
	suggestions, err := res.Suggest(ctx, candidate.ID, 5)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if len(suggestions) != 1 {
		t.Fatalf("expected one fallback suggestion, got %#v", suggestions)
	}
	want := 0.8 * (1.0 / 3.0)
	if math.Abs(suggestions[0].Confidence-want) > 1e-9 {
		t.Fatalf("expected discounted Jaccard %v, got %v", want, suggestions[0].Confidence)
	}
	if suggestions[0].Folder.ID != folder.ID {
		t.Fatalf("unexpected folder: %#v", suggestions[0].Folder)
	}
}

func TestSuggestFallbackRequiresMeaningfulOverlap(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	folder := testsupport.NewFolder(t, store, "Battle", nil)

	filed := testsupport.NewTrack(t, store, "/music/filed.mp3")
	testsupport.TagTrack(t, store, filed.ID, "custom:a", "custom:b", "custom:c", "custom:d")
	if _, err := store.AddToFolder(ctx, folder.ID, filed.ID); err != nil {
		t.Fatalf("AddToFolder failed: %v", err)
	}

	// Intersection 1, union 5: Jaccard 0.2 sits below the floor.
	candidate := testsupport.NewTrack(t, store, "/music/candidate.mp3")
	testsupport.TagTrack(t, store, candidate.ID, "custom:a", "custom:x")

	res := resolver.NewWithRules(store, nil, nil)
	suggestions, err := res.Suggest(ctx, candidate.ID, 5)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("expected weak overlap to be filtered, got %#v", suggestions)
	}
}

func TestSuggestSortsAndTruncates(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	testsupport.MustCreatePath(t, store, "Moods & Atmosphere/Epic")
	testsupport.MustCreatePath(t, store, "Combat/Combat Phases/Siege")
	track := testsupport.NewTrack(t, store, "/music/siege.mp3")
	testsupport.TagTrack(t, store, track.ID, "occasion:combat-siege", "mood:epic")

	ruleSet := []rules.Rule{
		{Pattern: "mood:epic", FolderPath: "Moods & Atmosphere/Epic", Weight: 9},
		{Pattern: "occasion:combat-siege", FolderPath: "Combat/Combat Phases/Siege", Weight: 10},
	}
	res := resolver.NewWithRules(store, ruleSet, nil)

	suggestions, err := res.Suggest(context.Background(), track.ID, 2)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("expected two suggestions, got %#v", suggestions)
	}
	if suggestions[0].Folder.Name != "Siege" || suggestions[1].Folder.Name != "Epic" {
		t.Fatalf("unexpected ranking: %#v", suggestions)
	}
	if suggestions[0].Confidence < suggestions[1].Confidence {
		t.Fatal("expected descending confidence")
	}

	one, err := res.Suggest(context.Background(), track.ID, 1)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if len(one) != 1 || one[0].Folder.Name != "Siege" {
		t.Fatalf("expected truncation to keep the best, got %#v", one)
	}
}

func TestMatchingTagsExplainsOverlap(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	folder := testsupport.NewFolder(t, store, "Battle", nil)
	filed := testsupport.NewTrack(t, store, "/music/filed.mp3")
	testsupport.TagTrack(t, store, filed.ID, "mood:epic", "custom:drums")
	if _, err := store.AddToFolder(ctx, folder.ID, filed.ID); err != nil {
		t.Fatalf("AddToFolder failed: %v", err)
	}

	track := testsupport.NewTrack(t, store, "/music/new.mp3")
	testsupport.TagTrack(t, store, track.ID, "mood:epic", "custom:horns")

	res := resolver.New(store, nil)
	matching, err := res.MatchingTags(ctx, track.ID, folder.ID)
	if err != nil {
		t.Fatalf("MatchingTags failed: %v", err)
	}
	if len(matching) != 1 || matching[0] != "mood:epic" {
		t.Fatalf("unexpected matching tags: %v", matching)
	}
}
