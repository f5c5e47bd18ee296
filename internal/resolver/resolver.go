package resolver

import (
	"context"
	"log/slog"
	"sort"

	"soundvault/internal/library"
	"soundvault/internal/logging"
	"soundvault/internal/rules"
)

// Suggestion pairs a candidate leaf folder with a confidence score in
// [0, 1].
type Suggestion struct {
	Folder     library.Folder
	Confidence float64
}

// Resolver scores taxonomy folders against a track's tags.
type Resolver struct {
	store  *library.Store
	rules  []rules.Rule
	logger *slog.Logger
}

// New builds a resolver over the compiled-in rule table.
func New(store *library.Store, logger *slog.Logger) *Resolver {
	return NewWithRules(store, rules.All(), logger)
}

// NewWithRules builds a resolver with an explicit rule table.
func NewWithRules(store *library.Store, ruleSet []rules.Rule, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Resolver{
		store:  store,
		rules:  ruleSet,
		logger: logger.With(logging.String(logging.FieldComponent, "resolver")),
	}
}

const (
	fallbackMinScore = 0.3
	fallbackDiscount = 0.8
)

// Suggest ranks leaf folders for a track. An empty result is a valid
// outcome, not an error; only storage failures propagate.
func (r *Resolver) Suggest(ctx context.Context, trackID int64, limit int) ([]Suggestion, error) {
	if limit <= 0 {
		return nil, nil
	}
	tags, err := r.store.TagsForTrack(ctx, trackID)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return nil, nil
	}

	// Saturating accumulation: every matching rule/tag pair adds evidence
	// for its folder path, capped at 1.0.
	scores := make(map[string]float64)
	for _, rule := range r.rules {
		for _, tag := range tags {
			if !rules.Matches(tag, rule.Pattern) {
				continue
			}
			contribution := float64(rule.Weight) * float64(rules.TypeWeight(tag)) / 100.0
			next := scores[rule.FolderPath] + contribution
			if next > 1.0 {
				next = 1.0
			}
			scores[rule.FolderPath] = next
		}
	}

	suggestions := make([]Suggestion, 0, len(scores))
	seen := make(map[int64]bool)
	for path, score := range scores {
		folder, err := r.store.ResolveFolderPath(ctx, path)
		if err != nil {
			return nil, err
		}
		if folder == nil {
			continue
		}
		leaf, err := r.store.IsLeaf(ctx, folder.ID)
		if err != nil {
			return nil, err
		}
		if !leaf {
			continue
		}
		suggestions = append(suggestions, Suggestion{Folder: *folder, Confidence: score})
		seen[folder.ID] = true
	}

	if len(suggestions) < limit {
		fill, err := r.fallbackSuggestions(ctx, tags, seen)
		if err != nil {
			return nil, err
		}
		suggestions = append(suggestions, fill...)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}

// MatchingTags explains a suggestion: the track tags that also appear on
// tracks already filed in the folder.
func (r *Resolver) MatchingTags(ctx context.Context, trackID, folderID int64) ([]string, error) {
	tags, err := r.store.TagsForTrack(ctx, trackID)
	if err != nil {
		return nil, err
	}
	folderTags, err := r.store.FolderTagUnion(ctx, folderID)
	if err != nil {
		return nil, err
	}
	inFolder := make(map[string]bool, len(folderTags))
	for _, tag := range folderTags {
		inFolder[tag] = true
	}
	var matching []string
	for _, tag := range tags {
		if inFolder[tag] {
			matching = append(matching, tag)
		}
	}
	return matching, nil
}
