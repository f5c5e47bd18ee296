package resolver

import (
	"context"

	"soundvault/internal/logging"
)

// fallbackSuggestions scores every leaf folder in the taxonomy by Jaccard
// similarity against the track's tag set. It is a full scan of the
// taxonomy's membership tags on purpose; curated-rule misses are rare
// enough that the scan cost has not mattered.
func (r *Resolver) fallbackSuggestions(ctx context.Context, tags []string, exclude map[int64]bool) ([]Suggestion, error) {
	folders, err := r.store.AllFolders(ctx)
	if err != nil {
		return nil, err
	}

	tagSet := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tagSet[tag] = true
	}

	var fill []Suggestion
	for _, folder := range folders {
		if exclude[folder.ID] {
			continue
		}
		leaf, err := r.store.IsLeaf(ctx, folder.ID)
		if err != nil {
			return nil, err
		}
		if !leaf {
			continue
		}
		folderTags, err := r.store.FolderTagUnion(ctx, folder.ID)
		if err != nil {
			return nil, err
		}
		score := jaccard(tagSet, folderTags)
		if score <= fallbackMinScore {
			continue
		}
		r.logger.Debug("fallback candidate",
			logging.Int64(logging.FieldFolderID, folder.ID),
			logging.Float64("score", score))
		fill = append(fill, Suggestion{Folder: folder, Confidence: score * fallbackDiscount})
	}
	return fill, nil
}

// jaccard computes |intersection| / |union| between the track's tag set
// and a folder's tag union. A folder with no filed tracks scores 0.
func jaccard(tagSet map[string]bool, folderTags []string) float64 {
	if len(folderTags) == 0 || len(tagSet) == 0 {
		return 0
	}
	intersection := 0
	union := len(tagSet)
	seen := make(map[string]bool, len(folderTags))
	for _, tag := range folderTags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		if tagSet[tag] {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
