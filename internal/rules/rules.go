package rules

import (
	"strings"
	"sync"
)

// Rule maps a tag pattern to a taxonomy folder path with a curated weight.
// Paths are slash-separated folder names; a path that does not resolve in
// the current taxonomy is silently skipped at suggestion time, so rules may
// reference categories a user has pruned.
type Rule struct {
	Pattern    string
	FolderPath string
	Weight     uint8
}

var (
	allOnce  sync.Once
	allRules []Rule
)

// All returns the merged rule table. The result is shared and must not be
// mutated.
func All() []Rule {
	allOnce.Do(func() {
		groups := [][]Rule{
			combatRules,
			environmentRules,
			creatureRules,
			magicRules,
			moodRules,
			socialRules,
			culturalRules,
			fantasyRules,
			horrorRules,
			sfxRules,
			sessionRules,
		}
		total := 0
		for _, group := range groups {
			total += len(group)
		}
		allRules = make([]Rule, 0, total)
		for _, group := range groups {
			allRules = append(allRules, group...)
		}
	})
	return allRules
}

// Matches reports whether a type:value tag satisfies a rule pattern. A
// pattern containing a colon demands exact equality; a bare pattern matches
// any tag of that type.
func Matches(tag, pattern string) bool {
	if strings.Contains(pattern, ":") {
		return tag == pattern
	}
	return strings.HasPrefix(tag, pattern+":")
}

type typeWeightEntry struct {
	prefix string
	weight uint8
}

// typeWeights is scanned in order, so multi-segment prefixes must come
// before the bare type they refine.
var typeWeights = []typeWeightEntry{
	{"occasion", 10},
	{"keyword:loc", 9},
	{"keyword:sfx", 8},
	{"genre", 8},
	{"mood", 7},
	{"keyword", 6},
}

const defaultTypeWeight = 3

// TypeWeight returns the specificity weight of a tag's type. The first
// table entry that is a literal prefix of the whole tag wins; failing that,
// the bare type segment is compared by equality; anything else weighs 3.
func TypeWeight(tag string) uint8 {
	for _, entry := range typeWeights {
		if strings.HasPrefix(tag, entry.prefix) {
			return entry.weight
		}
	}
	tagType := tag
	if idx := strings.Index(tag, ":"); idx >= 0 {
		tagType = tag[:idx]
	}
	for _, entry := range typeWeights {
		if entry.prefix == tagType {
			return entry.weight
		}
	}
	return defaultTypeWeight
}
