package rules_test

import (
	"strings"
	"testing"

	"soundvault/internal/rules"
)

func TestMatchesExactWhenPatternTyped(t *testing.T) {
	if !rules.Matches("occasion:combat-siege", "occasion:combat-siege") {
		t.Fatal("expected exact typed pattern to match")
	}
	if rules.Matches("occasion:combat-siege-long", "occasion:combat-siege") {
		t.Fatal("typed pattern must not prefix-match")
	}
	if rules.Matches("occasion:combat", "occasion:combat-siege") {
		t.Fatal("typed pattern must not match shorter tag")
	}
}

func TestMatchesPrefixWhenPatternBare(t *testing.T) {
	if !rules.Matches("mood:epic", "mood") {
		t.Fatal("expected bare pattern to match tag of that type")
	}
	if rules.Matches("moody:epic", "mood") {
		t.Fatal("bare pattern must require the colon boundary")
	}
	if rules.Matches("mood", "mood") {
		t.Fatal("bare pattern must not match a valueless tag")
	}
}

func TestTypeWeightTable(t *testing.T) {
	cases := []struct {
		tag  string
		want uint8
	}{
		{"occasion:combat-siege", 10},
		{"keyword:loc:tavern", 9},
		{"keyword:sfx:sword-clash", 8},
		{"genre:orchestral:heroic", 8},
		{"mood:epic", 7},
		{"keyword:sword", 6},
		{"custom:thing", 3},
	}
	for _, tc := range cases {
		if got := rules.TypeWeight(tc.tag); got != tc.want {
			t.Errorf("TypeWeight(%q) = %d, want %d", tc.tag, got, tc.want)
		}
	}
}

func TestTypeWeightPrefersSpecificPrefix(t *testing.T) {
	// keyword:loc and keyword:sfx refine the bare keyword entry and must
	// win the scan.
	if rules.TypeWeight("keyword:loc:market") <= rules.TypeWeight("keyword:sword") {
		t.Fatal("expected keyword:loc to outweigh bare keyword")
	}
	if rules.TypeWeight("keyword:sfx:door") <= rules.TypeWeight("keyword:sword") {
		t.Fatal("expected keyword:sfx to outweigh bare keyword")
	}
}

func TestAllMergesEveryDomain(t *testing.T) {
	all := rules.All()
	if len(all) == 0 {
		t.Fatal("expected a non-empty rule table")
	}
	for _, rule := range all {
		if rule.Pattern == "" || rule.FolderPath == "" {
			t.Fatalf("malformed rule: %#v", rule)
		}
		if rule.Weight < 5 || rule.Weight > 10 {
			t.Fatalf("rule weight out of range: %#v", rule)
		}
	}

	// Deterministic iteration: consecutive calls return the same order.
	again := rules.All()
	if len(again) != len(all) {
		t.Fatalf("expected stable rule table, got %d then %d", len(all), len(again))
	}
	for i := range all {
		if all[i] != again[i] {
			t.Fatalf("rule order changed at %d: %#v vs %#v", i, all[i], again[i])
		}
	}
}

func TestRulePathsAreWellFormed(t *testing.T) {
	for _, rule := range rules.All() {
		if strings.HasPrefix(rule.FolderPath, "/") || strings.HasSuffix(rule.FolderPath, "/") {
			t.Fatalf("rule path has stray slash: %q", rule.FolderPath)
		}
	}
}
