package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[paths]
library_dir = %q
log_dir = %q

[organizer]
confidence_threshold = 0.7
suggestion_limit = 5

[logging]
format = "text"
level = "info"
`, filepath.Join(base, "library"), filepath.Join(base, "logs"))
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath
}

func runCLI(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--config", configPath))
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("expected output to contain %q, got:\n%s", want, output)
	}
}

func TestFolderCreateAndTree(t *testing.T) {
	configPath := writeTestConfig(t)

	out, err := runCLI(t, configPath, "folder", "create", "Custom/Ambience")
	if err != nil {
		t.Fatalf("folder create: %v\n%s", err, out)
	}
	requireContains(t, out, "Created folder")

	out, err = runCLI(t, configPath, "folder", "tree")
	if err != nil {
		t.Fatalf("folder tree: %v\n%s", err, out)
	}
	requireContains(t, out, "Custom")
	requireContains(t, out, "Ambience")
	// The default taxonomy is seeded on first store open.
	requireContains(t, out, "Unassigned")
	requireContains(t, out, "Combat")
}

func TestFolderSearchAndPath(t *testing.T) {
	configPath := writeTestConfig(t)

	out, err := runCLI(t, configPath, "folder", "search", "Siege")
	if err != nil {
		t.Fatalf("folder search: %v\n%s", err, out)
	}
	requireContains(t, out, "Combat/Combat Phases/Siege")
}

func TestTrackTagSuggestOrganizeFlow(t *testing.T) {
	configPath := writeTestConfig(t)

	out, err := runCLI(t, configPath, "track", "add", "/music/siege-war_drums.mp3")
	if err != nil {
		t.Fatalf("track add: %v\n%s", err, out)
	}
	requireContains(t, out, "Cataloged track 1")
	requireContains(t, out, "Siege War Drums")

	out, err = runCLI(t, configPath, "tag", "1", "occasion:combat-siege", "mood:epic")
	if err != nil {
		t.Fatalf("tag: %v\n%s", err, out)
	}
	requireContains(t, out, "Tagged track 1")

	out, err = runCLI(t, configPath, "suggest", "1")
	if err != nil {
		t.Fatalf("suggest: %v\n%s", err, out)
	}
	requireContains(t, out, "Siege")
	requireContains(t, out, "1.00")

	out, err = runCLI(t, configPath, "organize")
	if err != nil {
		t.Fatalf("organize: %v\n%s", err, out)
	}
	requireContains(t, out, "organized 1")

	out, err = runCLI(t, configPath, "track", "show", "1")
	if err != nil {
		t.Fatalf("track show: %v\n%s", err, out)
	}
	requireContains(t, out, "Filed in:")
	requireContains(t, out, "Combat/Combat Phases/Siege")

	// A second run has nothing left to do.
	out, err = runCLI(t, configPath, "organize")
	if err != nil {
		t.Fatalf("second organize: %v\n%s", err, out)
	}
	requireContains(t, out, "organized 0")
}

func TestOrganizeDryRunWritesNothing(t *testing.T) {
	configPath := writeTestConfig(t)

	if out, err := runCLI(t, configPath, "track", "add", "/music/siege.mp3"); err != nil {
		t.Fatalf("track add: %v\n%s", err, out)
	}
	if out, err := runCLI(t, configPath, "tag", "1", "occasion:combat-siege"); err != nil {
		t.Fatalf("tag: %v\n%s", err, out)
	}

	out, err := runCLI(t, configPath, "organize", "--dry-run")
	if err != nil {
		t.Fatalf("organize dry-run: %v\n%s", err, out)
	}
	requireContains(t, out, "would file")

	out, err = runCLI(t, configPath, "track", "show", "1")
	if err != nil {
		t.Fatalf("track show: %v\n%s", err, out)
	}
	requireContains(t, out, "Not filed in any folder")
}

func TestFolderDeleteRefusesChildren(t *testing.T) {
	configPath := writeTestConfig(t)

	if out, err := runCLI(t, configPath, "folder", "create", "Parent/Child"); err != nil {
		t.Fatalf("folder create: %v\n%s", err, out)
	}

	out, err := runCLI(t, configPath, "folder", "search", "Parent")
	if err != nil {
		t.Fatalf("folder search: %v\n%s", err, out)
	}

	// Pull the id out of the search table rather than assuming seed counts.
	var parentID string
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "Parent") {
			continue
		}
		for _, field := range strings.Fields(line) {
			if isDigits(field) {
				parentID = field
				break
			}
		}
	}
	if parentID == "" {
		t.Fatalf("could not find Parent folder id in output:\n%s", out)
	}

	if _, err := runCLI(t, configPath, "folder", "delete", parentID); err == nil {
		t.Fatal("expected delete of non-empty folder to fail")
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
