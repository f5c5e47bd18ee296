package logs_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"soundvault/internal/logs"
)

func writeLogFile(t *testing.T, lines int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "soundvault.log")
	var content string
	for i := 1; i <= lines; i++ {
		content += fmt.Sprintf("line %d\n", i)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write log file: %v", err)
	}
	return path
}

func TestTailReturnsLastLines(t *testing.T) {
	path := writeLogFile(t, 10)

	lines, err := logs.Tail(context.Background(), path, logs.TailOptions{Limit: 3})
	if err != nil {
		t.Fatalf("Tail failed: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "line 8" || lines[2] != "line 10" {
		t.Fatalf("unexpected lines: %v", lines)
	}
}

func TestTailShortFile(t *testing.T) {
	path := writeLogFile(t, 2)

	lines, err := logs.Tail(context.Background(), path, logs.TailOptions{Limit: 5})
	if err != nil {
		t.Fatalf("Tail failed: %v", err)
	}
	if len(lines) != 2 || lines[0] != "line 1" {
		t.Fatalf("unexpected lines: %v", lines)
	}
}

func TestTailMissingFileIsEmpty(t *testing.T) {
	lines, err := logs.Tail(context.Background(), filepath.Join(t.TempDir(), "absent.log"), logs.TailOptions{Limit: 5})
	if err != nil {
		t.Fatalf("Tail failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected no lines, got %v", lines)
	}
}
