package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"soundvault/internal/services"
)

func TestPrettyHandlerFormatsComponent(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelInfo)
	logger := slog.New(newPrettyHandler(&buf, lvl, false))

	logger.Info("suggestions computed",
		String(FieldComponent, "resolver"),
		Int("candidates", 3),
		Float64("top_score", 0.91),
	)

	out := buf.String()
	if !strings.Contains(out, "INFO resolver: suggestions computed") {
		t.Fatalf("unexpected console line: %q", out)
	}
	if !strings.Contains(out, "candidates=3") || !strings.Contains(out, "top_score=0.91") {
		t.Fatalf("expected attrs in output, got %q", out)
	}
	if strings.Contains(out, "component=") {
		t.Fatalf("component should be folded into the prefix, got %q", out)
	}
}

func TestPrettyHandlerQuotesValues(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelInfo)
	logger := slog.New(newPrettyHandler(&buf, lvl, false))

	logger.Warn("folder skipped", String("folder", "Combat/Combat Phases/Siege"))
	if !strings.Contains(buf.String(), `folder="Combat/Combat Phases/Siege"`) {
		t.Fatalf("expected quoted folder path, got %q", buf.String())
	}
}

func TestWithContextAddsTrackAndRunFields(t *testing.T) {
	var buf bytes.Buffer
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelInfo)
	logger := slog.New(newPrettyHandler(&buf, lvl, false))

	ctx := services.WithTrackID(context.Background(), 7)
	ctx = services.WithRunID(ctx, "run-abc")
	WithContext(ctx, logger).Info("filing track")

	out := buf.String()
	if !strings.Contains(out, "track_id=7") || !strings.Contains(out, "run_id=run-abc") {
		t.Fatalf("expected context fields, got %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	logger.Info("should not panic")
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("noop logger should report disabled")
	}
}
