package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiDim    = "\x1b[2m"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// colorizeConfidence shades a rendered confidence value by how actionable
// it is: green at or above the filing threshold, yellow otherwise.
func colorizeConfidence(rendered string, confidence, threshold float64, colorize bool) string {
	if !colorize {
		return rendered
	}
	if confidence >= threshold {
		return ansiGreen + rendered + ansiReset
	}
	return ansiYellow + rendered + ansiReset
}

func dim(s string, colorize bool) string {
	if !colorize {
		return s
	}
	return ansiDim + s + ansiReset
}

func formatConfidence(confidence float64) string {
	return fmt.Sprintf("%.2f", confidence)
}

var displayTitler = cases.Title(language.Und)

// titleFromFilename derives a human title from an audio file name:
// "siege-war_drums.mp3" becomes "Siege War Drums".
func titleFromFilename(name string) string {
	base := filepath.Base(name)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	base = strings.Join(strings.Fields(base), " ")
	return displayTitler.String(base)
}

func joinFolderNames(names []string) string {
	return strings.Join(names, "/")
}
