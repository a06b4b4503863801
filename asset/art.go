// Package asset provides the embedded tree picture and helpers for reading
// alternative art from strings or files.
package asset

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

//go:embed tree.txt
var treeArt string

// TreeLines returns the reference decorated tree, one string per row
// Trailing spaces are significant: they are part of the art width
func TreeLines() []string {
	return ParseArt(treeArt)
}

// ParseArt splits multi-line art into rows
// CRLF is normalized, tabs expand to four spaces, and a single trailing
// newline does not produce an extra empty row
func ParseArt(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\t", "    ")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// LoadArtFile reads and parses art from a file
func LoadArtFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read art file: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("art file %s: invalid UTF-8", path)
	}
	return ParseArt(string(data)), nil
}

// Dimensions returns the row count and the widest row measured in runes
func Dimensions(lines []string) (width, height int) {
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > width {
			width = n
		}
	}
	return width, len(lines)
}
