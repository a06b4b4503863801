// Package tree builds the static tree layer: art centered horizontally and
// padded with blank rows at the top to fill the scene.
package tree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/snowtree/asset"
	"github.com/lixenwraith/snowtree/constant"
)

var (
	ErrEmptyArt   = errors.New("tree art has no rows")
	ErrArtTooTall = errors.New("tree art taller than scene")
	ErrArtTooWide = errors.New("tree art wider than scene")
)

// Layer is an immutable HEIGHT x WIDTH picture
// A space cell is transparent; anything else is an opaque glyph
type Layer struct {
	width     int
	height    int
	artWidth  int
	artHeight int
	rows      [][]rune
}

// New centers the art within width and bottom-aligns it within height
// Rows are first right-padded to the widest art row so the picture keeps its shape
func New(lines []string, width, height int) (*Layer, error) {
	artWidth, artHeight := asset.Dimensions(lines)
	switch {
	case artHeight == 0:
		return nil, ErrEmptyArt
	case artHeight > height:
		return nil, fmt.Errorf("%w: %d rows, scene has %d", ErrArtTooTall, artHeight, height)
	case artWidth > width:
		return nil, fmt.Errorf("%w: %d columns, scene has %d", ErrArtTooWide, artWidth, width)
	}

	left := (width - artWidth) / 2
	top := height - artHeight

	rows := make([][]rune, height)
	blank := []rune(strings.Repeat(string(constant.BlankGlyph), width))
	for y := 0; y < top; y++ {
		rows[y] = blank
	}
	for i, line := range lines {
		row := make([]rune, width)
		copy(row, blank)
		copy(row[left:], []rune(line))
		rows[top+i] = row
	}

	return &Layer{
		width:     width,
		height:    height,
		artWidth:  artWidth,
		artHeight: artHeight,
		rows:      rows,
	}, nil
}

// Width returns cells per row
func (l *Layer) Width() int { return l.width }

// Height returns the row count
func (l *Layer) Height() int { return l.height }

// ArtWidth returns the width of the source picture
func (l *Layer) ArtWidth() int { return l.artWidth }

// ArtHeight returns the number of source picture rows
func (l *Layer) ArtHeight() int { return l.artHeight }

// At returns the glyph at (x, y); out of bounds is a space
func (l *Layer) At(x, y int) rune {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return constant.BlankGlyph
	}
	return l.rows[y][x]
}

// Opaque reports whether (x, y) is part of the tree
func (l *Layer) Opaque(x, y int) bool {
	return l.At(x, y) != constant.BlankGlyph
}

// Row returns a copy of row y as a string
func (l *Layer) Row(y int) string {
	if y < 0 || y >= l.height {
		return ""
	}
	return string(l.rows[y])
}
