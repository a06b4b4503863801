package core

import "strings"

// Grid is a fixed-size rectangular buffer of display runes
// Storage is a single row-major slice; rows are views into it
type Grid struct {
	width  int
	height int
	cells  []rune
}

// NewGrid creates a grid with the given dimensions filled with spaces
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]rune, width*height),
	}
	g.Fill(' ')
	return g
}

// Width returns the number of cells per row
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the rune at (x, y), or a space when out of bounds
func (g *Grid) Get(x, y int) rune {
	if !g.inBounds(x, y) {
		return ' '
	}
	return g.cells[y*g.width+x]
}

// Set writes the rune at (x, y); out of bounds writes are ignored
func (g *Grid) Set(x, y int, r rune) bool {
	if !g.inBounds(x, y) {
		return false
	}
	g.cells[y*g.width+x] = r
	return true
}

// Row returns the cells of row y, nil if out of range
// The slice aliases grid storage and must not be modified by callers
func (g *Grid) Row(y int) []rune {
	if y < 0 || y >= g.height {
		return nil
	}
	return g.cells[y*g.width : (y+1)*g.width : (y+1)*g.width]
}

// Fill sets every cell to r using exponential copy
func (g *Grid) Fill(r rune) {
	if len(g.cells) == 0 {
		return
	}
	g.cells[0] = r
	for filled := 1; filled < len(g.cells); filled *= 2 {
		copy(g.cells[filled:], g.cells[:filled])
	}
}

// Lines returns a copy of every row as a string
func (g *Grid) Lines() []string {
	lines := make([]string, g.height)
	for y := range lines {
		lines[y] = string(g.Row(y))
	}
	return lines
}

// String joins all rows with newlines
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}
