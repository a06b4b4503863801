package core

import (
	"strings"
	"testing"
)

func TestNewGrid(t *testing.T) {
	width, height := 80, 24
	g := NewGrid(width, height)

	if g.Width() != width {
		t.Errorf("Expected width %d, got %d", width, g.Width())
	}
	if g.Height() != height {
		t.Errorf("Expected height %d, got %d", height, g.Height())
	}

	// Verify all cells are initialized to space
	for y := 0; y < height; y++ {
		row := g.Row(y)
		if len(row) != width {
			t.Fatalf("Row %d: expected %d cells, got %d", y, width, len(row))
		}
		for x, r := range row {
			if r != ' ' {
				t.Errorf("Expected cell at (%d, %d) to be space, got %q", x, y, r)
			}
		}
	}
}

func TestGetSet(t *testing.T) {
	g := NewGrid(10, 5)

	if !g.Set(3, 4, 'X') {
		t.Error("Expected Set to succeed")
	}
	if got := g.Get(3, 4); got != 'X' {
		t.Errorf("Expected 'X', got %q", got)
	}

	// Out of bounds
	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x past width", 10, 0},
		{"y past height", 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if g.Set(tt.x, tt.y, 'Y') {
				t.Error("Expected Set to fail")
			}
			if got := g.Get(tt.x, tt.y); got != ' ' {
				t.Errorf("Expected space for out of bounds Get, got %q", got)
			}
		})
	}
}

func TestRowAliasesStorage(t *testing.T) {
	g := NewGrid(4, 3)
	g.Set(1, 2, 'a')

	row := g.Row(2)
	if string(row) != " a  " {
		t.Errorf("Expected %q, got %q", " a  ", string(row))
	}
	if g.Row(3) != nil || g.Row(-1) != nil {
		t.Error("Expected nil row out of range")
	}

	// Appending to a row view must not spill into the next row
	_ = append(g.Row(0), 'z')
	if g.Get(0, 1) != ' ' {
		t.Error("Append on row view overwrote the following row")
	}
}

func TestFillAndString(t *testing.T) {
	g := NewGrid(3, 2)
	g.Fill('#')
	if got := g.String(); got != "###\n###" {
		t.Errorf("Expected filled grid, got %q", got)
	}

	g.Fill(' ')
	g.Set(0, 0, 'a')
	g.Set(2, 1, 'b')
	lines := g.Lines()
	if strings.Join(lines, "|") != "a  |  b" {
		t.Errorf("Unexpected lines %q", lines)
	}
}

func TestZeroSizedGrid(t *testing.T) {
	g := NewGrid(0, 0)
	g.Fill('x')
	if g.String() != "" {
		t.Errorf("Expected empty string, got %q", g.String())
	}
	g = NewGrid(-3, 2)
	if g.Width() != 0 || g.Height() != 2 {
		t.Errorf("Expected 0x2 grid, got %dx%d", g.Width(), g.Height())
	}
}
