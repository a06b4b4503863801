// Package snow implements the falling snow layer: a downward-scrolling buffer
// of randomly generated rows.
package snow

import (
	"math/rand/v2"

	"github.com/lixenwraith/snowtree/constant"
)

// Layer is a HEIGHT x WIDTH scrolling buffer of snow rows
// Row 0 is the top of the scene; each Advance pushes every row down by one
type Layer struct {
	width     int
	height    int
	threshold int
	rng       *rand.Rand
	rows      [][]rune
}

// New creates a snow layer and fills every row independently
// threshold is the exclusive upper bound of a 1..100 draw that produces a flake
func New(width, height, threshold int, rng *rand.Rand) *Layer {
	if rng == nil {
		rng = NewSource()
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	// Single backing array; rows are recycled in place by Advance
	backing := make([]rune, width*height)
	rows := make([][]rune, height)
	for y := range rows {
		rows[y] = backing[y*width : (y+1)*width : (y+1)*width]
	}

	l := &Layer{
		width:     width,
		height:    height,
		threshold: threshold,
		rng:       rng,
		rows:      rows,
	}
	l.Initialize()
	return l
}

// Width returns cells per row
func (l *Layer) Width() int { return l.width }

// Height returns the row count
func (l *Layer) Height() int { return l.height }

// Threshold returns the configured flake threshold
func (l *Layer) Threshold() int { return l.threshold }

// GenerateRow returns a newly allocated row of random snow
func (l *Layer) GenerateRow() []rune {
	row := make([]rune, l.width)
	l.fillRow(row)
	return row
}

// fillRow runs one Bernoulli trial per cell
func (l *Layer) fillRow(row []rune) {
	span := constant.SnowDrawMax - constant.SnowDrawMin + 1
	for i := range row {
		draw := l.rng.IntN(span) + constant.SnowDrawMin
		if draw < l.threshold {
			row[i] = constant.SnowGlyph
		} else {
			row[i] = constant.BlankGlyph
		}
	}
}

// Initialize regenerates every row independently
func (l *Layer) Initialize() {
	for _, row := range l.rows {
		l.fillRow(row)
	}
}

// Advance scrolls the layer down one row and generates a fresh top row
// The bottom row's content is discarded; its storage becomes the new top row
func (l *Layer) Advance() {
	if l.height == 0 {
		return
	}
	bottom := l.rows[l.height-1]
	copy(l.rows[1:], l.rows[:l.height-1])
	l.rows[0] = bottom
	l.fillRow(bottom)
}

// IsFlake reports whether (x, y) holds a snowflake; out of bounds is empty
func (l *Layer) IsFlake(x, y int) bool {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return false
	}
	return l.rows[y][x] == constant.SnowGlyph
}

// Row returns row y, nil if out of range
// The slice is live layer storage and is reused by later Advance calls
func (l *Layer) Row(y int) []rune {
	if y < 0 || y >= l.height {
		return nil
	}
	return l.rows[y]
}

// SetFlake places or removes a flake at (x, y)
func (l *Layer) SetFlake(x, y int, on bool) {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return
	}
	if on {
		l.rows[y][x] = constant.SnowGlyph
	} else {
		l.rows[y][x] = constant.BlankGlyph
	}
}

// Clear removes every flake
func (l *Layer) Clear() {
	for _, row := range l.rows {
		for i := range row {
			row[i] = constant.BlankGlyph
		}
	}
}

// Probability returns the per-cell flake probability for a threshold
func Probability(threshold int) float64 {
	hits := threshold - constant.SnowDrawMin
	span := constant.SnowDrawMax - constant.SnowDrawMin + 1
	switch {
	case hits <= 0:
		return 0
	case hits >= span:
		return 1
	}
	return float64(hits) / float64(span)
}
