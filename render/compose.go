// @focus: #render { compose }
package render

import (
	"github.com/lixenwraith/snowtree/constant"
	"github.com/lixenwraith/snowtree/core"
)

// SnowSource is the read side of the snow layer
type SnowSource interface {
	IsFlake(x, y int) bool
}

// TreeSource is the read side of the tree layer
type TreeSource interface {
	At(x, y int) rune
}

// Compose merges snow and tree into out, overwriting every cell
// Priority per cell: snowflake, then opaque tree glyph, then blank
// Inputs smaller than out read as empty beyond their bounds
func Compose(out *core.Grid, snow SnowSource, tree TreeSource) {
	width, height := out.Width(), out.Height()
	for y := 0; y < height; y++ {
		row := out.Row(y)
		for x := 0; x < width; x++ {
			if snow.IsFlake(x, y) {
				row[x] = constant.SnowGlyph
			} else if r := tree.At(x, y); r != constant.BlankGlyph {
				row[x] = r
			} else {
				row[x] = constant.BlankGlyph
			}
		}
	}
}
