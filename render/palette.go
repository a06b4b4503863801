package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snowtree/constant"
	"github.com/lixenwraith/snowtree/terminal"
)

// Palette maps glyph classes to screen styles
type Palette struct {
	Snow      tcell.Style
	Needles   tcell.Style
	Ornament  tcell.Style
	Gift      tcell.Style
	Trunk     tcell.Style
	Separator tcell.Style
}

// MonoPalette draws everything in the terminal default style
func MonoPalette() Palette {
	return Palette{
		Snow:      tcell.StyleDefault,
		Needles:   tcell.StyleDefault,
		Ornament:  tcell.StyleDefault,
		Gift:      tcell.StyleDefault,
		Trunk:     tcell.StyleDefault,
		Separator: tcell.StyleDefault,
	}
}

// DefaultPalette picks colors suited to the terminal's color capability
func DefaultPalette(mode terminal.ColorMode) Palette {
	if mode == terminal.ColorModeTrueColor {
		return Palette{
			Snow:      tcell.StyleDefault.Foreground(tcell.NewRGBColor(235, 240, 255)).Bold(true),
			Needles:   tcell.StyleDefault.Foreground(tcell.NewRGBColor(46, 139, 87)),
			Ornament:  tcell.StyleDefault.Foreground(tcell.NewRGBColor(220, 40, 60)).Bold(true),
			Gift:      tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 200, 40)).Bold(true),
			Trunk:     tcell.StyleDefault.Foreground(tcell.NewRGBColor(139, 90, 43)),
			Separator: tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 100, 130)),
		}
	}
	return Palette{
		Snow:      tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
		Needles:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
		Ornament:  tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		Gift:      tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Trunk:     tcell.StyleDefault.Foreground(tcell.ColorMaroon),
		Separator: tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
}

// StyleFor classifies a composed glyph
// Only the snow layer emits the snow glyph, so classification needs no layer lookup
func (p Palette) StyleFor(r rune) tcell.Style {
	switch r {
	case constant.SnowGlyph:
		return p.Snow
	case 'o':
		return p.Ornament
	case '$':
		return p.Gift
	case '|':
		return p.Trunk
	case constant.BlankGlyph:
		return tcell.StyleDefault
	default:
		return p.Needles
	}
}
