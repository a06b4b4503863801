package render

import (
	"bufio"
	"io"

	"github.com/lixenwraith/snowtree/constant"
	"github.com/lixenwraith/snowtree/core"
	"github.com/lixenwraith/snowtree/terminal"
)

// streamBufferSize holds a full reference frame (48 x 211 runes) in one flush
const streamBufferSize = 64 * 1024

// StreamDisplay prints frames as plain text lines to a writer
type StreamDisplay struct {
	w           *bufio.Writer
	clearScreen bool
	separator   []byte
}

// NewStreamDisplay wraps w; clearScreen enables the ANSI erase on Clear
func NewStreamDisplay(w io.Writer, clearScreen bool) *StreamDisplay {
	return &StreamDisplay{
		w:           bufio.NewWriterSize(w, streamBufferSize),
		clearScreen: clearScreen,
	}
}

// ShouldClear resolves a clear mode against the target writer
// Auto clears only when the writer is a terminal, keeping piped output readable
func ShouldClear(mode string, w io.Writer) bool {
	switch mode {
	case constant.ClearAlways:
		return true
	case constant.ClearNever:
		return false
	default:
		return terminal.IsTerminal(w)
	}
}

// Draw writes every row and a separator of width+1 glyphs, then flushes
func (d *StreamDisplay) Draw(frame *core.Grid) error {
	for y := 0; y < frame.Height(); y++ {
		for _, r := range frame.Row(y) {
			if r < 0x80 {
				d.w.WriteByte(byte(r))
			} else {
				d.w.WriteRune(r)
			}
		}
		d.w.WriteByte('\n')
	}
	d.w.Write(d.separatorLine(frame.Width()))
	return d.w.Flush()
}

// separatorLine caches the separator for the current width
func (d *StreamDisplay) separatorLine(width int) []byte {
	if len(d.separator) != width+2 {
		d.separator = make([]byte, width+2)
		for i := 0; i <= width; i++ {
			d.separator[i] = constant.SeparatorGlyph
		}
		d.separator[width+1] = '\n'
	}
	return d.separator
}

// Clear erases the terminal when enabled
func (d *StreamDisplay) Clear() error {
	if !d.clearScreen {
		return nil
	}
	if err := terminal.WriteClear(d.w); err != nil {
		return err
	}
	return d.w.Flush()
}
