package terminal

import "io"

// Pre-allocated ANSI sequence fragments
var (
	csiClear      = []byte("\x1b[2J\x1b[H")
	csiHome       = []byte("\x1b[H")
	csiRIS        = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0       = []byte("\x1b[0m")
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// WriteClear erases the visible screen and homes the cursor
func WriteClear(w io.Writer) error {
	_, err := w.Write(csiClear)
	return err
}

// WriteHome moves the cursor to the top-left cell without erasing
func WriteHome(w io.Writer) error {
	_, err := w.Write(csiHome)
	return err
}

// WriteCursorVisible shows or hides the cursor
func WriteCursorVisible(w io.Writer, visible bool) error {
	seq := csiCursorHide
	if visible {
		seq = csiCursorShow
	}
	_, err := w.Write(seq)
	return err
}
