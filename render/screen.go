package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snowtree/constant"
	"github.com/lixenwraith/snowtree/core"
)

// ScreenDisplay draws frames into a tcell screen
// The separator occupies the row directly below the frame
type ScreenDisplay struct {
	screen  tcell.Screen
	palette Palette

	quit     chan struct{}
	quitOnce sync.Once
	finiOnce sync.Once
}

// OpenScreen initializes the real terminal screen
func OpenScreen(palette Palette) (*ScreenDisplay, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewScreenDisplay(screen, palette), nil
}

// NewScreenDisplay wraps an already initialized screen
func NewScreenDisplay(screen tcell.Screen, palette Palette) *ScreenDisplay {
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()
	return &ScreenDisplay{
		screen:  screen,
		palette: palette,
		quit:    make(chan struct{}),
	}
}

// Screen exposes the underlying tcell screen
func (d *ScreenDisplay) Screen() tcell.Screen {
	return d.screen
}

// Draw writes the frame and separator to the back buffer and shows it
// Cells beyond the screen bounds are clipped by tcell
func (d *ScreenDisplay) Draw(frame *core.Grid) error {
	width, height := frame.Width(), frame.Height()
	for y := 0; y < height; y++ {
		for x, r := range frame.Row(y) {
			d.screen.SetContent(x, y, r, nil, d.palette.StyleFor(r))
		}
	}
	for x := 0; x <= width; x++ {
		d.screen.SetContent(x, height, constant.SeparatorGlyph, nil, d.palette.Separator)
	}
	d.screen.Show()
	return nil
}

// Clear empties the back buffer; nothing is shown until the next Draw
func (d *ScreenDisplay) Clear() error {
	d.screen.Clear()
	return nil
}

// Listen polls terminal events until the screen is finalized
// Quit keys close the Quit channel; resizes force a full redraw
func (d *ScreenDisplay) Listen() {
	core.Go(func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			if !d.handleEvent(ev) {
				d.signalQuit()
			}
		}
	})
}

// handleEvent returns false when the event requests exit
func (d *ScreenDisplay) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q') {
			return false
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return true
}

func (d *ScreenDisplay) signalQuit() {
	d.quitOnce.Do(func() { close(d.quit) })
}

// Quit is closed once a quit key is pressed
func (d *ScreenDisplay) Quit() <-chan struct{} {
	return d.quit
}

// Fini restores the terminal. Safe to call multiple times
func (d *ScreenDisplay) Fini() {
	d.finiOnce.Do(d.screen.Fini)
}
