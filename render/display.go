package render

import "github.com/lixenwraith/snowtree/core"

// Display is the output side of a tick
// Draw presents a composed frame followed by the separator line; Clear erases
// what was presented so the next frame starts on an empty screen
type Display interface {
	Draw(frame *core.Grid) error
	Clear() error
}
