package constant

// Glyphs
const (
	// SnowGlyph marks a snowflake cell in the snow layer and the composed frame
	SnowGlyph = '*'

	// SeparatorGlyph fills the line printed after each frame
	SeparatorGlyph = '*'

	// BlankGlyph is the transparent/empty cell
	BlankGlyph = ' '
)

// Display modes
const (
	DisplayStream = "stream"
	DisplayScreen = "screen"
)

// Clear modes for the stream display
const (
	ClearAuto   = "auto"
	ClearAlways = "always"
	ClearNever  = "never"
)
