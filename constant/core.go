package constant

import "time"

// Scene Dimensions (reference configuration)
const (
	// SceneHeight is the number of content rows in every frame
	SceneHeight = 48

	// SceneWidth is the number of cells in every row
	SceneWidth = 210
)

// Loop Timing
const (
	// FrameDelay is the pause between a drawn frame and the screen clear
	FrameDelay = 10 * time.Millisecond

	// MaxFrames of 0 runs the loop until interrupted
	MaxFrames = 0
)

// Snow Generation
const (
	// SnowflakeChance is the exclusive upper bound of a 1..100 draw that yields a flake
	// Effective probability per cell is (SnowflakeChance-1)/100
	SnowflakeChance = 3

	// SnowDrawMin and SnowDrawMax bound the uniform per-cell draw
	SnowDrawMin = 1
	SnowDrawMax = 100
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "snowtree.log"
	MaxLogSize  = 10 * 1024 * 1024
)
