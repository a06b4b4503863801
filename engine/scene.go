package engine

import (
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/snowtree/config"
	"github.com/lixenwraith/snowtree/core"
	"github.com/lixenwraith/snowtree/render"
	"github.com/lixenwraith/snowtree/snow"
	"github.com/lixenwraith/snowtree/tree"
)

// Scene owns both layers and the output frame
type Scene struct {
	snow  *snow.Layer
	tree  *tree.Layer
	frame *core.Grid
}

// NewScene builds the tree from the configured art, seeds the snow, and
// allocates a blank frame
// A nil rng selects a seeded source when cfg.Seed is set, entropy otherwise
func NewScene(cfg *config.Config, rng *rand.Rand) (*Scene, error) {
	art, err := cfg.ArtLines()
	if err != nil {
		return nil, fmt.Errorf("load tree art: %w", err)
	}
	tr, err := tree.New(art, cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("build tree layer: %w", err)
	}

	if rng == nil {
		if cfg.Seed != 0 {
			rng = snow.NewSeededSource(cfg.Seed)
		} else {
			rng = snow.NewSource()
		}
	}

	return &Scene{
		snow:  snow.New(cfg.Width, cfg.Height, cfg.SnowflakeChance, rng),
		tree:  tr,
		frame: core.NewGrid(cfg.Width, cfg.Height),
	}, nil
}

// Snow returns the snow layer
func (s *Scene) Snow() *snow.Layer { return s.snow }

// Tree returns the tree layer
func (s *Scene) Tree() *tree.Layer { return s.tree }

// Frame returns the most recently composed frame
func (s *Scene) Frame() *core.Grid { return s.frame }

// Compose refreshes the frame from the current layer state
func (s *Scene) Compose() *core.Grid {
	render.Compose(s.frame, s.snow, s.tree)
	return s.frame
}

// Tick composes, draws, then advances the snow
// The drawn frame always reflects snow state from before the advance
// On a draw error the snow is left unadvanced
func (s *Scene) Tick(d render.Display) error {
	s.Compose()
	if err := d.Draw(s.frame); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	s.snow.Advance()
	return nil
}
