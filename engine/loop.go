package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/snowtree/render"
)

// PaceFunc blocks for d or until ctx is done; false means stop the loop
type PaceFunc func(ctx context.Context, d time.Duration) bool

// Loop drives a scene: tick, pace, clear, repeated
type Loop struct {
	scene     *Scene
	display   render.Display
	delay     time.Duration
	maxFrames int
	pace      PaceFunc
	frames    int
}

// NewLoop creates a driver; maxFrames of 0 runs until ctx is cancelled
func NewLoop(scene *Scene, display render.Display, delay time.Duration, maxFrames int) *Loop {
	return &Loop{
		scene:     scene,
		display:   display,
		delay:     delay,
		maxFrames: maxFrames,
		pace:      Sleep,
	}
}

// SetPace replaces the pacing primitive
func (l *Loop) SetPace(fn PaceFunc) {
	l.pace = fn
}

// Frames returns the number of completed ticks
func (l *Loop) Frames() int {
	return l.frames
}

// Run executes ticks until ctx is cancelled or the frame budget is spent
// Cancellation is a normal exit; display failures are returned
func (l *Loop) Run(ctx context.Context) error {
	log.Printf("loop: starting, delay=%s max_frames=%d", l.delay, l.maxFrames)
	for l.maxFrames == 0 || l.frames < l.maxFrames {
		if ctx.Err() != nil {
			break
		}
		if err := l.scene.Tick(l.display); err != nil {
			return fmt.Errorf("tick %d: %w", l.frames, err)
		}
		l.frames++

		if !l.pace(ctx, l.delay) {
			break
		}
		if err := l.display.Clear(); err != nil {
			return fmt.Errorf("clear after tick %d: %w", l.frames-1, err)
		}
	}
	log.Printf("loop: stopped after %d frames", l.frames)
	return nil
}

// Sleep waits for d unless ctx finishes first
func Sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
