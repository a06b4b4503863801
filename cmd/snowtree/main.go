package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/snowtree/audio"
	"github.com/lixenwraith/snowtree/config"
	"github.com/lixenwraith/snowtree/constant"
	"github.com/lixenwraith/snowtree/core"
	"github.com/lixenwraith/snowtree/engine"
	"github.com/lixenwraith/snowtree/render"
	"github.com/lixenwraith/snowtree/terminal"
)

var (
	configFlag  = flag.String("config", "", "TOML scene file")
	envFlag     = flag.String("env", ".env", "Dotenv file with SNOWTREE_* variables (ignored if missing)")
	displayFlag = flag.String("display", constant.DisplayStream, "Display: stream, screen")
	clearFlag   = flag.String("clear", constant.ClearAuto, "Stream clear mode: auto, always, never")
	colorFlag   = flag.Bool("color", true, "Colorize the screen display")
	framesFlag  = flag.Int("frames", constant.MaxFrames, "Stop after N frames (0 runs until interrupted)")
	seedFlag    = flag.Uint64("seed", 0, "Snow seed (0 seeds from OS entropy)")
	audioFlag   = flag.Bool("audio", false, "Play winter ambience")
	debugFlag   = flag.Bool("debug", false, "Write debug log to "+constant.LogDir+"/")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snowtree: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration:\n%w", err)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("config: %dx%d delay=%s chance=%d display=%s seed=%d",
		cfg.Width, cfg.Height, cfg.FrameDelay, cfg.SnowflakeChance, cfg.Display, cfg.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scene, err := engine.NewScene(cfg, nil)
	if err != nil {
		return err
	}

	display, ctx, closeDisplay, err := openDisplay(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDisplay()

	if cfg.Audio {
		ambience := audio.NewAmbience(cfg.Volume, cfg.Seed)
		if err := ambience.Start(); err != nil {
			// Non-fatal, the scene runs without sound
			log.Printf("audio start failed: %v (continuing without audio)", err)
		} else {
			defer ambience.Stop()
		}
	}

	loop := engine.NewLoop(scene, display, cfg.FrameDelay, cfg.MaxFrames)
	return loop.Run(ctx)
}

// openDisplay builds the configured display and its teardown
// The screen display derives a context that is also cancelled by quit keys
func openDisplay(ctx context.Context, cfg *config.Config) (render.Display, context.Context, func(), error) {
	if cfg.Display == constant.DisplayScreen {
		palette := render.MonoPalette()
		if cfg.Color {
			palette = render.DefaultPalette(terminal.DetectColorMode())
		}
		sd, err := render.OpenScreen(palette)
		if err != nil {
			return nil, ctx, nil, err
		}
		core.SetCrashCleanup(sd.Fini)
		sd.Listen()

		ctx, cancel := context.WithCancel(ctx)
		core.Go(func() {
			select {
			case <-sd.Quit():
				log.Printf("quit key pressed")
				cancel()
			case <-ctx.Done():
			}
		})
		return sd, ctx, func() {
			cancel()
			sd.Fini()
		}, nil
	}

	clearScreen := render.ShouldClear(cfg.Clear, os.Stdout)
	if clearScreen {
		terminal.WriteCursorVisible(os.Stdout, false)
	}
	return render.NewStreamDisplay(os.Stdout, clearScreen), ctx, func() {
		if clearScreen {
			terminal.WriteCursorVisible(os.Stdout, true)
		}
	}, nil
}

// applyFlags overlays only the flags given on the command line
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "display":
			cfg.Display = *displayFlag
		case "clear":
			cfg.Clear = *clearFlag
		case "color":
			cfg.Color = *colorFlag
		case "frames":
			cfg.MaxFrames = *framesFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "audio":
			cfg.Audio = *audioFlag
		case "debug":
			cfg.Debug = *debugFlag
		}
	})
}
