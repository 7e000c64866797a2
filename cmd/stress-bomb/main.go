package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/stress-bomb/audio"
	"github.com/lixenwraith/stress-bomb/config"
	"github.com/lixenwraith/stress-bomb/core"
	"github.com/lixenwraith/stress-bomb/game"
	"github.com/lixenwraith/stress-bomb/render"
	"github.com/lixenwraith/stress-bomb/status"
	"github.com/lixenwraith/stress-bomb/terminal"
)

var (
	configFlag = flag.String("config", "stress-bomb.toml", "Path to TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/ and show counters")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	seedFlag   = flag.Int64("seed", 0, "Random seed, 0 for time-based")
	colorFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256")
	weaponFlag = flag.String("weapon", "", "Starting weapon: bomb, dart")
)

// errQuit ends the frame loop on user request
var errQuit = errors.New("quit")

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// applyFlags lets explicitly set flags override file and environment values
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Log.Debug = *debugFlag
		case "mute":
			if *muteFlag {
				cfg.Audio.Enabled = false
			}
		case "seed":
			cfg.Engine.Seed = *seedFlag
		case "color":
			cfg.Display.Color = *colorFlag
		case "weapon":
			cfg.Engine.Weapon = *weaponFlag
		}
	})
}

func run(cfg *config.Config) error {
	session := uuid.NewString()
	log.Printf("session %s starting", session)

	screen, err := terminal.NewScreen(cfg.Display.Color)
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	core.OnCrash(screen.Fini)
	defer screen.Fini()

	player, err := audio.NewPlayer(cfg.AudioSettings())
	if err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	}
	defer player.Close()

	reg := status.NewRegistry()
	reg.Strings.Get(status.KeySession).Store(session)

	scene := render.NewScene()
	w, h := screen.Size()
	vp := render.Viewport{Width: w, Height: h}

	sim := game.New(game.Options{
		Seed:   uint64(cfg.Engine.Seed),
		Aspect: vp.Aspect(),
		Weapon: cfg.StartWeapon(),
		Status: reg,
	}, scene, player)
	defer sim.Close()

	renderer := render.NewTerminalRenderer(screen, scene, sim.Camera())
	renderer.SetFog(cfg.Display.Fog)
	if cfg.Log.Debug {
		renderer.SetDebug(reg)
	}
	input := terminal.NewInput(sim, renderer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	events := make(chan tcell.Event, 256)

	// Input pump: PollEvent blocks, so the frame loop posts an interrupt on exit
	g.Go(func() (err error) {
		defer recoverTo(&err)
		for {
			ev := screen.PollEvent()
			switch ev.(type) {
			case nil, *tcell.EventInterrupt:
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	// Frame loop: input, one fixed tick, then draw
	g.Go(func() (err error) {
		defer recoverTo(&err)
		defer screen.PostEvent(tcell.NewEventInterrupt(nil))

		ticker := time.NewTicker(cfg.TickInterval())
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				if input.Handle(ev) {
					return errQuit
				}
				if _, ok := ev.(*tcell.EventResize); ok {
					screen.Sync()
				}
			case <-ticker.C:
				sim.Tick()
				renderer.Draw(sim.HUD())
			}
		}
	})

	err = g.Wait()
	hud := sim.HUD()
	log.Printf("session %s ended: ticks=%d score=%d", session, reg.Ints.Get(status.KeyTicks).Load(), hud.Score)
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// recoverTo routes a goroutine panic through the crash handler
func recoverTo(err *error) {
	if r := recover(); r != nil {
		core.HandleCrash(r)
		*err = fmt.Errorf("panic: %v", r)
	}
}
