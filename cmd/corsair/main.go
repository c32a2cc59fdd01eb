package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/corsair/audio"
	"github.com/lixenwraith/corsair/core"
	"github.com/lixenwraith/corsair/engine"
	"github.com/lixenwraith/corsair/input"
	"github.com/lixenwraith/corsair/render"
	"github.com/lixenwraith/corsair/system"
)

// pcgStream is the fixed second PCG word, the seed picks the first
const pcgStream = 0x9e3779b97f4a7c15

func main() {
	// Terminal must be restored before any panic output
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "corsair: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("corsair", pflag.ContinueOnError)
	configPath := fs.String("config", "", "config file (toml, yaml or json)")
	fs.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	fs.Bool("debug", false, "write a debug log under the log directory")
	fs.Bool("mute", false, "disable audio")
	fs.Int("fps", engine.DefaultConfig().FPS, "simulation frame rate")
	fs.Bool("boss-arms", false, "give the boss its chained arms")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := engine.NewViper()
	if err := engine.BindFlags(v, fs); err != nil {
		return err
	}
	cfg, err := engine.LoadConfig(v, *configPath)
	if err != nil {
		return err
	}

	logger, logFile, err := setupLogging(cfg.Debug, cfg.LogDir)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("starting", "title", cfg.Title, "seed", seed, "fps", cfg.FPS, "boss_arms", cfg.BossArms)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetTerminalReset(screen.Fini)
	defer screen.Fini()
	screen.SetTitle(cfg.Title)
	screen.HideCursor()

	if w, h := screen.Size(); w < cfg.Width || h < cfg.Height {
		logger.Warn("terminal smaller than configured playfield", "cols", w, "rows", h, "want_cols", cfg.Width, "want_rows", cfg.Height)
	}

	var sink engine.AudioSink
	if cfg.Audio {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the match runs silent
			logger.Warn("audio unavailable", "error", err)
		} else {
			sink = sm
			defer sm.Cleanup()
		}
	}

	rng := rand.New(rand.NewPCG(seed, pcgStream))
	ctx := engine.NewGameContext(cfg, sink, rng, logger)

	provider := engine.NewMonotonicTimeProvider()
	poller := input.NewPoller(provider)
	core.Go(func() { poller.Run(screen) })

	sim := system.NewSimulation(ctx, poller)
	sim.Start()

	orchestrator := render.NewRenderOrchestrator(render.NewTerminalRenderer(screen), render.NewCamera(cfg.Zoom))

	return loop(sim, orchestrator, poller, engine.NewFrameTimer(provider), cfg.FPS, logger)
}

// loop steps and draws at the configured rate until quit is requested
func loop(sim *system.Simulation, orchestrator *render.RenderOrchestrator, poller *input.Poller, timer *engine.FrameTimer, fps int, logger *slog.Logger) error {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for range ticker.C {
		if poller.Poll().Quit {
			break
		}
		sim.Step(timer.Tick())
		if err := orchestrator.RenderFrame(sim.Snapshot()); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}
	}

	state := sim.Context().State
	logger.Info("quit", "phase", state.Phase().String(), "score", state.FinalScore(), "kills", state.Kills(), "frames", state.Frame)
	return nil
}
