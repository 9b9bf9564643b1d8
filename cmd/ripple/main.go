package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ripple/audio"
	"github.com/lixenwraith/ripple/config"
	"github.com/lixenwraith/ripple/constant"
	"github.com/lixenwraith/ripple/core"
	"github.com/lixenwraith/ripple/platform"
	"github.com/lixenwraith/ripple/scene"
)

var (
	configFlag = flag.String("config", "ripple.yaml", "Path to YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/ripple.log")
	muteFlag   = flag.Bool("mute", false, "Disable audio output")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	if logFile := setupLogging(*debugFlag || cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Goroutines launched through core.Go restore the terminal before dying
	core.SetCrashCleanup(screen.Fini)

	// Panic Recovery: the dispatch loop runs on this goroutine
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mRIPPLE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// Audio failure is non-fatal: the scene runs silent
	var mixer platform.Mixer
	player := audio.NewPlayer(cfg.PlayerConfig())
	if err := player.Start(constant.AudioBufferDuration); err != nil {
		log.Printf("Audio start failed: %v (continuing without audio)", err)
	} else if player.IsRunning() {
		mixer = player
		defer player.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt := platform.NewRuntime(screen, audio.NewLoader(cfg.Assets.Dir), mixer, platform.Options{
		TickInterval:  cfg.Clock.Tick,
		FrameInterval: cfg.Clock.Frame,
		ReleaseDelay:  cfg.Clock.KeyRelease,
	})

	runErr := rt.Run(ctx, scene.Init(cfg.AssetPaths()))
	screen.Fini()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "ripple: %v\n", runErr)
		os.Exit(1)
	}
	if elapsed, ok := rt.State().Elapsed(); ok {
		log.Printf("ripple exited after %v", elapsed.Round(time.Millisecond))
	}
}
