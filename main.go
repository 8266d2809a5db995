/*
Catapult loads a level and plays it, either in a window or headless on a
fixed time step.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/spaghettifunk/catapult/engine"
	"github.com/spaghettifunk/catapult/engine/core"
	"github.com/spaghettifunk/catapult/engine/level"
	"github.com/spaghettifunk/catapult/engine/platform"
	"github.com/spaghettifunk/catapult/testbed"
)

func main() {
	configPath := flag.String("config", "", "application config (TOML)")
	levelPath := flag.String("level", "", "level file, overrides the config")
	headless := flag.Bool("headless", false, "run without a window on a fixed time step")
	frames := flag.Uint64("frames", 0, "stop after this many frames, 0 runs until quit")
	dump := flag.Bool("dump", false, "print the decoded config and level, then exit")
	flag.Parse()

	config := engine.DefaultApplicationConfig()
	if *configPath != "" {
		cfg, err := engine.LoadConfig(*configPath)
		if err != nil {
			core.LogFatal("%s", err)
		}
		config = cfg
	}
	if *levelPath != "" {
		config.LevelPath = *levelPath
	}
	if *headless {
		config.Headless = true
	}
	if *frames > 0 {
		config.MaxFrames = *frames
	}

	if *dump {
		lvl, err := level.Load(config.LevelPath)
		if err != nil {
			core.LogFatal("%s", err)
		}
		spew.Dump(config, lvl)
		return
	}

	tb := testbed.NewCatapultGame(config)

	var window engine.Window
	if !config.Headless {
		window = platform.New()
	}
	e, err := engine.New(tb.Game, window)
	if err != nil {
		core.LogFatal("%s", err)
	}

	if err := e.Initialize(); err != nil {
		core.LogFatal("initializing: %s", err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// the loop notices the quit event on its next frame
	go func() {
		<-sigCh
		core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
	}()

	runErr := e.Run()
	if err := e.Shutdown(); err != nil {
		core.LogError("shutdown: %s", err)
	}
	if runErr != nil {
		core.LogFatal("%s", runErr)
	}
}
