package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/spaghettifunk/catapult/engine/core"
	"github.com/spaghettifunk/catapult/engine/scene"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

// Window is the platform layer the engine drives when not headless.
// platform.Platform implements it.
type Window interface {
	Startup(applicationName string, x uint32, y uint32, width uint32, height uint32) error
	PumpMessages() bool
	Shutdown() error
}

type Engine struct {
	currentStage Stage
	gameInstance *Game
	isRunning    atomic.Bool
	isSuspended  bool
	window       Window
	width        uint32
	height       uint32
	clock        *core.Clock
	metrics      *core.FrameMetrics
	packet       *scene.RenderPacket
	lastTime     float64
}

// New prepares an engine for g. window may be nil only for headless games.
func New(g *Game, window Window) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		return nil, fmt.Errorf("game and application config are required")
	}
	if window == nil && !g.ApplicationConfig.Headless {
		return nil, fmt.Errorf("a window is required unless the game runs headless")
	}
	if g.FnInitialize == nil || g.FnUpdate == nil || g.FnRender == nil {
		return nil, fmt.Errorf("game must provide initialize, update and render functions")
	}

	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		clock:        core.NewClock(),
		metrics:      core.NewFrameMetrics(),
		packet:       scene.NewRenderPacket(0),
		window:       window,
		isSuspended:  false,
		width:        g.ApplicationConfig.StartWidth,
		height:       g.ApplicationConfig.StartHeight,
		lastTime:     0,
	}, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing
	config := e.gameInstance.ApplicationConfig

	if config.LogLevel != "" {
		level, err := core.ParseLogLevel(config.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", config.LogLevel, err)
		}
		core.SetLogLevel(level)
	}

	// initialize input
	if err := core.InputInitialize(); err != nil {
		return err
	}

	// initialize events
	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e.onEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e.onKey)
	core.EventRegister(core.EVENT_CODE_RESIZED, e.onResized)

	if !config.Headless {
		if err := e.window.Startup(config.Name, config.StartPosX, config.StartPosY, config.StartWidth, config.StartHeight); err != nil {
			return err
		}
	}

	if err := e.gameInstance.FnInitialize(); err != nil {
		return err
	}

	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	e.isRunning.Store(true)
	core.LogInfo("engine initialized (headless=%t)", config.Headless)
	return nil
}

// Run drives frames until the window closes, a quit event is fired, the game
// fails or MaxFrames frames were produced.
func (e *Engine) Run() error {
	if e.currentStage != EngineStageInitialized {
		return core.ErrEngineNotRunning
	}
	e.currentStage = EngineStageRunning
	config := e.gameInstance.ApplicationConfig

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	targetFrameSeconds := config.FrameTime()

	for e.isRunning.Load() {
		if !config.Headless && !e.window.PumpMessages() {
			e.isRunning.Store(false)
			break
		}

		if e.isSuspended {
			continue
		}

		// Update clock and get delta time.
		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime
		if config.Headless {
			delta = targetFrameSeconds
		}
		frameStartTime := time.Now()

		if err := e.Step(delta); err != nil {
			core.LogError("frame failed, shutting down: %s", err)
			e.isRunning.Store(false)
			return err
		}

		// If there is time left, give it back to the OS.
		if !config.Headless && config.LimitFrames {
			remaining := targetFrameSeconds - time.Since(frameStartTime).Seconds()
			if remaining > 0 {
				time.Sleep(time.Duration(remaining * float64(time.Second)))
			}
		}

		if config.MaxFrames > 0 && e.metrics.TotalFrames() >= config.MaxFrames {
			core.LogInfo("reached %d frames, stopping", config.MaxFrames)
			e.isRunning.Store(false)
		}

		// Update last time
		e.lastTime = currentTime
	}

	return nil
}

// Step runs a single frame of deltaTime seconds: game update, then game
// render into a fresh packet, then the frame metrics and input snapshot.
func (e *Engine) Step(deltaTime float64) error {
	if err := e.gameInstance.FnUpdate(deltaTime); err != nil {
		return fmt.Errorf("game update: %w", err)
	}

	e.packet.Reset(deltaTime)
	if err := e.gameInstance.FnRender(e.packet, deltaTime); err != nil {
		return fmt.Errorf("game render: %w", err)
	}

	e.metrics.Update(deltaTime)

	// NOTE: Input update/state copying should always be handled
	// after any input should be recorded; I.E. before this line.
	// As a safety, input is the last thing to be updated before
	// this frame ends.
	core.InputUpdate()
	return nil
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	e.isRunning.Store(false)

	var err error
	if e.gameInstance.FnShutdown != nil {
		err = e.gameInstance.FnShutdown()
	}
	if serr := core.EventSystemShutdown(); serr != nil && err == nil {
		err = serr
	}
	if serr := core.InputShutdown(); serr != nil && err == nil {
		err = serr
	}
	if !e.gameInstance.ApplicationConfig.Headless && e.window != nil {
		if serr := e.window.Shutdown(); serr != nil && err == nil {
			err = serr
		}
	}
	e.currentStage = EngineStageUninitialized
	return err
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) IsRunning() bool {
	return e.isRunning.Load()
}

func (e *Engine) Metrics() *core.FrameMetrics {
	return e.metrics
}

// Packet returns the render packet of the last frame.
func (e *Engine) Packet() *scene.RenderPacket {
	return e.packet
}

// GetFramebufferSize returns the width and height (in this order)
// of the application Framebuffer
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) onEvent(context core.EventContext) bool {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning.Store(false)
	}
	// let other listeners see the quit too
	return false
}

func (e *Engine) onKey(context core.EventContext) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	if ke.KeyCode == core.KEY_ESCAPE {
		// NOTE: Technically firing an event to itself, but there may be other listeners.
		core.EventFire(core.EventContext{
			Type:   core.EVENT_CODE_APPLICATION_QUIT,
			Sender: e,
		})
		// Block anything else from processing this.
		return true
	}
	return false
}

func (e *Engine) onResized(context core.EventContext) bool {
	se, ok := context.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	width := se.WindowWidth
	height := se.WindowHeight

	// Check if different. If so, trigger a resize event.
	if width == e.width && height == e.height {
		return false
	}
	e.width = width
	e.height = height
	core.LogDebug("Window resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return true
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(width, height); err != nil {
			core.LogError("resize failed: %s", err)
		}
	}
	return false
}
