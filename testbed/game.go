package testbed

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/catapult/engine"
	"github.com/spaghettifunk/catapult/engine/animation"
	"github.com/spaghettifunk/catapult/engine/assets"
	"github.com/spaghettifunk/catapult/engine/containers"
	"github.com/spaghettifunk/catapult/engine/core"
	"github.com/spaghettifunk/catapult/engine/level"
	"github.com/spaghettifunk/catapult/engine/renderer/components"
	"github.com/spaghettifunk/catapult/engine/scene"
)

// Game codes live above the engine's reserved range.
const (
	// Data: *GameOverEvent
	EVENT_CODE_GAME_OVER core.EventCode = 0x100
)

type GameOverEvent struct {
	Won   bool
	Actor string
}

type CatapultGame struct {
	*engine.Game
}

type gameState struct {
	level    *level.Level
	importer assets.Importer
	watcher  *assets.Watcher

	scene  *scene.Scene
	camera *components.Camera
	actors *containers.RingQueue[*scene.Object]
	actor  *scene.Object
	loader *animation.Animator

	launched bool
	gameOver bool
	won      bool
	launches int

	width  uint32
	height uint32
}

func NewCatapultGame(config *engine.ApplicationConfig) *CatapultGame {
	g := &CatapultGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State: &gameState{
				importer: assets.NewModelImporter(filepath.Dir(config.LevelPath)),
			},
		},
	}

	g.FnInitialize = g.Initialize
	g.FnUpdate = g.Update
	g.FnRender = g.Render
	g.FnOnResize = g.OnResize
	g.FnShutdown = g.Shutdown

	return g
}

func (g *CatapultGame) state() *gameState {
	return g.State.(*gameState)
}

func (g *CatapultGame) Initialize() error {
	core.LogDebug("CatapultGame Initialize fn....")
	state := g.state()

	lvl, err := level.Load(g.ApplicationConfig.LevelPath)
	if err != nil {
		return err
	}
	if err := g.start(lvl); err != nil {
		return err
	}

	if g.ApplicationConfig.WatchLevel {
		w, err := assets.NewWatcher(g.ApplicationConfig.LevelPath)
		if err != nil {
			return fmt.Errorf("watching level: %w", err)
		}
		state.watcher = w
	}

	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, g.gameOnKey)
	core.EventRegister(EVENT_CODE_GAME_OVER, g.gameOnEvent)
	return nil
}

// start builds the scene of lvl and hands the first actor to the catapult.
func (g *CatapultGame) start(lvl *level.Level) error {
	state := g.state()

	s, actors, err := level.Build(lvl, state.importer)
	if err != nil {
		return err
	}

	queue := containers.NewRingQueue[*scene.Object](len(actors))
	for _, a := range actors {
		if err := queue.Enqueue(a); err != nil {
			return err
		}
	}

	camera := components.NewCamera()
	camera.SetPosition(lvl.Camera.PositionVector())

	state.level = lvl
	state.scene = s
	state.camera = camera
	state.actors = queue
	state.actor = nil
	state.loader = nil
	state.launched = false
	state.gameOver = false
	state.won = false
	state.launches = 0

	g.nextActor()
	return nil
}

// nextActor makes the next queued actor active and starts its load sequence.
// The game is over when the queue is empty.
func (g *CatapultGame) nextActor() {
	state := g.state()
	state.launched = false
	state.loader = nil

	actor, err := state.actors.Dequeue()
	if err != nil {
		state.actor = nil
		state.scene.SetActive(nil)
		g.endGame(false)
		return
	}
	state.actor = actor
	state.scene.SetActive(actor)
	core.LogInfo("%s is up, %d left", actor, state.actors.Len())

	if state.level.LoadSequence == "" {
		return
	}
	loader, err := level.Sequence(state.level.Sequences[state.level.LoadSequence], actor)
	if err != nil {
		core.LogError("load sequence for %s: %s", actor, err)
		return
	}
	loader.Start()
	state.scene.AddAnimator(loader)
	state.loader = loader
}

func (g *CatapultGame) Update(deltaTime float64) error {
	state := g.state()

	if state.watcher != nil && state.watcher.Changed() {
		g.reload()
	}
	if core.InputKeyPressedThisFrame(core.KEY_R) {
		g.reload()
	}
	if state.gameOver || state.actor == nil {
		return nil
	}

	dt := float32(deltaTime)
	state.scene.Tick(dt)
	state.scene.PruneIdle()
	defer g.updateCamera(dt)

	actor := state.actor
	if !state.launched {
		loaded := state.loader == nil || state.loader.IsIdle()
		if loaded && (g.ApplicationConfig.Headless || core.InputKeyPressedThisFrame(core.KEY_B)) {
			g.launch()
		}
		return nil
	}

	for i := range state.level.Zones {
		zone := &state.level.Zones[i]
		if zone.Apply(actor) && zone.Goal {
			g.endGame(true)
			return nil
		}
	}

	if actor.Velocity().Len() < state.level.Launch.Threshold() {
		core.LogInfo("%s came to rest at %v", actor, actor.Position())
		actor.SetVelocity(mgl32.Vec3{})
		g.nextActor()
		return nil
	}

	// forces for the next integration step
	mass := actor.Mass()
	actor.AddForceToList(state.level.GravityVector().Mul(mass))
	actor.AddForceToList(actor.Velocity().Mul(-state.level.Launch.Friction * mass))
	return nil
}

// updateCamera trails a flying actor, otherwise A and D pan the view.
func (g *CatapultGame) updateCamera(dt float32) {
	state := g.state()
	if state.launched && state.actor != nil {
		state.camera.Follow(state.actor.Position(), state.level.Camera.Offset())
		return
	}

	state.camera.SetFront(mgl32.Vec3{0, 0, -1})
	speed := state.level.Camera.Speed() * dt
	if core.InputIsKeyDown(core.KEY_A) || core.InputIsKeyDown(core.KEY_LEFT) {
		state.camera.MoveLeft(speed)
	}
	if core.InputIsKeyDown(core.KEY_D) || core.InputIsKeyDown(core.KEY_RIGHT) {
		state.camera.MoveRight(speed)
	}
}

func (g *CatapultGame) launch() {
	state := g.state()
	actor := state.actor

	actor.SetVelocity(state.level.Launch.VelocityVector())
	mass := actor.Mass()
	actor.AddForceToList(state.level.GravityVector().Mul(mass))
	state.launched = true
	state.launches++
	core.LogInfo("%s launched from %v", actor, actor.Position())
}

func (g *CatapultGame) endGame(won bool) {
	state := g.state()
	if state.gameOver {
		return
	}
	state.gameOver = true
	state.won = won

	name := ""
	if state.actor != nil {
		name = state.actor.Name()
	}
	core.EventFire(core.EventContext{
		Type:   EVENT_CODE_GAME_OVER,
		Sender: g,
		Data:   &GameOverEvent{Won: won, Actor: name},
	})
}

// reload rebuilds the level from disk. A level that fails to load is
// reported and the current one keeps running.
func (g *CatapultGame) reload() {
	lvl, err := level.Load(g.ApplicationConfig.LevelPath)
	if err != nil {
		core.LogError("level reload failed: %s", err)
		return
	}
	if err := g.start(lvl); err != nil {
		core.LogError("level rebuild failed: %s", err)
		return
	}
	core.LogInfo("level %s reloaded", lvl.Name)
}

func (g *CatapultGame) Render(packet *scene.RenderPacket, deltaTime float64) error {
	state := g.state()
	if state.scene == nil {
		return nil
	}
	packet.View = state.camera.GetView()
	return state.scene.Render(packet)
}

func (g *CatapultGame) OnResize(width uint32, height uint32) error {
	state := g.state()

	state.width = width
	state.height = height

	return nil
}

func (g *CatapultGame) Shutdown() error {
	state := g.state()

	if state.watcher != nil {
		err := state.watcher.Close()
		state.watcher = nil
		return err
	}
	return nil
}

func (g *CatapultGame) gameOnEvent(context core.EventContext) bool {
	over, ok := context.Data.(*GameOverEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}
	if over.Won {
		core.LogInfo("game over: %s reached the goal", over.Actor)
	} else {
		core.LogInfo("game over: no actors left")
	}

	// nobody can restart a headless run
	if g.ApplicationConfig.Headless {
		core.EventFire(core.EventContext{
			Type:   core.EVENT_CODE_APPLICATION_QUIT,
			Sender: g,
		})
	}
	return true
}

func (g *CatapultGame) gameOnKey(context core.EventContext) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		return false
	}
	if ke.KeyCode == core.KEY_P {
		if actor := g.state().actor; actor != nil {
			core.LogInfo("%s position %v velocity %v", actor, actor.Position(), actor.Velocity())
		}
		return true
	}
	return false
}
