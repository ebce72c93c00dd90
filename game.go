package main

import (
	"errors"
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/quantumsuit/common"
	"github.com/milk9111/quantumsuit/ecs"
	"github.com/milk9111/quantumsuit/ecs/component"
	"github.com/milk9111/quantumsuit/ecs/entity"
	"github.com/milk9111/quantumsuit/ecs/render"
	"github.com/milk9111/quantumsuit/ecs/system"
	"github.com/milk9111/quantumsuit/levels"
	"github.com/milk9111/quantumsuit/logging"
	"github.com/milk9111/quantumsuit/prefabs"
	"go.uber.org/zap"
)

type GameOptions struct {
	Level  string
	Debug  bool
	Watch  bool
	Logger *zap.Logger
}

type Game struct {
	log   *zap.Logger
	debug bool

	level     *levels.Level
	world     *ecs.World
	scheduler *ecs.Scheduler
	input     *deviceInput

	playerSpec *prefabs.PlayerSpec
	cameraSpec *prefabs.CameraSpec
	watcher    *prefabs.Watcher

	renderer *render.RenderSystem
	hud      *render.HUD

	paused  bool
	pauseUI *ebitenui.UI
	failUI  *ebitenui.UI
	// retryLevel is the level the player last failed, offered by the fail UI.
	retryLevel string
	quit       bool
}

func NewGame(opts GameOptions) (*Game, error) {
	log := logging.OrNop(opts.Logger)

	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, err
	}

	g := &Game{
		log:        log,
		debug:      opts.Debug,
		input:      newDeviceInput(),
		playerSpec: playerSpec,
		cameraSpec: cameraSpec,
		renderer:   render.NewRenderSystem(render.PaletteFromSpec(cameraSpec)),
		hud:        render.NewHUD(),
		retryLevel: levels.DefaultLevel,
	}
	g.scheduler = system.NewFlightScheduler(float64(ebiten.DefaultTPS), g.input, log)

	name := opts.Level
	if name == "" {
		name = levels.DefaultLevel
	}
	if err := g.loadLevel(name, nil); err != nil {
		return nil, err
	}

	if opts.Watch {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Warn("prefab watcher disabled", zap.Error(err))
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// loadLevel replaces the world with a fresh one for name. An in-flight
// transition is carried across so it can fade back in.
func (g *Game) loadLevel(name string, carry *component.TransitionRuntime) error {
	lvl, err := levels.Load(name)
	if err != nil {
		return fmt.Errorf("game: load level %s: %w", name, err)
	}
	world, err := entity.NewLevelWorld(lvl, g.playerSpec, g.cameraSpec, float64(ebiten.DefaultTPS))
	if err != nil {
		return fmt.Errorf("game: build level %s: %w", name, err)
	}

	if carry != nil {
		rt := *carry
		rtEnt := world.CreateEntity()
		_ = ecs.Add(world, rtEnt, component.TransitionRuntimeComponent.Kind(), &rt)
		loaded := world.CreateEntity()
		_ = ecs.Add(world, loaded, component.LevelLoadedComponent.Kind(), &component.LevelLoaded{})
	}

	g.level = lvl
	g.world = world
	g.paused = false

	fields := []zap.Field{zap.String("level", lvl.Name), zap.Bool("menu", lvl.Menu)}
	if _, session, ok := ecs.GetFirst(world, component.SessionComponent.Kind()); ok {
		fields = append(fields, zap.String("session", session.ID))
	}
	g.log.Info("level loaded", fields...)
	return nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.drainWatcher()

	if g.level.Menu {
		g.failMenu().Update()
		g.scheduler.Update(g.world)
		return g.handleLevelChange()
	}

	if g.input.PausePressed() {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseMenu().Update()
		return nil
	}

	g.scheduler.Update(g.world)
	return g.handleLevelChange()
}

// handleLevelChange consumes pending LevelChangeRequests. One is honoured,
// countdown expiry first; a failed load is logged and the current level kept.
func (g *Game) handleLevelChange() error {
	next, carry, ok := system.DrainLevelChange(g.world)
	if !ok {
		return nil
	}

	g.log.Info("level change requested",
		zap.String("target_level", next.TargetLevel),
		zap.String("from_level", next.FromLevel),
		zap.String("reason", next.Reason),
	)
	if next.Reason == system.ReasonCountdownExpired && next.FromLevel != "" {
		g.retryLevel = next.FromLevel
	}
	if err := g.loadLevel(next.TargetLevel, carry); err != nil {
		g.log.Error("level change failed",
			zap.String("target_level", next.TargetLevel),
			zap.Bool("not_found", errors.Is(err, levels.ErrLevelNotFound)),
			zap.Error(err),
		)
		// the fade-out runtime is still waiting on a load that will not come
		if carry != nil {
			for _, e := range g.world.Query(component.TransitionRuntimeComponent.Kind()) {
				g.world.DestroyEntity(e)
			}
		}
	}
	return nil
}

// requestLevel queues a level change from the UI, handled next Update.
func (g *Game) requestLevel(name, reason string) {
	e := g.world.CreateEntity()
	_ = ecs.Add(g.world, e, component.LevelChangeRequestComponent.Kind(), &component.LevelChangeRequest{
		TargetLevel: name,
		Reason:      reason,
		FromLevel:   g.level.Name,
	})
	g.paused = false
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadPrefab(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("prefab watcher", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) reloadPrefab(name string) {
	switch name {
	case prefabs.PlayerFile:
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			g.log.Error("reload prefab", zap.String("file", name), zap.Error(err))
			return
		}
		g.playerSpec = spec
		applied := entity.ApplyPlayerSpec(g.world, spec)
		g.log.Info("prefab reloaded", zap.String("file", name), zap.Bool("applied", applied))
	case prefabs.CameraFile:
		spec, err := prefabs.LoadCameraSpec()
		if err != nil {
			g.log.Error("reload prefab", zap.String("file", name), zap.Error(err))
			return
		}
		g.cameraSpec = spec
		g.renderer.Palette = render.PaletteFromSpec(spec)
		applied := entity.ApplyCameraSpec(g.world, spec)
		g.log.Info("prefab reloaded", zap.String("file", name), zap.Bool("applied", applied))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)
	if g.level.Menu {
		g.hud.DrawTitle(screen, g.level.Title)
		g.failMenu().Draw(screen)
	}
	g.hud.Draw(g.world, screen)
	if g.paused {
		g.pauseMenu().Draw(screen)
	}
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  level: %s  entities: %d", ebiten.ActualFPS(), g.level.Name, len(ecs.Entities(g.world))))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) pauseMenu() *ebitenui.UI {
	if g.pauseUI == nil {
		g.pauseUI = NewPauseUI(g)
	}
	return g.pauseUI
}

func (g *Game) failMenu() *ebitenui.UI {
	if g.failUI == nil {
		g.failUI = NewFailUI(g)
	}
	return g.failUI
}
