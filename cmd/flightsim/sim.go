package main

import (
	"fmt"

	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/quantumsuit/ecs"
	"github.com/milk9111/quantumsuit/ecs/component"
	"github.com/milk9111/quantumsuit/ecs/entity"
	"github.com/milk9111/quantumsuit/ecs/system"
	"github.com/milk9111/quantumsuit/levels"
	"github.com/milk9111/quantumsuit/logging"
	"github.com/milk9111/quantumsuit/prefabs"
	"go.uber.org/zap"
)

type Options struct {
	Level      *levels.Level
	PlayerSpec *prefabs.PlayerSpec
	CameraSpec *prefabs.CameraSpec
	TPS        float64
	Seconds    float64
	Axes       component.Input
	Logger     *zap.Logger
}

type Result struct {
	Ticks    int64
	Elapsed  float64
	Speed    float64
	Impacts  int
	Position mgl.Vec3
	// Request is the first level change the run produced, if any.
	Request *component.LevelChangeRequest
}

type fixedInput component.Input

func (f fixedInput) Axes() component.Input { return component.Input(f) }

// Run simulates until the first level change request or until Seconds of
// simulated time have passed.
func Run(opts Options) (Result, error) {
	if opts.Level == nil {
		return Result{}, fmt.Errorf("flightsim: nil level")
	}
	if opts.Level.Menu {
		return Result{}, fmt.Errorf("flightsim: %s is a menu level", opts.Level.Name)
	}
	if opts.TPS <= 0 {
		return Result{}, fmt.Errorf("flightsim: tps must be positive, got %v", opts.TPS)
	}
	log := logging.OrNop(opts.Logger)

	w, err := entity.NewLevelWorld(opts.Level, opts.PlayerSpec, opts.CameraSpec, opts.TPS)
	if err != nil {
		return Result{}, err
	}
	sched := system.NewFlightScheduler(opts.TPS, fixedInput(opts.Axes), log)

	maxTicks := int64(opts.Seconds * opts.TPS)
	var res Result
	for res.Ticks < maxTicks {
		sched.Update(w)
		res.Ticks++
		if _, req, ok := ecs.GetFirst(w, component.LevelChangeRequestComponent.Kind()); ok {
			r := *req
			res.Request = &r
			break
		}
	}

	if _, clock, ok := ecs.GetFirst(w, component.ClockComponent.Kind()); ok {
		res.Elapsed = clock.Elapsed()
	}
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return res, fmt.Errorf("flightsim: player missing after run")
	}
	if fl, ok := ecs.Get(w, player, component.FlightComponent.Kind()); ok {
		res.Speed = fl.Speed
		res.Impacts = fl.Impacts
	}
	if tr, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
		res.Position = tr.Position
	}
	return res, nil
}
