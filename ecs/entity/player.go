package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/milk9111/quantumsuit/ecs"
	"github.com/milk9111/quantumsuit/ecs/component"
	"github.com/milk9111/quantumsuit/flight"
	"github.com/milk9111/quantumsuit/levels"
	"github.com/milk9111/quantumsuit/prefabs"
)

func NewPlayer(w *ecs.World, lvl *levels.Level) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	return NewPlayerFromSpec(w, spec, lvl)
}

// NewPlayerFromSpec spawns the craft at the level's spawn point with a fresh
// session id and an idle fail timer that starts on the first tick.
func NewPlayerFromSpec(w *ecs.World, spec *prefabs.PlayerSpec, lvl *levels.Level) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("player: nil world")
	}
	if lvl == nil {
		return 0, fmt.Errorf("player: nil level")
	}

	tuning := spec.Tuning()
	countdown := spec.Countdown()
	if lvl.CountdownSeconds > 0 {
		countdown = lvl.CountdownSeconds
	}
	speed := tuning.MinSpeed
	if spec != nil && spec.InitialSpeed > 0 {
		speed = min(spec.InitialSpeed, tuning.MaxSpeed)
	}
	radius := 0.0
	if spec != nil {
		radius = max(spec.Radius, 0)
	}

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{
		Position: lvl.Spawn.Position(),
		Rotation: flight.Yaw(lvl.Spawn.Yaw),
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.FlightComponent.Kind(), &component.Flight{
		Speed:  speed,
		Tuning: tuning,
		Radius: radius,
	}); err != nil {
		return 0, fmt.Errorf("player: add flight: %w", err)
	}
	if err := ecs.Add(w, player, component.FailTimerComponent.Kind(), &component.FailTimer{
		Countdown:     flight.NewCountdown(countdown),
		FallbackLevel: lvl.FallbackLevel(),
	}); err != nil {
		return 0, fmt.Errorf("player: add fail timer: %w", err)
	}
	if err := ecs.Add(w, player, component.SessionComponent.Kind(), &component.Session{
		ID:    uuid.NewString(),
		Level: lvl.Name,
	}); err != nil {
		return 0, fmt.Errorf("player: add session: %w", err)
	}

	return player, nil
}

// ApplyPlayerSpec re-applies tuning from a reloaded prefab to a live craft.
// Speed is re-clamped to the new bounds; the countdown is left alone.
func ApplyPlayerSpec(w *ecs.World, spec *prefabs.PlayerSpec) bool {
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return false
	}
	fl, ok := ecs.Get(w, player, component.FlightComponent.Kind())
	if !ok {
		return false
	}
	fl.Tuning = spec.Tuning()
	fl.Speed = min(fl.Speed, fl.Tuning.MaxSpeed)
	if spec != nil && spec.Radius > 0 {
		fl.Radius = spec.Radius
	}
	return true
}
