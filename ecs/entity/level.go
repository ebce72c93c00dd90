package entity

import (
	"fmt"

	"github.com/milk9111/quantumsuit/ecs"
	"github.com/milk9111/quantumsuit/ecs/component"
	"github.com/milk9111/quantumsuit/levels"
)

// NewClock adds the world clock. Every world needs exactly one.
func NewClock(w *ecs.World, tps float64) (ecs.Entity, error) {
	clock := ecs.CreateEntity(w)
	if err := ecs.Add(w, clock, component.ClockComponent.Kind(), &component.Clock{TPS: tps}); err != nil {
		return 0, fmt.Errorf("clock: add clock: %w", err)
	}
	return clock, nil
}

// LoadLevelToWorld creates obstacle and gate entities for lvl and registers
// the obstacles and ground with the world's physics.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level) error {
	if w == nil || lvl == nil {
		return fmt.Errorf("level: nil world or level")
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		pw = ecs.NewPhysicsWorld()
		w.SetPhysicsWorld(pw)
	}
	pw.SetGround(lvl.Ground())

	for i, box := range lvl.Obstacles {
		e := ecs.CreateEntity(w)
		ob := &component.Obstacle{Min: box.Min.Vec3(), Max: box.Max.Vec3()}
		if err := ecs.Add(w, e, component.ObstacleComponent.Kind(), ob); err != nil {
			return fmt.Errorf("level: add obstacle %d: %w", i, err)
		}
		pw.AddObstacle(e, ob.Min, ob.Max)
	}

	for i, g := range lvl.Gates {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.GateComponent.Kind(), &component.Gate{
			ID:          g.ID,
			TargetLevel: g.TargetLevel,
			Min:         g.Min.Vec3(),
			Max:         g.Max.Vec3(),
		}); err != nil {
			return fmt.Errorf("level: add gate %d: %w", i, err)
		}
	}
	return nil
}
