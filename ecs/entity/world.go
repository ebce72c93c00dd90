package entity

import (
	"fmt"

	"github.com/milk9111/quantumsuit/ecs"
	"github.com/milk9111/quantumsuit/levels"
	"github.com/milk9111/quantumsuit/prefabs"
)

// NewLevelWorld builds a fresh world for lvl: clock, physics, geometry and,
// unless lvl is a menu, the player craft and its chase camera.
func NewLevelWorld(lvl *levels.Level, player *prefabs.PlayerSpec, camera *prefabs.CameraSpec, tps float64) (*ecs.World, error) {
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())

	if _, err := NewClock(w, tps); err != nil {
		return nil, err
	}
	if err := LoadLevelToWorld(w, lvl); err != nil {
		return nil, fmt.Errorf("world: load level %s: %w", lvl.Name, err)
	}
	if lvl.Menu {
		return w, nil
	}
	if _, err := NewPlayerFromSpec(w, player, lvl); err != nil {
		return nil, err
	}
	if _, err := NewCameraFromSpec(w, camera); err != nil {
		return nil, err
	}
	return w, nil
}
