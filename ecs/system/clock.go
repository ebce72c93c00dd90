package system

import (
	"github.com/milk9111/quantumsuit/ecs"
	"github.com/milk9111/quantumsuit/ecs/component"
)

// ClockSystem advances every Clock by one tick. It runs first so the rest of
// the frame sees the current tick.
type ClockSystem struct {
	tps float64
}

func NewClockSystem(tps float64) *ClockSystem {
	return &ClockSystem{tps: tps}
}

func (s *ClockSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.ClockComponent.Kind(), func(_ ecs.Entity, clock *component.Clock) {
		if clock.TPS <= 0 {
			clock.TPS = s.tps
		}
		clock.Tick++
	})
}

// frameClock returns the world clock, or ok=false when the world has none.
func frameClock(w *ecs.World) (*component.Clock, bool) {
	_, clock, ok := ecs.GetFirst(w, component.ClockComponent.Kind())
	return clock, ok
}
