package system

import (
	"fmt"

	"github.com/milk9111/quantumsuit/ecs"
	"github.com/milk9111/quantumsuit/ecs/component"
	"github.com/milk9111/quantumsuit/flight"
)

// Readout formats the player's speed, remaining countdown and impact count
// for the HUD. It reports false when the world has no flying player.
func Readout(w *ecs.World) ([]string, bool) {
	if w == nil {
		return nil, false
	}
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return nil, false
	}
	fl, ok := ecs.Get(w, player, component.FlightComponent.Kind())
	if !ok {
		return nil, false
	}

	now := 0.0
	if clock, ok := frameClock(w); ok {
		now = clock.Elapsed()
	}
	remaining := 0.0
	if timer, ok := ecs.Get(w, player, component.FailTimerComponent.Kind()); ok {
		remaining = timer.Countdown.Remaining(now)
	}

	speed := fmt.Sprintf("SPEED %4.0f", fl.Speed)
	if flight.Recovering(fl.Speed, fl.Tuning) {
		speed += " RECOVERING"
	}
	return []string{
		speed,
		fmt.Sprintf("TIME  %4.1f", remaining),
		fmt.Sprintf("HITS  %d", fl.Impacts),
	}, true
}
