package system

import (
	"github.com/milk9111/quantumsuit/ecs"
	"go.uber.org/zap"
)

// NewFlightScheduler returns the per-tick systems in their required order:
// clock, launch, input, flight, bank, movement, impact, fail timer, gates,
// transition, camera.
func NewFlightScheduler(tps float64, input InputSource, log *zap.Logger) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewClockSystem(tps),
		NewLaunchSystem(log),
		NewInputSystem(input),
		NewFlightSystem(),
		NewBankSystem(),
		NewMovementSystem(),
		NewImpactSystem(log),
		NewFailTimerSystem(log),
		NewGateSystem(log),
		NewTransitionSystem(),
		NewCameraSystem(),
	)
}
