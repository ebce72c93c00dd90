package system

import (
	"github.com/milk9111/quantumsuit/ecs"
	"github.com/milk9111/quantumsuit/ecs/component"
	"github.com/milk9111/quantumsuit/flight"
	"github.com/milk9111/quantumsuit/logging"
	"go.uber.org/zap"
)

const ReasonCountdownExpired = "countdown_expired"

// LaunchSystem is the spawn step: on the first tick a craft exists it starts
// the craft's countdown from the start of that tick and forces its launch
// speed. It runs right after the clock so the first tick already flies at
// launch speed.
type LaunchSystem struct {
	log *zap.Logger
}

func NewLaunchSystem(log *zap.Logger) *LaunchSystem {
	return &LaunchSystem{log: logging.OrNop(log)}
}

func (s *LaunchSystem) Update(w *ecs.World) {
	clock, ok := frameClock(w)
	if !ok {
		return
	}
	ecs.ForEach(w, component.FailTimerComponent.Kind(), func(e ecs.Entity, timer *component.FailTimer) {
		if timer.Countdown.State == flight.CountdownIdle {
			s.launch(w, e, timer, clock.TickStart())
		}
	})
}

func (s *LaunchSystem) launch(w *ecs.World, e ecs.Entity, timer *component.FailTimer, now float64) {
	timer.Countdown.Start(now)

	launch := 0.0
	if fl, ok := ecs.Get(w, e, component.FlightComponent.Kind()); ok {
		fl.Speed = min(max(fl.Tuning.LaunchSpeed, 0), fl.Tuning.MaxSpeed)
		launch = fl.Speed
	}
	s.log.Info("countdown started",
		sessionField(w, e),
		zap.Float64("duration", timer.Countdown.Duration),
		zap.Float64("deadline", timer.Countdown.Deadline),
		zap.Float64("launch_speed", launch),
	)
}

// FailTimerSystem checks each running FailTimer against the world clock and,
// when the deadline is reached, emits a single LevelChangeRequest for the
// timer's fallback level.
type FailTimerSystem struct {
	log *zap.Logger
}

func NewFailTimerSystem(log *zap.Logger) *FailTimerSystem {
	return &FailTimerSystem{log: logging.OrNop(log)}
}

func (s *FailTimerSystem) Update(w *ecs.World) {
	clock, ok := frameClock(w)
	if !ok {
		return
	}
	now := clock.Elapsed()

	ecs.ForEach(w, component.FailTimerComponent.Kind(), func(e ecs.Entity, timer *component.FailTimer) {
		if !timer.Countdown.Expire(now) {
			return
		}

		req := &component.LevelChangeRequest{
			TargetLevel: timer.FallbackLevel,
			Reason:      ReasonCountdownExpired,
		}
		if session, ok := ecs.Get(w, e, component.SessionComponent.Kind()); ok {
			req.FromLevel = session.Level
		}
		reqEnt := w.CreateEntity()
		_ = ecs.Add(w, reqEnt, component.LevelChangeRequestComponent.Kind(), req)

		s.log.Info("countdown expired",
			sessionField(w, e),
			zap.Float64("at", now),
			zap.String("fallback_level", timer.FallbackLevel),
		)
	})
}
