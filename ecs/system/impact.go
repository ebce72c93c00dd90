package system

import (
	"github.com/milk9111/quantumsuit/ecs"
	"github.com/milk9111/quantumsuit/ecs/component"
	"github.com/milk9111/quantumsuit/flight"
	"github.com/milk9111/quantumsuit/logging"
	"go.uber.org/zap"
)

// ImpactSystem is the hit reaction: it consumes ImpactEvents, zeroes forward
// speed and, when the craft's tuning asks for it, deflects the heading toward
// the surface normal.
type ImpactSystem struct {
	log *zap.Logger
}

func NewImpactSystem(log *zap.Logger) *ImpactSystem {
	return &ImpactSystem{log: logging.OrNop(log)}
}

func (s *ImpactSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.ImpactEventComponent.Kind(), component.FlightComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, ev *component.ImpactEvent, fl *component.Flight, tr *component.Transform) {
		prev := fl.Speed
		fl.Speed, tr.Rotation = flight.Impact(tr.Rotation, ev.Normal, fl.Tuning)
		fl.Impacts++

		// sustained contact re-raises an impact every tick
		logAt := s.log.Info
		if fl.Contact {
			logAt = s.log.Debug
		}
		fl.Contact = true
		logAt("impact",
			sessionField(w, e),
			zap.Float64("speed_before", prev),
			zap.Float32s("normal", ev.Normal[:]),
			zap.Uint64("other", ev.Other),
			zap.Int("impacts", fl.Impacts),
			zap.Bool("deflected", fl.Tuning.DeflectOnImpact),
		)
		ecs.Remove(w, e, component.ImpactEventComponent.Kind())
	})
}

func sessionField(w *ecs.World, e ecs.Entity) zap.Field {
	if s, ok := ecs.Get(w, e, component.SessionComponent.Kind()); ok {
		return zap.String("session", s.ID)
	}
	return zap.Skip()
}
