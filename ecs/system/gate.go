package system

import (
	"github.com/milk9111/quantumsuit/ecs"
	"github.com/milk9111/quantumsuit/ecs/component"
	"github.com/milk9111/quantumsuit/logging"
	"go.uber.org/zap"
)

const ReasonGate = "gate"

// GateSystem starts a fade-out transition when the player flies into a gate.
// While a transition is in flight no new gate is considered.
type GateSystem struct {
	log *zap.Logger
}

func NewGateSystem(log *zap.Logger) *GateSystem {
	return &GateSystem{log: logging.OrNop(log)}
}

func (gs *GateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if _, busy := w.First(component.TransitionRuntimeComponent.Kind()); busy {
		return
	}

	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	tr, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	for _, ent := range w.Query(component.GateComponent.Kind()) {
		gate, ok := ecs.Get(w, ent, component.GateComponent.Kind())
		if !ok || gate.TargetLevel == "" {
			continue
		}
		if !gate.Contains(tr.Position) {
			continue
		}

		req := component.LevelChangeRequest{
			TargetLevel: gate.TargetLevel,
			Reason:      ReasonGate,
		}
		if session, ok := ecs.Get(w, player, component.SessionComponent.Kind()); ok {
			req.FromLevel = session.Level
		}

		rtEnt := w.CreateEntity()
		_ = ecs.Add(w, rtEnt, component.TransitionRuntimeComponent.Kind(), &component.TransitionRuntime{
			Phase: component.TransitionFadeOut,
			Timer: transitionFadeFrames,
			Req:   req,
		})
		gs.log.Info("gate entered",
			sessionField(w, player),
			zap.String("gate", gate.ID),
			zap.String("target_level", gate.TargetLevel),
		)
		return
	}
}
