package system

import (
	"github.com/milk9111/quantumsuit/ecs"
	"github.com/milk9111/quantumsuit/ecs/component"
)

const transitionFadeFrames = 30

// TransitionSystem animates an active TransitionRuntime. Fade-out ends by
// spawning the runtime's LevelChangeRequest; the runtime then waits for the
// Game loop to add LevelLoaded before fading back in and removing itself.
type TransitionSystem struct{}

func NewTransitionSystem() *TransitionSystem { return &TransitionSystem{} }

func (ts *TransitionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	rtEnt, rt, ok := ecs.GetFirst(w, component.TransitionRuntimeComponent.Kind())
	if !ok {
		return
	}

	if rt.Timer > 0 {
		rt.Timer--
	}
	switch rt.Phase {
	case component.TransitionFadeOut:
		rt.Alpha = 1 - float64(rt.Timer)/float64(transitionFadeFrames)
		if rt.Timer <= 0 && !rt.ReqSent {
			req := rt.Req
			reqEnt := w.CreateEntity()
			_ = ecs.Add(w, reqEnt, component.LevelChangeRequestComponent.Kind(), &req)
			rt.ReqSent = true
		}
		if rt.ReqSent {
			if _, loaded := w.First(component.LevelLoadedComponent.Kind()); loaded {
				rt.Phase = component.TransitionFadeIn
				rt.Timer = transitionFadeFrames
				rt.Alpha = 1
			}
		}
	case component.TransitionFadeIn:
		rt.Alpha = float64(rt.Timer) / float64(transitionFadeFrames)
		if rt.Timer <= 0 {
			w.DestroyEntity(rtEnt)
			for _, e := range w.Query(component.LevelLoadedComponent.Kind()) {
				w.DestroyEntity(e)
			}
		}
	default:
		w.DestroyEntity(rtEnt)
	}
}

// FadeAlpha reports the current transition overlay opacity, zero when idle.
func FadeAlpha(w *ecs.World) float64 {
	if w == nil {
		return 0
	}
	_, rt, ok := ecs.GetFirst(w, component.TransitionRuntimeComponent.Kind())
	if !ok {
		return 0
	}
	return rt.Alpha
}

// DrainLevelChange removes every pending LevelChangeRequest and returns the
// one to act on. A countdown expiry wins over any other request raised in the
// same tick. The fade runtime is returned for carrying into the next level
// only when the chosen request is the one it sent; otherwise it is destroyed
// so no fade is left waiting on a load that belongs to another request.
func DrainLevelChange(w *ecs.World) (component.LevelChangeRequest, *component.TransitionRuntime, bool) {
	if w == nil {
		return component.LevelChangeRequest{}, nil, false
	}
	ents := w.Query(component.LevelChangeRequestComponent.Kind())
	if len(ents) == 0 {
		return component.LevelChangeRequest{}, nil, false
	}

	var next component.LevelChangeRequest
	found := false
	for _, e := range ents {
		req, ok := ecs.Get(w, e, component.LevelChangeRequestComponent.Kind())
		if !ok {
			continue
		}
		if !found || (req.Reason == ReasonCountdownExpired && next.Reason != ReasonCountdownExpired) {
			next = *req
			found = true
		}
	}
	for _, e := range ents {
		w.DestroyEntity(e)
	}
	if !found {
		return component.LevelChangeRequest{}, nil, false
	}

	rtEnt, rt, ok := ecs.GetFirst(w, component.TransitionRuntimeComponent.Kind())
	if !ok {
		return next, nil, true
	}
	if rt.ReqSent && rt.Req == next {
		carry := *rt
		return next, &carry, true
	}
	w.DestroyEntity(rtEnt)
	return next, nil, true
}
