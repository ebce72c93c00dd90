package system

import (
	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/quantumsuit/ecs"
	"github.com/milk9111/quantumsuit/ecs/component"
)

// MovementSystem moves each craft forward by Speed*dt along its heading and
// applies the up/right movement input, sweeping both against the physics
// world. The two sweeps are independent: a blocked forward sweep does not
// cancel the up/right input, so the craft can slide off a wall it is pressed
// against. A blocked sweep stops the craft at the contact and attaches an
// ImpactEvent for ImpactSystem.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	clock, ok := frameClock(w)
	if !ok {
		return
	}
	dt := float32(clock.Delta())
	if dt <= 0 {
		return
	}

	ecs.ForEach3(w, component.TransformComponent.Kind(), component.FlightComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, tr *component.Transform, fl *component.Flight, input *component.Input) {
		forward := tr.Forward().Mul(float32(fl.Speed) * dt)
		blocked := s.sweep(w, e, tr, fl, forward)

		if input.MoveUp != 0 || input.MoveRight != 0 {
			lateral := tr.Up().Mul(float32(input.MoveUp)).
				Add(tr.Right().Mul(float32(input.MoveRight))).
				Mul(float32(fl.Tuning.StrafeSpeed) * dt)
			if s.sweep(w, e, tr, fl, lateral) {
				blocked = true
			}
		}
		if !blocked {
			fl.Contact = false
		}
	})
}

// sweep applies the local offset d to tr and reports whether it was blocked.
func (s *MovementSystem) sweep(w *ecs.World, e ecs.Entity, tr *component.Transform, fl *component.Flight, d mgl.Vec3) bool {
	if d.Len() == 0 {
		return false
	}
	from := tr.Position

	pw := w.PhysicsWorld()
	hit, blocked := pw.Sweep(from, from.Add(d), fl.Radius)
	if !blocked {
		tr.Position = from.Add(d)
		return false
	}

	tr.Position = ecs.Resolve(from, d, hit)
	if !ecs.Has(w, e, component.ImpactEventComponent.Kind()) {
		_ = ecs.Add(w, e, component.ImpactEventComponent.Kind(), &component.ImpactEvent{
			Point:  hit.Point,
			Normal: hit.Normal,
			Other:  uint64(hit.Entity),
		})
	}
	return true
}
