package system

import (
	"github.com/milk9111/quantumsuit/ecs"
	"github.com/milk9111/quantumsuit/ecs/component"
)

// InputSource polls the device axes once per frame.
type InputSource interface {
	Axes() component.Input
}

// InputSystem copies the polled Thrust, MoveUp and MoveRight axes onto every
// entity with an Input component.
type InputSystem struct {
	source InputSource
}

// NewInputSystem panics if source is nil: a craft without an input binding
// is a programming error.
func NewInputSystem(source InputSource) *InputSystem {
	if source == nil {
		panic("input system: nil input source")
	}
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	axes := i.source.Axes()
	axes.Thrust = clampAxis(axes.Thrust)
	axes.MoveUp = clampAxis(axes.MoveUp)
	axes.MoveRight = clampAxis(axes.MoveRight)

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = axes
	})
}

func clampAxis(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// StickDeadZone is the magnitude below which an analog axis reads as zero.
const StickDeadZone = 0.2

// ApplyDeadZone zeroes small stick deflections and rescales the rest so the
// output still spans [-1, 1].
func ApplyDeadZone(v, deadZone float64) float64 {
	v = clampAxis(v)
	mag := v
	if mag < 0 {
		mag = -mag
	}
	if mag < deadZone || deadZone >= 1 {
		return 0
	}
	scaled := (mag - deadZone) / (1 - deadZone)
	if v < 0 {
		return -scaled
	}
	return scaled
}
