// Package flight holds the engine-independent rules of forward flight: the
// throttle speed model, the impact reaction and the fail countdown.
package flight

import "fmt"

const (
	DefaultAcceleration     = 500.0
	DefaultTurnSpeed        = 50.0
	DefaultMaxSpeed         = 4000.0
	DefaultMinSpeed         = 500.0
	DefaultLaunchSpeed      = 1200.0
	DefaultStrafeSpeed      = 600.0
	DefaultDeflectAlpha     = 0.025
	DefaultCountdownSeconds = 10.0
)

// Tuning is the set of numeric knobs exposed for external tuning of a craft.
type Tuning struct {
	// Acceleration is how quickly forward speed changes, in units/s².
	Acceleration float64
	// TurnSpeed is the bank rate in degrees per second.
	TurnSpeed float64
	MaxSpeed  float64
	MinSpeed  float64
	// LaunchSpeed is forced onto the craft when its countdown starts.
	LaunchSpeed float64
	// StrafeSpeed scales the up/right movement input contributions.
	StrafeSpeed float64

	DeflectOnImpact bool
	DeflectAlpha    float64
}

func DefaultTuning() Tuning {
	return Tuning{
		Acceleration: DefaultAcceleration,
		TurnSpeed:    DefaultTurnSpeed,
		MaxSpeed:     DefaultMaxSpeed,
		MinSpeed:     DefaultMinSpeed,
		LaunchSpeed:  DefaultLaunchSpeed,
		StrafeSpeed:  DefaultStrafeSpeed,
		DeflectAlpha: DefaultDeflectAlpha,
	}
}

func (t Tuning) Validate() error {
	switch {
	case t.Acceleration < 0:
		return fmt.Errorf("flight: acceleration %v is negative", t.Acceleration)
	case t.MinSpeed < 0:
		return fmt.Errorf("flight: min speed %v is negative", t.MinSpeed)
	case t.MaxSpeed < t.MinSpeed:
		return fmt.Errorf("flight: max speed %v below min speed %v", t.MaxSpeed, t.MinSpeed)
	case t.DeflectAlpha < 0 || t.DeflectAlpha > 1:
		return fmt.Errorf("flight: deflect alpha %v outside [0, 1]", t.DeflectAlpha)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
