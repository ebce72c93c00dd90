package component

import "github.com/milk9111/quantumsuit/flight"

// Flight is the player craft's flight state. Speed is always within
// [0, Tuning.MaxSpeed]; it is only below Tuning.MinSpeed while recovering
// from an impact.
type Flight struct {
	Speed  float64
	Tuning flight.Tuning
	// Radius of the craft's collision sphere.
	Radius  float64
	Impacts int
	// Contact is set by the first impact and cleared by the first tick of
	// unobstructed movement after it.
	Contact bool
}

var FlightComponent = NewComponent[Flight]()
