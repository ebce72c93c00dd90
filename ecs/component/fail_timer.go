package component

import "github.com/milk9111/quantumsuit/flight"

// FailTimer ends the run by requesting FallbackLevel once its countdown
// expires.
type FailTimer struct {
	Countdown     flight.Countdown
	FallbackLevel string
}

var FailTimerComponent = NewComponent[FailTimer]()
