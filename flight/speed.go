package flight

import "math"

// ThrottleEpsilon is the magnitude below which a throttle value counts as no
// input.
const ThrottleEpsilon = 1e-8

// NextSpeed converts a throttle input held for dt seconds into the new
// forward speed.
//
// With no throttle the craft decelerates at half the acceleration rate;
// otherwise it accelerates by throttle*Acceleration. The result is clamped to
// [MinSpeed, MaxSpeed]. While speed is below MinSpeed (after an impact zeroed
// it) full acceleration is applied regardless of input and the floor of the
// clamp drops to zero.
func NextSpeed(speed float64, t Tuning, throttle, dt float64) float64 {
	if dt < 0 {
		dt = 0
	}
	throttle = clamp(throttle, -1, 1)

	if speed < t.MinSpeed {
		return clamp(speed+t.Acceleration*dt, 0, t.MaxSpeed)
	}

	acc := -0.5 * t.Acceleration
	if math.Abs(throttle) > ThrottleEpsilon {
		acc = throttle * t.Acceleration
	}
	return clamp(speed+acc*dt, t.MinSpeed, t.MaxSpeed)
}

// Recovering reports whether speed is in the post-impact recovery band.
func Recovering(speed float64, t Tuning) bool {
	return speed < t.MinSpeed
}
