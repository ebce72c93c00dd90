package flight

// MaxBankDegrees bounds the visual roll of a craft.
const MaxBankDegrees = 45.0

// Bank eases the current roll (degrees) toward moveRight*MaxBankDegrees at
// TurnSpeed degrees per second.
func Bank(current, moveRight float64, t Tuning, dt float64) float64 {
	target := clamp(moveRight, -1, 1) * MaxBankDegrees
	step := t.TurnSpeed * dt
	if step < 0 {
		step = 0
	}
	var next float64
	switch {
	case current < target:
		next = min(current+step, target)
	case current > target:
		next = max(current-step, target)
	default:
		next = current
	}
	return clamp(next, -MaxBankDegrees, MaxBankDegrees)
}
