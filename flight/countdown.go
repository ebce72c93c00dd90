package flight

// CountdownState is the fail timer's state machine.
type CountdownState int

const (
	CountdownIdle CountdownState = iota
	CountdownRunning
	CountdownExpired
)

func (s CountdownState) String() string {
	switch s {
	case CountdownRunning:
		return "running"
	case CountdownExpired:
		return "expired"
	default:
		return "idle"
	}
}

// Countdown is a one-shot deadline measured against an externally supplied
// clock. It carries no callback: the driver checks Expire each tick and acts
// on the single true result.
type Countdown struct {
	Duration float64
	Deadline float64
	State    CountdownState
}

func NewCountdown(duration float64) Countdown {
	if duration < 0 {
		duration = 0
	}
	return Countdown{Duration: duration}
}

// Start enters Running with the deadline Duration seconds after now. A
// countdown can only be started once.
func (c *Countdown) Start(now float64) bool {
	if c.State != CountdownIdle {
		return false
	}
	c.Deadline = now + c.Duration
	c.State = CountdownRunning
	return true
}

// Expire moves a running countdown to Expired once now reaches the deadline.
// It returns true exactly once.
func (c *Countdown) Expire(now float64) bool {
	if c.State != CountdownRunning || now < c.Deadline {
		return false
	}
	c.State = CountdownExpired
	return true
}

// Remaining is the display value in seconds.
func (c Countdown) Remaining(now float64) float64 {
	switch c.State {
	case CountdownRunning:
		return max(0, c.Deadline-now)
	case CountdownExpired:
		return 0
	default:
		return c.Duration
	}
}
