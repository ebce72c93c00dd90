package component

// Clock counts fixed simulation ticks. Elapsed time is derived from the tick
// count rather than accumulated, so deadlines land on exact ticks.
type Clock struct {
	Tick int64
	TPS  float64
}

func (c *Clock) Delta() float64 {
	if c == nil || c.TPS <= 0 {
		return 0
	}
	return 1 / c.TPS
}

func (c *Clock) Elapsed() float64 {
	if c == nil || c.TPS <= 0 {
		return 0
	}
	return float64(c.Tick) / c.TPS
}

// TickStart is the elapsed time at the start of the current tick.
func (c *Clock) TickStart() float64 {
	if c == nil || c.TPS <= 0 || c.Tick <= 0 {
		return 0
	}
	return float64(c.Tick-1) / c.TPS
}

var ClockComponent = NewComponent[Clock]()
