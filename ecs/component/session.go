package component

// Session identifies one flight from spawn to level change. ID is a UUID used
// to correlate log lines.
type Session struct {
	ID    string
	Level string
}

var SessionComponent = NewComponent[Session]()
