package component

// LevelChangeRequest is a one-shot request emitted by gameplay systems (the
// fail timer, gates, UI) to ask the outer game loop to load a different level.
//
// Systems only emit data; the Game loop owns IO and world reinitialization.
type LevelChangeRequest struct {
	TargetLevel string
	// Reason is a short tag for logs, e.g. "countdown_expired" or "gate".
	Reason string
	// FromLevel is the level that was active when the request was made.
	FromLevel string
}

var LevelChangeRequestComponent = NewComponent[LevelChangeRequest]()
