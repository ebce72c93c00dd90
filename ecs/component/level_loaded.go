package component

// LevelLoaded is a transient marker added by the outer Game loop to tell the
// GateSystem that the level load has completed and it can fade back in.
type LevelLoaded struct{}

var LevelLoadedComponent = NewComponent[LevelLoaded]()
