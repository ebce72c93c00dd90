package component

// Input stores the per-frame control axes for an entity. Every axis is in
// [-1, 1].
type Input struct {
	Thrust    float64
	MoveUp    float64
	MoveRight float64
}

var InputComponent = NewComponent[Input]()
