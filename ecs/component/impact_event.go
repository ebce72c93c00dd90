package component

import mgl "github.com/go-gl/mathgl/mgl32"

// ImpactEvent is a transient marker added by the movement sweep when the
// craft runs into something. ImpactSystem consumes and removes it.
type ImpactEvent struct {
	Point  mgl.Vec3
	Normal mgl.Vec3
	// Other is the obstacle entity that was hit, zero for the ground.
	Other uint64
}

var ImpactEventComponent = NewComponent[ImpactEvent]()
