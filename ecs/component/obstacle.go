package component

import mgl "github.com/go-gl/mathgl/mgl32"

// Obstacle is a static axis-aligned box the craft collides with.
type Obstacle struct {
	Min mgl.Vec3
	Max mgl.Vec3
}

var ObstacleComponent = NewComponent[Obstacle]()
