package component

import mgl "github.com/go-gl/mathgl/mgl32"

// Transform places an entity in world space: +X forward, +Y right, +Z up.
type Transform struct {
	Position mgl.Vec3
	Rotation mgl.Quat
	// Bank is the visual roll in degrees. It does not affect movement.
	Bank float64
}

func (t *Transform) Forward() mgl.Vec3 {
	return t.Rotation.Rotate(mgl.Vec3{1, 0, 0})
}

func (t *Transform) Right() mgl.Vec3 {
	return t.Rotation.Rotate(mgl.Vec3{0, 1, 0})
}

func (t *Transform) Up() mgl.Vec3 {
	return t.Rotation.Rotate(mgl.Vec3{0, 0, 1})
}

var TransformComponent = NewComponent[Transform]()
