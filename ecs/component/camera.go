package component

import mgl "github.com/go-gl/mathgl/mgl32"

// Camera is a chase rig modelled on a spring arm: the eye sits ArmLength
// behind the target along its forward axis, raised by SocketOffset (in the
// target's local frame).
type Camera struct {
	TargetName   string
	ArmLength    float64
	SocketOffset mgl.Vec3
	LagEnabled   bool
	LagSpeed     float64
	// FocalLength is the projection scale in pixels.
	FocalLength float64
	// Eye and Rotation are written by CameraSystem each tick.
	Eye      mgl.Vec3
	Rotation mgl.Quat
	Placed   bool
}

var CameraComponent = NewComponent[Camera]()
