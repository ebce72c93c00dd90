package flight

import (
	"math"

	mgl "github.com/go-gl/mathgl/mgl32"
)

// Impact returns the craft state after hitting a surface with the given
// normal: forward speed is always zeroed, and when the tuning enables it the
// rotation is deflected toward the surface.
func Impact(rotation mgl.Quat, normal mgl.Vec3, t Tuning) (float64, mgl.Quat) {
	if !t.DeflectOnImpact {
		return 0, rotation
	}
	return 0, Deflect(rotation, normal, float32(t.DeflectAlpha))
}

// Deflect blends rotation toward the orientation facing along normal.
func Deflect(rotation mgl.Quat, normal mgl.Vec3, alpha float32) mgl.Quat {
	if normal.Len() < 1e-6 || alpha <= 0 {
		return rotation
	}
	target := Orientation(normal)
	// shortest arc
	if rotation.Dot(target) < 0 {
		target = target.Scale(-1)
	}
	return mgl.QuatSlerp(rotation, target, mgl.Clamp(alpha, 0, 1)).Normalize()
}

// Orientation returns the roll-free rotation that turns +X onto dir.
func Orientation(dir mgl.Vec3) mgl.Quat {
	if dir.Len() < 1e-6 {
		return mgl.QuatIdent()
	}
	d := dir.Normalize()
	yaw := float32(math.Atan2(float64(d.Y()), float64(d.X())))
	pitch := float32(math.Atan2(float64(d.Z()), math.Hypot(float64(d.X()), float64(d.Y()))))
	qYaw := mgl.QuatRotate(yaw, mgl.Vec3{0, 0, 1})
	// rotating +X about +Y by -pitch lifts it toward +Z
	qPitch := mgl.QuatRotate(-pitch, mgl.Vec3{0, 1, 0})
	return qYaw.Mul(qPitch).Normalize()
}

// Yaw returns a rotation of deg degrees about the up axis.
func Yaw(deg float64) mgl.Quat {
	return mgl.QuatRotate(mgl.DegToRad(float32(deg)), mgl.Vec3{0, 0, 1})
}
