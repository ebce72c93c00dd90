package system

import (
	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/quantumsuit/common"
	"github.com/milk9111/quantumsuit/ecs"
	"github.com/milk9111/quantumsuit/ecs/component"
)

// CameraSystem places the chase camera on its spring arm behind the player.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem { return &CameraSystem{} }

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	camEnt, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEnt, component.CameraComponent.Kind())

	target, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	tr, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return
	}

	desired := ArmPosition(tr, cam)
	cam.Rotation = tr.Rotation

	if !cam.LagEnabled || !cam.Placed {
		cam.Eye = desired
		cam.Placed = true
		return
	}

	dt := 0.0
	if clock, ok := frameClock(w); ok {
		dt = clock.Delta()
	}
	alpha := float32(common.Clamp01(cam.LagSpeed * dt))
	for i := range cam.Eye {
		cam.Eye[i] = common.Lerp(cam.Eye[i], desired[i], alpha)
	}
}

// ArmPosition is the eye position with no lag: ArmLength behind the target
// along its forward axis, then raised by SocketOffset in the target frame.
func ArmPosition(tr *component.Transform, cam *component.Camera) mgl.Vec3 {
	back := tr.Forward().Mul(float32(cam.ArmLength))
	return tr.Position.Sub(back).Add(tr.Rotation.Rotate(cam.SocketOffset))
}

// NearPlane is the minimum forward distance at which geometry is drawn.
const NearPlane = 1.0

// ToView converts a world point into the camera frame: X is depth along the
// view direction, Y is right and Z is up.
func ToView(cam *component.Camera, p mgl.Vec3) mgl.Vec3 {
	return cam.Rotation.Conjugate().Rotate(p.Sub(cam.Eye))
}

// ProjectView maps a camera-frame point onto a width x height screen. It
// reports false for points behind the near plane.
func ProjectView(cam *component.Camera, v mgl.Vec3, width, height float64) (float64, float64, bool) {
	depth := float64(v.X())
	if depth < NearPlane {
		return 0, 0, false
	}
	f := cam.FocalLength
	x := width/2 + f*float64(v.Y())/depth
	y := height/2 - f*float64(v.Z())/depth
	return x, y, true
}

// ClipNear trims the camera-frame segment a-b to the part in front of the
// near plane.
func ClipNear(a, b mgl.Vec3) (mgl.Vec3, mgl.Vec3, bool) {
	near := float32(NearPlane)
	aIn, bIn := a.X() >= near, b.X() >= near
	switch {
	case aIn && bIn:
		return a, b, true
	case !aIn && !bIn:
		return a, b, false
	}
	t := (near - a.X()) / (b.X() - a.X())
	cut := a.Add(b.Sub(a).Mul(t))
	if aIn {
		return a, cut, true
	}
	return cut, b, true
}
