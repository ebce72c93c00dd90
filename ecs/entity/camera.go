package entity

import (
	"fmt"

	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/quantumsuit/ecs"
	"github.com/milk9111/quantumsuit/ecs/component"
	"github.com/milk9111/quantumsuit/prefabs"
)

const (
	defaultArmLength   = 160.0
	defaultLagSpeed    = 15.0
	defaultFocalLength = 420.0
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}
	return NewCameraFromSpec(w, spec)
}

func NewCameraFromSpec(w *ecs.World, spec *prefabs.CameraSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	cam := &component.Camera{Rotation: mgl.QuatIdent()}
	configureCamera(cam, spec)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), cam); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	return camera, nil
}

// ApplyCameraSpec re-applies a reloaded rig to the live camera. The next
// CameraSystem tick snaps it into place.
func ApplyCameraSpec(w *ecs.World, spec *prefabs.CameraSpec) bool {
	_, cam, ok := ecs.GetFirst(w, component.CameraComponent.Kind())
	if !ok {
		return false
	}
	configureCamera(cam, spec)
	cam.Placed = false
	return true
}

func configureCamera(cam *component.Camera, spec *prefabs.CameraSpec) {
	cam.ArmLength = defaultArmLength
	cam.SocketOffset = mgl.Vec3{0, 0, 60}
	cam.LagSpeed = defaultLagSpeed
	cam.FocalLength = defaultFocalLength
	if spec == nil {
		return
	}
	cam.TargetName = spec.Target
	if spec.ArmLength > 0 {
		cam.ArmLength = spec.ArmLength
	}
	cam.SocketOffset = spec.SocketOffset.Vec3()
	cam.LagEnabled = spec.LagEnabled
	if spec.LagSpeed > 0 {
		cam.LagSpeed = spec.LagSpeed
	}
	if spec.FocalLength > 0 {
		cam.FocalLength = spec.FocalLength
	}
}
