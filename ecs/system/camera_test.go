package system

import (
	"testing"

	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/quantumsuit/ecs/component"
	"github.com/milk9111/quantumsuit/flight"
)

func TestProjectView(t *testing.T) {
	cam := &component.Camera{FocalLength: 400, Rotation: flight.Yaw(90), Eye: mgl.Vec3{0, -100, 0}}

	tests := []struct {
		name   string
		world  mgl.Vec3
		wantX  float64
		wantY  float64
		wantOK bool
	}{
		{name: "centre", world: mgl.Vec3{0, 100, 0}, wantX: 640, wantY: 360, wantOK: true},
		{name: "right and up", world: mgl.Vec3{-50, 100, 50}, wantX: 740, wantY: 260, wantOK: true},
		{name: "behind", world: mgl.Vec3{0, -300, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := ProjectView(cam, ToView(cam, tt.world), 1280, 720)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if !ok {
				return
			}
			if abs(x-tt.wantX) > 1e-2 || abs(y-tt.wantY) > 1e-2 {
				t.Fatalf("expected (%v, %v), got (%v, %v)", tt.wantX, tt.wantY, x, y)
			}
		})
	}
}

func TestClipNear(t *testing.T) {
	a, b, ok := ClipNear(mgl.Vec3{-9, 0, 0}, mgl.Vec3{11, 10, 0})
	if !ok {
		t.Fatal("expected partially visible segment")
	}
	if !vecNear(a, mgl.Vec3{1, 5, 0}, 1e-5) || b != (mgl.Vec3{11, 10, 0}) {
		t.Fatalf("unexpected clip %v %v", a, b)
	}
	if _, _, ok := ClipNear(mgl.Vec3{-5, 0, 0}, mgl.Vec3{0, 0, 0}); ok {
		t.Fatal("expected segment behind the camera to be rejected")
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
