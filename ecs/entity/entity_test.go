package entity

import (
	"testing"

	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/milk9111/quantumsuit/ecs"
	"github.com/milk9111/quantumsuit/ecs/component"
	"github.com/milk9111/quantumsuit/flight"
	"github.com/milk9111/quantumsuit/levels"
	"github.com/milk9111/quantumsuit/prefabs"
)

func TestLoadLevelToWorld(t *testing.T) {
	lvl, err := levels.Load(levels.DefaultLevel)
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	w := ecs.NewWorld()
	if err := LoadLevelToWorld(w, lvl); err != nil {
		t.Fatalf("load level to world: %v", err)
	}

	if got := len(w.Query(component.ObstacleComponent.Kind())); got != len(lvl.Obstacles) {
		t.Fatalf("expected %d obstacles, got %d", len(lvl.Obstacles), got)
	}
	if got := w.PhysicsWorld().ObstacleCount(); got != len(lvl.Obstacles) {
		t.Fatalf("expected %d physics obstacles, got %d", len(lvl.Obstacles), got)
	}
	if got := len(w.Query(component.GateComponent.Kind())); got != len(lvl.Gates) {
		t.Fatalf("expected %d gates, got %d", len(lvl.Gates), got)
	}
}

func TestNewPlayerFromSpec(t *testing.T) {
	lvl := &levels.Level{
		Name:             "Test",
		Spawn:            levels.Spawn{X: 1, Y: 2, Z: 300, Yaw: 90},
		CountdownSeconds: 7,
	}
	spec := &prefabs.PlayerSpec{InitialSpeed: 500, Radius: 24}

	w := ecs.NewWorld()
	player, err := NewPlayerFromSpec(w, spec, lvl)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}

	tr, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		t.Fatal("expected transform")
	}
	if tr.Position != (mgl.Vec3{1, 2, 300}) {
		t.Fatalf("unexpected spawn position %v", tr.Position)
	}
	if tr.Forward().Sub(mgl.Vec3{0, 1, 0}).Len() > 1e-5 {
		t.Fatalf("expected spawn yaw to face +Y, got forward %v", tr.Forward())
	}

	fl, _ := ecs.Get(w, player, component.FlightComponent.Kind())
	if fl.Speed != 500 || fl.Radius != 24 || fl.Tuning != flight.DefaultTuning() {
		t.Fatalf("unexpected flight %+v", fl)
	}

	timer, _ := ecs.Get(w, player, component.FailTimerComponent.Kind())
	if timer.Countdown.Duration != 7 {
		t.Fatalf("expected level countdown override 7, got %v", timer.Countdown.Duration)
	}
	if timer.Countdown.State != flight.CountdownIdle {
		t.Fatalf("expected idle countdown at spawn, got %v", timer.Countdown.State)
	}
	if timer.FallbackLevel != levels.FailLevel {
		t.Fatalf("expected fallback %q, got %q", levels.FailLevel, timer.FallbackLevel)
	}

	session, _ := ecs.Get(w, player, component.SessionComponent.Kind())
	if _, err := uuid.Parse(session.ID); err != nil {
		t.Fatalf("expected uuid session id, got %q: %v", session.ID, err)
	}
	if session.Level != "Test" {
		t.Fatalf("expected session level Test, got %q", session.Level)
	}
}

func TestApplyPlayerSpecClampsSpeed(t *testing.T) {
	w := ecs.NewWorld()
	player, err := NewPlayerFromSpec(w, &prefabs.PlayerSpec{InitialSpeed: 3000}, &levels.Level{Name: "Test"})
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	if !ApplyPlayerSpec(w, &prefabs.PlayerSpec{MaxSpeed: 2000, DeflectOnImpact: true}) {
		t.Fatal("expected spec to apply")
	}
	fl, _ := ecs.Get(w, player, component.FlightComponent.Kind())
	if fl.Speed != 2000 {
		t.Fatalf("expected speed clamped to 2000, got %v", fl.Speed)
	}
	if !fl.Tuning.DeflectOnImpact {
		t.Fatal("expected deflection enabled")
	}

	if ApplyPlayerSpec(ecs.NewWorld(), &prefabs.PlayerSpec{}) {
		t.Fatal("expected no-op without a player")
	}
}

func TestNewCameraFromSpec(t *testing.T) {
	w := ecs.NewWorld()
	camEnt, err := NewCameraFromSpec(w, &prefabs.CameraSpec{
		Target:       "player",
		SocketOffset: prefabs.Vec3Spec{Z: 60},
		LagEnabled:   true,
	})
	if err != nil {
		t.Fatalf("new camera: %v", err)
	}
	cam, _ := ecs.Get(w, camEnt, component.CameraComponent.Kind())
	if cam.ArmLength != defaultArmLength || cam.LagSpeed != defaultLagSpeed || !cam.LagEnabled {
		t.Fatalf("unexpected camera %+v", cam)
	}
	if cam.SocketOffset != (mgl.Vec3{0, 0, 60}) {
		t.Fatalf("unexpected socket offset %v", cam.SocketOffset)
	}
	if !ecs.Has(w, camEnt, component.CameraTagComponent.Kind()) {
		t.Fatal("expected camera tag")
	}

	cam.Placed = true
	if !ApplyCameraSpec(w, &prefabs.CameraSpec{ArmLength: 300}) {
		t.Fatal("expected camera spec to apply")
	}
	if cam.ArmLength != 300 || cam.Placed {
		t.Fatalf("expected re-applied rig, got %+v", cam)
	}
}

func TestNewClock(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := NewClock(w, 60); err != nil {
		t.Fatalf("new clock: %v", err)
	}
	_, clock, ok := ecs.GetFirst(w, component.ClockComponent.Kind())
	if !ok || clock.TPS != 60 || clock.Tick != 0 {
		t.Fatalf("unexpected clock %+v ok=%v", clock, ok)
	}
}

func TestNewLevelWorld(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		wantPlayer bool
	}{
		{name: "flight level", level: levels.DefaultLevel, wantPlayer: true},
		{name: "menu level", level: levels.FailLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := levels.Load(tt.level)
			if err != nil {
				t.Fatalf("load level: %v", err)
			}
			w, err := NewLevelWorld(lvl, &prefabs.PlayerSpec{}, &prefabs.CameraSpec{}, 60)
			if err != nil {
				t.Fatalf("new level world: %v", err)
			}
			_, hasPlayer := w.First(component.PlayerTagComponent.Kind())
			_, hasCamera := w.First(component.CameraComponent.Kind())
			if hasPlayer != tt.wantPlayer || hasCamera != tt.wantPlayer {
				t.Fatalf("expected player/camera=%v, got %v/%v", tt.wantPlayer, hasPlayer, hasCamera)
			}
			if _, ok := w.First(component.ClockComponent.Kind()); !ok {
				t.Fatal("expected clock")
			}
		})
	}
}
