package system

import (
	"testing"

	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/quantumsuit/ecs"
	"github.com/milk9111/quantumsuit/ecs/component"
	"github.com/milk9111/quantumsuit/flight"
)

func TestFlightSchedulerOrder(t *testing.T) {
	sched := NewFlightScheduler(testTPS, &fakeInput{}, nil)
	systems := sched.Systems()
	if len(systems) != 11 {
		t.Fatalf("expected 11 systems, got %d", len(systems))
	}
	if _, ok := systems[0].(*ClockSystem); !ok {
		t.Fatalf("expected clock first, got %T", systems[0])
	}
	if _, ok := systems[1].(*LaunchSystem); !ok {
		t.Fatalf("expected launch right after clock, got %T", systems[1])
	}
	if _, ok := systems[5].(*MovementSystem); !ok {
		t.Fatalf("expected movement sixth, got %T", systems[5])
	}
	if _, ok := systems[6].(*ImpactSystem); !ok {
		t.Fatalf("expected impact after movement, got %T", systems[6])
	}
	if _, ok := systems[10].(*CameraSystem); !ok {
		t.Fatalf("expected camera last, got %T", systems[10])
	}
}

// The first tick after spawn already flies at launch speed.
func TestFlightSchedulerFirstTickFliesAtLaunchSpeed(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, mgl.Vec3{0, 0, 100}, 0)
	_ = ecs.Add(w, player, component.FailTimerComponent.Kind(), &component.FailTimer{
		Countdown:     flight.NewCountdown(10),
		FallbackLevel: "FailMap",
	})

	NewFlightScheduler(testTPS, &fakeInput{}, nil).Update(w)

	fl, _ := ecs.Get(w, player, component.FlightComponent.Kind())
	idle := flight.DefaultLaunchSpeed - 0.5*flight.DefaultAcceleration/testTPS
	if abs(fl.Speed-idle) > 1e-9 {
		t.Fatalf("expected launch speed eased by idle decay %v, got %v", idle, fl.Speed)
	}
	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	if x, want := tr.Position.X(), float32(idle/testTPS); abs(float64(x-want)) > 1e-3 {
		t.Fatalf("expected first tick to cover %v, got %v", want, x)
	}
}

// A craft launched into a wall loses all speed on contact. Strafing along the
// wall keeps it moving sideways while pressed against it, and once past the
// edge it recovers at full acceleration even with no throttle.
func TestFlightSchedulerImpactAndRecovery(t *testing.T) {
	w := newTestWorld(t)
	player := addPlayer(t, w, mgl.Vec3{0, 0, 100}, 500)
	_ = ecs.Add(w, player, component.FailTimerComponent.Kind(), &component.FailTimer{
		Countdown:     flight.NewCountdown(10),
		FallbackLevel: "FailMap",
	})
	wall := w.CreateEntity()
	w.PhysicsWorld().AddObstacle(wall, mgl.Vec3{200, -50, 0}, mgl.Vec3{220, 50, 200})

	input := &fakeInput{}
	sched := NewFlightScheduler(testTPS, input, nil)
	fl, _ := ecs.Get(w, player, component.FlightComponent.Kind())
	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())

	sawZero := false
	for range testTPS {
		sched.Update(w)
		if fl.Speed == 0 {
			sawZero = true
			break
		}
	}
	if !sawZero {
		t.Fatal("expected speed reset to zero on impact")
	}
	if fl.Impacts != 1 {
		t.Fatalf("expected one impact, got %d", fl.Impacts)
	}

	input.axes.MoveRight = 1
	cleared := false
	for range testTPS {
		sched.Update(w)
		if !fl.Contact {
			cleared = true
			break
		}
		if x := tr.Position.X(); x >= 195 {
			t.Fatalf("expected craft held at the wall, got x=%v", x)
		}
	}
	if !cleared {
		t.Fatalf("expected strafe to slide the craft off the wall, at %v", tr.Position)
	}
	if y := tr.Position.Y(); y <= 55 {
		t.Fatalf("expected craft past the wall edge, got y=%v", y)
	}
	if want := flight.DefaultAcceleration / testTPS; abs(fl.Speed-want) > 1e-9 {
		t.Fatalf("expected recovery speed %v, got %v", want, fl.Speed)
	}

	impacts := fl.Impacts
	input.axes.MoveRight = 0
	for range testTPS {
		sched.Update(w)
	}
	if fl.Impacts != impacts {
		t.Fatalf("expected no impacts after clearing the wall, got %d more", fl.Impacts-impacts)
	}
	if x := tr.Position.X(); x <= 225 {
		t.Fatalf("expected craft to fly on past the wall, got x=%v", x)
	}
}
