package system

import (
	"testing"

	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/quantumsuit/ecs"
	"github.com/milk9111/quantumsuit/ecs/component"
	"github.com/milk9111/quantumsuit/flight"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testTPS = 60

type fakeInput struct {
	axes component.Input
}

func (f *fakeInput) Axes() component.Input { return f.axes }

func newTestWorld(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	clockEnt := w.CreateEntity()
	if err := ecs.Add(w, clockEnt, component.ClockComponent.Kind(), &component.Clock{TPS: testTPS}); err != nil {
		t.Fatalf("add clock: %v", err)
	}
	return w
}

func addPlayer(t *testing.T, w *ecs.World, pos mgl.Vec3, speed float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("add player component: %v", err)
		}
	}
	must(ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	must(ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos, Rotation: mgl.QuatIdent()}))
	must(ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))
	must(ecs.Add(w, e, component.FlightComponent.Kind(), &component.Flight{Speed: speed, Tuning: flight.DefaultTuning(), Radius: 5}))
	must(ecs.Add(w, e, component.SessionComponent.Kind(), &component.Session{ID: "test-session", Level: "StartMap"}))
	return e
}

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return zap.New(core), logs
}

func requests(w *ecs.World) []component.LevelChangeRequest {
	var out []component.LevelChangeRequest
	ecs.ForEach(w, component.LevelChangeRequestComponent.Kind(), func(_ ecs.Entity, req *component.LevelChangeRequest) {
		out = append(out, *req)
	})
	return out
}

func vecNear(a, b mgl.Vec3, eps float32) bool {
	return a.Sub(b).Len() <= eps
}
