package main

import (
	"testing"

	"github.com/milk9111/quantumsuit/ecs/component"
	"github.com/milk9111/quantumsuit/levels"
	"github.com/milk9111/quantumsuit/prefabs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRunIdleFlightTimesOutToFailMap(t *testing.T) {
	// open sky: nothing to hit, nowhere to finish
	lvl := &levels.Level{Name: "Open", Spawn: levels.Spawn{Z: 500}, CountdownSeconds: 10}
	core, logs := observer.New(zapcore.InfoLevel)

	res, err := Run(Options{
		Level:      lvl,
		PlayerSpec: &prefabs.PlayerSpec{InitialSpeed: 500},
		TPS:        60,
		Seconds:    30,
		Logger:     zap.New(core),
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Request == nil {
		t.Fatal("expected a level change request")
	}
	want := component.LevelChangeRequest{TargetLevel: levels.FailLevel, Reason: "countdown_expired", FromLevel: "Open"}
	if *res.Request != want {
		t.Fatalf("expected %+v, got %+v", want, *res.Request)
	}
	if res.Ticks != 600 || res.Elapsed != 10 {
		t.Fatalf("expected expiry at tick 600 (10s), got tick %d (%vs)", res.Ticks, res.Elapsed)
	}
	if res.Impacts != 0 {
		t.Fatalf("expected no impacts, got %d", res.Impacts)
	}
	if logs.FilterMessage("countdown started").Len() != 1 || logs.FilterMessage("countdown expired").Len() != 1 {
		t.Fatal("expected one countdown start and one expiry log")
	}
}

func TestRunStopsAtDurationWithoutRequest(t *testing.T) {
	lvl := &levels.Level{Name: "Open", Spawn: levels.Spawn{Z: 500}, CountdownSeconds: 10}
	res, err := Run(Options{Level: lvl, PlayerSpec: &prefabs.PlayerSpec{}, TPS: 60, Seconds: 2, Axes: component.Input{Thrust: 1}})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Request != nil {
		t.Fatalf("unexpected request %+v", res.Request)
	}
	if res.Ticks != 120 {
		t.Fatalf("expected 120 ticks, got %d", res.Ticks)
	}
	if res.Speed <= 1200 {
		t.Fatalf("expected full throttle to accelerate past launch speed, got %v", res.Speed)
	}
}

func TestRunRejectsMenuLevel(t *testing.T) {
	lvl, err := levels.Load(levels.FailLevel)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := Run(Options{Level: lvl, TPS: 60, Seconds: 1}); err == nil {
		t.Fatal("expected error for menu level")
	}
}
