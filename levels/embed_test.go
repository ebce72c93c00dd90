package levels

import (
	"errors"
	"slices"
	"testing"
)

func TestLoadEmbeddedLevels(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantName  string
		wantMenu  bool
		wantGates int
	}{
		{name: "bare name", input: "StartMap", wantName: "StartMap", wantGates: 1},
		{name: "with extension", input: "StartMap.json", wantName: "StartMap", wantGates: 1},
		{name: "with directory", input: "levels/Canyon", wantName: "Canyon", wantGates: 1},
		{name: "fail map", input: FailLevel, wantName: FailLevel, wantMenu: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := Load(tt.input)
			if err != nil {
				t.Fatalf("load %s: %v", tt.input, err)
			}
			if lvl.Name != tt.wantName {
				t.Fatalf("expected name %q, got %q", tt.wantName, lvl.Name)
			}
			if lvl.Menu != tt.wantMenu {
				t.Fatalf("expected menu=%v, got %v", tt.wantMenu, lvl.Menu)
			}
			if len(lvl.Gates) != tt.wantGates {
				t.Fatalf("expected %d gates, got %d", tt.wantGates, len(lvl.Gates))
			}
		})
	}
}

func TestStartMapFallsBackToFailMap(t *testing.T) {
	lvl, err := Load(DefaultLevel)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if lvl.FallbackLevel() != FailLevel {
		t.Fatalf("expected fallback %q, got %q", FailLevel, lvl.FallbackLevel())
	}
	if lvl.CountdownSeconds != 10 {
		t.Fatalf("expected 10s countdown, got %v", lvl.CountdownSeconds)
	}
	if z, solid := lvl.Ground(); z != 0 || !solid {
		t.Fatalf("expected solid ground at 0, got %v %v", z, solid)
	}
	if len(lvl.Obstacles) == 0 {
		t.Fatal("expected obstacles")
	}
}

func TestLoadMissingLevel(t *testing.T) {
	_, err := Load("NoSuchMap")
	if !errors.Is(err, ErrLevelNotFound) {
		t.Fatalf("expected ErrLevelNotFound, got %v", err)
	}
}

func TestParseRejectsInvalidLevels(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "malformed", doc: `{"name":`},
		{name: "negative countdown", doc: `{"countdown_seconds": -1}`},
		{name: "gate without target", doc: `{"gates":[{"id":"g","min":{},"max":{}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Fatal("expected parse error")
			}
		})
	}
}

func TestFallbackLevelDefaults(t *testing.T) {
	lvl, err := Parse([]byte(`{"name":"Bare","no_ground":true}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if lvl.FallbackLevel() != FailLevel {
		t.Fatalf("expected default fallback, got %q", lvl.FallbackLevel())
	}
	if _, solid := lvl.Ground(); solid {
		t.Fatal("expected ground disabled")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	for _, want := range []string{"Canyon", FailLevel, DefaultLevel} {
		if !slices.Contains(names, want) {
			t.Fatalf("expected %q in %v", want, names)
		}
	}
}
