package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/quantumsuit/flight"
)

func TestLoadPlayerSpecEmbedded(t *testing.T) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load player spec: %v", err)
	}
	if got := spec.Tuning(); got != flight.DefaultTuning() {
		t.Fatalf("expected embedded tuning to match defaults, got %+v", got)
	}
	if spec.Countdown() != 10 {
		t.Fatalf("expected 10s countdown, got %v", spec.Countdown())
	}
	if spec.InitialSpeed != 500 {
		t.Fatalf("expected initial speed 500, got %v", spec.InitialSpeed)
	}
}

func TestPlayerSpecTuningFallsBackToDefaults(t *testing.T) {
	spec := &PlayerSpec{MaxSpeed: 6000, DeflectOnImpact: true}
	got := spec.Tuning()
	want := flight.DefaultTuning()
	want.MaxSpeed = 6000
	want.DeflectOnImpact = true
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	var nilSpec *PlayerSpec
	if nilSpec.Countdown() != flight.DefaultCountdownSeconds {
		t.Fatal("nil spec should use the default countdown")
	}
}

func TestLoadCameraSpec(t *testing.T) {
	spec, err := LoadCameraSpec()
	if err != nil {
		t.Fatalf("load camera spec: %v", err)
	}
	if spec.ArmLength != 160 {
		t.Fatalf("expected arm length 160, got %v", spec.ArmLength)
	}
	if spec.SocketOffset.Vec3() != (mgl.Vec3{0, 0, 60}) {
		t.Fatalf("expected socket offset (0,0,60), got %v", spec.SocketOffset.Vec3())
	}
	if spec.LagEnabled || spec.LagSpeed != 15 {
		t.Fatalf("unexpected lag settings: %v %v", spec.LagEnabled, spec.LagSpeed)
	}
	want := color.NRGBA{R: 0x3d, G: 0xdc, B: 0x84, A: 0xff}
	if got := ColorOr(spec.Gate, color.Black); got != want {
		t.Fatalf("expected gate colour %v, got %v", want, got)
	}
}

func TestLoadPrefersDiskCopy(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "prefabs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "prefabs", PlayerFile), []byte("max_speed: 9000\ndeflect_on_impact: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load player spec: %v", err)
	}
	tuning := spec.Tuning()
	if tuning.MaxSpeed != 9000 || !tuning.DeflectOnImpact {
		t.Fatalf("expected disk override, got %+v", tuning)
	}
	if _, ok := ModTime("prefabs/" + PlayerFile); !ok {
		t.Fatal("expected mod time for disk prefab")
	}
}

func TestLoadPlayerSpecRejectsInvalidTuning(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "prefabs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "prefabs", PlayerFile), []byte("max_speed: 100\nmin_speed: 500\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	if _, err := LoadPlayerSpec(); err == nil {
		t.Fatal("expected validation error for max below min")
	}
}

func TestYAMLColorRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "short", doc: "sky: \"#fff\"\n"},
		{name: "not hex", doc: "sky: \"#zzzzzz\"\n"},
		{name: "sequence", doc: "sky: [1, 2]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.Mkdir(filepath.Join(dir, "prefabs"), 0o755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(filepath.Join(dir, "prefabs", CameraFile), []byte(tt.doc), 0o644); err != nil {
				t.Fatal(err)
			}
			t.Chdir(dir)
			if _, err := LoadCameraSpec(); err == nil {
				t.Fatal("expected colour decode error")
			}
		})
	}
}

func TestWatcherReportsEditedSpec(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, PlayerFile), []byte("max_speed: 5000\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != PlayerFile {
			t.Fatalf("expected %s event, got %s", PlayerFile, name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error watching a missing directory")
	}
}
