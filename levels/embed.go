package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	mgl "github.com/go-gl/mathgl/mgl32"
)

//go:embed *.json
var LevelsFS embed.FS

const (
	DefaultLevel = "StartMap"
	FailLevel    = "FailMap"
)

var ErrLevelNotFound = errors.New("levels: level not found")

type Level struct {
	Name      string `json:"name"`
	Spawn     Spawn  `json:"spawn"`
	FailLevel string `json:"fail_level,omitempty"`
	// CountdownSeconds overrides the player prefab when positive.
	CountdownSeconds float64 `json:"countdown_seconds,omitempty"`
	GroundZ          float64 `json:"ground_z,omitempty"`
	NoGround         bool    `json:"no_ground,omitempty"`
	Obstacles        []Box   `json:"obstacles,omitempty"`
	Gates            []Gate  `json:"gates,omitempty"`
	// Menu levels have no player; they show Title and the fail UI.
	Menu  bool   `json:"menu,omitempty"`
	Title string `json:"title,omitempty"`
}

type Spawn struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Z   float64 `json:"z"`
	Yaw float64 `json:"yaw"`
}

func (s Spawn) Position() mgl.Vec3 {
	return mgl.Vec3{float32(s.X), float32(s.Y), float32(s.Z)}
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (p Point) Vec3() mgl.Vec3 {
	return mgl.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
}

// Box is an axis-aligned volume given by two opposite corners.
type Box struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

type Gate struct {
	ID          string `json:"id"`
	TargetLevel string `json:"target_level"`
	Box
}

// FallbackLevel is where the fail timer sends the player.
func (l *Level) FallbackLevel() string {
	if l == nil || l.FailLevel == "" {
		return FailLevel
	}
	return l.FailLevel
}

// Ground returns the ground height and whether it blocks.
func (l *Level) Ground() (float64, bool) {
	if l == nil {
		return 0, true
	}
	return l.GroundZ, !l.NoGround
}

// Load reads a level by name; the .json extension is optional.
func Load(name string) (*Level, error) {
	file := fileName(name)
	data, err := fs.ReadFile(LevelsFS, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrLevelNotFound, name)
		}
		return nil, fmt.Errorf("levels: read %s: %w", file, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", file, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(file, ".json")
	}
	return lvl, nil
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, err
	}
	if lvl.CountdownSeconds < 0 {
		return nil, fmt.Errorf("negative countdown_seconds %v", lvl.CountdownSeconds)
	}
	for i, g := range lvl.Gates {
		if g.TargetLevel == "" {
			return nil, fmt.Errorf("gate %d (%q) has no target_level", i, g.ID)
		}
	}
	return &lvl, nil
}

// Names lists the embedded levels without extensions.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(out)
	return out
}

func fileName(name string) string {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	name = strings.TrimPrefix(name, "levels/")
	if path.Ext(name) != ".json" {
		name += ".json"
	}
	return name
}
