package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/quantumsuit/flight"
	"gopkg.in/yaml.v3"
)

const (
	PlayerFile = "player.yaml"
	CameraFile = "camera.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerSpec is the tunable craft. Zero or missing numeric fields fall back
// to the flight defaults.
type PlayerSpec struct {
	Name             string  `yaml:"name"`
	Acceleration     float64 `yaml:"acceleration"`
	TurnSpeed        float64 `yaml:"turn_speed"`
	MaxSpeed         float64 `yaml:"max_speed"`
	MinSpeed         float64 `yaml:"min_speed"`
	InitialSpeed     float64 `yaml:"initial_speed"`
	LaunchSpeed      float64 `yaml:"launch_speed"`
	StrafeSpeed      float64 `yaml:"strafe_speed"`
	CountdownSeconds float64 `yaml:"countdown_seconds"`
	DeflectOnImpact  bool    `yaml:"deflect_on_impact"`
	DeflectAlpha     float64 `yaml:"deflect_alpha"`
	Radius           float64 `yaml:"radius"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Tuning().Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: validate %s: %w", PlayerFile, err)
	}
	return &spec, nil
}

func (s *PlayerSpec) Tuning() flight.Tuning {
	t := flight.DefaultTuning()
	if s == nil {
		return t
	}
	setIfPositive(&t.Acceleration, s.Acceleration)
	setIfPositive(&t.TurnSpeed, s.TurnSpeed)
	setIfPositive(&t.MaxSpeed, s.MaxSpeed)
	setIfPositive(&t.MinSpeed, s.MinSpeed)
	setIfPositive(&t.LaunchSpeed, s.LaunchSpeed)
	setIfPositive(&t.StrafeSpeed, s.StrafeSpeed)
	setIfPositive(&t.DeflectAlpha, s.DeflectAlpha)
	t.DeflectOnImpact = s.DeflectOnImpact
	return t
}

func (s *PlayerSpec) Countdown() float64 {
	if s == nil || s.CountdownSeconds <= 0 {
		return flight.DefaultCountdownSeconds
	}
	return s.CountdownSeconds
}

// CameraSpec configures the chase camera and the colours the renderer uses.
type CameraSpec struct {
	Name         string     `yaml:"name"`
	Target       string     `yaml:"target"`
	ArmLength    float64    `yaml:"arm_length"`
	SocketOffset Vec3Spec   `yaml:"socket_offset"`
	LagEnabled   bool       `yaml:"lag_enabled"`
	LagSpeed     float64    `yaml:"lag_speed"`
	FocalLength  float64    `yaml:"focal_length"`
	Sky          *YAMLColor `yaml:"sky"`
	Obstacle     *YAMLColor `yaml:"obstacle"`
	Gate         *YAMLColor `yaml:"gate"`
	Craft        *YAMLColor `yaml:"craft"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec](CameraFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() mgl.Vec3 {
	return mgl.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func setIfPositive(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

// ColorOr returns c, or fallback when c is unset.
func ColorOr(c *YAMLColor, fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
