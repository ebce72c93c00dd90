package render

import (
	"image/color"
	"math"

	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/quantumsuit/ecs"
	"github.com/milk9111/quantumsuit/ecs/component"
	"github.com/milk9111/quantumsuit/ecs/system"
	"github.com/milk9111/quantumsuit/prefabs"
	"golang.org/x/image/colornames"
)

const (
	gridSpacing = 400.0
	gridExtent  = 8
)

type Palette struct {
	Sky      color.Color
	Obstacle color.Color
	Gate     color.Color
	Craft    color.Color
	Ground   color.Color
}

func DefaultPalette() Palette {
	return Palette{
		Sky:      color.NRGBA{R: 0x14, G: 0x1a, B: 0x2a, A: 0xff},
		Obstacle: colornames.Lightgrey,
		Gate:     colornames.Mediumseagreen,
		Craft:    colornames.Orange,
		Ground:   color.NRGBA{R: 0x3a, G: 0x44, B: 0x5c, A: 0xff},
	}
}

// RenderSystem draws the world as wireframe through the chase camera.
type RenderSystem struct {
	Palette Palette
}

func NewRenderSystem(p Palette) *RenderSystem {
	return &RenderSystem{Palette: p}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	screen.Fill(r.Palette.Sky)
	if w == nil {
		return
	}
	_, cam, ok := ecs.GetFirst(w, component.CameraComponent.Kind())
	if !ok || !cam.Placed {
		return
	}

	r.drawGround(w, screen, cam)

	ecs.ForEach(w, component.ObstacleComponent.Kind(), func(_ ecs.Entity, ob *component.Obstacle) {
		r.drawBox(screen, cam, ob.Min, ob.Max, r.Palette.Obstacle, 1.5)
	})
	ecs.ForEach(w, component.GateComponent.Kind(), func(_ ecs.Entity, g *component.Gate) {
		r.drawBox(screen, cam, g.Min, g.Max, r.Palette.Gate, 2.5)
	})
	ecs.ForEach3(w, component.PlayerTagComponent.Kind(), component.TransformComponent.Kind(), component.FlightComponent.Kind(), func(_ ecs.Entity, _ *component.PlayerTag, tr *component.Transform, fl *component.Flight) {
		r.drawCraft(screen, cam, tr, fl)
	})
}

func (r *RenderSystem) drawGround(w *ecs.World, screen *ebiten.Image, cam *component.Camera) {
	gz, solid := w.PhysicsWorld().Ground()
	if !solid {
		return
	}
	z := float32(gz)
	cx := float32(math.Round(float64(cam.Eye.X())/gridSpacing) * gridSpacing)
	cy := float32(math.Round(float64(cam.Eye.Y())/gridSpacing) * gridSpacing)
	span := float32(gridSpacing * gridExtent)
	for i := -gridExtent; i <= gridExtent; i++ {
		off := float32(i) * gridSpacing
		r.line(screen, cam, mgl.Vec3{cx + off, cy - span, z}, mgl.Vec3{cx + off, cy + span, z}, r.Palette.Ground, 1)
		r.line(screen, cam, mgl.Vec3{cx - span, cy + off, z}, mgl.Vec3{cx + span, cy + off, z}, r.Palette.Ground, 1)
	}
}

func (r *RenderSystem) drawBox(screen *ebiten.Image, cam *component.Camera, lo, hi mgl.Vec3, clr color.Color, width float32) {
	corner := func(i int) mgl.Vec3 {
		c := lo
		if i&1 != 0 {
			c[0] = hi[0]
		}
		if i&2 != 0 {
			c[1] = hi[1]
		}
		if i&4 != 0 {
			c[2] = hi[2]
		}
		return c
	}
	for i := range 8 {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				r.line(screen, cam, corner(i), corner(i|bit), clr, width)
			}
		}
	}
}

func (r *RenderSystem) drawCraft(screen *ebiten.Image, cam *component.Camera, tr *component.Transform, fl *component.Flight) {
	size := float32(max(fl.Radius, 12))
	fwd := tr.Forward()
	roll := mgl.QuatRotate(mgl.DegToRad(float32(tr.Bank)), fwd)
	right := roll.Rotate(tr.Right())
	up := roll.Rotate(tr.Up())

	nose := tr.Position.Add(fwd.Mul(size * 1.5))
	tail := tr.Position.Sub(fwd.Mul(size))
	left := tail.Sub(right.Mul(size * 1.2))
	rightWing := tail.Add(right.Mul(size * 1.2))
	fin := tail.Add(up.Mul(size * 0.6))

	for _, seg := range [][2]mgl.Vec3{
		{nose, left}, {nose, rightWing}, {left, rightWing},
		{nose, fin}, {fin, tail},
	} {
		r.line(screen, cam, seg[0], seg[1], r.Palette.Craft, 2)
	}
}

func (r *RenderSystem) line(screen *ebiten.Image, cam *component.Camera, a, b mgl.Vec3, clr color.Color, width float32) {
	va, vb, ok := system.ClipNear(system.ToView(cam, a), system.ToView(cam, b))
	if !ok {
		return
	}
	bounds := screen.Bounds()
	sw, sh := float64(bounds.Dx()), float64(bounds.Dy())
	x0, y0, ok0 := system.ProjectView(cam, va, sw, sh)
	x1, y1, ok1 := system.ProjectView(cam, vb, sw, sh)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
}

// PaletteFromSpec fills unset colours from DefaultPalette.
func PaletteFromSpec(spec *prefabs.CameraSpec) Palette {
	p := DefaultPalette()
	if spec == nil {
		return p
	}
	p.Sky = prefabs.ColorOr(spec.Sky, p.Sky)
	p.Obstacle = prefabs.ColorOr(spec.Obstacle, p.Obstacle)
	p.Gate = prefabs.ColorOr(spec.Gate, p.Gate)
	p.Craft = prefabs.ColorOr(spec.Craft, p.Craft)
	return p
}
