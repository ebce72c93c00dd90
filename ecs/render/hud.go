package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/quantumsuit/ecs"
	"github.com/milk9111/quantumsuit/ecs/system"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const hudScale = 2

// HUD draws the flight readout and the transition fade overlay.
type HUD struct {
	face ebtext.Face
}

func NewHUD() *HUD {
	return &HUD{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUD) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil {
		return
	}
	if lines, ok := system.Readout(w); ok {
		for i, line := range lines {
			h.text(screen, line, 16, 16+float64(i)*16*hudScale, colornames.White)
		}
	}

	if alpha := system.FadeAlpha(w); alpha > 0 {
		b := screen.Bounds()
		a := uint8(min(alpha, 1) * 255)
		vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.NRGBA{A: a}, false)
	}
}

// DrawTitle centres a large caption, used on menu levels.
func (h *HUD) DrawTitle(screen *ebiten.Image, title string) {
	if title == "" {
		return
	}
	b := screen.Bounds()
	width, _ := ebtext.Measure(title, h.face, 0)
	x := (float64(b.Dx()) - width*hudScale*2) / 2
	h.textScaled(screen, title, x, float64(b.Dy())/5, colornames.Orange, hudScale*2)
}

func (h *HUD) text(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	h.textScaled(screen, s, x, y, clr, hudScale)
}

func (h *HUD) textScaled(screen *ebiten.Image, s string, x, y float64, clr color.Color, scale float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, h.face, op)
}
