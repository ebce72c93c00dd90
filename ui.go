package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/quantumsuit/common"
	"golang.org/x/image/font/basicfont"
)

const (
	reasonRestart = "restart"
	reasonRetry   = "retry"
)

type menuButton struct {
	label   string
	onClick func()
}

// NewPauseUI builds the centred pause menu with Resume and Restart.
func NewPauseUI(g *Game) *ebitenui.UI {
	return newMenuUI("Paused", color.NRGBA{A: 200},
		menuButton{label: "Resume", onClick: func() { g.paused = false }},
		menuButton{label: "Restart", onClick: func() { g.requestLevel(g.level.Name, reasonRestart) }},
	)
}

// NewFailUI is shown on menu levels: Retry flies the failed level again.
func NewFailUI(g *Game) *ebitenui.UI {
	return newMenuUI("", color.NRGBA{A: 120},
		menuButton{label: "Retry", onClick: func() { g.requestLevel(g.retryLevel, reasonRetry) }},
		menuButton{label: "Quit", onClick: func() { g.quit = true }},
	)
}

func newMenuUI(title string, background color.NRGBA, buttons ...menuButton) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(background)
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/4, common.BaseHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	if title != "" {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(title, &face, white),
			widget.TextOpts.WidgetOpts(center),
		))
	}
	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
