package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/gridcursor/settings"
	"github.com/milk9111/gridcursor/targeting"
)

// StatusUI is a small panel in the bottom-right corner showing the active
// level, the pending combo key and the keys that apply.
type StatusUI struct {
	ui    *ebitenui.UI
	label *widget.Text
	last  string
}

func NewStatusUI(cfg settings.StatusSpec) *StatusUI {
	panelImg := imageui.NewNineSliceColor(cfg.Background.Or(color.NRGBA{A: 200}))

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	label := widget.NewText(
		widget.TextOpts.Text("", &face, cfg.TextColor.Or(colornames.White)),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionEnd, VerticalPosition: widget.AnchorLayoutPositionEnd}),
		),
	)
	panel.AddChild(label)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &StatusUI{ui: &ebitenui.UI{Container: root}, label: label}
}

// Set refreshes the panel text for the machine's current state.
func (s *StatusUI) Set(m *targeting.Machine) {
	line := statusLine(m.Level(), m.Pending())
	if line == s.last {
		return
	}
	s.last = line
	s.label.Label = line
}

func (s *StatusUI) Update() {
	s.ui.Update()
}

func (s *StatusUI) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
}

func statusLine(level targeting.Level, pending string) string {
	switch level {
	case targeting.LevelFine:
		return "fine: 1-9 click cell, space click, arrows/hjkl move (shift fast), esc quit"
	default:
		if pending != "" {
			return fmt.Sprintf("coarse: %s_  (esc quit)", pending)
		}
		return "coarse: type a cell label  (esc quit)"
	}
}
