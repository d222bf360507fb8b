package obj

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/gridcursor/common"
	"github.com/milk9111/gridcursor/settings"
	"github.com/milk9111/gridcursor/targeting"
)

// Overlay paints the active targeting level: cell borders plus a label with a
// drop shadow in each cell.
type Overlay struct {
	source *text.GoTextFaceSource
	grid   levelStyle
	fine   levelStyle
}

type levelStyle struct {
	lineWidth    float32
	lineColor    color.Color
	labelScale   float64
	labelMin     float64
	labelMax     float64
	labelColor   color.Color
	shadowColor  color.Color
	shadowOffset float64
}

func NewOverlay(s *settings.Settings) (*Overlay, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("overlay: load font: %w", err)
	}
	o := &Overlay{source: src}
	o.SetSettings(s)
	return o, nil
}

// SetSettings restyles the overlay from s.
func (o *Overlay) SetSettings(s *settings.Settings) {
	o.grid = newLevelStyle(s.Grid.LineWidth, s.Grid.LineColor, s.Grid.Label)
	o.fine = newLevelStyle(s.Fine.LineWidth, s.Fine.LineColor, s.Fine.Label)
}

func newLevelStyle(width float32, line *settings.YAMLColor, label settings.LabelSpec) levelStyle {
	return levelStyle{
		lineWidth:    width,
		lineColor:    line.Or(colornames.Gray),
		labelScale:   label.Scale,
		labelMin:     label.MinSize,
		labelMax:     label.MaxSize,
		labelColor:   label.Color.Or(colornames.White),
		shadowColor:  label.ShadowColor.Or(colornames.Black),
		shadowOffset: label.ShadowOffset,
	}
}

// Draw paints cells using the style of level.
func (o *Overlay) Draw(screen *ebiten.Image, level targeting.Level, cells []targeting.Cell) {
	if len(cells) == 0 {
		return
	}

	style := o.grid
	if level == targeting.LevelFine {
		style = o.fine
	}

	// All cells of a level share a height, so one face serves them all.
	size := common.Clamp(cells[0].Rect.Size.H*style.labelScale, style.labelMin, style.labelMax)
	face := &text.GoTextFace{Source: o.source, Size: size}

	for _, c := range cells {
		r := c.Rect
		if style.lineWidth > 0 {
			vector.StrokeRect(screen,
				float32(r.Min.X), float32(r.Min.Y), float32(r.Size.W), float32(r.Size.H),
				style.lineWidth, style.lineColor, true)
		}

		center := r.Center()
		if style.shadowOffset != 0 {
			drawLabel(screen, c.Label, face,
				center.X+style.shadowOffset, center.Y+style.shadowOffset, style.shadowColor)
		}
		drawLabel(screen, c.Label, face, center.X, center.Y, style.labelColor)
	}
}

func drawLabel(screen *ebiten.Image, label string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, label, face, op)
}
