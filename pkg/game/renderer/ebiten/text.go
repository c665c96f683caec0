package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawColoredText draws text with a specific color using the sans-serif UI font
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y int, col color.Color) {
	e.drawColoredTextWithFace(screen, str, x, y, col, e.getSansFontFace())
}

// drawColoredTextWithFace draws text with a specific color and font face.
// y is the top of the line.
func (e *EbitenRenderer) drawColoredTextWithFace(screen *ebiten.Image, str string, x, y int, col color.Color, face *text.GoTextFace) {
	if face.Source == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, str, face, op)
}

// getTextWidth returns the width of a string in pixels at UI font size
func (e *EbitenRenderer) getTextWidth(str string) float64 {
	face := e.getSansFontFace()
	if face.Source == nil {
		return 0
	}
	w, _ := text.Measure(str, face, 0)
	return w
}

// lineHeight is the height of one HUD line
func lineHeight() int {
	return int(baseFontSize) + 6
}

// headerHeight is the HUD band above the board: status and help lines
func headerHeight() int {
	return 2*lineHeight() + 2*hudPadding
}
