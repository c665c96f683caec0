package ebiten

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"tiltmaze/pkg/engine/geom"
	"tiltmaze/pkg/engine/world"
	"tiltmaze/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.snapshotMutex.RLock()
	snap := e.snapshot
	e.snapshotMutex.RUnlock()

	if !snap.valid {
		return
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	offset := geom.V(0, float64(headerHeight()))

	e.drawHeader(screen, &snap)
	e.drawBoard(screen, &snap, offset)
	if snap.phase == state.PhaseWon {
		e.drawWonPanel(screen, screenWidth, screenHeight)
	}
	e.drawMessages(screen, screenWidth, screenHeight)
}

// drawHeader draws the status and help lines
func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, snap *renderSnapshot) {
	e.drawColoredTextWithFace(screen, snap.status, hudPadding, hudPadding, colorText, e.getMonoFontFace())
	e.drawColoredText(screen, snap.help, hudPadding, hudPadding+lineHeight(), colorAction)
}

// rect draws a filled rectangle shifted by offset
func rect(screen *ebiten.Image, r geom.Rect, offset geom.Vec2, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X+offset.X), float32(r.Y+offset.Y), float32(r.W), float32(r.H), clr, true)
}

// drawBoard draws the maze, its hazards and the balls
func (e *EbitenRenderer) drawBoard(screen *ebiten.Image, snap *renderSnapshot, offset geom.Vec2) {
	m := snap.maze

	rect(screen, geom.Rect{X: m.Origin.X, Y: m.Origin.Y, W: m.Width(), H: m.Height()}, offset, colorMapBackground)
	rect(screen, m.GoalRect(), offset, e.getPulsingGoalColor())

	at := func(p geom.Vec2) (float32, float32) {
		return float32(p.X + offset.X), float32(p.Y + offset.Y)
	}

	for _, s := range m.Starts {
		x, y := at(s.Pos)
		vector.StrokeCircle(screen, x, y, float32(snap.radius), 2, colorStart, true)
	}
	for _, r := range m.Resets {
		x, y := at(r.Pos)
		vector.DrawFilledCircle(screen, x, y, float32(r.Radius), colorReset, true)
		vector.StrokeCircle(screen, x, y, float32(r.Radius)*0.55, 2, colorMapBackground, true)
	}
	for i, s := range m.Spikes {
		active := i >= len(snap.spikes) || snap.spikes[i]
		x, y := at(s.Pos)
		if active {
			vector.DrawFilledCircle(screen, x, y, float32(s.Radius), getSpikeColor(true), true)
		} else {
			vector.StrokeCircle(screen, x, y, float32(s.Radius), 2, getSpikeColor(false), true)
		}
	}

	m.Grid.ForEachCell(func(col, row int, cell *world.Cell) {
		for _, w := range m.CellWalls(world.Coord{Col: col, Row: row}) {
			rect(screen, w, offset, colorWall)
		}
	})
	for _, w := range m.Boundary() {
		rect(screen, w, offset, colorWall)
	}

	for _, b := range snap.bodies {
		x, y := at(b)
		vector.DrawFilledCircle(screen, x, y, float32(snap.radius), colorBody, true)
		vector.StrokeCircle(screen, x, y, float32(snap.radius), 1.5, colorBodyRim, true)
	}
}

// drawWonPanel draws the centred "cleared" panel
func (e *EbitenRenderer) drawWonPanel(screen *ebiten.Image, screenWidth, screenHeight int) {
	title := gotext.Get("HUD_WON")
	sub := gotext.Get("HUD_NEXT_LEVEL")

	panelWidth := int(max(e.getTextWidth(title), e.getTextWidth(sub))) + 40
	panelHeight := 2*lineHeight() + 30
	x := float32((screenWidth - panelWidth) / 2)
	y := float32((screenHeight - panelHeight) / 2)

	vector.DrawFilledRect(screen, x-1, y-1, float32(panelWidth+2), float32(panelHeight+2), colorPanelBorder, false)
	vector.DrawFilledRect(screen, x, y, float32(panelWidth), float32(panelHeight), colorPanelBackground, false)

	e.drawColoredText(screen, title, int(x)+20, int(y)+15, e.getPulsingGoalColor())
	e.drawColoredText(screen, sub, int(x)+20, int(y)+15+lineHeight(), colorSubtle)
}

// drawMessages draws the message log as a bottom‑aligned overlay. The panel
// is only drawn while some message is still visible.
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, screenWidth, screenHeight int) {
	const maxVisibleLines = 4

	visible := e.trackedMessages
	if len(visible) > maxVisibleLines {
		visible = visible[len(visible)-maxVisibleLines:]
	}
	if len(visible) == 0 {
		return
	}

	maxTextWidth := 0.0
	for _, m := range visible {
		maxTextWidth = max(maxTextWidth, e.getTextWidth(m.Text))
	}

	panelWidth := min(max(int(maxTextWidth)+20, 100), screenWidth-40)
	panelHeight := len(visible)*lineHeight() + 12

	const marginBottom = 20
	bgX := float32((screenWidth - panelWidth) / 2)
	bgY := float32(max(0, screenHeight-marginBottom-panelHeight))

	vector.DrawFilledRect(screen, bgX-1, bgY-1, float32(panelWidth+2), float32(panelHeight+2), colorPanelBorder, false)
	vector.DrawFilledRect(screen, bgX, bgY, float32(panelWidth), float32(panelHeight), colorPanelBackground, false)

	now := time.Now()
	fadeStart := messageLifetime * 7 / 10
	for i, m := range visible {
		alpha := 1.0
		if age := now.Sub(m.Timestamp); age > fadeStart {
			alpha = 1 - float64(age-fadeStart)/float64(messageLifetime-fadeStart)
		}
		e.drawColoredText(screen, m.Text, int(bgX)+10, int(bgY)+6+i*lineHeight(), applyAlpha(colorText, alpha))
	}
}
