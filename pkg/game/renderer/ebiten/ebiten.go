package ebiten

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"tiltmaze/pkg/game/gameplay"
	"tiltmaze/pkg/game/level"
	"tiltmaze/pkg/game/renderer"
	"tiltmaze/pkg/game/state"
)

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
	}
}

// Init loads fonts and sets up the window
func (e *EbitenRenderer) Init() {
	if err := e.loadFonts(); err != nil {
		log.Warnf("Fonts unavailable, text will not be drawn: %v", err)
	}
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// StyleText returns text unchanged: colour is chosen when drawing
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// Viewport is the board area for a window of the given size: everything
// below the HUD header
func Viewport(width, height int) level.Viewport {
	return level.Viewport{
		Width:  float64(width),
		Height: float64(max(1, height-headerHeight())),
	}
}

// DefaultViewport is the board area of a freshly opened window
func DefaultViewport() level.Viewport {
	return Viewport(defaultWindowWidth, defaultWindowHeight)
}

// Run opens the window and plays until it is closed, the player quits or
// ctx is done
func (e *EbitenRenderer) Run(ctx context.Context, g *state.Game) error {
	e.game = g
	e.sess = renderer.NewSession(g)
	gameplay.Resize(g, Viewport(e.windowWidth, e.windowHeight))

	e.ctx = ctx

	if err := ebiten.RunGame(e); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface). A
// changed size rebuilds the board for the new viewport.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
		if e.game != nil {
			gameplay.Resize(e.game, Viewport(outsideWidth, outsideHeight))
		}
	}
	return outsideWidth, outsideHeight
}
