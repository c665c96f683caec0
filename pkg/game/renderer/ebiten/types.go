package ebiten

import (
	"context"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"tiltmaze/pkg/engine/geom"
	"tiltmaze/pkg/game/level"
	"tiltmaze/pkg/game/renderer"
	"tiltmaze/pkg/game/state"
)

// messageEntry represents a message with timestamp for fade-out
type messageEntry struct {
	Text      string
	Timestamp time.Time
}

// renderSnapshot holds a consistent copy of the state Draw needs, taken at
// the end of each Update
type renderSnapshot struct {
	valid  bool
	phase  state.Phase
	status string
	help   string
	maze   *level.Maze
	bodies []geom.Vec2
	radius float64
	spikes []bool
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions as last reported to Layout
	windowWidth  int
	windowHeight int

	// Font sources for text rendering
	sansFontSource *text.GoTextFaceSource
	monoFontSource *text.GoTextFaceSource

	// Cached font faces
	cachedSansFace *text.GoTextFace
	cachedMonoFace *text.GoTextFace

	// Records supplies best times for the status line; nil hides them
	Records renderer.BestTimes

	ctx  context.Context
	game *state.Game
	sess *renderer.Session

	lastUpdate time.Time

	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Messages to display with timestamps for fade-out
	seenMessages    []string
	trackedMessages []messageEntry

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}
