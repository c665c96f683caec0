package renderer

import (
	"context"

	"tiltmaze/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleFloor
	StyleGoal
	StyleStart
	StyleBody
	StyleReset
	StyleSpike
	StyleSpikeIdle
	StyleSubtle
	StyleAction
	StyleActionShort
	StyleWon
)

// Renderer defines the interface for game rendering backends.
// Implementations own their frame loop and drive the session through it.
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Run drives the game until the player quits or ctx is done
	Run(ctx context.Context, g *state.Game) error

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}
