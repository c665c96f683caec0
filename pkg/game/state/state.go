// Package state holds the mutable session: the current level instance, the
// balls in play and the play phase.
package state

import (
	"time"

	"tiltmaze/pkg/game/difficulty"
	"tiltmaze/pkg/game/entities"
	"tiltmaze/pkg/game/level"
)

// Phase is where a level instance is in its lifecycle
type Phase int

// Phases
const (
	PhaseBuilding Phase = iota
	PhasePaused         // built and ready, or paused mid-run
	PhasePlaying
	PhaseWon
)

func (p Phase) String() string {
	switch p {
	case PhaseBuilding:
		return "building"
	case PhasePaused:
		return "paused"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	}
	return "unknown"
}

// Game represents the session state for the tilt maze
type Game struct {
	Level     int   // Current level number
	LevelSeed int64 // Seed of the current level instance, reused on restart

	Snapshot *level.Snapshot
	Bodies   []*entities.Body
	Viewport level.Viewport

	Phase   Phase
	Elapsed float64   // Seconds of play in this level instance
	WonAt   time.Time // When the level was won; zero until then

	// WinRecorded is set once LevelWon has been emitted for this instance
	WinRecorded bool

	Tuning      difficulty.Tuning
	AutoAdvance time.Duration // delay before moving on after a win, 0 = never
	NewSeed     func() int64

	Messages []string

	listeners []Listener
}

// NewGame creates a new game instance. Nothing is built until gameplay
// starts a level.
func NewGame() *Game {
	return &Game{
		Level:    1,
		Phase:    PhaseBuilding,
		Tuning:   difficulty.Default(),
		Messages: make([]string, 0),
		NewSeed: func() int64 {
			return time.Now().UnixNano()
		},
	}
}

// Maze returns the current maze, or nil before the first build
func (g *Game) Maze() *level.Maze {
	if g.Snapshot == nil {
		return nil
	}
	return g.Snapshot.Maze
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// SpikeStates reports, per spike, whether it is active at the current
// level time
func (g *Game) SpikeStates() []bool {
	m := g.Maze()
	if m == nil {
		return nil
	}
	states := make([]bool, len(m.Spikes))
	for i, s := range m.Spikes {
		states[i] = s.Active(g.Elapsed)
	}
	return states
}

// BodiesInGoal returns how many balls are on the goal pad
func (g *Game) BodiesInGoal() int {
	m := g.Maze()
	if m == nil {
		return 0
	}
	n := 0
	for _, b := range g.Bodies {
		if m.InGoal(b.Pos) {
			n++
		}
	}
	return n
}
