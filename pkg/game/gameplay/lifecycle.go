// Package gameplay drives a session: building levels, moving between play
// phases and stepping the simulation.
package gameplay

import (
	"fmt"
	"time"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"tiltmaze/pkg/game/difficulty"
	"tiltmaze/pkg/game/entities"
	"tiltmaze/pkg/game/level"
	"tiltmaze/pkg/game/setup"
	"tiltmaze/pkg/game/state"
)

// DefaultAutoAdvance is how long the win banner shows before the next level
const DefaultAutoAdvance = 1200 * time.Millisecond

// Options configures a new session
type Options struct {
	StartLevel  int
	Seed        int64 // seed of the first level; 0 draws one from NewSeed
	Tuning      difficulty.Tuning
	Viewport    level.Viewport
	AutoAdvance time.Duration
	NewSeed     func() int64 // nil uses the wall clock
	Listeners   []state.Listener
}

// translate looks up a catalog key held in a variable. Keys are not format
// strings, so the lookup is kept away from printf checks.
var translate = gotext.Get

// logMessage adds a translated, formatted message to the game's message log
func logMessage(g *state.Game, key string, a ...any) {
	g.AddMessage(fmt.Sprintf(translate(key), a...))
}

// NewGame builds the starting level and leaves it paused, ready to play
func NewGame(opts Options) *state.Game {
	g := state.NewGame()
	if opts.Tuning != (difficulty.Tuning{}) {
		g.Tuning = opts.Tuning
	}
	g.Viewport = opts.Viewport
	g.AutoAdvance = opts.AutoAdvance
	if opts.NewSeed != nil {
		g.NewSeed = opts.NewSeed
	}
	for _, l := range opts.Listeners {
		g.AddListener(l)
	}

	g.Level = max(1, opts.StartLevel)
	seed := opts.Seed
	if seed == 0 {
		seed = g.NewSeed()
	}
	build(g, seed)
	g.Phase = state.PhasePaused

	logMessage(g, "LEVEL_START", g.Level)
	return g
}

// build replaces the level instance with a fresh one for g.Level and seed.
// The caller sets the resulting phase.
func build(g *state.Game, seed int64) {
	g.Phase = state.PhaseBuilding
	g.LevelSeed = seed
	g.Snapshot = setup.NewBuilder(g.Tuning).Build(g.Level, seed, g.Viewport)
	g.Level = g.Snapshot.Level
	spawnBodies(g)

	m := g.Snapshot.Maze
	g.NotifyBuilt(state.LevelBuiltEvent{
		Level:  g.Level,
		Cols:   m.Cols(),
		Rows:   m.Rows(),
		Spikes: len(m.Spikes),
		Resets: len(m.Resets),
		Bodies: len(g.Bodies),
		Seed:   seed,
	})
}

// spawnBodies puts one ball on each start spot, at rest
func spawnBodies(g *state.Game) {
	m := g.Snapshot.Maze
	radius := m.BodyRadius()
	count := g.Snapshot.BodyCount()

	g.Bodies = make([]*entities.Body, count)
	for i := range g.Bodies {
		g.Bodies[i] = entities.NewBody(m.Starts, i, radius)
	}
}

// resetRun clears per-instance timing and win bookkeeping
func resetRun(g *state.Game) {
	g.Elapsed = 0
	g.WonAt = time.Time{}
	g.WinRecorded = false
}

func setPhase(g *state.Game, p state.Phase) {
	if g.Phase == p {
		return
	}
	log.WithFields(log.Fields{
		"level": g.Level,
		"from":  g.Phase,
		"to":    p,
	}).Debug("Phase change")
	g.Phase = p
}

// Start begins or resumes play. Refused (returns false) once the level is
// won or while building.
func Start(g *state.Game) bool {
	if g.Phase != state.PhasePaused {
		return false
	}
	setPhase(g, state.PhasePlaying)
	return true
}

// Resume is Start under the name the pause menu uses
func Resume(g *state.Game) bool {
	return Start(g)
}

// Pause stops the clock. Only valid while playing.
func Pause(g *state.Game) bool {
	if g.Phase != state.PhasePlaying {
		return false
	}
	setPhase(g, state.PhasePaused)
	return true
}

// TogglePause pauses when playing and starts when paused
func TogglePause(g *state.Game) bool {
	if g.Phase == state.PhasePlaying {
		return Pause(g)
	}
	return Start(g)
}

// Restart rebuilds the current level with the same seed, so the layout is
// unchanged, and leaves it ready to play
func Restart(g *state.Game) {
	build(g, g.LevelSeed)
	resetRun(g)
	setPhase(g, state.PhasePaused)

	g.ClearMessages()
	logMessage(g, "LEVEL_RESET")
	logMessage(g, "LEVEL_START", g.Level)
}

// NextLevel advances to the next level with a fresh seed, whatever the
// current phase
func NextLevel(g *state.Game) {
	g.Level++
	build(g, g.NewSeed())
	resetRun(g)
	setPhase(g, state.PhasePaused)

	g.ClearMessages()
	logMessage(g, "LEVEL_START", g.Level)
}

// GoToLevel jumps to an arbitrary level with a fresh seed
func GoToLevel(g *state.Game, levelNum int) {
	g.Level = max(1, levelNum)
	build(g, g.NewSeed())
	resetRun(g)
	setPhase(g, state.PhasePaused)

	g.ClearMessages()
	logMessage(g, "LEVEL_START", g.Level)
}

// Resize lays the current level out for a new viewport. The maze and hazard
// layout are kept (same seed), balls go back to their start spots, and the
// phase, clock and win state carry over.
func Resize(g *state.Game, vp level.Viewport) {
	if vp == g.Viewport {
		return
	}
	g.Viewport = vp
	if g.Snapshot == nil {
		return
	}

	phase := g.Phase
	build(g, g.LevelSeed)
	g.Phase = phase
}
