package ebiten

import (
	"time"

	"tiltmaze/pkg/engine/geom"
	"tiltmaze/pkg/game/renderer"
)

// captureSnapshot copies what Draw needs out of the live game
func (e *EbitenRenderer) captureSnapshot() {
	g := e.game

	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	m := g.Maze()
	if m == nil {
		e.snapshot.valid = false
		return
	}

	bodies := make([]geom.Vec2, len(g.Bodies))
	for i, b := range g.Bodies {
		bodies[i] = b.Pos
	}
	radius := m.BodyRadius()
	if len(g.Bodies) > 0 {
		radius = g.Bodies[0].Radius
	}

	e.snapshot = renderSnapshot{
		valid:  true,
		phase:  g.Phase,
		status: renderer.StatusLine(g, e.Records),
		help:   renderer.HelpLine(),
		maze:   m,
		bodies: bodies,
		radius: radius,
		spikes: g.SpikeStates(),
	}
}

// trackMessages timestamps messages added to the game log since the last
// frame and drops the ones that have faded out
func (e *EbitenRenderer) trackMessages(now time.Time) {
	for _, msg := range renderer.NewMessages(e.seenMessages, e.game.Messages) {
		e.trackedMessages = append(e.trackedMessages, messageEntry{Text: msg, Timestamp: now})
	}
	e.seenMessages = append(e.seenMessages[:0], e.game.Messages...)

	kept := e.trackedMessages[:0]
	for _, m := range e.trackedMessages {
		if now.Sub(m.Timestamp) < messageLifetime {
			kept = append(kept, m)
		}
	}
	e.trackedMessages = kept
}
