package state

// LevelBuiltEvent is emitted after every build, including restarts and
// resizes
type LevelBuiltEvent struct {
	Level  int
	Cols   int
	Rows   int
	Spikes int
	Resets int
	Bodies int
	Seed   int64
}

// LevelWonEvent is emitted once per level instance when every ball reaches
// the goal
type LevelWonEvent struct {
	Level   int
	Seconds float64
}

// Listener receives level events. Calls happen on the simulation goroutine
// and must not block.
type Listener interface {
	LevelBuilt(LevelBuiltEvent)
	LevelWon(LevelWonEvent)
}

// AddListener registers l for level events
func (g *Game) AddListener(l Listener) {
	g.listeners = append(g.listeners, l)
}

// NotifyBuilt sends e to every listener
func (g *Game) NotifyBuilt(e LevelBuiltEvent) {
	for _, l := range g.listeners {
		l.LevelBuilt(e)
	}
}

// NotifyWon sends e to every listener
func (g *Game) NotifyWon(e LevelWonEvent) {
	for _, l := range g.listeners {
		l.LevelWon(e)
	}
}
