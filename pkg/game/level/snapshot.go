package level

import "tiltmaze/pkg/game/difficulty"

// Snapshot is everything needed to play one level instance. A rebuild
// produces a new Snapshot rather than modifying the old one.
type Snapshot struct {
	Level  int
	Seed   int64
	Maze   *Maze
	Params difficulty.Params
}

// BodyCount returns the number of balls in play
func (s *Snapshot) BodyCount() int {
	return s.Params.BodyCount()
}
