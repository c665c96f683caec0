package setup

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"tiltmaze/pkg/engine/world"
	"tiltmaze/pkg/game/level"
	"tiltmaze/pkg/game/levelgen"
)

// ErrUnsound is returned (wrapped) by Verify when a snapshot breaks a level
// invariant
var ErrUnsound = errors.New("unsound level")

// Verify checks a built snapshot: the maze is perfect, the path joins the
// entrance to the exit, and hazards keep clear of start spots, the exit and
// each other. Builds never fail, so this is for tests and the map dump tool.
func Verify(s *level.Snapshot) error {
	m := s.Maze
	grid := m.Grid

	if err := grid.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsound, err)
	}
	if got, want := levelgen.OpenAdjacencies(grid), grid.Len()-1; got != want {
		return fmt.Errorf("%w: %d open adjacencies, want %d", ErrUnsound, got, want)
	}
	if len(m.Path) == 0 || m.Path[0] != grid.Entrance() || m.Path[len(m.Path)-1] != grid.Exit() {
		return fmt.Errorf("%w: path does not join entrance to exit", ErrUnsound)
	}

	p := s.Params
	keepClear := []world.Coord{grid.Exit()}
	for _, st := range m.Starts {
		keepClear = append(keepClear, st.Cell)
	}
	tooClose := func(c world.Coord) bool {
		for _, k := range keepClear {
			if world.ChebyshevDistance(c, k) <= p.ExclusionRadius {
				return true
			}
		}
		return false
	}

	spikeCells := make([]world.Coord, 0, len(m.Spikes))
	for _, sp := range m.Spikes {
		spikeCells = append(spikeCells, sp.Cell)
	}
	resetCells := make([]world.Coord, 0, len(m.Resets))
	for _, r := range m.Resets {
		resetCells = append(resetCells, r.Cell)
	}

	occupied := mapset.New[world.Coord]()
	for _, group := range []struct {
		kind    string
		cells   []world.Coord
		spacing int
	}{
		{"spike", spikeCells, p.SpikeSpacing},
		{"reset", resetCells, p.ResetSpacing},
	} {
		for i, c := range group.cells {
			if tooClose(c) {
				return fmt.Errorf("%w: %s at %v inside the exclusion radius", ErrUnsound, group.kind, c)
			}
			if occupied.Has(c) {
				return fmt.Errorf("%w: %s at %v shares a hazard cell", ErrUnsound, group.kind, c)
			}
			occupied.Put(c)
			for _, o := range group.cells[i+1:] {
				if d := world.ManhattanDistance(c, o); d < group.spacing {
					return fmt.Errorf("%w: %ss at %v and %v are %d apart", ErrUnsound, group.kind, c, o, d)
				}
			}
		}
	}
	return nil
}
