package generator

import (
	"tiltmaze/pkg/engine/rng"
	"tiltmaze/pkg/engine/world"
)

// BacktrackerGenerator carves a perfect maze with a randomized iterative
// depth-first search (recursive backtracker)
type BacktrackerGenerator struct{}

// Name returns the name of this generator
func (g *BacktrackerGenerator) Name() string {
	return "Recursive Backtracker"
}

// Generate carves a perfect maze: every cell is reachable from every other
// through exactly one path. Runs in O(cols*rows).
func (g *BacktrackerGenerator) Generate(cols, rows int, src rng.Source) *world.Grid {
	grid := world.NewGrid(cols, rows)

	start := grid.GetCell(0, 0)
	start.Visited = true
	stack := []*world.Cell{start}

	// Reused between iterations to avoid an allocation per step
	candidates := make([]world.Direction, 0, 4)

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, dir := range world.AllDirections() {
			next := grid.GetCellRelative(current, dir)
			if next != nil && !next.Visited {
				candidates = append(candidates, dir)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		dir := candidates[src.Intn(len(candidates))]
		next := grid.Carve(current, dir)
		next.Visited = true
		stack = append(stack, next)
	}

	grid.ResetVisited()

	return grid
}
