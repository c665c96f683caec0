// Package levelgen analyses a carved maze and places hazards in it.
package levelgen

import (
	"github.com/zyedidia/generic/mapset"

	"tiltmaze/pkg/engine/world"
)

// SolvePath finds the unique shortest route from the entrance (0,0) to the
// exit (cols-1, rows-1) using BFS over open walls. If the exit cannot be
// reached the result degrades to just the entrance.
func SolvePath(grid *world.Grid) []world.Coord {
	start := grid.Entrance()
	goal := grid.Exit()

	parent := make(map[world.Coord]world.Coord, grid.Len())
	visited := mapset.New[world.Coord]()
	visited.Put(start)
	queue := []world.Coord{start}

	found := start == goal
	for len(queue) > 0 && !found {
		current := queue[0]
		queue = queue[1:]

		cell := grid.At(current)
		for _, dir := range world.AllDirections() {
			next := grid.OpenNeighbor(cell, dir)
			if next == nil {
				continue
			}
			nc := next.Coord()
			if visited.Has(nc) {
				continue
			}
			visited.Put(nc)
			parent[nc] = current
			if nc == goal {
				found = true
				break
			}
			queue = append(queue, nc)
		}
	}

	if !found {
		return []world.Coord{start}
	}

	// Walk back from the exit, then reverse
	path := []world.Coord{goal}
	for c := goal; c != start; {
		c = parent[c]
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// DeadEnds returns every cell with exactly one open wall, in row-major order
func DeadEnds(grid *world.Grid) []world.Coord {
	var ends []world.Coord
	grid.ForEachCell(func(col, row int, cell *world.Cell) {
		if cell.IsDeadEnd() {
			ends = append(ends, cell.Coord())
		}
	})
	return ends
}

// OpenAdjacencies counts open shared walls, each pair once. A perfect maze
// has exactly cols*rows-1.
func OpenAdjacencies(grid *world.Grid) int {
	n := 0
	grid.ForEachCell(func(col, row int, cell *world.Cell) {
		if grid.OpenNeighbor(cell, world.East) != nil {
			n++
		}
		if grid.OpenNeighbor(cell, world.South) != nil {
			n++
		}
	})
	return n
}

// PathSet returns the path cells as a set
func PathSet(path []world.Coord) mapset.Set[world.Coord] {
	set := mapset.New[world.Coord]()
	for _, c := range path {
		set.Put(c)
	}
	return set
}
