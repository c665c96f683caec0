// Package generator carves maze layouts into world grids.
package generator

import (
	"tiltmaze/pkg/engine/rng"
	"tiltmaze/pkg/engine/world"
)

// GridGenerator is an interface for maze generation algorithms
type GridGenerator interface {
	Generate(cols, rows int, src rng.Source) *world.Grid
	Name() string
}

// Available generators
var (
	Backtracker = &BacktrackerGenerator{}
)

// DefaultGenerator is the default maze generator
var DefaultGenerator GridGenerator = Backtracker
