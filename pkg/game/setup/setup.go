// Package setup builds a playable level: it carves the maze, lays it out in
// the viewport and places start spots and hazards.
package setup

import (
	log "github.com/sirupsen/logrus"

	"tiltmaze/pkg/engine/rng"
	"tiltmaze/pkg/engine/world"
	"tiltmaze/pkg/game/difficulty"
	"tiltmaze/pkg/game/entities"
	"tiltmaze/pkg/game/generator"
	"tiltmaze/pkg/game/level"
	"tiltmaze/pkg/game/levelgen"
)

// Builder turns a level number and seed into a Snapshot
type Builder struct {
	Generator generator.GridGenerator
	Tuning    difficulty.Tuning
}

// NewBuilder returns a builder using the default maze generator
func NewBuilder(tuning difficulty.Tuning) *Builder {
	return &Builder{
		Generator: generator.DefaultGenerator,
		Tuning:    tuning,
	}
}

// BuildSnapshot builds a level with the default tuning
func BuildSnapshot(levelNum int, seed int64, vp level.Viewport) *level.Snapshot {
	return NewBuilder(difficulty.Default()).Build(levelNum, seed, vp)
}

// StartCells returns the spawn cells: the entrance, plus the bottom-left
// corner when the level has two balls
func StartCells(grid *world.Grid, twoBodies bool) []world.Coord {
	starts := []world.Coord{grid.Entrance()}
	if twoBodies {
		starts = append(starts, world.Coord{Col: 0, Row: grid.Rows() - 1})
	}
	return starts
}

// Build generates the level. The same level, seed and viewport always give
// the same snapshot. Building never fails; short hazard placement is logged.
// A zero Builder uses the default generator and tuning.
func (b *Builder) Build(levelNum int, seed int64, vp level.Viewport) *level.Snapshot {
	gen := b.Generator
	if gen == nil {
		gen = generator.DefaultGenerator
	}
	tuning := b.Tuning
	if tuning == (difficulty.Tuning{}) {
		tuning = difficulty.Default()
	}

	params := tuning.ForLevel(levelNum)
	src := rng.New(seed)

	grid := gen.Generate(params.Cols, params.Rows, src)
	maze := level.NewMaze(grid, vp, params)
	maze.Path = levelgen.SolvePath(grid)
	maze.DeadEnds = levelgen.DeadEnds(grid)

	startCells := StartCells(grid, params.TwoBodies)
	for _, c := range startCells {
		maze.Starts = append(maze.Starts, entities.StartSpot{Cell: c, Pos: maze.CellCenter(c)})
	}

	exclude := levelgen.ExclusionZone(grid, params.ExclusionRadius, append(startCells, grid.Exit())...)
	hazardRadius := entities.HazardRadius(maze.CellSize())

	maze.Spikes = levelgen.PlaceSpikes(maze.Path, &exclude, levelgen.SpikeOptions{
		Desired: params.SpikeCount,
		Spacing: params.SpikeSpacing,
		Margin:  params.PathMargin,
		Period:  params.SpikePeriod,
		Duty:    params.SpikeDuty,
		Radius:  hazardRadius,
	}, maze, src)

	maze.Resets = levelgen.PlaceResets(maze.DeadEnds, maze.Path, &exclude, levelgen.ResetOptions{
		Desired:    params.ResetCount,
		Spacing:    params.ResetSpacing,
		Radius:     hazardRadius,
		BodyRadius: maze.BodyRadius(),
	}, maze, src)

	log.WithFields(log.Fields{
		"level":     levelNum,
		"seed":      seed,
		"generator": gen.Name(),
		"grid":      grid.Cols() * grid.Rows(),
		"path":      len(maze.Path),
		"deadEnds":  len(maze.DeadEnds),
		"spikes":    len(maze.Spikes),
		"resets":    len(maze.Resets),
	}).Debug("Level built")

	return &level.Snapshot{
		Level:  params.Level,
		Seed:   seed,
		Maze:   maze,
		Params: params,
	}
}
