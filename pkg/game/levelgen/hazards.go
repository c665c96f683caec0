package levelgen

import (
	"math"

	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"tiltmaze/pkg/engine/geom"
	"tiltmaze/pkg/engine/rng"
	"tiltmaze/pkg/engine/world"
	"tiltmaze/pkg/game/entities"
)

// Geometry maps grid cells to screen space
type Geometry interface {
	CellCenter(c world.Coord) geom.Vec2
	CellSize() float64
}

// SpikeOptions controls spike placement
type SpikeOptions struct {
	Desired int
	Spacing int // minimum Manhattan distance between spikes
	Margin  int // path cells skipped at each end
	Period  float64
	Duty    float64
	Radius  float64
}

// ResetOptions controls reset pad placement
type ResetOptions struct {
	Desired    int
	Spacing    int
	Radius     float64
	BodyRadius float64 // bounds the jitter applied to pad positions
}

// ExclusionZone returns every in-grid cell within the Chebyshev radius of
// any of the given centres
func ExclusionZone(grid *world.Grid, radius int, centres ...world.Coord) mapset.Set[world.Coord] {
	zone := mapset.New[world.Coord]()
	for _, c := range centres {
		for dr := -radius; dr <= radius; dr++ {
			for dc := -radius; dc <= radius; dc++ {
				cell := world.Coord{Col: c.Col + dc, Row: c.Row + dr}
				if grid.Contains(cell) {
					zone.Put(cell)
				}
			}
		}
	}
	return zone
}

// pickSpaced shuffles candidates and greedily accepts those that are not
// excluded and keep the minimum spacing to every accepted cell, stopping at
// target.
func pickSpaced(candidates []world.Coord, exclude *mapset.Set[world.Coord], spacing, target int, src rng.Source) []world.Coord {
	shuffled := make([]world.Coord, len(candidates))
	copy(shuffled, candidates)
	rng.Shuffle(src, shuffled)

	var picked []world.Coord
	for _, c := range shuffled {
		if len(picked) >= target {
			break
		}
		if exclude.Has(c) {
			continue
		}
		spaced := true
		for _, p := range picked {
			if world.ManhattanDistance(c, p) < spacing {
				spaced = false
				break
			}
		}
		if spaced {
			picked = append(picked, c)
		}
	}
	return picked
}

// PlaceSpikes puts spikes on the solution path, away from its ends. Accepted
// cells are added to exclude so later placements cannot reuse them.
func PlaceSpikes(path []world.Coord, exclude *mapset.Set[world.Coord], opts SpikeOptions, geo Geometry, src rng.Source) []entities.Spike {
	lo := min(opts.Margin, len(path))
	hi := max(lo, len(path)-opts.Margin)
	candidates := path[lo:hi]

	// At most one spike per three candidate cells
	target := min(opts.Desired, max(1, len(candidates)/3))
	cells := pickSpaced(candidates, exclude, opts.Spacing, target, src)

	spikes := make([]entities.Spike, 0, len(cells))
	for _, c := range cells {
		exclude.Put(c)
		spikes = append(spikes, entities.Spike{
			Cell:   c,
			Pos:    geo.CellCenter(c),
			Radius: opts.Radius,
			Period: opts.Period,
			Duty:   opts.Duty,
			Phase:  src.Float64() * opts.Period,
		})
	}

	if len(spikes) < opts.Desired {
		log.WithFields(log.Fields{
			"desired": opts.Desired,
			"placed":  len(spikes),
			"path":    len(path),
		}).Debug("Spike placement fell short")
	}
	return spikes
}

// PlaceResets puts reset pads on dead ends off the solution path. Each pad
// is nudged off the cell centre by a random-sign offset on both axes.
func PlaceResets(deadEnds []world.Coord, path []world.Coord, exclude *mapset.Set[world.Coord], opts ResetOptions, geo Geometry, src rng.Source) []entities.Reset {
	onPath := PathSet(path)
	var candidates []world.Coord
	for _, c := range deadEnds {
		if !onPath.Has(c) {
			candidates = append(candidates, c)
		}
	}

	cells := pickSpaced(candidates, exclude, opts.Spacing, opts.Desired, src)

	jitter := math.Min(geo.CellSize()*0.12, opts.BodyRadius*0.8)
	resets := make([]entities.Reset, 0, len(cells))
	for _, c := range cells {
		exclude.Put(c)
		offset := geom.V(rng.Sign(src)*jitter, rng.Sign(src)*jitter)
		resets = append(resets, entities.Reset{
			Cell:   c,
			Pos:    geo.CellCenter(c).Add(offset),
			Radius: opts.Radius,
		})
	}

	if len(resets) < opts.Desired {
		log.WithFields(log.Fields{
			"desired":    opts.Desired,
			"placed":     len(resets),
			"candidates": len(candidates),
		}).Debug("Reset placement fell short")
	}
	return resets
}
