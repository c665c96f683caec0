// Package renderer holds what every front end shares: the session that
// turns input into gameplay calls, the character raster of a maze and the
// HUD text.
package renderer

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"

	"tiltmaze/pkg/engine/geom"
	"tiltmaze/pkg/engine/input"
	"tiltmaze/pkg/engine/world"
	"tiltmaze/pkg/game/entities"
	"tiltmaze/pkg/game/level"
	"tiltmaze/pkg/game/state"
)

// Glyph is one character position of a rasterized maze
type Glyph int

const (
	GlyphVoid Glyph = iota
	GlyphWall
	GlyphFloor
	GlyphPath
	GlyphStart
	GlyphGoal
	GlyphReset
	GlyphSpike
	GlyphSpikeIdle
	GlyphBody
)

// Icon constants
const (
	IconWall  = "█"
	IconFloor = " "
	IconPath  = "·"
	IconStart = "○"
	IconGoal  = "⌂"
	IconBody  = "●"
)

// Icon returns the character drawn for a glyph
func (gl Glyph) Icon() string {
	switch gl {
	case GlyphWall:
		return IconWall
	case GlyphPath:
		return IconPath
	case GlyphStart:
		return IconStart
	case GlyphGoal:
		return IconGoal
	case GlyphReset:
		return entities.HazardKinds[entities.HazardReset].Icon
	case GlyphSpike:
		return entities.HazardKinds[entities.HazardSpike].Icon
	case GlyphSpikeIdle:
		return entities.HazardKinds[entities.HazardSpike].IconInactive
	case GlyphBody:
		return IconBody
	}
	return IconFloor
}

// Style returns the text style a glyph is drawn in
func (gl Glyph) Style() TextStyle {
	switch gl {
	case GlyphWall:
		return StyleWall
	case GlyphPath:
		return StyleSubtle
	case GlyphStart:
		return StyleStart
	case GlyphGoal:
		return StyleGoal
	case GlyphReset:
		return StyleReset
	case GlyphSpike:
		return StyleSpike
	case GlyphSpikeIdle:
		return StyleSpikeIdle
	case GlyphBody:
		return StyleBody
	}
	return StyleFloor
}

// RasterOptions selects what Rasterize draws on top of the walls
type RasterOptions struct {
	Bodies      []geom.Vec2
	SpikeActive []bool // per spike; missing entries draw as active
	ShowPath    bool
}

// Rasterize lays the maze out on a (2·cols+1)×(2·rows+1) character grid:
// cell (c, r) sits at (2c+1, 2r+1) with walls and posts between. Result is
// indexed [y][x].
func Rasterize(m *level.Maze, opts RasterOptions) [][]Glyph {
	w, h := 2*m.Cols()+1, 2*m.Rows()+1
	out := make([][]Glyph, h)
	for y := range out {
		out[y] = make([]Glyph, w)
		for x := range out[y] {
			out[y][x] = GlyphWall
		}
	}

	m.Grid.ForEachCell(func(col, row int, cell *world.Cell) {
		x, y := 2*col+1, 2*row+1
		out[y][x] = GlyphFloor
		if !cell.HasWall(world.East) {
			out[y][x+1] = GlyphFloor
		}
		if !cell.HasWall(world.South) {
			out[y+1][x] = GlyphFloor
		}
	})

	put := func(c world.Coord, gl Glyph) {
		if m.Grid.Contains(c) {
			out[2*c.Row+1][2*c.Col+1] = gl
		}
	}
	if opts.ShowPath {
		for _, c := range m.Path {
			put(c, GlyphPath)
		}
	}
	for _, s := range m.Starts {
		put(s.Cell, GlyphStart)
	}
	put(m.Grid.Exit(), GlyphGoal)
	for i, s := range m.Spikes {
		gl := GlyphSpike
		if i < len(opts.SpikeActive) && !opts.SpikeActive[i] {
			gl = GlyphSpikeIdle
		}
		put(s.Cell, gl)
	}
	for _, r := range m.Resets {
		put(r.Cell, GlyphReset)
	}
	for _, p := range opts.Bodies {
		put(m.CellAt(p), GlyphBody)
	}
	return out
}

// GameRaster rasterizes the live state of g
func GameRaster(g *state.Game) [][]Glyph {
	m := g.Maze()
	if m == nil {
		return nil
	}
	bodies := make([]geom.Vec2, len(g.Bodies))
	for i, b := range g.Bodies {
		bodies[i] = b.Pos
	}
	return Rasterize(m, RasterOptions{Bodies: bodies, SpikeActive: g.SpikeStates()})
}

// dynamicGet keeps translation keys found in markup out of vet's
// constant format string check
var dynamicGet = gotext.Get

var regexpStringFunctions = regexp.MustCompile(`([A-Z_]+){([^{}]+)}`)

// FormatText formats a message and expands its markup: GT{KEY} looks up a
// translation, ACTION{word} highlights the first letter as a shortcut.
func FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	for _, match := range regexpStringFunctions.FindAllStringSubmatch(ret, -1) {
		function, operand := match[1], match[2]

		var val string
		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ACTION":
			val = StyleText(operand[0:1], StyleActionShort) + StyleText(operand[1:], StyleAction)
		case "WON":
			val = StyleText(operand, StyleWon)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// BestTimes looks up the best clear time of a level
type BestTimes interface {
	Best(level int) (float64, bool)
}

// StatusLine is the one-line HUD: level, timer, balls home, best time when
// records is set, and phase
func StatusLine(g *state.Game, records BestTimes) string {
	parts := []string{
		fmt.Sprintf(gotext.Get("HUD_LEVEL"), g.Level),
		fmt.Sprintf(gotext.Get("HUD_TIME"), g.Elapsed),
		fmt.Sprintf(gotext.Get("HUD_BALLS"), g.BodiesInGoal(), len(g.Bodies)),
	}
	if records != nil {
		if best, ok := records.Best(g.Level); ok {
			parts = append(parts, fmt.Sprintf(gotext.Get("HUD_BEST"), best))
		}
	}
	switch g.Phase {
	case state.PhasePaused:
		if g.Elapsed == 0 {
			parts = append(parts, gotext.Get("HUD_READY"))
		} else {
			parts = append(parts, gotext.Get("HUD_PAUSED"))
		}
	case state.PhaseWon:
		parts = append(parts, FormatText("WON{%s} %s", gotext.Get("HUD_WON"), gotext.Get("HUD_NEXT_LEVEL")))
	}
	return strings.Join(parts, "  ")
}

// HelpLine lists the non-tilt controls with their first binding
func HelpLine() string {
	byAction := input.GetBindingsByAction()
	actions := make([]input.Action, 0, len(byAction))
	for a := range byAction {
		if (input.Intent{Action: a}).IsTilt() {
			continue
		}
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		parts = append(parts, fmt.Sprintf("%s: %s", StyleText(shortest(byAction[a]), StyleActionShort), input.ActionName(a)))
	}
	return strings.Join(parts, "  ")
}

// shortest returns the shortest code, the first of equals
func shortest(codes []string) string {
	best := codes[0]
	for _, c := range codes[1:] {
		if len(c) < len(best) {
			best = c
		}
	}
	return best
}

// NewMessages returns the entries of cur that were appended since prev was
// taken. The log is a bounded window, so prev may have lost entries off the
// front.
func NewMessages(prev, cur []string) []string {
	for k := min(len(prev), len(cur)); k > 0; k-- {
		if slices.Equal(prev[len(prev)-k:], cur[:k]) {
			return cur[k:]
		}
	}
	return cur
}
