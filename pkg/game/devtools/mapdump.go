// Package devtools provides developer tools for inspecting generated levels.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"tiltmaze/pkg/engine/world"
	"tiltmaze/pkg/game/level"
	"tiltmaze/pkg/game/renderer"
	"tiltmaze/pkg/game/setup"
)

const mapDumpFilename = "map.txt"

// asciiGlyphs are the plain-text symbols used in dumps
var asciiGlyphs = map[renderer.Glyph]rune{
	renderer.GlyphVoid:      ' ',
	renderer.GlyphWall:      '#',
	renderer.GlyphFloor:     '.',
	renderer.GlyphPath:      '+',
	renderer.GlyphStart:     'S',
	renderer.GlyphGoal:      'G',
	renderer.GlyphReset:     'R',
	renderer.GlyphSpike:     '^',
	renderer.GlyphSpikeIdle: '^',
	renderer.GlyphBody:      '@',
}

// ASCIIMap renders a raster with one plain character per glyph
func ASCIIMap(raster [][]renderer.Glyph) []string {
	lines := make([]string, len(raster))
	for y, row := range raster {
		var sb strings.Builder
		for _, gl := range row {
			sb.WriteRune(asciiGlyphs[gl])
		}
		lines[y] = sb.String()
	}
	return lines
}

// DumpLevel writes a debug dump of a level instance: metadata, legend, the
// map with and without the solution path, and every entity with its
// parameters. The format is sections of key: value lines.
func DumpLevel(w io.Writer, s *level.Snapshot) error {
	m := s.Maze
	p := s.Params

	fmt.Fprintln(w, "=== MAP DUMP (level layout, path, hazards) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "level: %d\n", s.Level)
	fmt.Fprintf(w, "level_seed: %d\n", s.Seed)
	fmt.Fprintf(w, "grid_cols: %d\n", m.Cols())
	fmt.Fprintf(w, "grid_rows: %d\n", m.Rows())
	fmt.Fprintf(w, "coordinate_system: col,row (0-based, col=horizontal, row=vertical)\n")
	fmt.Fprintf(w, "cell_size: %.0f\n", m.CellSize())
	fmt.Fprintf(w, "origin: %.0f,%.0f\n", m.Origin.X, m.Origin.Y)
	fmt.Fprintf(w, "bodies: %d\n", s.BodyCount())
	fmt.Fprintf(w, "path_length: %d\n", len(m.Path))
	fmt.Fprintf(w, "dead_ends: %d\n", len(m.DeadEnds))
	fmt.Fprintf(w, "max_accel: %.1f\n", p.MaxAccel)
	fmt.Fprintf(w, "damping: %.4f\n", p.Damping)
	fmt.Fprintf(w, "spike_period: %.2f\n", p.SpikePeriod)
	fmt.Fprintf(w, "spike_duty: %.2f\n", p.SpikeDuty)
	if err := setup.Verify(s); err != nil {
		fmt.Fprintf(w, "sound: false (%v)\n", err)
	} else {
		fmt.Fprintln(w, "sound: true")
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "# = wall  . = floor  + = solution path  S = start  G = goal  R = reset pad  ^ = spike")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	for _, line := range ASCIIMap(renderer.Rasterize(m, renderer.RasterOptions{})) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (solution path) ---")
	for _, line := range ASCIIMap(renderer.Rasterize(m, renderer.RasterOptions{ShowPath: true})) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Entities ---")
	fmt.Fprintln(w, "Starts:")
	for i, st := range m.Starts {
		fmt.Fprintf(w, "  index: %d cell: %v x: %.1f y: %.1f\n", i, st.Cell, st.Pos.X, st.Pos.Y)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Spikes:")
	for _, sp := range m.Spikes {
		fmt.Fprintf(w, "  cell: %v x: %.1f y: %.1f radius: %.1f period: %.2f duty: %.2f phase: %.3f\n",
			sp.Cell, sp.Pos.X, sp.Pos.Y, sp.Radius, sp.Period, sp.Duty, sp.Phase)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Reset pads:")
	for _, r := range m.Resets {
		fmt.Fprintf(w, "  cell: %v x: %.1f y: %.1f radius: %.1f\n", r.Cell, r.Pos.X, r.Pos.Y, r.Radius)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Dead ends:")
	fmt.Fprintf(w, "  %s\n", joinCoords(m.DeadEnds))

	_, err := fmt.Fprintln(w, "")
	return err
}

func joinCoords(cs []world.Coord) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// DumpLevelToFile writes DumpLevel output to map.txt in dir and returns its
// absolute path
func DumpLevelToFile(s *level.Snapshot, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpLevel(f, s); err != nil {
		return "", err
	}
	return absPath, nil
}
