package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tiltmaze/pkg/game/renderer"
	"tiltmaze/pkg/game/state"
)

// glyphColors are the CSS colours of each glyph in HTML screenshots
var glyphColors = map[renderer.Glyph]string{
	renderer.GlyphWall:      "#b4b4c8",
	renderer.GlyphFloor:     "#0f0f1a",
	renderer.GlyphPath:      "#787fb4",
	renderer.GlyphStart:     "#6496ff",
	renderer.GlyphGoal:      "#64ff64",
	renderer.GlyphReset:     "#50dce6",
	renderer.GlyphSpike:     "#ff5050",
	renderer.GlyphSpikeIdle: "#6e323c",
	renderer.GlyphBody:      "#f0f0ff",
}

// ScreenshotHTML renders the current board as a standalone HTML page
func ScreenshotHTML(g *state.Game) string {
	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Tilt Maze - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            line-height: 1;
        }
    </style>
</head>
<body>
`)
	fmt.Fprintf(&sb, "<div class=\"header\">%s</div>\n", html.EscapeString(renderer.StatusLine(g, nil)))
	sb.WriteString("<div class=\"map-container\"><pre>\n")

	for _, row := range renderer.GameRaster(g) {
		for _, gl := range row {
			fmt.Fprintf(&sb, "<span style=\"color:%s\">%s</span>", glyphColors[gl], html.EscapeString(gl.Icon()))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("</pre></div>\n</body>\n</html>\n")
	return sb.String()
}

// SaveScreenshotHTML writes ScreenshotHTML to a timestamped file in dir and
// returns the file name
func SaveScreenshotHTML(g *state.Game, dir string) (string, error) {
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", time.Now().Format("20060102-150405")))
	if err := os.WriteFile(filename, []byte(ScreenshotHTML(g)), 0o644); err != nil {
		return "", err
	}
	return filename, nil
}
