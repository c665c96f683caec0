package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"tiltmaze/pkg/game/difficulty"
	"tiltmaze/pkg/game/gameplay"
	"tiltmaze/pkg/game/renderer"
)

func TestFrame_Layout(t *testing.T) {
	color.Enable = false
	defer func() { color.Enable = true }()

	g := gameplay.NewGame(gameplay.Options{
		StartLevel: 1,
		Seed:       5,
		Tuning:     difficulty.Default(),
		Viewport:   Viewport,
	})
	r := New()
	r.Init()

	lines := r.Frame(g, 80)
	m := g.Maze()
	mapRows := 2*m.Rows() + 1

	// status, blank, map, blank, help, then the messages pane
	if len(lines) < mapRows+4 {
		t.Fatalf("Frame() has %d lines, want at least %d", len(lines), mapRows+4)
	}
	top := lines[2]
	indent := (80 - (2*m.Cols() + 1)) / 2
	if !strings.HasPrefix(top, strings.Repeat(" ", indent)+renderer.IconWall) {
		t.Errorf("first map row %q is not centred", top)
	}
	if !strings.Contains(lines[3], renderer.IconBody) {
		t.Errorf("second map row %q has no ball", lines[3])
	}
	if !strings.Contains(strings.Join(lines, "\n"), "Messages") {
		t.Error("Frame() has no messages pane")
	}
}

func TestDraw_WritesHomeAndClear(t *testing.T) {
	g := gameplay.NewGame(gameplay.Options{StartLevel: 1, Seed: 5, Tuning: difficulty.Default(), Viewport: Viewport})
	var buf bytes.Buffer
	r := &TUIRenderer{out: &buf}
	r.Init()
	r.draw(g)

	out := buf.String()
	if !strings.HasPrefix(out, "\x1b[H") {
		t.Errorf("draw output does not start at home: %q", out[:min(10, len(out))])
	}
	if !strings.Contains(out, "\r\n") {
		t.Error("draw output lacks raw-mode line endings")
	}
}
