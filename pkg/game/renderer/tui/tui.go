// Package tui draws the maze as coloured text and drives the game from a
// raw-mode terminal.
package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	log "github.com/sirupsen/logrus"

	"tiltmaze/pkg/engine/input"
	"tiltmaze/pkg/engine/terminal"
	"tiltmaze/pkg/game/level"
	"tiltmaze/pkg/game/renderer"
	"tiltmaze/pkg/game/state"
)

// FrameInterval is the simulation and redraw period
const FrameInterval = time.Second / 30

// Viewport is the virtual board size the simulation runs in. The terminal
// only shows which cell each ball is in, so the size just fixes the
// physical scale.
var Viewport = level.Viewport{Width: 480, Height: 720}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorWall        color.Style
	colorFloor       color.Style
	colorGoal        color.Style
	colorStart       color.Style
	colorBody        color.Style
	colorReset       color.Style
	colorSpike       color.Style
	colorSpikeIdle   color.Style
	colorSubtle      color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorWon         color.Style

	// Records supplies best times for the status line; nil hides them
	Records renderer.BestTimes

	out io.Writer
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.FgDefault}
	t.colorGoal = color.Style{color.FgGreen, color.OpBold}
	t.colorStart = color.Style{color.FgBlue}
	t.colorBody = color.Style{color.FgLightWhite, color.OpBold}
	t.colorReset = color.Style{color.FgCyan, color.OpBold}
	t.colorSpike = color.Style{color.FgRed, color.OpBold}
	t.colorSpikeIdle = color.Style{color.FgRed}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorWon = color.Style{color.FgGreen, color.OpBold}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleGoal:
		return t.colorGoal.Sprint(text)
	case renderer.StyleStart:
		return t.colorStart.Sprint(text)
	case renderer.StyleBody:
		return t.colorBody.Sprint(text)
	case renderer.StyleReset:
		return t.colorReset.Sprint(text)
	case renderer.StyleSpike:
		return t.colorSpike.Sprint(text)
	case renderer.StyleSpikeIdle:
		return t.colorSpikeIdle.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleWon:
		return t.colorWon.Sprint(text)
	default:
		return text
	}
}

// Run reads keys from the terminal and redraws on a fixed tick until the
// player quits or ctx ends
func (t *TUIRenderer) Run(ctx context.Context, g *state.Game) error {
	tty, err := input.OpenTerminal()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer func() {
		fmt.Fprint(t.out, terminal.ShowCursor+terminal.Newline)
		if err := tty.Close(); err != nil {
			log.Warnf("restore terminal: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := tty.Events(ctx)
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	sess := renderer.NewSession(g)
	last := time.Now()
	fmt.Fprint(t.out, terminal.HideCursor)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-keys:
			if !ok {
				return nil
			}
			sess.Handle(input.MapToIntent(input.NewDebouncedInput(ev)), ev.Timestamp)
			if sess.Quit() {
				return nil
			}
		case now := <-ticker.C:
			sess.Advance(now.Sub(last).Seconds(), now)
			last = now
			t.draw(g)
		}
	}
}

func (t *TUIRenderer) draw(g *state.Game) {
	w := bufio.NewWriter(t.out)
	w.WriteString(terminal.Home)
	for _, line := range t.Frame(g, terminal.GetWidth()) {
		w.WriteString(line)
		w.WriteString(terminal.ClearLine + terminal.Newline)
	}
	w.WriteString(terminal.ClearBelow)
	if err := w.Flush(); err != nil {
		log.Debugf("draw: %v", err)
	}
}

// Frame returns the lines of one frame for a terminal width columns wide
func (t *TUIRenderer) Frame(g *state.Game, width int) []string {
	lines := []string{renderer.StatusLine(g, t.Records), ""}

	raster := renderer.GameRaster(g)
	if len(raster) > 0 {
		indent := strings.Repeat(" ", terminal.CenterIndent(width, len(raster[0])))
		for _, row := range raster {
			var sb strings.Builder
			sb.WriteString(indent)
			for _, gl := range row {
				sb.WriteString(t.StyleText(gl.Icon(), gl.Style()))
			}
			lines = append(lines, sb.String())
		}
	}

	lines = append(lines, "", renderer.HelpLine())
	return append(lines, t.messagesPane(g, width)...)
}

// messagesPane renders the message log between two rules
func (t *TUIRenderer) messagesPane(g *state.Game, width int) []string {
	label := " Messages "
	sideLen := max(1, (width-len(label))/2)
	rightLen := max(1, width-sideLen-len(label))

	lines := []string{
		"",
		t.colorSubtle.Sprint(strings.Repeat("─", sideLen) + label + strings.Repeat("─", rightLen)),
	}
	if len(g.Messages) == 0 {
		lines = append(lines, t.colorSubtle.Sprint("  (no messages)"))
	}
	for _, msg := range g.Messages {
		lines = append(lines, "  "+msg)
	}
	return append(lines, t.colorSubtle.Sprint(strings.Repeat("─", max(1, width))))
}
