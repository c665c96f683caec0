// Package terminal wraps the few terminal queries and control sequences
// the text front end needs.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Control sequences
const (
	Home       = "\x1b[H"
	ClearBelow = "\x1b[J"
	ClearLine  = "\x1b[K"
	HideCursor = "\x1b[?25l"
	ShowCursor = "\x1b[?25h"
	// Newline moves to the start of the next line in raw mode too
	Newline = "\r\n"
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// GetHeight returns the current terminal height.
// Falls back to DefaultHeight if the height cannot be determined.
func GetHeight() int {
	_, height := GetSize()
	return height
}

// IsTerminal reports whether stdin is an interactive terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// CenterIndent returns the left padding that centres content of the
// given width in a line of lineWidth, never negative
func CenterIndent(lineWidth, content int) int {
	return max(0, (lineWidth-content)/2)
}
