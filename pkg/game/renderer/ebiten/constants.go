// Package ebiten provides an Ebiten-based 2D graphical renderer for the tilt maze.
package ebiten

import (
	"image/color"
	"time"
)

// Color palette
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for the board
	colorWall            = color.RGBA{180, 180, 200, 255} // Light gray-blue
	colorBody            = color.RGBA{240, 240, 255, 255} // Near white
	colorBodyRim         = color.RGBA{120, 130, 180, 255}
	colorStart           = color.RGBA{100, 150, 255, 255} // Bright blue
	colorReset           = color.RGBA{80, 220, 230, 255}  // Cyan
	colorHazard          = color.RGBA{255, 80, 80, 255}   // Bright red
	colorHazardIdle      = color.RGBA{110, 50, 60, 255}   // Dim red
	colorExitUnlocked    = color.RGBA{100, 255, 100, 255} // Bright green
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorPanelBorder     = color.RGBA{80, 80, 100, 255}
)

// Window and HUD layout
const (
	defaultWindowWidth  = 480
	defaultWindowHeight = 800
	baseFontSize        = 14.0
	hudPadding          = 8
)

// Messages stay fully visible for 70% of their lifetime, then fade out
const messageLifetime = 6 * time.Second
