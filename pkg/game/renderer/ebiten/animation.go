package ebiten

import (
	"image/color"
	"math"
	"time"
)

// pulse returns a brightness in [lo, hi] that follows a sine wave with the
// given period
func pulse(now time.Time, period time.Duration, lo, hi float64) float64 {
	phase := float64(now.UnixNano()%int64(period)) / float64(period)
	v := (math.Sin(phase*2*math.Pi) + 1.0) / 2.0
	return lo + (hi-lo)*v
}

// scaleColor multiplies the RGB channels by brightness
func scaleColor(c color.RGBA, brightness float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * brightness),
		G: uint8(float64(c.G) * brightness),
		B: uint8(float64(c.B) * brightness),
		A: c.A,
	}
}

// getPulsingGoalColor returns the goal pad colour, pulsing between 50% and
// 100% brightness
func (e *EbitenRenderer) getPulsingGoalColor() color.Color {
	return scaleColor(colorExitUnlocked, pulse(time.Now(), 2*time.Second, 0.5, 1.0))
}

// getSpikeColor returns the colour of an armed or idle spike
func getSpikeColor(active bool) color.Color {
	if active {
		return colorHazard
	}
	return colorHazardIdle
}

// applyAlpha applies an alpha value to a color
func applyAlpha(c color.Color, alpha float64) color.Color {
	alpha = max(0, min(1, alpha))

	r, g, b, a := c.RGBA()
	// Fade both RGB and alpha so colours fade to transparent black
	return color.RGBA{
		R: uint8(float64(r>>8) * alpha),
		G: uint8(float64(g>>8) * alpha),
		B: uint8(float64(b>>8) * alpha),
		A: uint8(float64(a>>8) * alpha),
	}
}
