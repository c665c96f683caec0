package renderer

import (
	"time"

	"github.com/leonelquinteros/gotext"

	"tiltmaze/pkg/engine/geom"
	"tiltmaze/pkg/engine/input"
	"tiltmaze/pkg/game/gameplay"
	"tiltmaze/pkg/game/state"
)

// Key presses hold their tilt this long; terminals repeat well within it
const (
	KeyHold     = 180 * time.Millisecond
	KeyStrength = 0.6
)

// Session is the front-end side of a running game: it turns intents and
// tilt readings into gameplay operations. Every renderer drives one.
type Session struct {
	Game *state.Game
	Tilt input.Tilt
	Keys *input.KeyTilt

	quit bool
}

// NewSession wraps g
func NewSession(g *state.Game) *Session {
	return &Session{
		Game: g,
		Keys: input.NewKeyTilt(KeyHold, KeyStrength),
	}
}

// Quit reports whether the player asked to leave
func (s *Session) Quit() bool {
	return s.quit
}

// Handle applies one intent at time now
func (s *Session) Handle(in input.Intent, now time.Time) {
	g := s.Game
	switch in.Action {
	case input.ActionTiltUp, input.ActionTiltDown, input.ActionTiltLeft, input.ActionTiltRight:
		s.Keys.Press(in.Action, now)
		s.startIfReady()
	case input.ActionTogglePause:
		if g.Phase == state.PhaseWon {
			gameplay.NextLevel(g)
			s.Keys.Release()
			gameplay.Start(g)
			return
		}
		gameplay.TogglePause(g)
	case input.ActionRestart:
		gameplay.Restart(g)
		s.Keys.Release()
	case input.ActionNextLevel:
		gameplay.NextLevel(g)
		s.Keys.Release()
	case input.ActionCalibrate:
		s.Tilt.Calibrate()
		g.AddMessage(gotext.Get("HUD_CALIBRATED"))
	case input.ActionQuit:
		s.quit = true
	}
}

// Steer tilts the board towards pointer position (x, y) in a w×h area
func (s *Session) Steer(x, y, w, h float64) {
	s.Tilt.Pointer(x, y, w, h)
	s.startIfReady()
}

// startIfReady starts a level nobody has played yet; steering is the cue
func (s *Session) startIfReady() {
	if s.Game.Phase == state.PhasePaused && s.Game.Elapsed == 0 {
		gameplay.Start(s.Game)
	}
}

// TiltVector is the tilt to apply at time now. Held keys take priority
// over the pointer or device reading.
func (s *Session) TiltVector(now time.Time) geom.Vec2 {
	if v := s.Keys.Vector(now); v != (geom.Vec2{}) {
		return v
	}
	return s.Tilt.Vector()
}

// Advance steps the simulation by delta seconds
func (s *Session) Advance(delta float64, now time.Time) gameplay.StepResult {
	res := gameplay.Step(s.Game, delta, s.TiltVector(now), now)
	if res.Advanced {
		s.Keys.Release()
	}
	return res
}
