package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"

	engineinput "tiltmaze/pkg/engine/input"
)

// keyCodes maps Ebiten keys to the raw codes the input bindings know
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyW:          "w",
	ebiten.KeyA:          "a",
	ebiten.KeyS:          "s",
	ebiten.KeyD:          "d",
	ebiten.KeyH:          "h",
	ebiten.KeyJ:          "j",
	ebiten.KeyK:          "k",
	ebiten.KeyL:          "l",
	ebiten.KeySpace:      "space",
	ebiten.KeyEnter:      "enter",
	ebiten.KeyP:          "p",
	ebiten.KeyR:          "r",
	ebiten.KeyN:          "n",
	ebiten.KeyC:          "c",
	ebiten.KeyQ:          "q",
	ebiten.KeyEscape:     "escape",
}

// Update handles input and advances the simulation (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Infof("Main window opened successfully (%dx%d)", w, h)
	}
	if e.ctx != nil && e.ctx.Err() != nil {
		return ebiten.Termination
	}

	now := time.Now()
	e.checkKeys(now)
	e.checkPointer()
	if e.sess.Quit() {
		return ebiten.Termination
	}

	delta := 1.0 / float64(ebiten.TPS())
	if !e.lastUpdate.IsZero() {
		delta = now.Sub(e.lastUpdate).Seconds()
	}
	e.lastUpdate = now
	e.sess.Advance(delta, now)

	e.trackMessages(now)
	e.captureSnapshot()
	return nil
}

// checkKeys sends held tilt keys every frame and other keys once per press
func (e *EbitenRenderer) checkKeys(now time.Time) {
	for key, code := range keyCodes {
		raw := engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code, Timestamp: now}
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
		if intent.Action == engineinput.ActionNone {
			continue
		}

		pressed := inpututil.IsKeyJustPressed(key)
		if intent.IsTilt() {
			pressed = ebiten.IsKeyPressed(key)
		}
		if pressed {
			e.sess.Handle(intent, now)
		}
	}
}

// checkPointer steers with the mouse while the left button is held, or
// with the first touch. Letting go levels the board.
func (e *EbitenRenderer) checkPointer() {
	w, h := float64(e.windowWidth), float64(e.windowHeight)

	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		x, y := ebiten.TouchPosition(touches[0])
		e.sess.Steer(float64(x), float64(y), w, h)
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		e.sess.Steer(float64(x), float64(y), w, h)
		return
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) || len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		e.sess.Tilt.Pointer(w/2, h/2, w, h)
	}
}
