package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DevicePointer
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Tilt
	ActionTiltUp
	ActionTiltDown
	ActionTiltLeft
	ActionTiltRight

	// Flow
	ActionTogglePause
	ActionRestart
	ActionNextLevel
	ActionCalibrate
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// IsTilt reports whether the intent steers the board
func (i Intent) IsTilt() bool {
	return i.Action >= ActionTiltUp && i.Action <= ActionTiltRight
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "space").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing.
// Terminals report key repeats as fresh presses, which KeyTilt relies on,
// so nothing is suppressed here yet.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Tilt (arrows, WASD, Vim)
	"arrow_up":    ActionTiltUp,
	"w":           ActionTiltUp,
	"k":           ActionTiltUp,
	"arrow_down":  ActionTiltDown,
	"s":           ActionTiltDown,
	"j":           ActionTiltDown,
	"arrow_left":  ActionTiltLeft,
	"a":           ActionTiltLeft,
	"h":           ActionTiltLeft,
	"arrow_right": ActionTiltRight,
	"d":           ActionTiltRight,
	"l":           ActionTiltRight,

	"space": ActionTogglePause,
	"p":     ActionTogglePause,
	"enter": ActionTogglePause,

	"r": ActionRestart,
	"n": ActionNextLevel,
	"c": ActionCalibrate,

	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionTiltUp:
		return "Tilt Up"
	case ActionTiltDown:
		return "Tilt Down"
	case ActionTiltLeft:
		return "Tilt Left"
	case ActionTiltRight:
		return "Tilt Right"
	case ActionTogglePause:
		return "Start / Pause"
	case ActionRestart:
		return "Restart Level"
	case ActionNextLevel:
		return "Next Level"
	case ActionCalibrate:
		return "Calibrate"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so the help line doesn't shuffle between frames.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// reserved codes always keep their binding
func reserved(code string) bool {
	switch code {
	case "arrow_up", "arrow_down", "arrow_left", "arrow_right", "ctrl_c":
		return true
	}
	return false
}

// SetSingleBinding replaces all bindings for the given action with a single code.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved(code) {
		bindings[code] = action
	}
}
