package input

import (
	"github.com/dshills/keychord/internal/input/key"
)

// KeyboardState reports per-key pressed state for the keyboard.
type KeyboardState interface {
	// IsKeyDown returns true while the given key is held.
	IsKeyDown(k key.Key) bool
}

// MouseState reports per-button pressed state for the mouse.
type MouseState interface {
	// IsButtonDown returns true while the given button is held.
	IsButtonDown(b key.MouseButton) bool
}

// GamepadState reports availability and button state for numbered
// gamepad slots (0..key.MaxGamepads-1).
type GamepadState interface {
	// IsConnected returns true if a gamepad occupies the slot.
	IsConnected(slot uint8) bool

	// IsButtonDown returns true while the button on the slot is held.
	IsButtonDown(slot uint8, b key.PadButton) bool
}

// TouchState reports active touch points (0..key.MaxTouchPoints-1).
type TouchState interface {
	// TouchCount returns the number of currently active touch points.
	TouchCount() int

	// PhaseAt returns the phase of the touch point at the given index,
	// or key.TouchNone when the point is inactive.
	PhaseAt(point uint8) key.TouchPhase
}

// GestureSource reports the currently detected gestures.
type GestureSource interface {
	// Gestures returns the per-tick gesture snapshot.
	Gestures() key.GestureState
}

// Provider bundles the host's device-state capabilities. A nil field
// means that device class is not wired up; it is not an error and simply
// contributes no inputs. Queries are assumed infallible once attached.
type Provider struct {
	Keyboard KeyboardState
	Mouse    MouseState
	Gamepad  GamepadState
	Touch    TouchState
	Gesture  GestureSource
}
