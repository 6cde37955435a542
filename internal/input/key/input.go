package key

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Device identifies the class of hardware an Input originates from.
type Device uint8

const (
	// DeviceKeyboard identifies keyboard keys.
	DeviceKeyboard Device = iota
	// DeviceMouse identifies mouse buttons.
	DeviceMouse
	// DeviceGamepad identifies gamepad buttons on a numbered slot.
	DeviceGamepad
	// DeviceTouch identifies touch points in a given phase.
	DeviceTouch
	// DeviceGesture identifies recognized gestures.
	DeviceGesture
)

// String returns a string representation of the device class.
func (d Device) String() string {
	switch d {
	case DeviceKeyboard:
		return "keyboard"
	case DeviceMouse:
		return "mouse"
	case DeviceGamepad:
		return "gamepad"
	case DeviceTouch:
		return "touch"
	case DeviceGesture:
		return "gesture"
	default:
		return "unknown"
	}
}

// ErrUnknownInput is returned when a token resolves on no device.
var ErrUnknownInput = errors.New("unknown input name")

// Input identifies one atomic input source: a keyboard key, a mouse button,
// a button on a numbered gamepad, a touch point in a given phase, or a
// gesture. Only the payload fields for the tagged Device are meaningful;
// the rest stay zero.
type Input struct {
	// Device tags which payload fields are valid.
	Device Device

	// Key is the keyboard key for DeviceKeyboard.
	Key Key

	// Mouse is the button for DeviceMouse.
	Mouse MouseButton

	// PadID and Pad identify a gamepad slot and button for DeviceGamepad.
	PadID uint8
	Pad   PadButton

	// TouchID and Phase identify a touch point and phase for DeviceTouch.
	TouchID uint8
	Phase   TouchPhase

	// Gesture is the gesture for DeviceGesture.
	Gesture Gesture
}

// Keyboard returns an Input for a keyboard key.
func Keyboard(k Key) Input {
	return Input{Device: DeviceKeyboard, Key: k}
}

// Mouse returns an Input for a mouse button.
func Mouse(b MouseButton) Input {
	return Input{Device: DeviceMouse, Mouse: b}
}

// Gamepad returns an Input for a button on a numbered gamepad slot.
func Gamepad(id uint8, b PadButton) Input {
	return Input{Device: DeviceGamepad, PadID: id, Pad: b}
}

// Touch returns an Input for a touch point in a given phase.
func Touch(id uint8, phase TouchPhase) Input {
	return Input{Device: DeviceTouch, TouchID: id, Phase: phase}
}

// GestureInput returns an Input for a gesture.
func GestureInput(g Gesture) Input {
	return Input{Device: DeviceGesture, Gesture: g}
}

// Equals returns true if two Inputs identify the same input source.
// Only the payload of the tagged device is compared.
func (in Input) Equals(other Input) bool {
	if in.Device != other.Device {
		return false
	}
	switch in.Device {
	case DeviceKeyboard:
		return in.Key == other.Key
	case DeviceMouse:
		return in.Mouse == other.Mouse
	case DeviceGamepad:
		return in.PadID == other.PadID && in.Pad == other.Pad
	case DeviceTouch:
		return in.TouchID == other.TouchID && in.Phase == other.Phase
	case DeviceGesture:
		return in.Gesture == other.Gesture
	default:
		return false
	}
}

// Rank returns a numeric sort rank used for deterministic tie-break
// ordering: keyboard < mouse < gamepad < touch < gesture, with gamepad and
// touch inputs further ordered by device id then code. Rank is never used
// for equality.
func (in Input) Rank() uint32 {
	base := uint32(in.Device) << 24
	switch in.Device {
	case DeviceKeyboard:
		return base | uint32(in.Key)
	case DeviceMouse:
		return base | uint32(in.Mouse)
	case DeviceGamepad:
		return base | uint32(in.PadID)<<8 | uint32(in.Pad)
	case DeviceTouch:
		return base | uint32(in.TouchID)<<8 | uint32(in.Phase)
	case DeviceGesture:
		return base | uint32(in.Gesture)
	default:
		return base
	}
}

// Name returns the stable canonical name for the input, suitable for
// chord strings and persistence.
func (in Input) Name() string {
	switch in.Device {
	case DeviceKeyboard:
		return in.Key.String()
	case DeviceMouse:
		return in.Mouse.String()
	case DeviceGamepad:
		return fmt.Sprintf("Pad%d:%s", in.PadID, in.Pad)
	case DeviceTouch:
		return fmt.Sprintf("Touch%d:%s", in.TouchID, in.Phase)
	case DeviceGesture:
		return in.Gesture.String()
	default:
		return "None"
	}
}

// String returns the canonical name.
func (in Input) String() string {
	return in.Name()
}

// ParseInput resolves a single token to an Input. The token is tried
// against the keyboard, mouse, gamepad, touch, and gesture name tables in
// that fixed order; the first table that recognizes it wins.
func ParseInput(token string) (Input, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Input{}, fmt.Errorf("%w: empty token", ErrUnknownInput)
	}

	if k := KeyFromName(token); k != KeyNone {
		return Keyboard(k), nil
	}
	if b := MouseButtonFromName(token); b != MouseNone {
		return Mouse(b), nil
	}
	if in, ok := parsePadToken(token); ok {
		return in, nil
	}
	if in, ok := parseTouchToken(token); ok {
		return in, nil
	}
	if g := GestureFromName(token); g != GestureNone {
		return GestureInput(g), nil
	}

	return Input{}, fmt.Errorf("%w: %q", ErrUnknownInput, token)
}

// parsePadToken parses tokens of the form "Pad<id>:<button>".
func parsePadToken(token string) (Input, bool) {
	id, rest, ok := parseIndexedToken(token, "pad")
	if !ok || id >= MaxGamepads {
		return Input{}, false
	}
	b := PadButtonFromName(rest)
	if b == PadNone {
		return Input{}, false
	}
	return Gamepad(uint8(id), b), true
}

// parseTouchToken parses tokens of the form "Touch<id>:<phase>".
func parseTouchToken(token string) (Input, bool) {
	id, rest, ok := parseIndexedToken(token, "touch")
	if !ok || id >= MaxTouchPoints {
		return Input{}, false
	}
	p := TouchPhaseFromName(rest)
	if p == TouchNone {
		return Input{}, false
	}
	return Touch(uint8(id), p), true
}

// parseIndexedToken splits "<prefix><digits>:<rest>" case-insensitively.
func parseIndexedToken(token, prefix string) (int, string, bool) {
	lower := strings.ToLower(token)
	if !strings.HasPrefix(lower, prefix) {
		return 0, "", false
	}
	body := token[len(prefix):]
	sep := strings.IndexByte(body, ':')
	if sep <= 0 {
		return 0, "", false
	}
	id, err := strconv.Atoi(body[:sep])
	if err != nil || id < 0 {
		return 0, "", false
	}
	return id, body[sep+1:], true
}
