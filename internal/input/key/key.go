package key

import (
	"fmt"
	"strings"
)

// Key represents a keyboard key. The enumeration is closed: every key the
// engine can bind has an explicit code, including the left/right modifier
// keys, which are treated as ordinary keys rather than event modifiers.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Letter keys
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Number row
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeySpace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Modifier keys, bindable like any other key
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftShift
	KeyRightShift
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper

	// Keypad keys
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPAdd
	KeyKPSubtract
	KeyKPMultiply
	KeyKPDivide
	KeyKPDecimal
	KeyKPEnter

	// keyMax marks the end of the enumeration.
	keyMax
)

// keyNames holds the canonical name for each key, indexed by code.
var keyNames = [keyMax]string{
	KeyNone:       "None",
	KeyA:          "A",
	KeyB:          "B",
	KeyC:          "C",
	KeyD:          "D",
	KeyE:          "E",
	KeyF:          "F",
	KeyG:          "G",
	KeyH:          "H",
	KeyI:          "I",
	KeyJ:          "J",
	KeyK:          "K",
	KeyL:          "L",
	KeyM:          "M",
	KeyN:          "N",
	KeyO:          "O",
	KeyP:          "P",
	KeyQ:          "Q",
	KeyR:          "R",
	KeyS:          "S",
	KeyT:          "T",
	KeyU:          "U",
	KeyV:          "V",
	KeyW:          "W",
	KeyX:          "X",
	KeyY:          "Y",
	KeyZ:          "Z",
	Key0:          "0",
	Key1:          "1",
	Key2:          "2",
	Key3:          "3",
	Key4:          "4",
	Key5:          "5",
	Key6:          "6",
	Key7:          "7",
	Key8:          "8",
	Key9:          "9",
	KeyEscape:     "Escape",
	KeyEnter:      "Enter",
	KeyTab:        "Tab",
	KeyBackspace:  "Backspace",
	KeyDelete:     "Delete",
	KeyInsert:     "Insert",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
	KeySpace:      "Space",
	KeyUp:         "Up",
	KeyDown:       "Down",
	KeyLeft:       "Left",
	KeyRight:      "Right",
	KeyF1:         "F1",
	KeyF2:         "F2",
	KeyF3:         "F3",
	KeyF4:         "F4",
	KeyF5:         "F5",
	KeyF6:         "F6",
	KeyF7:         "F7",
	KeyF8:         "F8",
	KeyF9:         "F9",
	KeyF10:        "F10",
	KeyF11:        "F11",
	KeyF12:        "F12",
	KeyLeftCtrl:   "LeftCtrl",
	KeyRightCtrl:  "RightCtrl",
	KeyLeftShift:  "LeftShift",
	KeyRightShift: "RightShift",
	KeyLeftAlt:    "LeftAlt",
	KeyRightAlt:   "RightAlt",
	KeyLeftSuper:  "LeftSuper",
	KeyRightSuper: "RightSuper",
	KeyKP0:        "KP0",
	KeyKP1:        "KP1",
	KeyKP2:        "KP2",
	KeyKP3:        "KP3",
	KeyKP4:        "KP4",
	KeyKP5:        "KP5",
	KeyKP6:        "KP6",
	KeyKP7:        "KP7",
	KeyKP8:        "KP8",
	KeyKP9:        "KP9",
	KeyKPAdd:      "KPAdd",
	KeyKPSubtract: "KPSubtract",
	KeyKPMultiply: "KPMultiply",
	KeyKPDivide:   "KPDivide",
	KeyKPDecimal:  "KPDecimal",
	KeyKPEnter:    "KPEnter",
}

// keyNameMap maps key names (lowercase) to Key values.
var keyNameMap = func() map[string]Key {
	m := make(map[string]Key, int(keyMax))
	for k := Key(1); k < keyMax; k++ {
		m[strings.ToLower(keyNames[k])] = k
	}
	// Common aliases.
	m["esc"] = KeyEscape
	m["return"] = KeyEnter
	m["bs"] = KeyBackspace
	m["del"] = KeyDelete
	m["ins"] = KeyInsert
	m["pgup"] = KeyPageUp
	m["pgdn"] = KeyPageDown
	m["lctrl"] = KeyLeftCtrl
	m["rctrl"] = KeyRightCtrl
	m["lshift"] = KeyLeftShift
	m["rshift"] = KeyRightShift
	m["lalt"] = KeyLeftAlt
	m["ralt"] = KeyRightAlt
	return m
}()

// String returns the canonical name for the key.
func (k Key) String() string {
	if k < keyMax {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// IsLetter returns true if this is a letter key (A-Z).
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit returns true if this is a number-row key (0-9).
func (k Key) IsDigit() bool {
	return k >= Key0 && k <= Key9
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// IsModifierKey returns true if this is a left/right modifier key.
func (k Key) IsModifierKey() bool {
	return k >= KeyLeftCtrl && k <= KeyRightSuper
}

// IsKeypadKey returns true if this is a keypad key.
func (k Key) IsKeypadKey() bool {
	return k >= KeyKP0 && k <= KeyKPEnter
}

// KeyFromName returns the Key for a given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	return KeyNone
}

// Keys returns every bindable keyboard key, in code order.
// The slice is freshly allocated on each call.
func Keys() []Key {
	keys := make([]Key, 0, int(keyMax)-1)
	for k := Key(1); k < keyMax; k++ {
		keys = append(keys, k)
	}
	return keys
}
