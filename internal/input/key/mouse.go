package key

import (
	"fmt"
	"strings"
)

// MouseButton represents a mouse button.
type MouseButton uint8

const (
	// MouseNone indicates no button.
	MouseNone MouseButton = iota
	// MouseLeft is the primary (left) mouse button.
	MouseLeft
	// MouseMiddle is the middle mouse button (scroll wheel click).
	MouseMiddle
	// MouseRight is the secondary (right) mouse button.
	MouseRight
	// MouseBack is the back navigation button (mouse button 4).
	MouseBack
	// MouseForward is the forward navigation button (mouse button 5).
	MouseForward
	// MouseWheelUp indicates scroll wheel up.
	MouseWheelUp
	// MouseWheelDown indicates scroll wheel down.
	MouseWheelDown

	mouseButtonMax
)

var mouseButtonNames = [mouseButtonMax]string{
	MouseNone:      "MouseNone",
	MouseLeft:      "MouseLeft",
	MouseMiddle:    "MouseMiddle",
	MouseRight:     "MouseRight",
	MouseBack:      "MouseBack",
	MouseForward:   "MouseForward",
	MouseWheelUp:   "MouseWheelUp",
	MouseWheelDown: "MouseWheelDown",
}

// mouseButtonNameMap maps button names (lowercase) to MouseButton values.
var mouseButtonNameMap = func() map[string]MouseButton {
	m := make(map[string]MouseButton, int(mouseButtonMax))
	for b := MouseButton(1); b < mouseButtonMax; b++ {
		m[strings.ToLower(mouseButtonNames[b])] = b
	}
	return m
}()

// String returns the canonical name for the button.
func (b MouseButton) String() string {
	if b < mouseButtonMax {
		return mouseButtonNames[b]
	}
	return fmt.Sprintf("MouseButton(%d)", uint8(b))
}

// IsWheel returns true if this is a scroll wheel button.
func (b MouseButton) IsWheel() bool {
	return b == MouseWheelUp || b == MouseWheelDown
}

// MouseButtonFromName returns the MouseButton for a given name
// (case-insensitive). Returns MouseNone if the name is not recognized.
func MouseButtonFromName(name string) MouseButton {
	name = strings.ToLower(strings.TrimSpace(name))
	if b, ok := mouseButtonNameMap[name]; ok {
		return b
	}
	return MouseNone
}

// MouseButtons returns every bindable mouse button, in code order.
func MouseButtons() []MouseButton {
	buttons := make([]MouseButton, 0, int(mouseButtonMax)-1)
	for b := MouseButton(1); b < mouseButtonMax; b++ {
		buttons = append(buttons, b)
	}
	return buttons
}
