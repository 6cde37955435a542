package key

import (
	"fmt"
	"strings"
)

// MaxGamepads is the number of gamepad slots the engine polls (0..3).
const MaxGamepads = 4

// PadButton represents a gamepad button.
type PadButton uint8

const (
	// PadNone indicates no button.
	PadNone PadButton = iota
	// PadSouth is the bottom face button (A on Xbox, Cross on PlayStation).
	PadSouth
	// PadEast is the right face button (B on Xbox, Circle on PlayStation).
	PadEast
	// PadWest is the left face button (X on Xbox, Square on PlayStation).
	PadWest
	// PadNorth is the top face button (Y on Xbox, Triangle on PlayStation).
	PadNorth
	// PadL1 is the left shoulder button.
	PadL1
	// PadR1 is the right shoulder button.
	PadR1
	// PadL2 is the left trigger.
	PadL2
	// PadR2 is the right trigger.
	PadR2
	// PadL3 is the left stick click.
	PadL3
	// PadR3 is the right stick click.
	PadR3
	// PadSelect is the select/back button.
	PadSelect
	// PadStart is the start/menu button.
	PadStart
	// PadUp is the d-pad up direction.
	PadUp
	// PadDown is the d-pad down direction.
	PadDown
	// PadLeft is the d-pad left direction.
	PadLeft
	// PadRight is the d-pad right direction.
	PadRight

	padButtonMax
)

var padButtonNames = [padButtonMax]string{
	PadNone:   "None",
	PadSouth:  "South",
	PadEast:   "East",
	PadWest:   "West",
	PadNorth:  "North",
	PadL1:     "L1",
	PadR1:     "R1",
	PadL2:     "L2",
	PadR2:     "R2",
	PadL3:     "L3",
	PadR3:     "R3",
	PadSelect: "Select",
	PadStart:  "Start",
	PadUp:     "Up",
	PadDown:   "Down",
	PadLeft:   "Left",
	PadRight:  "Right",
}

// padButtonNameMap maps button names (lowercase) to PadButton values.
var padButtonNameMap = func() map[string]PadButton {
	m := make(map[string]PadButton, int(padButtonMax))
	for b := PadButton(1); b < padButtonMax; b++ {
		m[strings.ToLower(padButtonNames[b])] = b
	}
	return m
}()

// String returns the canonical name for the button, without a slot prefix.
// The fully qualified form ("Pad0:South") is produced by Input.Name.
func (b PadButton) String() string {
	if b < padButtonMax {
		return padButtonNames[b]
	}
	return fmt.Sprintf("PadButton(%d)", uint8(b))
}

// PadButtonFromName returns the PadButton for a given name
// (case-insensitive). Returns PadNone if the name is not recognized.
func PadButtonFromName(name string) PadButton {
	name = strings.ToLower(strings.TrimSpace(name))
	if b, ok := padButtonNameMap[name]; ok {
		return b
	}
	return PadNone
}

// PadButtons returns every bindable gamepad button, in code order.
func PadButtons() []PadButton {
	buttons := make([]PadButton, 0, int(padButtonMax)-1)
	for b := PadButton(1); b < padButtonMax; b++ {
		buttons = append(buttons, b)
	}
	return buttons
}
