package key

import (
	"fmt"
	"strings"
)

// MaxTouchPoints is the number of touch points the engine polls (0..9).
const MaxTouchPoints = 10

// TouchPhase represents the phase of a touch point.
type TouchPhase uint8

const (
	// TouchNone indicates no touch activity.
	TouchNone TouchPhase = iota
	// TouchBegan indicates the touch point made contact this tick.
	TouchBegan
	// TouchHeld indicates the touch point is stationary.
	TouchHeld
	// TouchMoved indicates the touch point moved since last tick.
	TouchMoved
	// TouchEnded indicates the touch point lifted this tick.
	TouchEnded

	touchPhaseMax
)

var touchPhaseNames = [touchPhaseMax]string{
	TouchNone:  "None",
	TouchBegan: "Began",
	TouchHeld:  "Held",
	TouchMoved: "Moved",
	TouchEnded: "Ended",
}

// touchPhaseNameMap maps phase names (lowercase) to TouchPhase values.
var touchPhaseNameMap = func() map[string]TouchPhase {
	m := make(map[string]TouchPhase, int(touchPhaseMax))
	for p := TouchPhase(1); p < touchPhaseMax; p++ {
		m[strings.ToLower(touchPhaseNames[p])] = p
	}
	return m
}()

// String returns the canonical name for the phase, without a point prefix.
// The fully qualified form ("Touch0:Began") is produced by Input.Name.
func (p TouchPhase) String() string {
	if p < touchPhaseMax {
		return touchPhaseNames[p]
	}
	return fmt.Sprintf("TouchPhase(%d)", uint8(p))
}

// TouchPhaseFromName returns the TouchPhase for a given name
// (case-insensitive). Returns TouchNone if the name is not recognized.
func TouchPhaseFromName(name string) TouchPhase {
	name = strings.ToLower(strings.TrimSpace(name))
	if p, ok := touchPhaseNameMap[name]; ok {
		return p
	}
	return TouchNone
}

// TouchPhases returns every bindable touch phase, in code order.
func TouchPhases() []TouchPhase {
	phases := make([]TouchPhase, 0, int(touchPhaseMax)-1)
	for p := TouchPhase(1); p < touchPhaseMax; p++ {
		phases = append(phases, p)
	}
	return phases
}
