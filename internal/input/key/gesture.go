package key

import (
	"fmt"
	"strings"
)

// Gesture represents a detected touch gesture.
type Gesture uint8

const (
	// GestureNone indicates no gesture.
	GestureNone Gesture = iota
	// GestureTap is a single tap.
	GestureTap
	// GestureDoubleTap is two taps in quick succession.
	GestureDoubleTap
	// GestureHold is a long press.
	GestureHold
	// GestureDrag is a sustained move while touching.
	GestureDrag
	// GesturePinchIn is a two-finger pinch inward.
	GesturePinchIn
	// GesturePinchOut is a two-finger pinch outward.
	GesturePinchOut
	// GestureSwipeLeft is a quick leftward swipe.
	GestureSwipeLeft
	// GestureSwipeRight is a quick rightward swipe.
	GestureSwipeRight
	// GestureSwipeUp is a quick upward swipe.
	GestureSwipeUp
	// GestureSwipeDown is a quick downward swipe.
	GestureSwipeDown

	gestureMax
)

var gestureNames = [gestureMax]string{
	GestureNone:       "None",
	GestureTap:        "Tap",
	GestureDoubleTap:  "DoubleTap",
	GestureHold:       "Hold",
	GestureDrag:       "Drag",
	GesturePinchIn:    "PinchIn",
	GesturePinchOut:   "PinchOut",
	GestureSwipeLeft:  "SwipeLeft",
	GestureSwipeRight: "SwipeRight",
	GestureSwipeUp:    "SwipeUp",
	GestureSwipeDown:  "SwipeDown",
}

// gestureNameMap maps gesture names (lowercase) to Gesture values.
var gestureNameMap = func() map[string]Gesture {
	m := make(map[string]Gesture, int(gestureMax))
	for g := Gesture(1); g < gestureMax; g++ {
		m[strings.ToLower(gestureNames[g])] = g
	}
	return m
}()

// String returns the canonical name for the gesture.
func (g Gesture) String() string {
	if g < gestureMax {
		return gestureNames[g]
	}
	return fmt.Sprintf("Gesture(%d)", uint8(g))
}

// GestureFromName returns the Gesture for a given name (case-insensitive).
// Returns GestureNone if the name is not recognized.
func GestureFromName(name string) Gesture {
	name = strings.ToLower(strings.TrimSpace(name))
	if g, ok := gestureNameMap[name]; ok {
		return g
	}
	return GestureNone
}

// Gestures returns every bindable gesture, in code order.
func Gestures() []Gesture {
	gestures := make([]Gesture, 0, int(gestureMax)-1)
	for g := Gesture(1); g < gestureMax; g++ {
		gestures = append(gestures, g)
	}
	return gestures
}

// GestureState reports which gestures the provider currently detects.
// It is the raw per-tick snapshot supplied by the host's gesture recognizer.
type GestureState struct {
	Tap        bool
	DoubleTap  bool
	Hold       bool
	Drag       bool
	PinchIn    bool
	PinchOut   bool
	SwipeLeft  bool
	SwipeRight bool
	SwipeUp    bool
	SwipeDown  bool
}

// Active returns true if the given gesture is set in the state.
func (s GestureState) Active(g Gesture) bool {
	switch g {
	case GestureTap:
		return s.Tap
	case GestureDoubleTap:
		return s.DoubleTap
	case GestureHold:
		return s.Hold
	case GestureDrag:
		return s.Drag
	case GesturePinchIn:
		return s.PinchIn
	case GesturePinchOut:
		return s.PinchOut
	case GestureSwipeLeft:
		return s.SwipeLeft
	case GestureSwipeRight:
		return s.SwipeRight
	case GestureSwipeUp:
		return s.SwipeUp
	case GestureSwipeDown:
		return s.SwipeDown
	default:
		return false
	}
}
