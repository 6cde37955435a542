// Package device provides input state providers backed by real host
// devices. The terminal provider adapts tcell events into keyboard and
// mouse state suitable for per-tick polling.
package device

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keychord/internal/input/key"
)

// DefaultHoldWindow is how long a terminal key press counts as held when
// no window is configured.
const DefaultHoldWindow = 250 * time.Millisecond

// Terminal adapts tcell terminal events into polled keyboard and mouse
// state. Terminals deliver key presses but never key releases, so each
// press is treated as held until the hold window elapses; repeated
// presses (terminal auto-repeat) keep extending the window. Mouse
// buttons do report release, so they track actual up/down state, except
// wheel ticks which expire like key presses.
//
// Feed events with HandleEvent from the event loop, then poll IsKeyDown
// and IsButtonDown from the update tick. Terminal is not safe for
// concurrent use; drive it from a single goroutine.
type Terminal struct {
	holdWindow time.Duration
	now        func() time.Time

	keys  map[key.Key]time.Time         // expiry per pressed key
	wheel map[key.MouseButton]time.Time // expiry per wheel tick
	held  map[key.MouseButton]bool      // true up/down state per button
}

// NewTerminal returns a Terminal provider with the given hold window.
// A non-positive window falls back to DefaultHoldWindow.
func NewTerminal(holdWindow time.Duration) *Terminal {
	if holdWindow <= 0 {
		holdWindow = DefaultHoldWindow
	}
	return &Terminal{
		holdWindow: holdWindow,
		now:        time.Now,
		keys:       make(map[key.Key]time.Time),
		wheel:      make(map[key.MouseButton]time.Time),
		held:       make(map[key.MouseButton]bool),
	}
}

// HandleEvent consumes a tcell event, updating device state. Events
// other than key and mouse events are ignored.
func (t *Terminal) HandleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		t.handleKey(e)
	case *tcell.EventMouse:
		t.handleMouse(e)
	}
}

// IsKeyDown reports whether the key was pressed within the hold window.
func (t *Terminal) IsKeyDown(k key.Key) bool {
	expiry, ok := t.keys[k]
	if !ok {
		return false
	}
	if t.now().After(expiry) {
		delete(t.keys, k)
		return false
	}
	return true
}

// IsButtonDown reports whether the mouse button is held. Wheel buttons
// have no release event and expire after the hold window instead.
func (t *Terminal) IsButtonDown(b key.MouseButton) bool {
	if b == key.MouseWheelUp || b == key.MouseWheelDown {
		expiry, ok := t.wheel[b]
		if !ok {
			return false
		}
		if t.now().After(expiry) {
			delete(t.wheel, b)
			return false
		}
		return true
	}
	return t.held[b]
}

func (t *Terminal) handleKey(e *tcell.EventKey) {
	expiry := t.now().Add(t.holdWindow)

	for _, k := range modifierKeys(e.Modifiers()) {
		t.keys[k] = expiry
	}

	k, ctrl := convertKey(e)
	if ctrl {
		t.keys[key.KeyLeftCtrl] = expiry
	}
	if k != key.KeyNone {
		t.keys[k] = expiry
	}
}

func (t *Terminal) handleMouse(e *tcell.EventMouse) {
	mask := e.Buttons()

	if mask&tcell.WheelUp != 0 {
		t.wheel[key.MouseWheelUp] = t.now().Add(t.holdWindow)
	}
	if mask&tcell.WheelDown != 0 {
		t.wheel[key.MouseWheelDown] = t.now().Add(t.holdWindow)
	}

	t.held[key.MouseLeft] = mask&tcell.Button1 != 0
	t.held[key.MouseRight] = mask&tcell.Button2 != 0
	t.held[key.MouseMiddle] = mask&tcell.Button3 != 0
	t.held[key.MouseBack] = mask&tcell.Button4 != 0
	t.held[key.MouseForward] = mask&tcell.Button5 != 0
}

// modifierKeys maps the tcell modifier mask to pressed modifier keys.
// Terminals do not distinguish left from right modifiers; the left
// variants stand in for both.
func modifierKeys(mod tcell.ModMask) []key.Key {
	var keys []key.Key
	if mod&tcell.ModCtrl != 0 {
		keys = append(keys, key.KeyLeftCtrl)
	}
	if mod&tcell.ModAlt != 0 {
		keys = append(keys, key.KeyLeftAlt)
	}
	if mod&tcell.ModShift != 0 {
		keys = append(keys, key.KeyLeftShift)
	}
	if mod&tcell.ModMeta != 0 {
		keys = append(keys, key.KeyLeftSuper)
	}
	return keys
}

// convertKey maps a tcell key event to a key.Key. The second result is
// true when the event is a control chord (tcell folds Ctrl+letter into
// dedicated key codes) and the ctrl modifier should be considered held.
func convertKey(e *tcell.EventKey) (key.Key, bool) {
	k := e.Key()

	if k == tcell.KeyRune {
		return runeKey(e.Rune()), false
	}

	// tcell reports Ctrl+letter as KeyCtrlA..KeyCtrlZ, which share
	// code points with the C0 control characters.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		switch k {
		case tcell.KeyCtrlI: // Tab
			return key.KeyTab, false
		case tcell.KeyCtrlM: // Enter
			return key.KeyEnter, false
		case tcell.KeyCtrlH: // Backspace
			return key.KeyBackspace, false
		}
		return key.KeyA + key.Key(k-tcell.KeyCtrlA), true
	}

	switch k {
	case tcell.KeyEscape:
		return key.KeyEscape, false
	case tcell.KeyEnter:
		return key.KeyEnter, false
	case tcell.KeyTab:
		return key.KeyTab, false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace, false
	case tcell.KeyDelete:
		return key.KeyDelete, false
	case tcell.KeyInsert:
		return key.KeyInsert, false
	case tcell.KeyHome:
		return key.KeyHome, false
	case tcell.KeyEnd:
		return key.KeyEnd, false
	case tcell.KeyPgUp:
		return key.KeyPageUp, false
	case tcell.KeyPgDn:
		return key.KeyPageDown, false
	case tcell.KeyUp:
		return key.KeyUp, false
	case tcell.KeyDown:
		return key.KeyDown, false
	case tcell.KeyLeft:
		return key.KeyLeft, false
	case tcell.KeyRight:
		return key.KeyRight, false
	case tcell.KeyCtrlSpace:
		return key.KeySpace, true
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return key.KeyF1 + key.Key(k-tcell.KeyF1), false
	}

	return key.KeyNone, false
}

// runeKey maps a printable rune to a key.Key, or KeyNone for runes
// outside the bindable set.
func runeKey(r rune) key.Key {
	switch {
	case r >= 'a' && r <= 'z':
		return key.KeyA + key.Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return key.KeyA + key.Key(r-'A')
	case r >= '0' && r <= '9':
		return key.Key0 + key.Key(r-'0')
	case r == ' ':
		return key.KeySpace
	}
	return key.KeyNone
}
