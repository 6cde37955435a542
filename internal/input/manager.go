package input

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/keychord/internal/input/binding"
	"github.com/dshills/keychord/internal/input/key"
)

// phase tracks the manager's position inside a tick.
type phase uint8

const (
	phaseIdle phase = iota
	phaseRefreshing
	phaseDiffing
)

// Manager runs the per-tick input pipeline: refresh pressed state from
// the provider, diff against the previous tick per binding, and fire
// events for fresh matches.
type Manager struct {
	provider Provider
	bindings *binding.Collection

	current  *key.Set
	previous *key.Set

	handlers []Handler

	// triggered records actions whose bindings freshly matched on the
	// most recent tick, for WasActionTriggered.
	triggered map[string]bool

	metrics *Metrics
	phase   phase
}

// NewManager creates a manager polling the given provider, with an empty
// binding collection.
func NewManager(provider Provider) *Manager {
	return &Manager{
		provider:  provider,
		bindings:  binding.NewCollection(),
		current:   key.NewSet(),
		previous:  key.NewSet(),
		triggered: make(map[string]bool),
		metrics:   NewMetrics(),
	}
}

// Bindings returns the manager's binding collection.
func (m *Manager) Bindings() *binding.Collection {
	return m.bindings
}

// SetBindings replaces the manager's binding collection. Typically used
// with a freshly deserialized or reloaded collection.
func (m *Manager) SetBindings(c *binding.Collection) {
	if c == nil {
		c = binding.NewCollection()
	}
	m.bindings = c
}

// AddBinding inserts a binding into the collection.
func (m *Manager) AddBinding(b *binding.Binding) {
	m.bindings.Add(b)
}

// RemoveBinding removes every binding with the given action name.
func (m *Manager) RemoveBinding(name string) bool {
	return m.bindings.Remove(name)
}

// SetBindingEnabled flips the enabled flag on bindings with the name.
func (m *Manager) SetBindingEnabled(name string, enabled bool) bool {
	return m.bindings.SetEnabled(name, enabled)
}

// Subscribe registers a handler for fired events. Handlers run in
// registration order. Mutating the binding collection from inside a
// handler is unsupported; the resulting dispatch order is undefined.
func (m *Manager) Subscribe(h Handler) {
	m.handlers = append(m.handlers, h)
}

// Metrics returns the manager's tick metrics.
func (m *Manager) Metrics() *Metrics {
	return m.metrics
}

// Pressed returns the pressed set from the most recent tick.
func (m *Manager) Pressed() *key.Set {
	return m.current
}

// Update runs one tick: snapshot the previous pressed set, repoll every
// wired device class, then fire an event for every binding that matches
// now but did not match on the previous tick. All matching bindings fire,
// not just the best one.
func (m *Manager) Update() {
	if m.phase != phaseIdle {
		panic("input: Update called reentrantly from a handler")
	}
	start := time.Now()

	m.phase = phaseRefreshing
	m.previous.CopyFrom(m.current)
	m.current.Clear()
	m.pollKeyboard()
	m.pollMouse()
	m.pollGamepads()
	m.pollTouch()
	m.pollGestures()

	m.phase = phaseDiffing
	clear(m.triggered)
	now := time.Now()
	for _, b := range m.bindings.Bindings() {
		matchesNow := b.Matches(m.current)
		matchedBefore := b.Matches(m.previous)
		if !matchesNow || matchedBefore {
			continue
		}

		m.triggered[b.Action.Name] = true
		ev := Event{
			ID:     uuid.New(),
			Action: b.Action,
			Chord:  b.Chord.Clone(),
			Time:   now,
		}
		for _, h := range m.handlers {
			h(ev)
		}
		m.metrics.RecordEvent()
	}

	m.phase = phaseIdle
	m.metrics.RecordTick(time.Since(start))
}

// IsActionActive returns true if any enabled binding with the action name
// currently matches the pressed set.
func (m *Manager) IsActionActive(name string) bool {
	for _, b := range m.bindings.Bindings() {
		if b.Action.Name == name && b.Matches(m.current) {
			return true
		}
	}
	return false
}

// WasActionTriggered returns true if a binding with the action name was a
// fresh match on the most recent tick.
func (m *Manager) WasActionTriggered(name string) bool {
	return m.triggered[name]
}

// FindBestMatch resolves the single best-matching binding for the current
// pressed set, or nil.
func (m *Manager) FindBestMatch() *binding.Binding {
	return m.bindings.FindBestMatch(m.current)
}

func (m *Manager) pollKeyboard() {
	kb := m.provider.Keyboard
	if kb == nil {
		return
	}
	for _, k := range key.Keys() {
		if kb.IsKeyDown(k) {
			m.current.Add(key.Keyboard(k))
		}
	}
}

func (m *Manager) pollMouse() {
	ms := m.provider.Mouse
	if ms == nil {
		return
	}
	for _, b := range key.MouseButtons() {
		if ms.IsButtonDown(b) {
			m.current.Add(key.Mouse(b))
		}
	}
}

func (m *Manager) pollGamepads() {
	gp := m.provider.Gamepad
	if gp == nil {
		return
	}
	for slot := uint8(0); slot < key.MaxGamepads; slot++ {
		if !gp.IsConnected(slot) {
			continue
		}
		for _, b := range key.PadButtons() {
			if gp.IsButtonDown(slot, b) {
				m.current.Add(key.Gamepad(slot, b))
			}
		}
	}
}

func (m *Manager) pollTouch() {
	ts := m.provider.Touch
	if ts == nil || ts.TouchCount() == 0 {
		return
	}
	for point := uint8(0); point < key.MaxTouchPoints; point++ {
		if p := ts.PhaseAt(point); p != key.TouchNone {
			m.current.Add(key.Touch(point, p))
		}
	}
}

func (m *Manager) pollGestures() {
	gs := m.provider.Gesture
	if gs == nil {
		return
	}
	state := gs.Gestures()
	for _, g := range key.Gestures() {
		if state.Active(g) {
			m.current.Add(key.GestureInput(g))
		}
	}
}
