package binding

import (
	"fmt"

	"github.com/dshills/keychord/internal/input/key"
)

// Builder assembles a single binding fluently, without hand-building a
// chord. Each WithX method returns the builder for chaining; errors from
// chord specifications are deferred until Build.
//
//	b, err := binding.NewBuilder().
//		WithKeyboard(key.KeyLeftCtrl).
//		WithKeyboard(key.KeyS).
//		WithAction("save", "Save the current file").
//		Build()
type Builder struct {
	chord   *key.Chord
	action  Action
	hasAct  bool
	enabled bool
	err     error
}

// NewBuilder creates a builder for an enabled binding with an empty chord.
func NewBuilder() *Builder {
	return &Builder{
		chord:   key.NewChord(),
		enabled: true,
	}
}

// WithKeyboard appends a keyboard key to the chord.
func (b *Builder) WithKeyboard(k key.Key) *Builder {
	b.chord.Add(key.Keyboard(k))
	return b
}

// WithMouse appends a mouse button to the chord.
func (b *Builder) WithMouse(btn key.MouseButton) *Builder {
	b.chord.Add(key.Mouse(btn))
	return b
}

// WithGamepad appends a gamepad button on the given slot to the chord.
func (b *Builder) WithGamepad(slot uint8, btn key.PadButton) *Builder {
	b.chord.Add(key.Gamepad(slot, btn))
	return b
}

// WithTouch appends a touch point phase to the chord.
func (b *Builder) WithTouch(point uint8, phase key.TouchPhase) *Builder {
	b.chord.Add(key.Touch(point, phase))
	return b
}

// WithGesture appends a gesture to the chord.
func (b *Builder) WithGesture(g key.Gesture) *Builder {
	b.chord.Add(key.GestureInput(g))
	return b
}

// WithChord replaces the chord with one parsed from a canonical chord
// string. A parse failure is reported by Build.
func (b *Builder) WithChord(spec string) *Builder {
	chord, err := key.ParseChord(spec)
	if err != nil {
		b.err = err
		return b
	}
	b.chord = chord
	return b
}

// WithAction sets the action the chord triggers.
func (b *Builder) WithAction(name, description string) *Builder {
	b.action = NewAction(name, description)
	b.hasAct = true
	return b
}

// Enabled sets the initial enabled flag. Bindings default to enabled.
func (b *Builder) Enabled(enabled bool) *Builder {
	b.enabled = enabled
	return b
}

// Build materializes the binding. It fails with ErrMissingChord when no
// input was added, ErrMissingAction when no action was set, or the
// deferred chord parse error if WithChord was given a bad specification.
func (b *Builder) Build() (*Binding, error) {
	if b.err != nil {
		return nil, fmt.Errorf("building binding: %w", b.err)
	}
	if b.chord.IsEmpty() {
		return nil, ErrMissingChord
	}
	if !b.hasAct || b.action.Name == "" {
		return nil, ErrMissingAction
	}

	return &Binding{
		Chord:   b.chord.Clone(),
		Action:  b.action,
		Enabled: b.enabled,
	}, nil
}
