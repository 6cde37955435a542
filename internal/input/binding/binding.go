package binding

import (
	"fmt"

	"github.com/dshills/keychord/internal/input/key"
)

// Binding associates a chord with a named action.
type Binding struct {
	// Chord is the input combination that triggers this binding.
	Chord *key.Chord

	// Action is what the chord triggers.
	Action Action

	// Enabled gates matching. A disabled binding never fires.
	Enabled bool

	// seq records insertion order into a Collection, so that lookup by
	// name can prefer the last-added binding among duplicates.
	seq uint64
}

// New creates an enabled binding for the given chord and action.
func New(chord *key.Chord, action Action) *Binding {
	return &Binding{
		Chord:   chord,
		Action:  action,
		Enabled: true,
	}
}

// Matches reports whether the binding should fire for the pressed set.
// A disabled binding never matches. A single-key binding uses subset
// matching, so it fires even while other unrelated inputs are active
// (a simulated gesture duplicating a mouse click must not suppress the
// mouse binding). A multi-key binding uses exact matching, which keeps a
// two-key combo from firing as a false positive inside a three-key combo
// and keeps "LeftCtrl+S" unambiguous against "LeftCtrl+LeftShift+S".
func (b *Binding) Matches(pressed *key.Set) bool {
	if !b.Enabled || b.Chord == nil {
		return false
	}
	if b.Chord.Len() == 1 {
		return b.Chord.IsSubsetOf(pressed)
	}
	return b.Chord.Matches(pressed)
}

// CouldMatch reports whether every chord input is present in the pressed
// set, ignoring the enabled flag and chord length. It exists for conflict
// and diagnostic enumeration, never for firing.
func (b *Binding) CouldMatch(pressed *key.Set) bool {
	if b.Chord == nil {
		return false
	}
	return b.Chord.IsSubsetOf(pressed)
}

// Compare orders bindings by priority via their chords: longer chords
// first, then rank order. A negative result means b sorts before other.
func (b *Binding) Compare(other *Binding) int {
	return b.Chord.Compare(other.Chord)
}

// Clone returns a deep copy of the binding.
func (b *Binding) Clone() *Binding {
	return &Binding{
		Chord:   b.Chord.Clone(),
		Action:  b.Action,
		Enabled: b.Enabled,
	}
}

// String returns a human-readable representation, e.g. `interact (E)`.
func (b *Binding) String() string {
	return fmt.Sprintf("%s (%s)", b.Action.Name, b.Chord)
}
