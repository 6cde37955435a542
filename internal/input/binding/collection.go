package binding

import (
	"fmt"
	"sort"

	"github.com/dshills/keychord/internal/input/key"
)

// Collection holds bindings in descending priority order: longer chords
// first, rank order breaking ties. The invariant is re-established after
// every insert with a stable sort, so bindings with exactly equal chords
// keep their insertion order across repeated operations.
//
// Collection is not safe for concurrent use. The caller is expected to
// serialize configuration changes against per-tick matching.
type Collection struct {
	bindings []*Binding
	nextSeq  uint64
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{
		bindings: make([]*Binding, 0),
	}
}

// Add inserts a binding and restores the priority order. Duplicate action
// names are not rejected; Get resolves to the last-added one.
func (c *Collection) Add(b *Binding) {
	b.seq = c.nextSeq
	c.nextSeq++
	c.bindings = append(c.bindings, b)
	sort.SliceStable(c.bindings, func(i, j int) bool {
		return c.bindings[i].Compare(c.bindings[j]) < 0
	})
}

// FindBestMatch scans in priority order and returns the first binding that
// matches the pressed set, or nil. Because the collection is sorted
// longest-first, the most specific binding wins.
func (c *Collection) FindBestMatch(pressed *key.Set) *Binding {
	for _, b := range c.bindings {
		if b.Matches(pressed) {
			return b
		}
	}
	return nil
}

// Get returns the binding for an action name, or nil. When several
// bindings carry the same name, the last-added one is returned.
func (c *Collection) Get(name string) *Binding {
	var found *Binding
	for _, b := range c.bindings {
		if b.Action.Name != name {
			continue
		}
		if found == nil || b.seq > found.seq {
			found = b
		}
	}
	return found
}

// Remove deletes every binding with the given action name. It returns
// true if at least one binding was removed.
func (c *Collection) Remove(name string) bool {
	filtered := c.bindings[:0]
	removed := false
	for _, b := range c.bindings {
		if b.Action.Name == name {
			removed = true
			continue
		}
		filtered = append(filtered, b)
	}
	c.bindings = filtered
	return removed
}

// SetEnabled flips the enabled flag on every binding with the given
// action name. It returns true if any binding was found.
func (c *Collection) SetEnabled(name string, enabled bool) bool {
	found := false
	for _, b := range c.bindings {
		if b.Action.Name == name {
			b.Enabled = enabled
			found = true
		}
	}
	return found
}

// Len returns the number of bindings.
func (c *Collection) Len() int {
	return len(c.bindings)
}

// Bindings returns the bindings in priority order. The slice is a copy;
// the bindings themselves are shared.
func (c *Collection) Bindings() []*Binding {
	out := make([]*Binding, len(c.bindings))
	copy(out, c.bindings)
	return out
}

// ReplaceAll swaps in the contents of another collection. Used for atomic
// replacement after a successful deserialize or reload.
func (c *Collection) ReplaceAll(other *Collection) {
	c.bindings = append(c.bindings[:0], other.bindings...)
	c.nextSeq = other.nextSeq
}

// Conflict describes two bindings whose chords are the same key set.
type Conflict struct {
	// ActionA and ActionB name the conflicting bindings.
	ActionA string
	ActionB string

	// Chord is the shared chord in canonical string form.
	Chord string
}

// String returns a human-readable diagnostic message.
func (c Conflict) String() string {
	return fmt.Sprintf("bindings %q and %q are both bound to chord %q",
		c.ActionA, c.ActionB, c.Chord)
}

// ValidateConflicts reports every pair of bindings whose chords contain
// identical key sets, regardless of key order. A longer chord shadowing a
// shorter one is not a conflict and is not reported. The scan is O(n²);
// collections are configuration-sized.
func (c *Collection) ValidateConflicts() []Conflict {
	var conflicts []Conflict
	for i := 0; i < len(c.bindings); i++ {
		for j := i + 1; j < len(c.bindings); j++ {
			a, b := c.bindings[i], c.bindings[j]
			if a.Chord.KeySetEquals(b.Chord) {
				conflicts = append(conflicts, Conflict{
					ActionA: a.Action.Name,
					ActionB: b.Action.Name,
					Chord:   a.Chord.String(),
				})
			}
		}
	}
	return conflicts
}
