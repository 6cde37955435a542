package input

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/keychord/internal/input/binding"
	"github.com/dshills/keychord/internal/input/key"
)

// Event is fired when a binding transitions from non-matching to matching
// between two consecutive ticks.
type Event struct {
	// ID uniquely identifies this firing.
	ID uuid.UUID

	// Action is the triggered action.
	Action binding.Action

	// Chord is a copy of the chord that matched.
	Chord *key.Chord

	// Time is when the edge was detected.
	Time time.Time
}

// String returns a human-readable representation.
func (e Event) String() string {
	return fmt.Sprintf("%s (%s) at %s", e.Action.Name, e.Chord, e.Time.Format(time.RFC3339Nano))
}

// Handler receives fired events. Handlers run synchronously during
// Update, in registration order; a panicking handler propagates to the
// caller of Update.
type Handler func(Event)
