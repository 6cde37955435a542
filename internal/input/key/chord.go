package key

import (
	"errors"
	"fmt"
	"strings"
)

// Chord parse errors.
var (
	ErrEmptyChord   = errors.New("empty chord specification")
	ErrInvalidChord = errors.New("invalid chord specification")
)

// ChordSeparator joins input names in the canonical chord string form.
const ChordSeparator = "+"

// Chord is an ordered sequence of Inputs that must be active together to
// trigger a binding. A chord is non-empty once constructed for binding
// purposes; the zero chord exists only as a builder-time transient.
//
// Duplicate inputs within a chord are not rejected. Matching and
// comparison on such a chord are mechanically well-defined but
// semantically meaningless.
type Chord struct {
	// Inputs contains the chord's inputs in order.
	Inputs []Input
}

// NewChord creates a chord from the given inputs.
func NewChord(inputs ...Input) *Chord {
	return &Chord{Inputs: inputs}
}

// Len returns the number of inputs in the chord.
func (c *Chord) Len() int {
	return len(c.Inputs)
}

// IsEmpty returns true if the chord has no inputs.
func (c *Chord) IsEmpty() bool {
	return len(c.Inputs) == 0
}

// Add appends an input to the chord.
func (c *Chord) Add(in Input) {
	c.Inputs = append(c.Inputs, in)
}

// At returns the input at the given index, or a zero Input if out of bounds.
func (c *Chord) At(index int) Input {
	if index < 0 || index >= len(c.Inputs) {
		return Input{}
	}
	return c.Inputs[index]
}

// Contains returns true if the chord contains the given input.
func (c *Chord) Contains(in Input) bool {
	for _, ci := range c.Inputs {
		if ci.Equals(in) {
			return true
		}
	}
	return false
}

// Matches returns true iff the pressed set is exactly the chord's key set:
// same size, and every chord input present.
func (c *Chord) Matches(pressed *Set) bool {
	if pressed == nil || pressed.Len() != len(c.Inputs) {
		return false
	}
	return c.IsSubsetOf(pressed)
}

// IsSubsetOf returns true iff every chord input is present in the pressed
// set, regardless of how many other inputs are also active.
func (c *Chord) IsSubsetOf(pressed *Set) bool {
	if len(c.Inputs) == 0 {
		return false
	}
	if pressed == nil {
		return false
	}
	for _, in := range c.Inputs {
		if !pressed.Contains(in) {
			return false
		}
	}
	return true
}

// Compare orders chords by binding priority: a longer chord sorts first
// (returns a negative value); equal-length chords fall back to a
// position-by-position comparison of input sort ranks, first difference
// deciding. Chords whose ranks are equal at every position compare equal.
func (c *Chord) Compare(other *Chord) int {
	if len(c.Inputs) != len(other.Inputs) {
		if len(c.Inputs) > len(other.Inputs) {
			return -1
		}
		return 1
	}
	for i := range c.Inputs {
		a, b := c.Inputs[i].Rank(), other.Inputs[i].Rank()
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

// KeySetEquals returns true if both chords contain the same inputs,
// regardless of order. Used for conflict detection.
func (c *Chord) KeySetEquals(other *Chord) bool {
	if other == nil || len(c.Inputs) != len(other.Inputs) {
		return false
	}
	for _, in := range c.Inputs {
		if !other.Contains(in) {
			return false
		}
	}
	for _, in := range other.Inputs {
		if !c.Contains(in) {
			return false
		}
	}
	return true
}

// Clone returns a copy of the chord.
func (c *Chord) Clone() *Chord {
	if c == nil {
		return nil
	}
	inputs := make([]Input, len(c.Inputs))
	copy(inputs, c.Inputs)
	return &Chord{Inputs: inputs}
}

// String returns the canonical chord string: input names joined by "+".
// Examples: "A", "LeftCtrl+S", "Pad0:South+Pad0:Start"
func (c *Chord) String() string {
	if len(c.Inputs) == 0 {
		return ""
	}
	parts := make([]string, len(c.Inputs))
	for i, in := range c.Inputs {
		parts[i] = in.Name()
	}
	return strings.Join(parts, ChordSeparator)
}

// ParseChord parses a canonical chord string. Tokens are split on "+" and
// resolved through ParseInput; a single unresolvable token fails the whole
// parse and no partial chord is returned.
func ParseChord(s string) (*Chord, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyChord
	}

	tokens := strings.Split(s, ChordSeparator)
	chord := &Chord{Inputs: make([]Input, 0, len(tokens))}
	for _, token := range tokens {
		in, err := ParseInput(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidChord, s, err)
		}
		chord.Add(in)
	}
	return chord, nil
}

// MustParseChord parses a chord string and panics on error.
// Use only for known-valid chords in initialization code.
func MustParseChord(s string) *Chord {
	chord, err := ParseChord(s)
	if err != nil {
		panic("invalid chord: " + s + ": " + err.Error())
	}
	return chord
}
