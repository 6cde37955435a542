package key

import "strings"

// Set is a de-duplicated collection of currently active Inputs.
// Insertion order is preserved; adding an input already present is a no-op.
// Set is not safe for concurrent use.
type Set struct {
	inputs []Input
}

// NewSet creates an empty input set.
func NewSet(inputs ...Input) *Set {
	s := &Set{inputs: make([]Input, 0, 8)}
	for _, in := range inputs {
		s.Add(in)
	}
	return s
}

// Add inserts an input into the set. Duplicates are silently ignored.
func (s *Set) Add(in Input) {
	if s.Contains(in) {
		return
	}
	s.inputs = append(s.inputs, in)
}

// Contains returns true if the input is present in the set.
func (s *Set) Contains(in Input) bool {
	for _, si := range s.inputs {
		if si.Equals(in) {
			return true
		}
	}
	return false
}

// Len returns the number of inputs in the set.
func (s *Set) Len() int {
	return len(s.inputs)
}

// IsEmpty returns true if the set has no inputs.
func (s *Set) IsEmpty() bool {
	return len(s.inputs) == 0
}

// Clear removes all inputs, keeping the backing storage.
func (s *Set) Clear() {
	s.inputs = s.inputs[:0]
}

// Inputs returns a copy of the set's inputs in insertion order.
func (s *Set) Inputs() []Input {
	out := make([]Input, len(s.inputs))
	copy(out, s.inputs)
	return out
}

// Clone returns a copy of the set.
func (s *Set) Clone() *Set {
	clone := &Set{inputs: make([]Input, len(s.inputs))}
	copy(clone.inputs, s.inputs)
	return clone
}

// CopyFrom replaces the set's contents with those of another set.
func (s *Set) CopyFrom(other *Set) {
	s.inputs = append(s.inputs[:0], other.inputs...)
}

// String returns the active inputs joined by "+", in insertion order.
func (s *Set) String() string {
	parts := make([]string, len(s.inputs))
	for i, in := range s.inputs {
		parts[i] = in.Name()
	}
	return strings.Join(parts, ChordSeparator)
}
