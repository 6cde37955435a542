package binding

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/keychord/internal/input/key"
)

// SchemaVersion is the only persisted schema version this codec accepts.
const SchemaVersion = 1

// document is the JSON structure for persisted binding collections.
type document struct {
	Version  int      `json:"version"`
	Bindings []record `json:"bindings"`
}

type record struct {
	ActionName        string `json:"action_name"`
	ActionDescription string `json:"action_description"`
	Chord             string `json:"chord"`
	Enabled           *bool  `json:"enabled"`
}

// Serialize encodes a collection as a versioned JSON document. Bindings
// are written in collection (priority) order, chords in their canonical
// string form.
func Serialize(c *Collection) ([]byte, error) {
	doc := document{
		Version:  SchemaVersion,
		Bindings: make([]record, 0, c.Len()),
	}
	for _, b := range c.bindings {
		enabled := b.Enabled
		doc.Bindings = append(doc.Bindings, record{
			ActionName:        b.Action.Name,
			ActionDescription: b.Action.Description,
			Chord:             b.Chord.String(),
			Enabled:           &enabled,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// SerializeTo writes the serialized collection to w.
func SerializeTo(w io.Writer, c *Collection) error {
	data, err := Serialize(c)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Deserialize decodes a versioned JSON document into a fresh collection.
// The collection is returned only on full success; a failure partway
// through leaves no partially-populated result in the caller's hands.
//
// Error taxonomy: ErrInvalidFormat for payloads that are not a bindings
// document, ErrUnsupportedVersion for any version other than 1,
// ErrMissingField for records without an action name or chord, and
// key.ErrInvalidChord for chord strings that resolve to no input.
func Deserialize(data []byte) (*Collection, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if doc.Version != SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d",
			ErrUnsupportedVersion, doc.Version, SchemaVersion)
	}

	c := NewCollection()
	for i, rec := range doc.Bindings {
		if rec.ActionName == "" {
			return nil, fmt.Errorf("%w: record %d has no action_name", ErrMissingField, i)
		}
		if rec.Chord == "" {
			return nil, fmt.Errorf("%w: record %d (%s) has no chord", ErrMissingField, i, rec.ActionName)
		}

		chord, err := key.ParseChord(rec.Chord)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, rec.ActionName, err)
		}

		b := New(chord, NewAction(rec.ActionName, rec.ActionDescription))
		if rec.Enabled != nil {
			b.Enabled = *rec.Enabled
		}
		c.Add(b)
	}
	return c, nil
}

// DeserializeFrom reads a whole document from r and decodes it.
// Read failures propagate unchanged, distinct from format errors.
func DeserializeFrom(r io.Reader) (*Collection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Deserialize(data)
}
