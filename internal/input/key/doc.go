// Package key provides the atomic input types for the binding engine.
//
// This package defines the fundamental types for representing device input:
//
//   - Key: Identifies a keyboard key (closed enumeration)
//   - MouseButton, PadButton, TouchPhase, Gesture: the other device codes
//   - Input: A tagged variant naming one atomic input source on any device
//   - Chord: An ordered sequence of Inputs that must be active together
//   - Set: A de-duplicated collection of currently active Inputs
//
// # Chord Specifications
//
// Chords are written as key names joined by "+":
//
//   - Single inputs: "A", "Space", "MouseLeft", "Tap"
//   - Combinations: "LeftCtrl+S", "LeftCtrl+LeftShift+P"
//   - Device-indexed inputs: "Pad0:South", "Touch2:Began"
//
// Chord parsing resolves each token against the keyboard, mouse, gamepad,
// touch, and gesture name tables in that order; the first table that
// recognizes the token wins.
package key
