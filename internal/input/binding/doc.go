// Package binding maps chords to named actions.
//
// A Binding associates one chord with one action and an enabled flag. A
// Collection holds bindings in descending priority order (longer chords
// first, rank order breaking ties) and resolves the single best match for
// a pressed-input set, so the most specific binding always wins.
//
// The package also provides a fluent Builder for assembling a single
// binding, a versioned JSON codec for persisting collections, a file
// Loader with search paths, and an fsnotify-based Watcher that reloads a
// bindings file when it changes on disk.
package binding
