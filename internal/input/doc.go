// Package input orchestrates per-tick input processing.
//
// A Manager owns a binding collection, a device-state Provider, and a
// current/previous pressed-set double buffer. One call to Update is one
// tick: the manager snapshots the previous pressed set, repolls every
// wired device class into the current set, then diffs the two per binding
// and fires an Event to subscribed handlers for every binding that
// transitioned from non-matching to matching.
//
// The manager is single-threaded and cooperative: it takes no locks, and
// everything it does runs to completion inside Update before returning.
// The caller is responsible for serializing configuration changes against
// ticks.
package input
