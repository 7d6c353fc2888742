// Package domain contains the core value types of the sequence engine:
// sequence kinds, generation parameters, results, sessions, and the
// lifecycle events used for observability.
//
// All types here are transient value structures. They are recomputed per
// generation request and never mutated in place. Sessions are the one
// deliberate exception: they remember a visitor's last parameters so the
// form can be pre-filled, never their results.
package domain
