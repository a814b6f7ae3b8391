// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense instances. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - No global state: every Dense carries its own resolved Options.
//   - No dead switches: each option changes observable behavior and is tested.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"fmt"
	"reflect"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEqualNil     = "matrix: WithEqual: eq must not be nil"
	panicFormatterNil = "matrix: WithFormatter: format must not be nil"
)

// ---------- Defaults (single source of truth) ----------

// DefaultEqual reports whether a and b are structurally equal.
// Two nil values are equal; a nil and a non-nil value are not; anything else
// is compared deeply, so slices, maps and pointers-to-structs work without a
// custom comparator.
// Complexity: O(size of a) in the worst case.
func DefaultEqual[E any](a, b E) bool {
	return reflect.DeepEqual(a, b)
}

// DefaultFormat renders an element with the %v verb.
func DefaultFormat[E any](v E) string {
	return fmt.Sprint(v)
}

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly; the last wins.
type Option[E any] func(*Options[E])

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option[E]`.
type Options[E any] struct {
	eq     func(a, b E) bool // element comparator used by Dense.Equal
	format func(v E) string  // element renderer used by Dense.String
}

// WithEqual sets the element comparator used by Dense.Equal.
// Implementation:
//   - Stage 1: reject nil (programmer error → panic).
//   - Stage 2: return a setter that stores eq.
//
// Notes:
//   - Use when E holds values whose identity differs from their meaning,
//     e.g. case-insensitive strings or floats compared within a tolerance.
//   - Only the receiver's comparator is used by Dense.Equal. Two matrices
//     built with different comparators may disagree on a.Equal(b) vs b.Equal(a);
//     use EqualFunc when one fixed comparator must decide.
func WithEqual[E any](eq func(a, b E) bool) Option[E] {
	if eq == nil {
		panic(panicEqualNil)
	}

	return func(o *Options[E]) { o.eq = eq }
}

// WithFormatter sets how a single element is rendered by Dense.String.
// The surrounding layout ("[", " ", "]\n") is fixed.
// Panics when format is nil.
func WithFormatter[E any](format func(v E) string) Option[E] {
	if format == nil {
		panic(panicFormatterNil)
	}

	return func(o *Options[E]) { o.format = format }
}

// gatherOptions resolves defaults and applies opts in order.
// Nil entries in opts are skipped.
// Complexity: O(len(opts)).
func gatherOptions[E any](opts ...Option[E]) Options[E] {
	o := Options[E]{
		eq:     DefaultEqual[E],
		format: DefaultFormat[E],
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
