// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Public methods return
// these sentinels wrapped with call-site context; tests MUST check them via
// errors.Is. No public method panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: " for consistency and easy grepping.
// Detection sites wrap with fmt.Errorf("<ctx>: %w", ErrX) so the message names
// the offending request while errors.Is keeps matching the sentinel.

var (
	// ErrInvalidDimensions is returned when a matrix is requested with
	// height <= 0 or width <= 0. Constructors validate before allocating.
	ErrInvalidDimensions = errors.New("matrix: incorrect height or width")

	// ErrOutOfRange indicates that a (row, column) request falls outside the grid.
	// Public indexers (At/Set/AtCell/SetCell) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a method was called on a nil *Dense.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
