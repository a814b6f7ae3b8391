// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula row*width + column.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep construction deterministic: initializers run once per slot in offset order.
//
// Complexity quicksheet:
//   - New/NewFunc: O(h*w); Height/Width/At/Set: O(1); String/Equal: O(h*w).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew     = "matrix.New"     // factory tag used in error wrappers
	ctxNewFunc = "matrix.NewFunc" // direct-construction tag
	ctxAt      = "At"             // method tag used in error wrappers
	ctxSet     = "Set"            // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = " "
)

// denseErrorf wraps an error with a uniform Dense context and the requested coordinate.
// Produces "Dense.<method>(row,col): <sentinel>"; the sentinel survives via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of E.
//   - h,w hold dimensions (height, width), both > 0.
//   - data is a flat buffer of length h*w (offset = row*w + column).
//   - opts carries the resolved element comparator and formatter.
type Dense[E any] struct {
	h, w int        // row and column counts
	data []E        // contiguous row-major storage (len == h*w)
	opts Options[E] // resolved configuration
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[int]  = (*Dense[int])(nil)
	_ fmt.Stringer = (*Dense[int])(nil)
)

// New creates a height×width matrix with every slot set to e.
// MAIN DESCRIPTION:
//   - Public factory; the usual way to obtain a Matrix.
//
// Implementation:
//   - Stage 1: validate height>0 && width>0 and height*width fits in int; else ErrInvalidDimensions.
//   - Stage 2: allocate and fill via the shared constructor path.
//
// Behavior highlights:
//   - Every slot starts as the same value e. When E is a pointer, map, slice or
//     channel all slots alias one underlying value until Set replaces them.
//
// Errors:
//   - ErrInvalidDimensions, message carries both requested values.
//
// Complexity:
//   - Time O(h*w), Space O(h*w).
func New[E any](height, width int, e E, opts ...Option[E]) (*Dense[E], error) {
	return newDense(ctxNew, height, width, func(int) E { return e }, opts)
}

// NewFunc creates a height×width matrix whose slot at linear offset i holds init(i).
// MAIN DESCRIPTION:
//   - Direct construction with a per-index initializer.
//
// Implementation:
//   - Stage 1: validate height>0 && width>0 and height*width fits in int; else ErrInvalidDimensions.
//   - Stage 2: allocate the flat buffer.
//   - Stage 3: call init exactly once per slot, i = 0..h*w-1 ascending.
//
// Behavior highlights:
//   - Slot (row, column) receives init(row*width + column).
//   - A nil init leaves every slot at E's zero value.
//
// Errors:
//   - ErrInvalidDimensions (no allocation, init never called).
//
// Complexity:
//   - Time O(h*w) plus the cost of init, Space O(h*w).
func NewFunc[E any](height, width int, init func(i int) E, opts ...Option[E]) (*Dense[E], error) {
	return newDense(ctxNewFunc, height, width, init, opts)
}

// newDense is the single constructor path behind New and NewFunc.
func newDense[E any](ctx string, height, width int, init func(int) E, opts []Option[E]) (*Dense[E], error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctx, height, width, ErrInvalidDimensions)
	}
	// height*width must fit in int, or the buffer cannot hold every cell.
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctx, height, width, ErrInvalidDimensions)
	}
	data := make([]E, height*width)
	if init != nil {
		for i := range data { // ascending offset order
			data[i] = init(i)
		}
	}

	return &Dense[E]{
		h:    height,
		w:    width,
		data: data,
		opts: gatherOptions(opts...),
	}, nil
}

// Height returns the row count. Zero for a nil receiver.
// Complexity: O(1).
func (m *Dense[E]) Height() int {
	if m == nil {
		return 0
	}

	return m.h
}

// Width returns the column count. Zero for a nil receiver.
// Complexity: O(1).
func (m *Dense[E]) Width() int {
	if m == nil {
		return 0
	}

	return m.w
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,column) and compute the flat offset.
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < h and 0 ≤ column < w.
//   - Stage 2: compute row*w + column and re-check it against [0, len(data)).
//
// Behavior highlights:
//   - Per-axis checks reject (0, w), which would otherwise alias (1, 0).
//   - The composite check is redundant once the per-axis checks pass (the
//     constructor guarantees len(data) == h*w); it is kept so every access
//     validates the flat position itself.
//   - Returns the bare sentinel; At/Set wrap it with method and coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[E]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.h {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.w {
		return 0, ErrOutOfRange
	}
	off := row*m.w + col
	if off < 0 || off >= len(m.data) {
		return 0, ErrOutOfRange
	}

	return off, nil
}

// At returns the value at (row, column) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Errors:
//   - ErrOutOfRange when out of bounds; ErrNilMatrix on a nil receiver.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[E]) At(row, column int) (E, error) {
	var zero E
	if m == nil {
		return zero, denseErrorf(ctxAt, row, column, ErrNilMatrix)
	}
	off, err := m.indexOf(row, column)
	if err != nil {
		return zero, denseErrorf(ctxAt, row, column, err) // wrap with context
	}

	return m.data[off], nil
}

// AtCell returns the value at c. Equivalent to At(c.Row, c.Column).
func (m *Dense[E]) AtCell(c Cell) (E, error) { return m.At(c.Row, c.Column) }

// Set stores v at (row, column) or returns an error.
// MAIN DESCRIPTION:
//   - Safe element write; the only way a slot changes after construction.
//
// Behavior highlights:
//   - On error nothing is written.
//   - Only the addressed slot changes.
//
// Errors:
//   - ErrOutOfRange when out of bounds; ErrNilMatrix on a nil receiver.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[E]) Set(row, column int, v E) error {
	if m == nil {
		return denseErrorf(ctxSet, row, column, ErrNilMatrix)
	}
	off, err := m.indexOf(row, column)
	if err != nil {
		return denseErrorf(ctxSet, row, column, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// SetCell stores v at c. Equivalent to Set(c.Row, c.Column, v).
func (m *Dense[E]) SetCell(c Cell, v E) error { return m.Set(c.Row, c.Column, v) }

// String renders one line per row: "[" + space-separated elements + "]\n".
// Implementation:
//   - Stage 1: iterate rows then columns deterministically.
//   - Stage 2: render each element with the configured formatter (default %v).
//
// Behavior highlights:
//   - A 2×3 matrix of zeros renders as "[0 0 0]\n[0 0 0]\n".
//   - Nil receiver renders as "<nil>".
//
// Complexity:
//   - Time O(h*w), Space O(h*w) for formatting.
func (m *Dense[E]) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.h; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.w
		for j = 0; j < m.w; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(m.opts.format(m.data[base+j]))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
