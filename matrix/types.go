// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by every implementation.
// This file contains ONLY the public contract (Matrix) and the coordinate
// value type (Cell). Errors and options live in errors.go and options.go.
package matrix

import "fmt"

// Cell identifies one matrix slot by zero-based row and column.
// It is a plain value: copy freely, compare with ==.
type Cell struct {
	Row    int // zero-based row index
	Column int // zero-based column index
}

// NewCell returns the Cell at (row, column).
func NewCell(row, column int) Cell { return Cell{Row: row, Column: column} }

// String renders the cell as "(row,column)".
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Column) }

// Matrix is a rectangular grid of Height()*Width() elements of type E.
//
// Contract:
//   - Height and Width are positive and never change for an instance.
//   - Every valid coordinate 0 ≤ row < Height(), 0 ≤ column < Width() maps to
//     exactly one stored element; no slot is ever absent.
//   - At/Set never panic on bad coordinates; they return an error matching
//     ErrOutOfRange and leave the matrix untouched.
//
// Complexity: every method is O(1).
type Matrix[E any] interface {
	// Height returns the number of rows.
	Height() int

	// Width returns the number of columns.
	Width() int

	// At returns the element at (row, column).
	// Returns ErrOutOfRange if the coordinate is outside the grid.
	At(row, column int) (E, error)

	// AtCell is At(c.Row, c.Column).
	AtCell(c Cell) (E, error)

	// Set replaces the element at (row, column) with v.
	// Returns ErrOutOfRange if the coordinate is outside the grid.
	Set(row, column int, v E) error

	// SetCell is Set(c.Row, c.Column, v).
	SetCell(c Cell, v E) error
}
