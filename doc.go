// Package lvgrid is a small in-memory toolkit for fixed-size, two-dimensional
// data: seating charts, game boards, lookup tables and similar grids.
//
// What is inside:
//
//	matrix/ — generic Matrix[E] contract and the row-major Dense[E]
//	          implementation with bounds-checked At/Set, Cell addressing,
//	          structural equality and a bracketed row-per-line String.
//
// Why lvgrid:
//
//   - Any element type via Go generics; no interface{} boxing.
//   - Safe surface: bad shapes and bad coordinates come back as errors
//     (ErrInvalidDimensions, ErrOutOfRange), never panics.
//   - Pure Go, no cgo.
//
// Quick example:
//
//	m, _ := matrix.New(2, 3, 0)
//	_ = m.Set(0, 1, 9)
//	fmt.Print(m)
//	// [0 9 0]
//	// [0 0 0]
//
//	go get github.com/katalvlaran/lvgrid/matrix
package lvgrid
