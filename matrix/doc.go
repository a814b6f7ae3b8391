// SPDX-License-Identifier: MIT

// Package matrix offers a generic, fixed-size two-dimensional container.
//
// The matrix package provides:
//
//   - Matrix[E], the capability contract: Height/Width plus bounds-checked
//     At/Set addressed either by (row, column) or by a Cell.
//   - Dense[E], a row-major implementation over one flat slice of
//     Height*Width elements (offset = row*Width + column).
//   - New (fill every slot with one value) and NewFunc (per-index initializer).
//   - Structural equality (Dense.Equal, Equal, EqualFunc) and a bracketed,
//     row-per-line String rendering.
//
// Errors:
//
//	Construction with a non-positive height or width returns ErrInvalidDimensions.
//	Any access outside [0,Height)×[0,Width) returns ErrOutOfRange.
//	Both are wrapped with call-site context; match them with errors.Is.
//
// Concurrency:
//
//	A Dense is not safe for concurrent mutation. Guard read-modify-write
//	sequences with your own lock.
//
// Example:
//
//	m, _ := matrix.New(2, 3, 0)
//	_ = m.Set(0, 1, 9)
//	fmt.Print(m) // [0 9 0]\n[0 0 0]\n
package matrix
