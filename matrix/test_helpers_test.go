// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvgrid/matrix"
)

// mustNew ALLOCATES an h×w *Dense filled with e or fails the test.
func mustNew[E any](t *testing.T, h, w int, e E, opts ...matrix.Option[E]) *matrix.Dense[E] {
	t.Helper()
	m, err := matrix.New(h, w, e, opts...)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", h, w, err)
	}

	return m
}

// mustNewFunc ALLOCATES an h×w *Dense via NewFunc or fails the test.
func mustNewFunc[E any](t *testing.T, h, w int, init func(int) E, opts ...matrix.Option[E]) *matrix.Dense[E] {
	t.Helper()
	m, err := matrix.NewFunc(h, w, init, opts...)
	if err != nil {
		t.Fatalf("NewFunc(%d,%d): %v", h, w, err)
	}

	return m
}

// snapshot reads every cell of m in row-major order.
func snapshot[E any](t *testing.T, m matrix.Matrix[E]) []E {
	t.Helper()
	out := make([]E, 0, m.Height()*m.Width())
	for r := 0; r < m.Height(); r++ {
		for c := 0; c < m.Width(); c++ {
			v, err := m.At(r, c)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", r, c, err)
			}
			out = append(out, v)
		}
	}

	return out
}

// sliceMatrix is a minimal non-Dense Matrix used to exercise the generic
// (non fast-path) comparison branch.
type sliceMatrix[E any] struct {
	rows [][]E
}

func (s *sliceMatrix[E]) Height() int { return len(s.rows) }
func (s *sliceMatrix[E]) Width() int  { return len(s.rows[0]) }

func (s *sliceMatrix[E]) At(r, c int) (E, error) {
	var zero E
	if r < 0 || r >= len(s.rows) || c < 0 || c >= len(s.rows[r]) {
		return zero, matrix.ErrOutOfRange
	}

	return s.rows[r][c], nil
}

func (s *sliceMatrix[E]) AtCell(c matrix.Cell) (E, error) { return s.At(c.Row, c.Column) }

func (s *sliceMatrix[E]) Set(r, c int, v E) error {
	if r < 0 || r >= len(s.rows) || c < 0 || c >= len(s.rows[r]) {
		return matrix.ErrOutOfRange
	}
	s.rows[r][c] = v

	return nil
}

func (s *sliceMatrix[E]) SetCell(c matrix.Cell, v E) error { return s.Set(c.Row, c.Column, v) }
