// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for functional options.
package matrix_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/lvgrid/matrix"
	"github.com/stretchr/testify/require"
)

// TestWithEqual swaps the element comparator used by Dense.Equal.
func TestWithEqual(t *testing.T) {
	t.Parallel()

	near := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
	a := mustNew(t, 2, 2, 0.3, matrix.WithEqual(near))
	x := 0.1
	b := mustNew(t, 2, 2, x+0.2) // 0.30000000000000004

	require.False(t, b.Equal(a)) // default comparator is exact
	require.True(t, a.Equal(b))  // receiver's comparator decides

	// One explicit comparator gives the same answer in both directions.
	require.True(t, matrix.EqualFunc[float64](a, b, near))
	require.True(t, matrix.EqualFunc[float64](b, a, near))

	fold := mustNew(t, 1, 2, "Go", matrix.WithEqual(strings.EqualFold))
	require.True(t, fold.Equal(mustNew(t, 1, 2, "GO")))
}

// TestWithFormatter changes element rendering but not the layout.
func TestWithFormatter(t *testing.T) {
	t.Parallel()

	m := mustNewFunc(t, 2, 2, func(i int) float64 { return float64(i) / 4 },
		matrix.WithFormatter(func(v float64) string { return fmt.Sprintf("%.2f", v) }))
	require.Equal(t, "[0.00 0.25]\n[0.50 0.75]\n", m.String())
}

// TestOptionsLastWins applies two formatters; the later one is kept.
func TestOptionsLastWins(t *testing.T) {
	m := mustNew(t, 1, 2, 1,
		matrix.WithFormatter(func(int) string { return "a" }),
		nil, // skipped
		matrix.WithFormatter(func(int) string { return "b" }),
	)
	require.Equal(t, "[b b]\n", m.String())
}

// TestOptionsPanicOnNil checks WithX reject nil functions.
func TestOptionsPanicOnNil(t *testing.T) {
	require.PanicsWithValue(t, "matrix: WithEqual: eq must not be nil", func() {
		matrix.WithEqual[int](nil)
	})
	require.PanicsWithValue(t, "matrix: WithFormatter: format must not be nil", func() {
		matrix.WithFormatter[int](nil)
	})
}

// TestDefaults exercises the exported default functions directly.
func TestDefaults(t *testing.T) {
	require.True(t, matrix.DefaultEqual[[]int](nil, nil))
	require.False(t, matrix.DefaultEqual([]int{}, nil))
	require.True(t, matrix.DefaultEqual(map[string]int{"a": 1}, map[string]int{"a": 1}))
	require.Equal(t, "<nil>", matrix.DefaultFormat[error](nil))
	require.Equal(t, "[1 2]", matrix.DefaultFormat([]int{1, 2}))
}
