// SPDX-License-Identifier: MIT

// Package matrix - structural equality.
//
// Two matrices are equal iff they share Height and Width and every pair of
// corresponding elements a[r,c], b[r,c] compares equal. Any Matrix[E]
// implementation may take part; *Dense pairs use a flat-buffer fast path.

package matrix

// Equal reports whether other is a Matrix[E] structurally equal to m.
// MAIN DESCRIPTION:
//   - Element-wise comparison using m's comparator (DefaultEqual unless WithEqual).
//
// Behavior highlights:
//   - Values that are not a Matrix[E] (including nil) are never equal.
//   - The same instance is always equal to itself.
//   - A nil *Dense equals only another nil *Dense.
//   - Not necessarily symmetric: only m's comparator is consulted, so with
//     WithEqual a.Equal(b) may be true while b.Equal(a) is false.
//
// Complexity:
//   - Time O(h*w) comparator calls, Space O(1).
func (m *Dense[E]) Equal(other any) bool {
	if d, ok := other.(*Dense[E]); ok {
		if m == nil || d == nil {
			return m == nil && d == nil
		}
		if m == d {
			return true
		}
	}
	if m == nil {
		return false
	}
	o, ok := other.(Matrix[E])
	if !ok || o == nil {
		return false
	}

	return equalWith[E](m, o, m.opts.eq)
}

// Equal reports whether a and b have the same shape and a[r,c] == b[r,c]
// for every coordinate.
func Equal[E comparable](a, b Matrix[E]) bool {
	return equalWith(a, b, func(x, y E) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparator.
// A nil eq falls back to DefaultEqual.
func EqualFunc[E any](a, b Matrix[E], eq func(x, y E) bool) bool {
	if eq == nil {
		eq = DefaultEqual[E]
	}

	return equalWith(a, b, eq)
}

// equalWith is the shared comparison loop.
// Stage 1: nil and shape checks.
// Stage 2: flat scan when both sides are *Dense, generic At otherwise.
func equalWith[E any](a, b Matrix[E], eq func(x, y E) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	h, w := a.Height(), a.Width()
	if h != b.Height() || w != b.Width() {
		return false
	}

	// Fast path: identical layout, compare offsets directly.
	da, okA := a.(*Dense[E])
	db, okB := b.(*Dense[E])
	if okA && okB && da != nil && db != nil {
		for i := range da.data {
			if !eq(da.data[i], db.data[i]) {
				return false
			}
		}

		return true
	}

	var r, c int
	for r = 0; r < h; r++ {
		for c = 0; c < w; c++ {
			x, errA := a.At(r, c)
			y, errB := b.At(r, c)
			if errA != nil || errB != nil || !eq(x, y) {
				return false
			}
		}
	}

	return true
}
