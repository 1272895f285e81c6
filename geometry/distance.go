package geometry

import (
	"math"
	"slices"
)

// Distance returns the Euclidean distance between u and v:
//
//	sqrt((u.X-v.X)² + (u.Y-v.Y)²)
//
// Complexity: O(1).
func Distance(u, v Point) float64 {
	var (
		dx = u.X - v.X
		dy = u.Y - v.Y
	)

	return math.Sqrt(dx*dx + dy*dy)
}

// SquaredNorm returns x²+y², the squared distance of p from the origin.
func SquaredNorm(p Point) float64 {
	return p.X*p.X + p.Y*p.Y
}

// TotalDistance sums Distance over consecutive points of p.
// Paths shorter than two points have length 0. The loop is never closed.
//
// Complexity: O(n).
func TotalDistance(p Path) float64 {
	var (
		sum float64
		i   int
	)
	for i = 1; i < len(p); i++ {
		sum += Distance(p[i-1], p[i])
	}

	return sum
}

// Clone returns an independent copy of p (nil stays nil).
func Clone(p Path) Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// Reversed returns a fresh copy of p in reverse order.
func Reversed(p Path) Path {
	out := Clone(p)
	slices.Reverse(out)

	return out
}

// Closed returns a copy of p with p[0] appended, so TotalDistance of the
// result is the length of the closed tour. Empty paths are returned as-is.
func Closed(p Path) Path {
	if len(p) == 0 {
		return Clone(p)
	}
	out := make(Path, 0, len(p)+1)
	out = append(out, p...)

	return append(out, p[0])
}

// IsPermutation reports whether a and b hold the same multiset of points.
//
// Complexity: O(n log n).
func IsPermutation(a, b Path) bool {
	if len(a) != len(b) {
		return false
	}
	var (
		sa = Clone(a)
		sb = Clone(b)
	)
	slices.SortFunc(sa, comparePoints)
	slices.SortFunc(sb, comparePoints)

	return slices.Equal(sa, sb)
}

// comparePoints orders points by X, then Y.
func comparePoints(p, q Point) int {
	switch {
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return 1
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return 1
	default:
		return 0
	}
}
