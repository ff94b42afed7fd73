package vectors

import (
	"math"

	"github.com/npillmayer/redblack"
)

// Vector is a sequence of numeric components.
type Vector []float64

// Compare orders vectors lexicographically, element by element: the
// vector with the first larger component is the larger one. If the
// vectors agree over the length of the shorter one, the shorter vector
// is the smaller one.
func Compare(a, b Vector) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) == len(b):
		return 0
	case len(a) < len(b):
		return -1
	default:
		return 1
	}
}

// Norm returns the Euclidean (L2) norm of the vector.
func (v Vector) Norm() float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Clone returns an independent copy of the vector.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// NewSet creates an empty set of vectors under the lexicographic order.
func NewSet() (*redblack.Set[Vector], error) {
	return redblack.New[Vector](Compare, nil)
}

// MaxNorm reduces a set of vectors to an independent copy of the member
// with the largest Euclidean norm. It returns false for a nil or empty
// set. Mutating the returned vector does not affect set contents.
func MaxNorm(set *redblack.Set[Vector]) (Vector, bool) {
	if set == nil || set.IsEmpty() {
		return nil, false
	}
	var best Vector
	found := false
	complete := set.ForEach(func(v Vector) bool {
		if !found || v.Norm() > best.Norm() {
			best = v.Clone()
			found = true
		}
		return true
	})
	if !complete || !found {
		tracer().Errorf("norm reduction did not complete")
		return nil, false
	}
	return best, true
}
