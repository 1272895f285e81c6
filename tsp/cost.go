package tsp

import "gonum.org/v1/gonum/mat"

// pathLength sums dm over consecutive indices of order (open path).
//
// Complexity: O(len(order)).
func pathLength(dm *mat.SymDense, order []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 1; i < len(order); i++ {
		sum += dm.At(order[i-1], order[i])
	}

	return sum
}
