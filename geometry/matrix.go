package geometry

import "gonum.org/v1/gonum/mat"

// DistanceMatrix builds the symmetric matrix D with D[i][j] = Distance(p[i], p[j]).
// The diagonal is zero. An empty path yields nil, since gonum rejects
// zero-sized matrices.
//
// Complexity: O(n²) time; the symmetric storage keeps the upper triangle only.
func DistanceMatrix(p Path) *mat.SymDense {
	var n = len(p)
	if n == 0 {
		return nil
	}
	d := mat.NewSymDense(n, nil)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d.SetSym(i, j, Distance(p[i], p[j]))
		}
	}

	return d
}
