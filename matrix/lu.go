// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// LU computes the Doolittle factorization A = L·U with unit diagonal on L
// and no pivoting.
//
// Stage 1: validate (non-nil, square), copy A into a flat Dense.
// Stage 2: for i = 0..n-1 build row i of U, guard the pivot, then column i of L.
//
// Each pivot is compared with the largest magnitude of its own row in A, so
// rows of very different scale are judged independently.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular (pivot within tolerance of zero).
// Complexity: O(n³) time, O(n²) memory.
func LU(m Matrix, opts ...Option) (*Dense, *Dense, error) {
	a, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts)

	n := a.r
	L, _ := NewDense(n, n)
	U, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		L.data[i*n+i] = 1
	}


	var i, j, k int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		base := i * n
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += L.data[base+k] * U.data[k*n+j]
			}
			U.data[base+j] = a.data[base+j] - sum
		}

		pivot = U.data[base+i]
		if math.IsNaN(pivot) || math.Abs(pivot) <= o.PivotTolerance*maxAbs(a.data[base:base+n]) {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("%w: pivot %d is %g", ErrSingular, i, pivot))
		}

		for j = i + 1; j < n; j++ {
			sum = 0
			rowJ := j * n
			for k = 0; k < i; k++ {
				sum += L.data[rowJ+k] * U.data[k*n+i]
			}
			L.data[rowJ+i] = (a.data[rowJ+i] - sum) / pivot
		}
	}

	return L, U, nil
}

// asDense validates m and returns it as *Dense, copying when needed.
func asDense(m Matrix) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok {
		if d == nil {
			return nil, ErrNilMatrix
		}
		if d.r != d.c {
			return nil, ErrNonSquare
		}
		return d, nil
	}
	if m.Rows() != m.Cols() {
		return nil, ErrNonSquare
	}
	d, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			d.data[i*d.c+j] = v
		}
	}
	return d, nil
}

func maxAbs(xs []float64) float64 {
	var best float64
	for _, x := range xs {
		if a := math.Abs(x); a > best {
			best = a
		}
	}
	return best
}
