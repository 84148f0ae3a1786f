// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// SolveLU solves L·U·x = b by forward then backward substitution.
// L must be unit lower triangular and U upper triangular, as returned by LU.
//
// Zero coefficients are skipped, so a NaN in one decoupled block of b stays
// in that block.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular (zero U diagonal).
// Complexity: O(n²).
func SolveLU(L, U *Dense, b []float64) ([]float64, error) {
	if L == nil || U == nil || b == nil {
		return nil, matrixErrorf(opSolveLU, ErrNilMatrix)
	}
	n := L.r
	if L.c != n || U.r != n || U.c != n || len(b) != n {
		return nil, matrixErrorf(opSolveLU, ErrDimensionMismatch)
	}

	// L·y = b
	y := make([]float64, n)
	var i, k int
	var sum float64
	for i = 0; i < n; i++ {
		sum = 0
		for k = 0; k < i; k++ {
			// skip structural zeros so a non-finite entry cannot leak into
			// decoupled rows through 0·NaN
			if l := L.data[i*n+k]; l != 0 {
				sum += l * y[k]
			}
		}
		y[i] = b[i] - sum
	}

	// U·x = y
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum = 0
		for k = i + 1; k < n; k++ {
			if u := U.data[i*n+k]; u != 0 {
				sum += u * x[k]
			}
		}
		pivot := U.data[i*n+i]
		if pivot == 0 {
			return nil, matrixErrorf(opSolveLU, fmt.Errorf("%w: U[%d,%d] is zero", ErrSingular, i, i))
		}
		x[i] = (y[i] - sum) / pivot
	}

	return x, nil
}

// Solve factors a and solves a·x = b.
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	L, U, err := LU(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := SolveLU(L, U, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	return x, nil
}

// MatVec returns a·x.
func MatVec(a Matrix, x []float64) ([]float64, error) {
	if a == nil || x == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if len(x) != a.Cols() {
		return nil, matrixErrorf(opMatVec, ErrDimensionMismatch)
	}
	out := make([]float64, a.Rows())
	for i := 0; i < a.Rows(); i++ {
		var sum float64
		for j := 0; j < a.Cols(); j++ {
			v, err := a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		out[i] = sum
	}
	return out, nil
}
