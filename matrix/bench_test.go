// SPDX-License-Identifier: MIT

package matrix_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/hydronet/matrix"
)

// laplacianChain builds the n×n conductance matrix of a resistor chain with
// both ends tied to fixed pressures.
func laplacianChain(n int) *matrix.Dense {
	m, _ := matrix.NewDense(n, n)
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, 2)
		if i > 0 {
			_ = m.Set(i, i-1, -1)
		}
		if i+1 < n {
			_ = m.Set(i, i+1, -1)
		}
	}
	return m
}

// BenchmarkSolve covers the node counts the simulator targets.
func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{10, 50, 200} {
		a := laplacianChain(n)
		rhs := make([]float64, n)
		rhs[0] = 1
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := matrix.Solve(a, rhs); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
