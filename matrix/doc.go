// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra kernels the nodal solver
// needs: a row-major Dense matrix, Doolittle LU factorization and
// forward/backward substitution.
//
// The networks this module solves have tens of unknowns, so a dense O(n³)
// factorization is both simpler and faster than a sparse or iterative one.
//
// Determinism
//
//	Loops run in a fixed i→j→k order and no pivoting is performed, so the
//	same input always produces bit-identical output. Nodal conductance
//	matrices are symmetric and diagonally dominant, which keeps Doolittle
//	without pivoting stable for them.
//
// Errors
//
//	All failures are package sentinels (ErrSingular, ErrNonSquare, ...)
//	wrapped with an operation tag, so callers match with errors.Is.
package matrix
