// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every message is prefixed with "matrix:".
var (
	// ErrInvalidDimensions: requested rows or cols ≤ 0.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange: an index is outside the matrix bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare: a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch: operand shapes are incompatible.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix: a nil matrix or vector was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular: a pivot was zero (or within tolerance of zero).
	ErrSingular = errors.New("matrix: singular matrix")
)

// Operation tags used in wrapped errors.
const (
	opAt      = "At"
	opSet     = "Set"
	opAddAt   = "AddAt"
	opLU      = "LU"
	opSolveLU = "SolveLU"
	opSolve   = "Solve"
	opMatVec  = "MatVec"
)

// matrixErrorf wraps err with an operation tag. err must be non-nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
