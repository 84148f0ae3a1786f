// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Matrix is the read/write surface shared by the kernels.
type Matrix interface {
	Rows() int
	Cols() int
	At(i, j int) (float64, error)
	Set(i, j int, v float64) error
}

// Dense is a row-major matrix of float64 values stored in one flat slice.
type Dense struct {
	r, c int
	data []float64
}

// NewDense allocates an r×c zero matrix.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom copies a rectangular [][]float64 into a Dense.
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("NewDenseFrom: row %d: %w", i, ErrDimensionMismatch)
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(op string, i, j int) (int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %w", op, i, j, ErrOutOfRange)
	}
	return i*m.c + j, nil
}

// At returns the element at (i, j).
func (m *Dense) At(i, j int) (float64, error) {
	idx, err := m.indexOf(opAt, i, j)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set stores v at (i, j).
func (m *Dense) Set(i, j int, v float64) error {
	idx, err := m.indexOf(opSet, i, j)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// AddAt accumulates v into (i, j). Used to stamp conductances.
func (m *Dense) AddAt(i, j int, v float64) error {
	idx, err := m.indexOf(opAddAt, i, j)
	if err != nil {
		return err
	}
	m.data[idx] += v
	return nil
}

// Clone returns an independent copy.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Dense{r: m.r, c: m.c, data: data}
}

// String renders one bracketed row per line, for debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
