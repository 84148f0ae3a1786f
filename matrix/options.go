// SPDX-License-Identifier: MIT

package matrix

// DefaultPivotTolerance is relative to the largest |a_ij| of the pivot's row. Zero means only an
// exact zero pivot is treated as singular.
const DefaultPivotTolerance = 0.0

// Option configures LU and Solve.
type Option func(*Options)

// Options holds numeric policy for the factorization kernels.
type Options struct {
	// PivotTolerance: |u_ii| ≤ PivotTolerance·max_j|a_ij| is reported as ErrSingular.
	PivotTolerance float64
}

func gatherOptions(opts []Option) Options {
	o := Options{PivotTolerance: DefaultPivotTolerance}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPivotTolerance sets the relative singularity threshold.
// Panics on a negative value (programmer error).
func WithPivotTolerance(tol float64) Option {
	if tol < 0 {
		panic("matrix: WithPivotTolerance requires tol >= 0")
	}
	return func(o *Options) { o.PivotTolerance = tol }
}
