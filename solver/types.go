// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/hydronet/diag"
	"github.com/katalvlaran/hydronet/network"
)

// Sentinel errors for the nodal solve.
var (
	// ErrGraphNil: Solve was given a nil graph.
	ErrGraphNil = errors.New("solver: graph is nil")

	// ErrNoConnections: unknown nodes exist but no valid segment does.
	ErrNoConnections = errors.New("solver: no valid connections")

	// ErrSingularNetwork: the conductance matrix cannot be factored.
	ErrSingularNetwork = errors.New("solver: singular network")

	// ErrIsolatedNode classifies unknown nodes pinned to 0 Pa. It never aborts.
	ErrIsolatedNode = errors.New("solver: isolated node")

	// ErrSolverNumerical: a solved pressure was non-finite.
	ErrSolverNumerical = errors.New("solver: numerical error")
)

// NodeError reports a per-node numerical failure.
type NodeError struct {
	NodeID string
	Value  float64
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("solver: node %q solved to non-finite pressure %g", e.NodeID, e.Value)
}

// Unwrap lets errors.Is match ErrSolverNumerical.
func (e *NodeError) Unwrap() error { return ErrSolverNumerical }

// Solution holds pressures indexed by network.NodeHandle.
type Solution struct {
	Pressures []float64
	Warnings  []diag.Warning
	Errors    []error

	// Unknowns is the matrix dimension that was solved (0 for trivial solves).
	Unknowns int
}

// Pressure returns the pressure of h, NaN for an invalid handle.
func (s *Solution) Pressure(h network.NodeHandle) float64 {
	if h < 0 || int(h) >= len(s.Pressures) {
		return math.NaN()
	}
	return s.Pressures[h]
}

// DefaultEpsilon is the relative threshold below which an LU pivot is
// treated as zero.
const DefaultEpsilon = 1e-12

// Option configures Solve.
type Option func(*Options)

// Options holds solver parameters.
type Options struct {
	// Epsilon: an LU pivot |u_ii| ≤ Epsilon·max_j|A[i][j]| aborts with
	// ErrSingularNetwork. Each pivot is measured against its own row, so
	// resistances spanning many decades do not trip it.
	Epsilon float64
	Logger  zerolog.Logger
}

// DefaultOptions returns DefaultEpsilon and a no-op logger.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon, Logger: zerolog.Nop()}
}

// WithEpsilon sets the relative singularity threshold. Negative values are ignored.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps >= 0 {
			o.Epsilon = eps
		}
	}
}

// WithLogger sets the solve logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
