// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/hydronet/diag"
	"github.com/katalvlaran/hydronet/matrix"
	"github.com/katalvlaran/hydronet/network"
)

// system is the assembled A·x = B for one solve.
type system struct {
	g        *network.Graph
	unknowns []network.NodeHandle       // row order, sorted by node id
	row      map[network.NodeHandle]int // handle → row
	pinned   map[network.NodeHandle]bool
	a        *matrix.Dense
	b        []float64
}

// Solve computes the pressure of every node of g.
//
// Known nodes keep their fixed pressure. With no unknowns the call succeeds
// trivially. See the package doc for the recoverable and abort conditions.
func Solve(g *network.Graph, opts ...Option) (*Solution, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sol := &Solution{Pressures: make([]float64, g.NodeCount())}
	var unknowns []network.NodeHandle
	for h, n := range g.Nodes() {
		if n.Known() {
			sol.Pressures[h] = n.KnownPressure
			continue
		}
		unknowns = append(unknowns, network.NodeHandle(h))
	}

	if len(unknowns) == 0 {
		o.Logger.Debug().Int("nodes", g.NodeCount()).Msg("no unknown pressures; trivial solve")
		return sol, nil
	}
	if g.SegmentCount() == 0 {
		return nil, fmt.Errorf("%w: %d unknown node(s) and no valid segment", ErrNoConnections, len(unknowns))
	}

	nodes := g.Nodes()
	sort.SliceStable(unknowns, func(i, j int) bool { return nodes[unknowns[i]].ID < nodes[unknowns[j]].ID })

	sys := &system{
		g:        g,
		unknowns: unknowns,
		row:      make(map[network.NodeHandle]int, len(unknowns)),
		pinned:   floating(g, unknowns),
		b:        make([]float64, len(unknowns)),
	}
	for i, h := range unknowns {
		sys.row[h] = i
	}
	for _, h := range unknowns {
		if sys.pinned[h] {
			sol.Warnings = append(sol.Warnings, isolationWarning(g, h))
		}
	}

	if err := sys.assemble(); err != nil {
		return nil, err
	}
	if err := sys.checkDiagonal(); err != nil {
		return nil, err
	}

	x, err := matrix.Solve(sys.a, sys.b, matrix.WithPivotTolerance(o.Epsilon))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingularNetwork, err)
	}

	for i, h := range unknowns {
		v := x[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			id := nodes[h].ID
			sol.Pressures[h] = math.NaN()
			sol.Errors = append(sol.Errors, &NodeError{NodeID: id, Value: v})
			sol.Warnings = append(sol.Warnings, diag.Newf(diag.SolverNumerical, id, "pressure solved to %g; reported as NaN", v))
			continue
		}
		sol.Pressures[h] = v
	}
	sol.Unknowns = len(unknowns)

	o.Logger.Debug().
		Int("unknowns", len(unknowns)).
		Int("pinned", len(sys.pinned)).
		Int("numerical_errors", len(sol.Errors)).
		Msg("nodal system solved")

	return sol, nil
}

// assemble stamps every valid segment incident to an unknown node.
// Pinned rows become identity rows with zero right-hand side.
func (s *system) assemble() error {
	n := len(s.unknowns)
	a, err := matrix.NewDense(n, n)
	if err != nil {
		return err
	}
	s.a = a

	for i, h := range s.unknowns {
		if s.pinned[h] {
			if err = a.Set(i, i, 1); err != nil {
				return err
			}
			continue
		}
		for _, seg := range s.g.Incident(h) {
			cond := 1 / seg.Resistance
			if err = a.AddAt(i, i, cond); err != nil {
				return err
			}
			other := seg.Key.Other(h)
			if nb := s.g.Node(other); nb.Known() {
				s.b[i] += cond * nb.KnownPressure
				continue
			}
			if err = a.AddAt(i, s.row[other], -cond); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkDiagonal aborts on a diagonal entry that is not positive and finite.
// A conductance diagonal is a sum of positive 1/R terms, so it only fails
// for a row with nothing stamped into it.
func (s *system) checkDiagonal() error {
	for i := range s.unknowns {
		d, _ := s.a.At(i, i)
		if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
			return fmt.Errorf("%w: diagonal of %q is %g", ErrSingularNetwork, s.g.Node(s.unknowns[i]).ID, d)
		}
	}
	return nil
}

// floating returns the unknown nodes that no known pressure reaches through
// valid segments. A multi-source BFS from every known node marks the rest.
func floating(g *network.Graph, unknowns []network.NodeHandle) map[network.NodeHandle]bool {
	reached := make([]bool, g.NodeCount())
	queue := make([]network.NodeHandle, 0, g.NodeCount())
	for h, n := range g.Nodes() {
		if n.Known() {
			reached[h] = true
			queue = append(queue, network.NodeHandle(h))
		}
	}
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		for _, seg := range g.Incident(h) {
			other := seg.Key.Other(h)
			if !reached[other] {
				reached[other] = true
				queue = append(queue, other)
			}
		}
	}

	out := make(map[network.NodeHandle]bool)
	for _, h := range unknowns {
		if !reached[h] {
			out[h] = true
		}
	}
	return out
}

func isolationWarning(g *network.Graph, h network.NodeHandle) diag.Warning {
	id := g.Node(h).ID
	if g.Degree(h) == 0 {
		return diag.Newf(diag.IsolatedNode, id, "%v: no valid segment; pressure set to 0 Pa", ErrIsolatedNode)
	}
	return diag.Newf(diag.IsolatedNode, id, "%v: not connected to any pump or outlet; pressure set to 0 Pa", ErrIsolatedNode)
}
