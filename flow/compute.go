// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hydronet/diag"
	"github.com/katalvlaran/hydronet/network"
	"github.com/katalvlaran/hydronet/solver"
)

// Compute returns the flow through every stored segment of g given the
// pressures in sol, plus the warnings raised for undefined flows.
func Compute(g *network.Graph, sol *solver.Solution) ([]SegmentFlow, []diag.Warning, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if sol == nil {
		return nil, nil, ErrSolutionNil
	}
	if len(sol.Pressures) != g.NodeCount() {
		return nil, nil, fmt.Errorf("%w: %d pressures for %d nodes", ErrSizeMismatch, len(sol.Pressures), g.NodeCount())
	}

	segs := g.Segments()
	out := make([]SegmentFlow, 0, len(segs))
	var warnings []diag.Warning

	for _, s := range segs {
		f := SegmentFlow{
			Key:        s.Key,
			ID:         g.SegmentIDOf(s.Key),
			Node1:      s.Node1,
			Node2:      s.Node2,
			Node1ID:    g.Node(s.Node1).ID,
			Node2ID:    g.Node(s.Node2).ID,
			Resistance: s.Resistance,
			Kind:       s.Kind,
			Sources:    s.Sources,
		}
		var w *diag.Warning
		f.Flow, w = rate(f.ID, sol.Pressure(s.Node1), sol.Pressure(s.Node2), s.Resistance)
		if w != nil {
			warnings = append(warnings, *w)
		}

		if f.Flow < 0 {
			f.From, f.To = f.Node2ID, f.Node1ID
		} else {
			f.From, f.To = f.Node1ID, f.Node2ID
		}
		out = append(out, f)
	}

	return out, warnings, nil
}

// rate is (p1 - p2) / R, or NaN with the warning explaining why the flow of
// segment id is undefined.
func rate(id string, p1, p2, R float64) (float64, *diag.Warning) {
	switch {
	case !finite(p1) || !finite(p2):
		w := diag.Newf(diag.MissingPressure, id, "endpoint pressures %g and %g; flow undefined", p1, p2)
		return math.NaN(), &w
	case R == 0:
		w := diag.Newf(diag.ZeroResistance, id, "zero resistance; flow undefined")
		return math.NaN(), &w
	}
	return (p1 - p2) / R, nil
}

// Balance returns the net flow into h over flows: inflow minus outflow.
// Segments with NaN flow make the result NaN.
func Balance(flows []SegmentFlow, h network.NodeHandle) float64 {
	var net float64
	for _, f := range flows {
		switch h {
		case f.Node2:
			net += f.Flow
		case f.Node1:
			net -= f.Flow
		}
	}
	return net
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
