// SPDX-License-Identifier: MIT

package flow_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydronet/diag"
	"github.com/katalvlaran/hydronet/flow"
	"github.com/katalvlaran/hydronet/network"
	"github.com/katalvlaran/hydronet/solver"
)

type fixture struct {
	t *testing.T
	g *network.Graph
}

func newFixture(t *testing.T) *fixture { return &fixture{t: t, g: network.NewGraph()} }

func (f *fixture) node(id string) network.NodeHandle {
	h, err := f.g.AddNode(network.Node{ID: id})
	require.NoError(f.t, err)
	return h
}

func (f *fixture) known(id string, role network.Role, p float64) network.NodeHandle {
	h := f.node(id)
	require.NoError(f.t, f.g.SetKnownPressure(h, role, p))
	return h
}

func (f *fixture) seg(u, v network.NodeHandle, R float64) {
	require.NoError(f.t, f.g.AddSegment(u, v, R, network.KindTubing, f.g.Node(u).ID+">"+f.g.Node(v).ID))
}

func (f *fixture) solve() ([]flow.SegmentFlow, []diag.Warning, *solver.Solution) {
	sol, err := solver.Solve(f.g)
	require.NoError(f.t, err)
	flows, ws, err := flow.Compute(f.g, sol)
	require.NoError(f.t, err)
	return flows, ws, sol
}

func TestCompute_PumpToOutlet(t *testing.T) {
	const P, R = 1000.0, 1e9
	f := newFixture(t)
	p := f.known("pump", network.RolePump, P)
	o := f.known("out", network.RoleOutlet, 0)
	f.seg(p, o, R)

	flows, ws, sol := f.solve()
	assert.Empty(t, ws)
	assert.Equal(t, P, sol.Pressure(p))
	assert.Equal(t, 0.0, sol.Pressure(o))
	require.Len(t, flows, 1)
	assert.Equal(t, P/R, flows[0].Flow)
	assert.Equal(t, "pump", flows[0].From)
	assert.Equal(t, "out", flows[0].To)
	assert.Equal(t, "out--pump", flows[0].ID)
}

func TestCompute_SwapChangesOnlySign(t *testing.T) {
	const P, R = 750.0, 3e9
	build := func(reverse bool) flow.SegmentFlow {
		f := newFixture(t)
		p := f.known("pump", network.RolePump, P)
		o := f.known("out", network.RoleOutlet, 0)
		if reverse {
			f.seg(o, p, R)
		} else {
			f.seg(p, o, R)
		}
		flows, _, _ := f.solve()
		require.Len(t, flows, 1)
		return flows[0]
	}
	fwd, rev := build(false), build(true)

	assert.Equal(t, fwd.Flow, -rev.Flow)
	assert.Equal(t, fwd.Magnitude(), rev.Magnitude())
	assert.Equal(t, fwd.From, rev.From)
	assert.Equal(t, fwd.To, rev.To)
	assert.Equal(t, fwd.ID, rev.ID)

	// Reversed reproduces the swapped declaration.
	assert.Equal(t, rev.Flow, fwd.Reversed().Flow)
	assert.Equal(t, rev.Node1ID, fwd.Reversed().Node1ID)
	assert.Equal(t, fwd.From, fwd.Reversed().From)
}

func TestCompute_Series(t *testing.T) {
	const P, R1, R2 = 1200.0, 1e9, 5e9
	f := newFixture(t)
	p := f.known("pump", network.RolePump, P)
	m := f.node("mid")
	o := f.known("out", network.RoleOutlet, 0)
	f.seg(p, m, R1)
	f.seg(m, o, R2)

	flows, _, _ := f.solve()
	want := P / (R1 + R2)
	require.Len(t, flows, 2)
	for _, fl := range flows {
		assert.InEpsilon(t, want, fl.Flow, 1e-12, fl.ID)
	}
	assert.InDelta(t, 0, flow.Balance(flows, m), want*1e-12)
}

func TestCompute_Parallel(t *testing.T) {
	const P, R1, R2 = 600.0, 2e9, 8e9
	f := newFixture(t)
	p := f.known("pump", network.RolePump, P)
	o := f.known("out", network.RoleOutlet, 0)
	m := f.node("m")
	f.seg(p, o, R1)
	f.seg(p, m, R2/2)
	f.seg(m, o, R2/2)

	flows, _, _ := f.solve()
	byID := map[string]flow.SegmentFlow{}
	for _, fl := range flows {
		byID[fl.ID] = fl
	}
	assert.Equal(t, P/R1, byID["out--pump"].Flow)
	assert.InEpsilon(t, P/R2, byID["m--pump"].Flow, 1e-12)
	assert.InEpsilon(t, P/R2, byID["m--out"].Flow, 1e-12)
	assert.InEpsilon(t, P/R1+P/R2, -flow.Balance(flows, p), 1e-12)
}

func TestCompute_TJunction(t *testing.T) {
	const P, r = 900.0, 4e8
	f := newFixture(t)
	a := f.known("A", network.RolePump, P)
	b := f.known("B", network.RoleOutlet, 0)
	c := f.known("C", network.RoleOutlet, 0)
	j := f.node("T#junction")
	f.seg(a, j, r)
	f.seg(j, b, r)
	f.seg(j, c, r)

	flows, _, sol := f.solve()
	assert.InDelta(t, P/3, sol.Pressure(j), 1e-9)
	require.Len(t, flows, 3)
	assert.InEpsilon(t, (P-P/3)/r, flows[0].Flow, 1e-12)
	assert.Equal(t, "A", flows[0].From)
	for _, fl := range flows[1:] {
		assert.InEpsilon(t, (P/3)/r, fl.Flow, 1e-12)
		assert.Equal(t, "T#junction", fl.From)
	}
	assert.InDelta(t, 0, flow.Balance(flows, j), 1e-18)
}

func TestCompute_MissingPressure(t *testing.T) {
	f := newFixture(t)
	u := f.node("u")
	v := f.node("v")
	w := f.node("w")
	f.seg(u, v, 1e9)
	f.seg(v, w, 1e9)

	sol := &solver.Solution{Pressures: []float64{100, math.NaN(), 0}}
	flows, ws, err := flow.Compute(f.g, sol)
	require.NoError(t, err)
	require.Len(t, flows, 2)
	for _, fl := range flows {
		assert.True(t, math.IsNaN(fl.Flow))
		assert.Equal(t, fl.Node1ID, fl.From)
	}
	assert.Equal(t, 2, diag.Count(ws, diag.MissingPressure))
}

func TestRate_UndefinedFlows(t *testing.T) {
	q, w := flow.Rate("a--b", 300, 100, 1e8)
	assert.Nil(t, w)
	assert.Equal(t, 2e-6, q)

	q, w = flow.Rate("a--b", 300, 100, 0)
	assert.True(t, math.IsNaN(q))
	require.NotNil(t, w)
	assert.Equal(t, diag.ZeroResistance, w.Kind)
	assert.Equal(t, "a--b", w.Subject)

	q, w = flow.Rate("a--b", math.NaN(), 100, 0)
	assert.True(t, math.IsNaN(q))
	require.NotNil(t, w)
	assert.Equal(t, diag.MissingPressure, w.Kind, "a missing pressure is reported before a zero resistance")
}

func TestCompute_Errors(t *testing.T) {
	f := newFixture(t)
	f.node("a")

	_, _, err := flow.Compute(nil, &solver.Solution{})
	assert.ErrorIs(t, err, flow.ErrGraphNil)
	_, _, err = flow.Compute(f.g, nil)
	assert.ErrorIs(t, err, flow.ErrSolutionNil)
	_, _, err = flow.Compute(f.g, &solver.Solution{Pressures: []float64{1, 2}})
	assert.ErrorIs(t, err, flow.ErrSizeMismatch)
}

func TestReversed_ZeroFlowKeepsSign(t *testing.T) {
	fl := flow.SegmentFlow{Node1ID: "a", Node2ID: "b", From: "a", To: "b"}
	r := fl.Reversed()
	assert.False(t, math.Signbit(r.Flow))
	assert.Equal(t, "b", r.From)
	assert.Equal(t, "a", r.To)
}
