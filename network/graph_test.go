// SPDX-License-Identifier: MIT

package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydronet/network"
)

func TestGraph_AddNodeAndSegment(t *testing.T) {
	g := network.NewGraph()
	u, err := g.AddNode(network.Node{ID: "u"})
	require.NoError(t, err)
	v, err := g.AddNode(network.Node{ID: "v"})
	require.NoError(t, err)

	_, err = g.AddNode(network.Node{ID: "u"})
	require.ErrorIs(t, err, network.ErrDuplicateNode)

	require.NoError(t, g.AddSegment(v, u, 10, network.KindTubing, "s"))
	seg, ok := g.Segment(network.MakeKey(u, v))
	require.True(t, ok)
	assert.Equal(t, v, seg.Node1, "declared orientation is preserved")
	assert.Equal(t, u, seg.Node2)
	assert.Equal(t, network.SegmentKey{A: u, B: v}, seg.Key)
	assert.Equal(t, v, seg.Key.Other(u))

	require.ErrorIs(t, g.AddSegment(u, 42, 10, network.KindTubing, "bad"), network.ErrNodeNotFound)
	require.ErrorIs(t, g.SetKnownPressure(-1, network.RolePump, 1), network.ErrNodeNotFound)
	assert.Len(t, g.Incident(u), 1)
}

func TestSegmentID_Canonical(t *testing.T) {
	assert.Equal(t, "a--b", network.SegmentID("b", "a"))
	assert.Equal(t, network.SegmentID("a", "b"), network.SegmentID("b", "a"))
	assert.Equal(t, "pump", network.RolePump.String())
	assert.Equal(t, "tubing", network.KindTubing.String())
}
