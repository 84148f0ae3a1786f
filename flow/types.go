// SPDX-License-Identifier: MIT

package flow

import (
	"errors"

	"github.com/katalvlaran/hydronet/network"
)

var (
	// ErrGraphNil is returned when Compute is given a nil graph.
	ErrGraphNil = errors.New("flow: graph is nil")

	// ErrSolutionNil is returned when Compute is given a nil solution.
	ErrSolutionNil = errors.New("flow: solution is nil")

	// ErrSizeMismatch: the solution was not produced for this graph.
	ErrSizeMismatch = errors.New("flow: solution does not match graph")
)

// SegmentFlow is the computed flow through one segment.
type SegmentFlow struct {
	Key   network.SegmentKey `json:"-"`
	ID    string             `json:"id"`
	Node1 network.NodeHandle `json:"-"`
	Node2 network.NodeHandle `json:"-"`

	// Node1ID and Node2ID keep the declared orientation.
	Node1ID string `json:"node1"`
	Node2ID string `json:"node2"`
	From    string `json:"from"`
	To      string `json:"to"`

	// Flow in m³/s, positive from Node1 to Node2. NaN when undefined.
	Flow       float64             `json:"flow"`
	Resistance float64             `json:"resistance"`
	Kind       network.SegmentKind `json:"kind"`
	Sources    []string            `json:"sources"`
}

// Reversed returns f as seen with Node1 and Node2 swapped.
func (f SegmentFlow) Reversed() SegmentFlow {
	f.Node1, f.Node2 = f.Node2, f.Node1
	f.Node1ID, f.Node2ID = f.Node2ID, f.Node1ID
	if f.Flow != 0 {
		f.Flow = -f.Flow
	}
	if f.Flow < 0 {
		f.From, f.To = f.Node2ID, f.Node1ID
	} else {
		f.From, f.To = f.Node1ID, f.Node2ID
	}
	return f
}

// Magnitude returns |Flow|.
func (f SegmentFlow) Magnitude() float64 {
	if f.Flow < 0 {
		return -f.Flow
	}
	return f.Flow
}
