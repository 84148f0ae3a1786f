// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hydronet/diag"
	"github.com/katalvlaran/hydronet/resistance"
)

// Graph is the arena-backed resistive network of one simulation run.
type Graph struct {
	nodes []Node
	index map[string]NodeHandle // node id → handle

	segments []Segment
	segIndex map[SegmentKey]int // key → position in segments

	// adjacency[h] lists every neighbour of h, sorted and deduplicated,
	// including neighbours reached only through rejected segments.
	adjacency [][]NodeHandle
	// incident[h] lists positions in segments touching h.
	incident [][]int

	warnings []diag.Warning
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		index:    make(map[string]NodeHandle),
		segIndex: make(map[SegmentKey]int),
	}
}

// AddNode registers n and returns its handle.
// Returns ErrDuplicateNode if n.ID is already present.
func (g *Graph) AddNode(n Node) (NodeHandle, error) {
	if _, ok := g.index[n.ID]; ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
	}
	h := NodeHandle(len(g.nodes))
	g.nodes = append(g.nodes, n)
	g.index[n.ID] = h
	g.adjacency = append(g.adjacency, nil)
	g.incident = append(g.incident, nil)

	return h, nil
}

// SetKnownPressure fixes the pressure of node h and sets its role.
func (g *Graph) SetKnownPressure(h NodeHandle, role Role, pressurePa float64) error {
	if !g.valid(h) {
		return fmt.Errorf("%w: handle %d", ErrNodeNotFound, h)
	}
	g.nodes[h].Role = role
	g.nodes[h].KnownPressure = pressurePa
	g.nodes[h].HasPressure = true

	return nil
}

// AddSegment joins n1 and n2 with resistance R.
//
// The endpoints are always linked in adjacency. The segment itself is
// stored only if R is positive and finite and n1 != n2; otherwise a warning
// is recorded. A second segment on an existing key is merged in parallel,
// R = R1·R2/(R1+R2), and recorded as a DuplicateSegment warning.
func (g *Graph) AddSegment(n1, n2 NodeHandle, R float64, kind SegmentKind, source string) error {
	if !g.valid(n1) || !g.valid(n2) {
		return fmt.Errorf("%w: segment %q joins handles %d and %d", ErrNodeNotFound, source, n1, n2)
	}
	if n1 == n2 {
		g.warn(diag.Newf(diag.SelfLoop, source, "segment joins %s to itself; dropped", g.nodes[n1].ID))
		return nil
	}
	g.link(n1, n2)

	if err := resistance.Validate(R); err != nil {
		g.warn(diag.Newf(diag.InvalidResistance, source, "segment %s excluded: %v", g.idOf(n1, n2), err))
		return nil
	}

	key := MakeKey(n1, n2)
	if pos, ok := g.segIndex[key]; ok {
		s := &g.segments[pos]
		prev := s.Resistance
		s.Resistance = prev * R / (prev + R)
		s.Sources = append(s.Sources, source)
		g.warn(diag.Newf(diag.DuplicateSegment, source,
			"parallel to %v on %s; merged %g ‖ %g = %g", s.Sources[:len(s.Sources)-1], g.idOf(n1, n2), prev, R, s.Resistance))
		return nil
	}

	pos := len(g.segments)
	g.segments = append(g.segments, Segment{
		Key:        key,
		Node1:      n1,
		Node2:      n2,
		Resistance: R,
		Kind:       kind,
		Sources:    []string{source},
	})
	g.segIndex[key] = pos
	g.incident[n1] = append(g.incident[n1], pos)
	g.incident[n2] = append(g.incident[n2], pos)

	return nil
}

// reject links u and v without storing a segment and records why.
func (g *Graph) reject(u, v NodeHandle, source string, err error) {
	if u != v {
		g.link(u, v)
	}
	g.warn(diag.Newf(diag.InvalidResistance, source, "segment %s excluded: %v", g.idOf(u, v), err))
}

// link inserts v into adjacency[u] and u into adjacency[v], keeping both sorted.
func (g *Graph) link(u, v NodeHandle) {
	g.adjacency[u] = insertSorted(g.adjacency[u], v)
	g.adjacency[v] = insertSorted(g.adjacency[v], u)
}

func insertSorted(list []NodeHandle, h NodeHandle) []NodeHandle {
	i := sort.Search(len(list), func(i int) bool { return list[i] >= h })
	if i < len(list) && list[i] == h {
		return list
	}
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = h
	return list
}

func (g *Graph) warn(w diag.Warning) { g.warnings = append(g.warnings, w) }

func (g *Graph) valid(h NodeHandle) bool { return h >= 0 && int(h) < len(g.nodes) }

func (g *Graph) idOf(u, v NodeHandle) string {
	return SegmentID(g.nodes[u].ID, g.nodes[v].ID)
}

// SegmentID renders the canonical display id of a segment between two node
// ids: the lexicographically smaller id first, joined by "--".
func SegmentID(id1, id2 string) string {
	if id2 < id1 {
		id1, id2 = id2, id1
	}
	return id1 + "--" + id2
}
