// SPDX-License-Identifier: MIT

package network

import "github.com/katalvlaran/hydronet/diag"

// Read-only accessors. Returned slices alias internal storage and must not
// be modified by callers.

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// SegmentCount returns the number of stored (valid) segments.
func (g *Graph) SegmentCount() int { return len(g.segments) }

// Node returns the node at h. It panics on an invalid handle, like a slice index.
func (g *Graph) Node(h NodeHandle) Node { return g.nodes[h] }

// Nodes returns the node arena in handle order.
func (g *Graph) Nodes() []Node { return g.nodes }

// Lookup resolves a node id to its handle.
func (g *Graph) Lookup(id string) (NodeHandle, bool) {
	h, ok := g.index[id]
	return h, ok
}

// Segments returns the stored segments in insertion order.
func (g *Graph) Segments() []Segment { return g.segments }

// Segment returns the stored segment with key k.
func (g *Graph) Segment(k SegmentKey) (Segment, bool) {
	pos, ok := g.segIndex[k]
	if !ok {
		return Segment{}, false
	}
	return g.segments[pos], true
}

// Neighbors returns the sorted neighbours of h, including those linked only
// through rejected segments.
func (g *Graph) Neighbors(h NodeHandle) []NodeHandle { return g.adjacency[h] }

// Incident returns the stored segments touching h, in insertion order.
func (g *Graph) Incident(h NodeHandle) []Segment {
	out := make([]Segment, 0, len(g.incident[h]))
	for _, pos := range g.incident[h] {
		out = append(out, g.segments[pos])
	}
	return out
}

// Degree returns the number of stored segments touching h.
func (g *Graph) Degree(h NodeHandle) int { return len(g.incident[h]) }

// SegmentIDOf renders the canonical display id of a stored key.
func (g *Graph) SegmentIDOf(k SegmentKey) string { return g.idOf(k.A, k.B) }

// Warnings returns the recoverable conditions met while building.
func (g *Graph) Warnings() []diag.Warning { return g.warnings }
