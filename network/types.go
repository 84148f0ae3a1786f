// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrUnresolvedReference: a connection or pump setting names a port that does not exist.
	ErrUnresolvedReference = errors.New("network: unresolved reference")

	// ErrDuplicateNode: a node id was registered twice.
	ErrDuplicateNode = errors.New("network: duplicate node id")

	// ErrNodeNotFound: a handle or id does not address a node of this graph.
	ErrNodeNotFound = errors.New("network: node not found")

	// ErrSnapshotNil: Build was given a nil snapshot.
	ErrSnapshotNil = errors.New("network: snapshot is nil")
)

// NodeHandle indexes the node arena of a Graph.
type NodeHandle int

// Role is what a node represents physically.
type Role uint8

const (
	RolePort Role = iota
	RolePump
	RoleOutlet
	RoleJunction
)

func (r Role) String() string {
	switch r {
	case RolePort:
		return "port"
	case RolePump:
		return "pump"
	case RoleOutlet:
		return "outlet"
	case RoleJunction:
		return "junction"
	}
	return fmt.Sprintf("role(%d)", uint8(r))
}

// Node is a point with a single pressure.
// KnownPressure is meaningful only when HasPressure is true.
type Node struct {
	ID            string
	Role          Role
	ComponentID   string
	PortID        string // empty for junctions
	KnownPressure float64
	HasPressure   bool
}

// Known reports whether the node's pressure is fixed before solving.
func (n Node) Known() bool { return n.HasPressure }

// SegmentKind distinguishes tubing from channels inside a chip.
type SegmentKind uint8

const (
	KindTubing SegmentKind = iota
	KindInternalChip
)

func (k SegmentKind) String() string {
	if k == KindTubing {
		return "tubing"
	}
	return "internal"
}

// MarshalText renders the kind by name in JSON and YAML output.
func (k SegmentKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// SegmentKey is the canonical, order-independent identity of a segment:
// the two endpoint handles with A < B.
type SegmentKey struct {
	A, B NodeHandle
}

// MakeKey canonicalizes (u, v).
func MakeKey(u, v NodeHandle) SegmentKey {
	if v < u {
		u, v = v, u
	}
	return SegmentKey{A: u, B: v}
}

// Other returns the endpoint of k that is not h.
func (k SegmentKey) Other(h NodeHandle) NodeHandle {
	if k.A == h {
		return k.B
	}
	return k.A
}

// Segment is a resistive element. Node1/Node2 keep the declared orientation,
// which only affects the sign of the computed flow.
// Sources lists the connection or component ids that produced it; more than
// one entry means parallel elements were merged.
type Segment struct {
	Key        SegmentKey
	Node1      NodeHandle
	Node2      NodeHandle
	Resistance float64
	Kind       SegmentKind
	Sources    []string
}

// JunctionID returns the id of the synthesized junction node of a T/X chip.
func JunctionID(componentID string) string { return componentID + "#junction" }

// PortNodeID returns the id of the node for a component port.
func PortNodeID(componentID, portID string) string { return componentID + ":" + portID }
