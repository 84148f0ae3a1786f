// SPDX-License-Identifier: MIT

package reachability

import (
	"github.com/katalvlaran/hydronet/diag"
	"github.com/katalvlaran/hydronet/network"
	"github.com/katalvlaran/hydronet/topology"
)

type nodeKind uint8

const (
	nodePassive nodeKind = iota
	nodePump
	nodeOutlet
)

// Model is the connectivity graph walked by Analyze. It is independent of
// the resistive network: no resistances, no pressures.
type Model struct {
	ids   []string
	kinds []nodeKind
	index map[string]int

	edges []Edge
	adj   [][]int // node → positions in edges, insertion order

	warnings []diag.Warning
}

// BuildModel derives the connectivity model of snap.
func BuildModel(snap *topology.Snapshot) (*Model, error) {
	if snap == nil {
		return nil, ErrSnapshotNil
	}
	m := &Model{index: make(map[string]int)}

	components := snap.SortedComponents()
	for _, c := range components {
		kind := nodePassive
		switch c.Type {
		case topology.Pump:
			kind = nodePump
		case topology.Outlet:
			kind = nodeOutlet
		}
		for _, p := range c.Ports {
			m.addNode(network.PortNodeID(c.ID, p.ID), kind)
		}
	}

	for _, c := range components {
		switch {
		case c.Type.IsTwoPort() && len(c.Ports) == 2:
			m.addEdge(c.ID, EdgeInternal,
				m.index[network.PortNodeID(c.ID, c.Ports[0].ID)],
				m.index[network.PortNodeID(c.ID, c.Ports[1].ID)])
		case c.Type.IsJunction() && len(c.Ports) > 0:
			j := m.addNode(network.JunctionID(c.ID), nodePassive)
			for _, p := range c.Ports {
				m.addEdge(c.ID+"/"+p.ID, EdgeInternal, j, m.index[network.PortNodeID(c.ID, p.ID)])
			}
		}
	}

	for _, c := range snap.SortedConnections() {
		u, okU := m.index[network.PortNodeID(c.FromComponentID, c.FromPortID)]
		v, okV := m.index[network.PortNodeID(c.ToComponentID, c.ToPortID)]
		if !okU || !okV {
			m.warnings = append(m.warnings, diag.Newf(diag.DanglingConnection, c.ID,
				"%s → %s does not resolve; skipped",
				network.PortNodeID(c.FromComponentID, c.FromPortID),
				network.PortNodeID(c.ToComponentID, c.ToPortID)))
			continue
		}
		m.addEdge(c.ID, EdgeConnection, u, v)
	}

	return m, nil
}

// addNode registers id and returns its index. A repeated id keeps its first kind.
func (m *Model) addNode(id string, kind nodeKind) int {
	if i, ok := m.index[id]; ok {
		return i
	}
	i := len(m.ids)
	m.ids = append(m.ids, id)
	m.kinds = append(m.kinds, kind)
	m.index[id] = i
	m.adj = append(m.adj, nil)
	return i
}

func (m *Model) addEdge(id string, kind EdgeKind, u, v int) {
	pos := len(m.edges)
	m.edges = append(m.edges, Edge{ID: id, Kind: kind, U: u, V: v})
	m.adj[u] = append(m.adj[u], pos)
	if v != u {
		m.adj[v] = append(m.adj[v], pos)
	}
}

// NodeCount returns the number of model nodes.
func (m *Model) NodeCount() int { return len(m.ids) }

// Edges returns the model edges in insertion order.
func (m *Model) Edges() []Edge { return m.edges }

// Warnings returns the connections skipped while building.
func (m *Model) Warnings() []diag.Warning { return m.warnings }
