// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/hydronet/diag"
	"github.com/katalvlaran/hydronet/resistance"
	"github.com/katalvlaran/hydronet/topology"
)

// builder carries the state of one Build call.
type builder struct {
	g          *Graph
	opts       Options
	viscosity  float64
	unresolved []string
}

// Build converts a snapshot into a resistive Graph.
//
// Returns ErrSnapshotNil for a nil snapshot and ErrUnresolvedReference
// (listing every dangling port) when a connection or pump pressure names a
// port that does not exist. Everything else is recoverable and recorded in
// Graph.Warnings.
func Build(snap *topology.Snapshot, opts ...Option) (*Graph, error) {
	if snap == nil {
		return nil, ErrSnapshotNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &builder{g: NewGraph(), opts: o, viscosity: o.Viscosity}
	if snap.ViscosityPaS > 0 {
		b.viscosity = snap.ViscosityPaS
	}

	components := snap.SortedComponents()
	// Stage 1: every port becomes a node; pumps and outlets get pressures.
	for _, c := range components {
		if err := b.addPorts(c); err != nil {
			return nil, err
		}
	}
	// Stage 2: internal wiring of each chip.
	for _, c := range components {
		if err := b.wireComponent(c); err != nil {
			return nil, err
		}
	}
	// Stage 3: tubing.
	for _, c := range snap.SortedConnections() {
		if err := b.wireConnection(c); err != nil {
			return nil, err
		}
	}

	if len(b.unresolved) > 0 {
		sort.Strings(b.unresolved)
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedReference, strings.Join(b.unresolved, "; "))
	}

	o.Logger.Debug().
		Int("nodes", b.g.NodeCount()).
		Int("segments", b.g.SegmentCount()).
		Int("warnings", len(b.g.warnings)).
		Float64("viscosity", b.viscosity).
		Msg("network built")

	return b.g, nil
}

// addPorts registers the component's port nodes and fixes pump/outlet pressures.
func (b *builder) addPorts(c *topology.Component) error {
	if len(c.Ports) == 0 {
		return nil
	}
	for _, p := range c.Ports {
		h, err := b.g.AddNode(Node{
			ID:          PortNodeID(c.ID, p.ID),
			Role:        RolePort,
			ComponentID: c.ID,
			PortID:      p.ID,
		})
		if err != nil {
			return err
		}

		switch c.Type {
		case topology.Pump:
			pressure, ok := c.PumpPressures[p.ID]
			if !ok {
				b.g.warn(diag.Newf(diag.DefaultPumpPressure, PortNodeID(c.ID, p.ID),
					"pump port has no configured pressure; using 0 Pa"))
			}
			if err = b.g.SetKnownPressure(h, RolePump, pressure); err != nil {
				return err
			}
		case topology.Outlet:
			if err = b.g.SetKnownPressure(h, RoleOutlet, 0); err != nil {
				return err
			}
		}
	}

	if c.Type == topology.Pump {
		// pressures configured for ports the pump does not expose
		keys := make([]string, 0, len(c.PumpPressures))
		for k := range c.PumpPressures {
			if !c.HasPort(k) {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.unresolved = append(b.unresolved, fmt.Sprintf("pump %q sets pressure on unknown port %q", c.ID, k))
		}
	}

	return nil
}

// wireComponent adds the InternalChip segments of two-port and junction chips.
func (b *builder) wireComponent(c *topology.Component) error {
	if len(c.Ports) == 0 {
		return nil
	}

	switch {
	case c.Type.IsTwoPort():
		if len(c.Ports) != 2 {
			return fmt.Errorf("network: component %q (%s) has %d ports, want 2", c.ID, c.Type, len(c.Ports))
		}
		u := b.mustPort(c.ID, c.Ports[0].ID)
		v := b.mustPort(c.ID, c.Ports[1].ID)
		R, err := b.componentResistance(c, c.Resistance)
		if err != nil {
			b.g.reject(u, v, c.ID, err)
			return nil
		}
		return b.g.AddSegment(u, v, R, KindInternalChip, c.ID)

	case c.Type.IsJunction():
		j, err := b.g.AddNode(Node{ID: JunctionID(c.ID), Role: RoleJunction, ComponentID: c.ID})
		if err != nil {
			return err
		}
		r, rErr := b.componentResistance(c, c.SegmentResistance)
		for _, p := range c.Ports {
			port := b.mustPort(c.ID, p.ID)
			if rErr != nil {
				b.g.reject(j, port, c.ID+"/"+p.ID, rErr)
				continue
			}
			if err = b.g.AddSegment(j, port, r, KindInternalChip, c.ID+"/"+p.ID); err != nil {
				return err
			}
		}
	}

	return nil
}

// wireConnection adds one Tubing segment, or records the dangling endpoints.
func (b *builder) wireConnection(c *topology.Connection) error {
	u, okU := b.g.Lookup(PortNodeID(c.FromComponentID, c.FromPortID))
	v, okV := b.g.Lookup(PortNodeID(c.ToComponentID, c.ToPortID))
	if !okU {
		b.unresolved = append(b.unresolved, fmt.Sprintf("connection %q: unknown port %s", c.ID, PortNodeID(c.FromComponentID, c.FromPortID)))
	}
	if !okV {
		b.unresolved = append(b.unresolved, fmt.Sprintf("connection %q: unknown port %s", c.ID, PortNodeID(c.ToComponentID, c.ToPortID)))
	}
	if !okU || !okV {
		return nil
	}

	R := c.Resistance
	if R == 0 && c.LengthM > 0 && c.InnerDiameterM > 0 {
		var err error
		if R, err = resistance.TubingFromDiameter(c.LengthM, c.InnerDiameterM, b.viscosity); err != nil {
			b.g.reject(u, v, c.ID, err)
			return nil
		}
	}

	return b.g.AddSegment(u, v, R, KindTubing, c.ID)
}

// componentResistance returns explicit, or derives it from the channel
// geometry when explicit is zero. A zero result with no geometry is passed
// through and rejected by AddSegment.
func (b *builder) componentResistance(c *topology.Component, explicit float64) (float64, error) {
	if explicit != 0 || c.Channel == nil {
		return explicit, nil
	}
	return resistance.Channel(c.Channel.LengthM, c.Channel.WidthM, c.Channel.DepthM, b.viscosity)
}

// mustPort resolves a port node registered by addPorts.
func (b *builder) mustPort(componentID, portID string) NodeHandle {
	h, _ := b.g.Lookup(PortNodeID(componentID, portID))
	return h
}
