// SPDX-License-Identifier: MIT

package topology

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Index returns component id → component. Later duplicates win; run
// Validate first if duplicates matter.
func (s *Snapshot) Index() map[string]*Component {
	idx := make(map[string]*Component, len(s.Components))
	for i := range s.Components {
		idx[s.Components[i].ID] = &s.Components[i]
	}
	return idx
}

// SortedComponents returns pointers to the components ordered by id.
func (s *Snapshot) SortedComponents() []*Component {
	out := make([]*Component, len(s.Components))
	for i := range s.Components {
		out[i] = &s.Components[i]
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SortedConnections returns pointers to the connections ordered by id.
func (s *Snapshot) SortedConnections() []*Connection {
	out := make([]*Connection, len(s.Connections))
	for i := range s.Connections {
		out[i] = &s.Connections[i]
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Validate checks the structural rules that do not depend on references
// between records: ids present and unique across components and
// connections, chip types known, passive chips exposing the right number of
// ports. Dangling port references are left to
// the graph builder, which reports them all at once.
//
// Components with zero ports are accepted; the builder ignores them.
func (s *Snapshot) Validate() error {
	var problems []string

	seen := make(map[string]bool, len(s.Components))
	for i := range s.Components {
		c := &s.Components[i]
		if c.ID == "" {
			problems = append(problems, fmt.Sprintf("component #%d has an empty id", i))
			continue
		}
		if seen[c.ID] {
			problems = append(problems, fmt.Sprintf("duplicate component id %q", c.ID))
		}
		seen[c.ID] = true

		if !c.Type.Known() {
			problems = append(problems, fmt.Sprintf("component %q has unknown type %q", c.ID, c.Type))
		}

		ports := make(map[string]bool, len(c.Ports))
		for _, p := range c.Ports {
			switch {
			case p.ID == "":
				problems = append(problems, fmt.Sprintf("component %q has a port with an empty id", c.ID))
			case ports[p.ID]:
				problems = append(problems, fmt.Sprintf("component %q repeats port id %q", c.ID, p.ID))
			}
			ports[p.ID] = true
		}

		if want, ok := portCounts[c.Type]; ok && len(c.Ports) > 0 && len(c.Ports) != want {
			problems = append(problems, fmt.Sprintf("component %q (%s) has %d ports, want %d", c.ID, c.Type, len(c.Ports), want))
		}
	}

	conns := make(map[string]bool, len(s.Connections))
	for i := range s.Connections {
		c := &s.Connections[i]
		switch {
		case c.ID == "":
			problems = append(problems, fmt.Sprintf("connection #%d has an empty id", i))
		case conns[c.ID]:
			problems = append(problems, fmt.Sprintf("duplicate connection id %q", c.ID))
		case seen[c.ID]:
			problems = append(problems, fmt.Sprintf("connection id %q is also a component id", c.ID))
		}
		conns[c.ID] = true
	}

	if math.IsNaN(s.ViscosityPaS) || math.IsInf(s.ViscosityPaS, 0) || s.ViscosityPaS < 0 {
		problems = append(problems, fmt.Sprintf("viscosity %g is not a finite non-negative value", s.ViscosityPaS))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSnapshot, strings.Join(problems, "; "))
	}
	return nil
}

// Fingerprint hashes every field that affects connectivity or physics, in a
// canonical order. Positions are excluded, so moving a component on the
// canvas leaves the fingerprint unchanged.
func (s *Snapshot) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	num := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}
	str := func(v string) {
		_, _ = d.WriteString(v)
		_, _ = d.Write([]byte{0})
	}

	num(s.ViscosityPaS)
	for _, c := range s.SortedComponents() {
		str("C")
		str(c.ID)
		str(string(c.Type))
		num(c.Resistance)
		num(c.SegmentResistance)
		if c.Channel != nil {
			num(c.Channel.LengthM)
			num(c.Channel.WidthM)
			num(c.Channel.DepthM)
		}

		ports := make([]string, 0, len(c.Ports))
		for _, p := range c.Ports {
			ports = append(ports, p.ID+"\x01"+string(p.Role))
		}
		sort.Strings(ports)
		for _, p := range ports {
			str(p)
		}

		keys := make([]string, 0, len(c.PumpPressures))
		for k := range c.PumpPressures {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			str(k)
			num(c.PumpPressures[k])
		}
	}
	for _, c := range s.SortedConnections() {
		str("L")
		str(c.ID)
		str(c.FromComponentID)
		str(c.FromPortID)
		str(c.ToComponentID)
		str(c.ToPortID)
		num(c.Resistance)
		num(c.LengthM)
		num(c.InnerDiameterM)
	}

	return d.Sum64()
}
