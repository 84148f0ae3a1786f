// SPDX-License-Identifier: MIT

package topology

// Convenience constructors for programmatic snapshots (tests, examples,
// scripted circuits). Port ids follow the catalogue conventions:
//
//	pump:      "out"
//	outlet:    "in"
//	straight:  "a", "b"
//	t-junction "a", "b", "c"
//	x-junction "a", "b", "c", "d"

// PumpPort, OutletPort are the default port ids of single-port pumps and outlets.
const (
	PumpPort   = "out"
	OutletPort = "in"
)

var junctionPorts = []string{"a", "b", "c", "d"}

// NewPump returns a single-port pump at the given pressure (Pa).
func NewPump(id string, pressurePa float64) Component {
	return Component{
		ID:            id,
		Type:          Pump,
		Ports:         []Port{{ID: PumpPort, Role: RoleOutlet}},
		PumpPressures: map[string]float64{PumpPort: pressurePa},
	}
}

// NewOutlet returns a single-port outlet (0 Pa reference).
func NewOutlet(id string) Component {
	return Component{
		ID:    id,
		Type:  Outlet,
		Ports: []Port{{ID: OutletPort, Role: RoleInlet}},
	}
}

// NewChannel returns a two-port straight chip with resistance R.
func NewChannel(id string, R float64) Component {
	return Component{
		ID:         id,
		Type:       Straight,
		Ports:      []Port{{ID: "a", Role: RoleBidirectional}, {ID: "b", Role: RoleBidirectional}},
		Resistance: R,
	}
}

// NewJunction returns a T (3 ports) or X (4 ports) chip with per-arm resistance r.
// Any other type yields a component without ports.
func NewJunction(id string, t ChipType, r float64) Component {
	n := 0
	switch t {
	case TJunction:
		n = 3
	case XJunction:
		n = 4
	}
	ports := make([]Port, n)
	for i := 0; i < n; i++ {
		ports[i] = Port{ID: junctionPorts[i], Role: RoleBidirectional}
	}
	return Component{ID: id, Type: t, Ports: ports, SegmentResistance: r}
}

// Connect returns a connection of resistance R between two ports.
func Connect(id, fromComponent, fromPort, toComponent, toPort string, R float64) Connection {
	return Connection{
		ID:              id,
		FromComponentID: fromComponent,
		FromPortID:      fromPort,
		ToComponentID:   toComponent,
		ToPortID:        toPort,
		Resistance:      R,
	}
}
