// SPDX-License-Identifier: MIT

// Package topology defines the immutable snapshot records the canvas hands to
// the simulator: placed components with their ports, and tubing connections
// between ports.
//
// A Snapshot is plain data. Nothing in this package knows about pressures or
// matrices; network.Build turns a Snapshot into a resistive graph and
// reachability.BuildModel turns it into a highlighting model.
//
// Snapshots can be read from YAML or JSON (Load, Decode) using snake_case
// field names:
//
//	components:
//	  - id: pump1
//	    type: pump
//	    ports: [{id: out, role: outlet}]
//	    pump_pressures: {out: 10000}
//	  - id: chip1
//	    type: straight
//	    ports: [{id: a}, {id: b}]
//	    resistance: 1.0e12
//	connections:
//	  - id: c1
//	    from_component_id: pump1
//	    from_port_id: out
//	    to_component_id: chip1
//	    to_port_id: a
//	    length_m: 0.2
//	    inner_diameter_m: 0.0005
package topology
