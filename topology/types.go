// SPDX-License-Identifier: MIT

package topology

import "errors"

// Sentinel errors for snapshot handling.
var (
	// ErrInvalidSnapshot is returned by Validate for structural problems.
	ErrInvalidSnapshot = errors.New("topology: invalid snapshot")

	// ErrUnknownFormat is returned when a snapshot format cannot be inferred.
	ErrUnknownFormat = errors.New("topology: unknown snapshot format")
)

// ChipType is the catalogue variant of a placed component.
type ChipType string

const (
	Straight  ChipType = "straight"
	Meander   ChipType = "meander"
	TJunction ChipType = "t-junction"
	XJunction ChipType = "x-junction"
	Pump      ChipType = "pump"
	Outlet    ChipType = "outlet"
)

// portCounts lists the exact number of ports each passive chip exposes.
// Pumps and outlets are free-form.
var portCounts = map[ChipType]int{
	Straight:  2,
	Meander:   2,
	TJunction: 3,
	XJunction: 4,
}

// Known reports whether t is a supported chip type.
func (t ChipType) Known() bool {
	switch t {
	case Straight, Meander, TJunction, XJunction, Pump, Outlet:
		return true
	}
	return false
}

// IsJunction reports whether t is a multi-port junction chip (T or X).
func (t ChipType) IsJunction() bool { return t == TJunction || t == XJunction }

// IsTwoPort reports whether t is a two-port channel chip.
func (t ChipType) IsTwoPort() bool { return t == Straight || t == Meander }

// PortRole is informational; the simulator derives node roles from ChipType.
type PortRole string

const (
	RoleInlet         PortRole = "inlet"
	RoleOutlet        PortRole = "outlet"
	RoleBidirectional PortRole = "bidirectional"
)

// Port is an externally connectable point on a component.
type Port struct {
	ID   string   `json:"id" yaml:"id"`
	Role PortRole `json:"role,omitempty" yaml:"role,omitempty"`
}

// ChannelGeometry describes the etched channel of a chip, in metres.
// For T/X chips it describes a single arm.
type ChannelGeometry struct {
	LengthM float64 `json:"length_m" yaml:"length_m"`
	WidthM  float64 `json:"width_m" yaml:"width_m"`
	DepthM  float64 `json:"depth_m" yaml:"depth_m"`
}

// Position is the canvas location. It never affects simulation.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Component is one placed chip, pump or outlet.
//
// Resistance applies to two-port chips, SegmentResistance to each arm of a
// T/X chip. A zero value with Channel set means "derive from geometry".
// PumpPressures maps pump port ids to gauge pressure in Pa.
type Component struct {
	ID                string             `json:"id" yaml:"id"`
	Type              ChipType           `json:"type" yaml:"type"`
	Ports             []Port             `json:"ports" yaml:"ports"`
	Resistance        float64            `json:"resistance,omitempty" yaml:"resistance,omitempty"`
	SegmentResistance float64            `json:"segment_resistance,omitempty" yaml:"segment_resistance,omitempty"`
	Channel           *ChannelGeometry   `json:"channel,omitempty" yaml:"channel,omitempty"`
	PumpPressures     map[string]float64 `json:"pump_pressures,omitempty" yaml:"pump_pressures,omitempty"`
	Position          Position           `json:"position" yaml:"position"`
}

// HasPort reports whether the component exposes a port with the given id.
func (c *Component) HasPort(id string) bool {
	for _, p := range c.Ports {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Connection is a piece of tubing between two component ports.
// A zero Resistance with positive LengthM and InnerDiameterM means
// "derive from geometry".
type Connection struct {
	ID              string  `json:"id" yaml:"id"`
	FromComponentID string  `json:"from_component_id" yaml:"from_component_id"`
	FromPortID      string  `json:"from_port_id" yaml:"from_port_id"`
	ToComponentID   string  `json:"to_component_id" yaml:"to_component_id"`
	ToPortID        string  `json:"to_port_id" yaml:"to_port_id"`
	Resistance      float64 `json:"resistance,omitempty" yaml:"resistance,omitempty"`
	LengthM         float64 `json:"length_m,omitempty" yaml:"length_m,omitempty"`
	InnerDiameterM  float64 `json:"inner_diameter_m,omitempty" yaml:"inner_diameter_m,omitempty"`
}

// Snapshot is the immutable input of one simulation or reachability pass.
// ViscosityPaS of zero means "use the caller's default".
type Snapshot struct {
	Components   []Component  `json:"components" yaml:"components"`
	Connections  []Connection `json:"connections" yaml:"connections"`
	ViscosityPaS float64      `json:"viscosity_pa_s,omitempty" yaml:"viscosity_pa_s,omitempty"`
}
