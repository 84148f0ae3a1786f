// SPDX-License-Identifier: MIT

package resistance

import "errors"

// ErrInvalidResistance is returned when a geometry or a resistance value
// cannot describe a physical, finite, positive hydraulic resistance.
var ErrInvalidResistance = errors.New("resistance: invalid resistance")

// WaterViscosity is the dynamic viscosity of water at ~20 °C, in Pa·s.
const WaterViscosity = 1.0e-3

// poiseuilleFactor is the numerator constant of R = 8μL/(πr⁴).
const poiseuilleFactor = 8.0
