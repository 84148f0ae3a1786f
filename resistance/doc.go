// SPDX-License-Identifier: MIT

// Package resistance computes hydraulic resistance for the two resistive
// elements found in a microfluidic circuit: round tubing and rectangular
// microchannels etched into a chip.
//
// What
//
//   - Tubing: Hagen–Poiseuille, R = 8·μ·L / (π·r⁴).
//   - Channel: the rectangular cross-section is reduced to its hydraulic
//     diameter Dh = 2·w·d / (w + d) and fed into the circular formula with
//     r = Dh/2. This is an approximation; it is not the exact series
//     solution for a rectangular duct and overestimates resistance for
//     high aspect ratios.
//
// Units
//
//	length, width, depth, radius: metres
//	viscosity:                    Pa·s
//	resistance:                   Pa·s/m³
//
// All functions are pure and deterministic. Invalid geometry is reported as
// ErrInvalidResistance, never as a zero or infinite resistance.
//
// Complexity: O(1) per call.
package resistance
