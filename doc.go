// SPDX-License-Identifier: MIT

// Package hydronet simulates steady laminar flow through microfluidic
// circuits: chips, pumps and outlets joined by tubing.
//
// What is inside?
//
//	A snapshot of placed components becomes a resistive network, and nodal
//	analysis (the DC-circuit analogue: pressure ↔ voltage, flow ↔ current,
//	hydraulic resistance ↔ electrical resistance) yields the pressure at
//	every port and the flow through every segment.
//
// Packages, leaves first:
//
//	resistance/   — Hagen–Poiseuille tubing and rectangular-channel resistance
//	topology/     — snapshot records, validation, YAML/JSON loading, fingerprint
//	diag/         — warning kinds shared by every stage
//	network/      — node arena, canonical segment keys, graph builder
//	matrix/       — dense matrix, Doolittle LU, substitution
//	solver/       — nodal pressures, floating-island pinning
//	flow/         — signed per-segment flow
//	reachability/ — pump-to-segment connectivity for highlighting, change tracker
//	simulation/   — the build → solve → flow pipeline with logging and metrics
//	metrics/      — Prometheus recorder
//
// Quick example:
//
//	pump(1000 Pa) ──1e9── [chip 2e9] ──1e9── outlet(0 Pa)
//
//	chip:a = 750 Pa, chip:b = 250 Pa, flow = 2.5e-7 m³/s everywhere.
//
// Units are SI throughout: Pa, Pa·s/m³, m, m³/s, Pa·s. Conversion to
// display units (mbar, µL/min) belongs to the caller.
//
// The hydrosim command (cmd/hydrosim) wraps the pipeline as a CLI and an
// HTTP API.
package hydronet
