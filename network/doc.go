// SPDX-License-Identifier: MIT

// Package network holds the resistive graph the solver works on and the
// builder that derives it from a topology.Snapshot.
//
// What
//
//   - Node: one pressure value. Roles: Pump and Outlet (known pressure),
//     Port and Junction (unknown).
//   - Segment: a resistive element between two nodes, keyed by a canonical
//     SegmentKey so (u,v) and (v,u) name the same segment.
//   - Graph: an arena of nodes addressed by NodeHandle, segments in insertion
//     order, undirected adjacency and per-node incidence.
//
// Build rules
//
//  1. One Port node per exposed port ("<component>:<port>").
//  2. Pump ports become Pump nodes at their configured pressure (0 Pa, with a
//     warning, when unset).
//  3. Outlet ports become Outlet nodes at 0 Pa (ground reference).
//  4. Straight/Meander: one InternalChip segment between the two ports.
//  5. T/X: one synthesized Junction node ("<component>#junction") and one
//     InternalChip segment from it to each port (star, not mesh).
//  6. Each connection: one Tubing segment between its two ports.
//  7. Segments with R ≤ 0 or non-finite R are not stored, but their endpoints
//     stay linked in adjacency so isolation can still be detected.
//
// Dangling references abort the build with ErrUnresolvedReference listing
// every missing port.
//
// Determinism
//
//	Components and connections are processed in id order and adjacency lists
//	are kept sorted, so the same snapshot always yields the same arena.
//
// Concurrency
//
//	A Graph is built once per run and then only read. It is not safe for
//	concurrent mutation.
//
// Complexity: Build is O(V + E·deg) time, O(V + E) memory.
package network
