// SPDX-License-Identifier: MIT

// Package flow derives the volumetric flow through every segment of a solved
// network.
//
// What
//
//   - For a segment between node1 (p1) and node2 (p2): flow = (p1 − p2)/R in
//     m³/s, positive meaning node1 → node2.
//   - From/To name the upstream and downstream node ids: From is node1 when
//     flow ≥ 0, node2 otherwise. Swapping node1 and node2 flips the sign and
//     the labels, never the magnitude.
//   - A missing or non-finite endpoint pressure yields NaN flow and a
//     MissingPressure warning. R == 0 yields NaN flow and a ZeroResistance
//     warning. The segment is kept in both cases.
//
// Determinism
//
//	Flows come back in the graph's segment order.
//
// Complexity: O(E) time and memory.
package flow
