// SPDX-License-Identifier: MIT

// Package reachability answers a purely topological question: which
// connections and chip-internal segments currently carry fluid from some
// pump. It runs before any numeric solve, on every topology edit, to drive
// circuit highlighting.
//
// What
//
//   - Model: one node per component port plus one shared internal node per
//     T/X chip. Edges are the connections, the internal segment of each
//     two-port chip and the port-to-junction arms of T/X chips, all
//     undirected.
//   - Outlet ports are sinks. The walk enters them but never expands out of
//     them, so an outlet never feeds fluid back into the circuit.
//   - Analyze seeds one queue with every pump port (in id order) and runs a
//     single breadth-first walk. Every edge expanded from a visited node is
//     marked reachable.
//   - Connections that name a missing port are skipped with a warning, since
//     highlighting runs mid-edit on incomplete circuits.
//   - Tracker remembers the last result and reports which segment ids were
//     newly highlighted or cleared by an edit. Edits that keep the snapshot
//     fingerprint (moving a component on the canvas) skip the walk.
//
// Segment ids
//
//	connection:             the connection id
//	straight/meander chip:  the component id
//	T/X arm:                "<component>/<port>"
//
// These match the Sources recorded on network segments, so a highlighted id
// can be joined against simulation results.
//
// Determinism
//
//	Components, ports and connections are visited in id order; the result
//	sets are returned sorted.
//
// Complexity: O(P + E) time and memory for P ports and E edges. A T/X chip
// adds one node and at most four edges.
package reachability
