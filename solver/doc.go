// SPDX-License-Identifier: MIT

// Package solver computes node pressures of a network.Graph by nodal
// analysis, the hydraulic analogue of DC circuit analysis.
//
// For every unknown node i, Kirchhoff's current law gives
//
//	Σ_j (p_i − p_j) / R_ij = 0
//
// over its incident segments. Stamping conductances g = 1/R yields A·x = B:
//
//	A[i][i] += g                    for every incident segment
//	A[i][j] -= g                    when neighbour j is unknown
//	B[i]    += g · p_j              when neighbour j has a known pressure
//
// Rows are ordered by node id, so identical topologies give bit-identical
// results. The system is solved with matrix.LU.
//
// Recoverable conditions
//
//   - An unknown node that cannot reach any pump or outlet through valid
//     segments (no segments at all, or a floating island of chips) gets an
//     identity row, resolves to 0 Pa, and is reported as an IsolatedNode
//     warning. The connected remainder is unaffected.
//   - A non-finite solved value marks only that node NaN and records a
//     *NodeError wrapping ErrSolverNumerical.
//
// Abort conditions
//
//   - ErrNoConnections: unknown nodes exist but the graph has no valid segment.
//   - ErrSingularNetwork: a non-positive diagonal, or an LU pivot within
//     epsilon of zero relative to its own row.
//
// Complexity: O(V + E) to assemble, O(n³) to factor, n = number of unknowns.
package solver
