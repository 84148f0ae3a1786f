// SPDX-License-Identifier: MIT

// Package simulation runs the full pipeline on one snapshot:
// validate, build the resistive network, solve nodal pressures, derive
// segment flows.
//
// A run is synchronous and self-contained: every graph and matrix is rebuilt
// from the snapshot, so a Simulator holds only configuration and may be
// shared between goroutines. Abort-class failures (invalid snapshot,
// unresolved reference, no connections, singular network) return an error
// and no Results. Recoverable conditions travel in Results.Warnings and
// Results.Errors next to the partial answer.
//
// Context cancellation is checked between stages, never inside the solve.
package simulation
