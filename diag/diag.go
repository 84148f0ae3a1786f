// SPDX-License-Identifier: MIT

// Package diag holds the recoverable-condition vocabulary shared by the
// builder, the solver and the flow calculator. Abort-class conditions are
// plain errors returned by each stage; everything here is a Warning that
// travels alongside partial results.
package diag

import "fmt"

// Kind classifies a Warning.
type Kind string

const (
	// InvalidResistance: a segment was excluded because R ≤ 0 or non-finite.
	InvalidResistance Kind = "invalid_resistance"
	// IsolatedNode: an unknown node had no path to a known pressure; pinned to 0 Pa.
	IsolatedNode Kind = "isolated_node"
	// SolverNumerical: a solved pressure was non-finite; the node reads NaN.
	SolverNumerical Kind = "solver_numerical"
	// MissingPressure: a segment endpoint had no usable pressure; flow is NaN.
	MissingPressure Kind = "missing_pressure"
	// ZeroResistance: a zero resistance reached the flow stage; flow is NaN.
	ZeroResistance Kind = "zero_resistance"
	// DefaultPumpPressure: a pump port had no configured pressure; 0 Pa used.
	DefaultPumpPressure Kind = "default_pump_pressure"
	// DuplicateSegment: two segments shared a key and were merged in parallel.
	DuplicateSegment Kind = "duplicate_segment"
	// SelfLoop: a segment joined a node to itself and was dropped.
	SelfLoop Kind = "self_loop"
	// DanglingConnection: reachability skipped a connection with a missing endpoint.
	DanglingConnection Kind = "dangling_connection"
)

// Warning is a recoverable condition tied to one subject (node, segment,
// component or connection id).
type Warning struct {
	Kind    Kind   `json:"kind"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Newf builds a Warning with a formatted message.
func Newf(kind Kind, subject, format string, args ...interface{}) Warning {
	return Warning{Kind: kind, Subject: subject, Message: fmt.Sprintf(format, args...)}
}

// String renders "kind(subject): message".
func (w Warning) String() string {
	return fmt.Sprintf("%s(%s): %s", w.Kind, w.Subject, w.Message)
}

// Count returns how many warnings of kind k are in ws.
func Count(ws []Warning, k Kind) int {
	n := 0
	for _, w := range ws {
		if w.Kind == k {
			n++
		}
	}

	return n
}
