// SPDX-License-Identifier: MIT

package simulation

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/hydronet/diag"
	"github.com/katalvlaran/hydronet/flow"
)

// Results is the outcome of a successful run.
type Results struct {
	RunID uuid.UUID

	// NodePressures maps node id → pressure in Pa. NaN marks a numerical failure.
	NodePressures map[string]float64
	// SegmentFlows maps segment id ("<node>--<node>") → flow.
	SegmentFlows map[string]flow.SegmentFlow

	Warnings []diag.Warning
	// Errors holds per-node numerical failures; the run itself succeeded.
	Errors []error

	Nodes    int
	Segments int
	Duration time.Duration
}

// NodeIDs returns the node ids in sorted order.
func (r *Results) NodeIDs() []string {
	ids := make([]string, 0, len(r.NodePressures))
	for id := range r.NodePressures {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SegmentIDs returns the segment ids in sorted order.
func (r *Results) SegmentIDs() []string {
	ids := make([]string, 0, len(r.SegmentFlows))
	for id := range r.SegmentFlows {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Report is the wire form of Results. JSON has no NaN, so undefined values
// are null.
type Report struct {
	RunID         string              `json:"run_id"`
	NodePressures map[string]*float64 `json:"node_pressures"`
	SegmentFlows  []FlowReport        `json:"segment_flows"`
	Warnings      []diag.Warning      `json:"warnings"`
	Errors        []string            `json:"errors"`
	Nodes         int                 `json:"nodes"`
	Segments      int                 `json:"segments"`
	DurationMS    float64             `json:"duration_ms"`
}

// FlowReport is one segment of a Report.
type FlowReport struct {
	ID         string   `json:"id"`
	Node1      string   `json:"node1"`
	Node2      string   `json:"node2"`
	From       string   `json:"from"`
	To         string   `json:"to"`
	Flow       *float64 `json:"flow"`
	Resistance float64  `json:"resistance"`
	Kind       string   `json:"kind"`
	Sources    []string `json:"sources"`
}

// Report converts r into its wire form, flows sorted by id.
func (r *Results) Report() Report {
	rep := Report{
		RunID:         r.RunID.String(),
		NodePressures: make(map[string]*float64, len(r.NodePressures)),
		SegmentFlows:  make([]FlowReport, 0, len(r.SegmentFlows)),
		Warnings:      r.Warnings,
		Errors:        make([]string, 0, len(r.Errors)),
		Nodes:         r.Nodes,
		Segments:      r.Segments,
		DurationMS:    float64(r.Duration) / float64(time.Millisecond),
	}
	if rep.Warnings == nil {
		rep.Warnings = []diag.Warning{}
	}
	for id, p := range r.NodePressures {
		rep.NodePressures[id] = finiteOrNil(p)
	}
	for _, id := range r.SegmentIDs() {
		f := r.SegmentFlows[id]
		rep.SegmentFlows = append(rep.SegmentFlows, FlowReport{
			ID:         f.ID,
			Node1:      f.Node1ID,
			Node2:      f.Node2ID,
			From:       f.From,
			To:         f.To,
			Flow:       finiteOrNil(f.Flow),
			Resistance: f.Resistance,
			Kind:       f.Kind.String(),
			Sources:    f.Sources,
		})
	}
	for _, err := range r.Errors {
		rep.Errors = append(rep.Errors, err.Error())
	}
	return rep
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
