// SPDX-License-Identifier: MIT

package simulation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/hydronet/flow"
	"github.com/katalvlaran/hydronet/metrics"
	"github.com/katalvlaran/hydronet/network"
	"github.com/katalvlaran/hydronet/reachability"
	"github.com/katalvlaran/hydronet/solver"
	"github.com/katalvlaran/hydronet/topology"
)

// Operation names reported to the metrics recorder.
const (
	OpSimulate     = "simulate"
	OpReachability = "reachability"
)

// ErrSnapshotNil is returned when Run is given a nil snapshot.
var ErrSnapshotNil = errors.New("simulation: snapshot is nil")

// Simulator runs snapshots through the pipeline. It is safe for concurrent use.
type Simulator struct {
	opts Options
}

// New returns a Simulator configured by opts.
func New(opts ...Option) *Simulator {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Simulator{opts: o}
}

// Run validates snap, builds its network, solves it and computes flows.
// A nil ctx is treated as context.Background.
func (s *Simulator) Run(ctx context.Context, snap *topology.Snapshot) (*Results, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := s.opts.Clock()
	runID := uuid.New()
	log := s.opts.Logger.With().Str("run_id", runID.String()).Logger()

	res, err := s.run(ctx, log, snap)
	elapsed := s.opts.Clock().Sub(start)
	s.opts.Recorder.Observe(ctx, OpSimulate, err == nil, elapsed)

	if err != nil {
		log.Warn().Err(err).Dur("duration", elapsed).Msg("simulation aborted")
		return nil, err
	}

	res.RunID = runID
	res.Duration = elapsed
	if no, ok := s.opts.Recorder.(metrics.NetworkObserver); ok {
		no.ObserveNetwork(res.Nodes, res.Segments, len(res.Warnings))
	}
	log.Info().
		Int("nodes", res.Nodes).
		Int("segments", res.Segments).
		Int("warnings", len(res.Warnings)).
		Int("errors", len(res.Errors)).
		Dur("duration", elapsed).
		Msg("simulation complete")

	return res, nil
}

func (s *Simulator) run(ctx context.Context, log zerolog.Logger, snap *topology.Snapshot) (*Results, error) {
	if snap == nil {
		return nil, ErrSnapshotNil
	}
	if err := stage(ctx, "validate"); err != nil {
		return nil, err
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	if err := stage(ctx, "build"); err != nil {
		return nil, err
	}
	g, err := network.Build(snap,
		network.WithViscosity(s.opts.ViscosityPaS),
		network.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	if err = stage(ctx, "solve"); err != nil {
		return nil, err
	}
	sol, err := solver.Solve(g,
		solver.WithEpsilon(s.opts.Epsilon),
		solver.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	if err = stage(ctx, "flow"); err != nil {
		return nil, err
	}
	flows, flowWarnings, err := flow.Compute(g, sol)
	if err != nil {
		return nil, err
	}

	res := &Results{
		NodePressures: make(map[string]float64, g.NodeCount()),
		SegmentFlows:  make(map[string]flow.SegmentFlow, len(flows)),
		Errors:        sol.Errors,
		Nodes:         g.NodeCount(),
		Segments:      g.SegmentCount(),
	}
	res.Warnings = append(res.Warnings, g.Warnings()...)
	res.Warnings = append(res.Warnings, sol.Warnings...)
	res.Warnings = append(res.Warnings, flowWarnings...)

	for h, n := range g.Nodes() {
		res.NodePressures[n.ID] = sol.Pressure(network.NodeHandle(h))
	}
	for _, f := range flows {
		res.SegmentFlows[f.ID] = f
	}

	return res, nil
}

// Reachability runs the topological walk on snap with the simulator's
// logger and recorder.
func (s *Simulator) Reachability(ctx context.Context, snap *topology.Snapshot) (*reachability.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := s.opts.Clock()
	res, err := reachability.Analyze(snap,
		reachability.WithContext(ctx),
		reachability.WithLogger(s.opts.Logger),
	)
	s.opts.Recorder.Observe(ctx, OpReachability, err == nil, s.opts.Clock().Sub(start))
	return res, err
}

// stage reports a cancelled context before the named stage starts.
func stage(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("simulation: cancelled before %s: %w", name, err)
	}
	return nil
}
