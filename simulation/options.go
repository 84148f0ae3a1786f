// SPDX-License-Identifier: MIT

package simulation

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/hydronet/metrics"
	"github.com/katalvlaran/hydronet/resistance"
	"github.com/katalvlaran/hydronet/solver"
)

// Option configures a Simulator.
type Option func(*Options)

// Options holds Simulator settings.
type Options struct {
	Logger   zerolog.Logger
	Recorder metrics.Recorder

	// ViscosityPaS applies to snapshots that leave their own at zero.
	ViscosityPaS float64
	Epsilon      float64

	// Clock stamps run durations.
	Clock func() time.Time
}

// DefaultOptions returns water viscosity, solver.DefaultEpsilon, a no-op
// logger and recorder, and time.Now.
func DefaultOptions() Options {
	return Options{
		Logger:       zerolog.Nop(),
		Recorder:     metrics.Nop{},
		ViscosityPaS: resistance.WaterViscosity,
		Epsilon:      solver.DefaultEpsilon,
		Clock:        time.Now,
	}
}

// WithLogger sets the logger; each run adds a run_id field.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithRecorder sets the metrics recorder. Nil is ignored.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

// WithViscosity sets the default fluid viscosity. Non-positive values are ignored.
func WithViscosity(mu float64) Option {
	return func(o *Options) {
		if mu > 0 {
			o.ViscosityPaS = mu
		}
	}
}

// WithEpsilon sets the solver singularity threshold. Negative values are ignored.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps >= 0 {
			o.Epsilon = eps
		}
	}
}

// WithClock replaces time.Now. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Clock = now
		}
	}
}
