// SPDX-License-Identifier: MIT

package network

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/hydronet/resistance"
)

// Option configures Build.
type Option func(*Options)

// Options holds Build parameters.
type Options struct {
	// Viscosity (Pa·s) used to derive resistances from geometry when the
	// snapshot does not carry its own.
	Viscosity float64

	// Logger receives a debug summary of every build.
	Logger zerolog.Logger
}

// DefaultOptions returns water viscosity and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Viscosity: resistance.WaterViscosity,
		Logger:    zerolog.Nop(),
	}
}

// WithViscosity overrides the default viscosity. Non-positive values are ignored.
func WithViscosity(mu float64) Option {
	return func(o *Options) {
		if mu > 0 {
			o.Viscosity = mu
		}
	}
}

// WithLogger sets the build logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
