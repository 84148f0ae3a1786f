// SPDX-License-Identifier: MIT

// Package config loads the process configuration of the hydrosim binary from
// the environment (prefix HYDROSIM_), after merging any .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment prefix of every setting.
const Prefix = "hydrosim"

// Config is the full process configuration.
type Config struct {
	Log  LogConfig  `envconfig:"LOG"`
	HTTP HTTPConfig `envconfig:"HTTP"`
	Sim  SimConfig  `envconfig:"SIM"`
}

// LogConfig controls the process logger.
// Format is json or console; Output is stdout, stderr or file.
type LogConfig struct {
	Level    string `envconfig:"LEVEL" default:"info"`
	Format   string `envconfig:"FORMAT" default:"json"`
	Output   string `envconfig:"OUTPUT" default:"stderr"`
	FilePath string `envconfig:"FILE" default:"logs/hydrosim.log"`
}

// HTTPConfig controls the API server.
type HTTPConfig struct {
	Addr           string        `envconfig:"ADDR" default:":8080"`
	ReadTimeout    time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout   time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`
	MaxBodyBytes   int64         `envconfig:"MAX_BODY_BYTES" default:"1048576"`
	AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	Metrics        bool          `envconfig:"METRICS" default:"true"`
}

// SimConfig holds solver defaults applied when a snapshot does not set them.
type SimConfig struct {
	ViscosityPaS float64 `envconfig:"VISCOSITY" default:"0.001"`
	Epsilon      float64 `envconfig:"EPSILON" default:"1e-12"`
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Load merges envFiles (".env" when none is given) into the environment and
// decodes the HYDROSIM_ variables. Missing env files are not an error;
// variables already set in the environment win over file values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges that envconfig cannot express.
func (c *Config) Validate() error {
	switch {
	case !(c.Sim.ViscosityPaS > 0) || math.IsInf(c.Sim.ViscosityPaS, 0):
		return fmt.Errorf("%w: viscosity %g must be positive", ErrInvalidConfig, c.Sim.ViscosityPaS)
	case !(c.Sim.Epsilon >= 0) || math.IsInf(c.Sim.Epsilon, 0):
		return fmt.Errorf("%w: epsilon %g must be non-negative", ErrInvalidConfig, c.Sim.Epsilon)
	case c.HTTP.MaxBodyBytes <= 0:
		return fmt.Errorf("%w: max body bytes %d must be positive", ErrInvalidConfig, c.HTTP.MaxBodyBytes)
	}
	return nil
}
