// SPDX-License-Identifier: MIT

// Package httpapi exposes the simulator over HTTP: health, one-shot
// simulation, reachability and Prometheus metrics.
package httpapi

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/hydronet/internal/config"
	"github.com/katalvlaran/hydronet/metrics"
	"github.com/katalvlaran/hydronet/simulation"
)

// Server holds the handler dependencies.
type Server struct {
	sim     *simulation.Simulator
	log     zerolog.Logger
	cfg     config.HTTPConfig
	gather  prometheus.Gatherer
	started time.Time
}

// New returns a Server. A nil gatherer disables /metrics.
func New(sim *simulation.Simulator, cfg config.HTTPConfig, log zerolog.Logger, gather prometheus.Gatherer) *Server {
	return &Server{sim: sim, log: log, cfg: cfg, gather: gather, started: time.Now()}
}

// Handler returns the routed handler wrapped in CORS.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.Health)
	mux.HandleFunc("/simulate", s.Simulate)
	mux.HandleFunc("/reachability", s.Reachability)
	if s.gather != nil && s.cfg.Metrics {
		mux.Handle("/metrics", metrics.Handler(s.gather))
	}
	return CORS(s.cfg.AllowedOrigins, mux)
}

// HTTPServer returns an http.Server for addr with the configured timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}
}
