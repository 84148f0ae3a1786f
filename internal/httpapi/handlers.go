// SPDX-License-Identifier: MIT

package httpapi

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"runtime"
	"time"

	"github.com/bytedance/sonic"

	"github.com/katalvlaran/hydronet/topology"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Service   string            `json:"service"`
	Uptime    string            `json:"uptime"`
	Details   map[string]string `json:"details,omitempty"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health reports liveness.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.fail(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.respond(w, r, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   "hydrosim",
		Uptime:    time.Since(s.started).Round(time.Second).String(),
		Details:   map[string]string{"go_version": runtime.Version()},
	})
}

// Simulate runs the posted snapshot and answers with its report.
// 400: body unreadable or not a snapshot; 422: the run aborted.
func (s *Server) Simulate(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	res, err := s.sim.Run(r.Context(), snap)
	if err != nil {
		s.runFailed(w, err)
		return
	}
	s.respond(w, r, http.StatusOK, res.Report())
}

// Reachability answers with the reachable segment ids of the posted snapshot.
func (s *Server) Reachability(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	res, err := s.sim.Reachability(r.Context(), snap)
	if err != nil {
		s.runFailed(w, err)
		return
	}
	s.respond(w, r, http.StatusOK, res)
}

// snapshot decodes a POSTed body as YAML when the content type says so,
// JSON otherwise.
func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) (*topology.Snapshot, bool) {
	if r.Method != http.MethodPost {
		s.fail(w, http.StatusMethodNotAllowed, "method not allowed")
		return nil, false
	}
	defer r.Body.Close()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(w, http.StatusRequestEntityTooLarge, "body exceeds limit")
			return nil, false
		}
		s.fail(w, http.StatusBadRequest, "failed to read body")
		return nil, false
	}

	format := topology.FormatJSON
	if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt == "application/yaml" || mt == "application/x-yaml" || mt == "text/yaml" {
		format = topology.FormatYAML
	}
	snap, err := topology.Decode(body, format)
	if err != nil {
		s.fail(w, http.StatusBadRequest, "invalid snapshot: "+err.Error())
		return nil, false
	}
	return snap, true
}

func (s *Server) runFailed(w http.ResponseWriter, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		s.fail(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	s.fail(w, http.StatusUnprocessableEntity, err.Error())
}

func (s *Server) fail(w http.ResponseWriter, status int, msg string) {
	s.log.Debug().Int("status", status).Str("error", msg).Msg("request failed")
	s.write(w, status, ErrorResponse{Error: msg}, false)
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	s.write(w, status, v, r.URL.Query().Get("pretty") == "true")
}

func (s *Server) write(w http.ResponseWriter, status int, v interface{}, pretty bool) {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = sonic.ConfigStd.MarshalIndent(v, "", "  ")
	} else {
		data, err = sonic.ConfigStd.Marshal(v)
	}
	if err != nil {
		s.log.Error().Err(err).Msg("encoding response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(append(data, '\n')); err != nil {
		s.log.Debug().Err(err).Msg("writing response")
	}
}
