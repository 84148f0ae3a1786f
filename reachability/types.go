// SPDX-License-Identifier: MIT

package reachability

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/hydronet/diag"
)

// ErrSnapshotNil is returned when a nil snapshot is analyzed.
var ErrSnapshotNil = errors.New("reachability: snapshot is nil")

// EdgeKind tells connections from chip-internal segments.
type EdgeKind uint8

const (
	EdgeConnection EdgeKind = iota
	EdgeInternal
)

// Edge is an undirected link of the model.
type Edge struct {
	ID   string
	Kind EdgeKind
	U, V int
}

// Result is the outcome of one walk.
type Result struct {
	Connections []string       `json:"connections"`
	Internal    []string       `json:"internal"`
	Nodes       []string       `json:"nodes"`
	Warnings    []diag.Warning `json:"warnings,omitempty"`

	reached map[string]bool
}

// Segments returns the sorted, deduplicated union of reachable connection
// and internal ids.
func (r *Result) Segments() []string {
	out := make([]string, 0, len(r.Connections)+len(r.Internal))
	out = append(out, r.Connections...)
	out = append(out, r.Internal...)
	sort.Strings(out)

	n := 0
	for i, id := range out {
		if i > 0 && id == out[n-1] {
			continue
		}
		out[n] = id
		n++
	}
	return out[:n]
}

// Reachable reports whether id (a segment or a port node id) was reached.
func (r *Result) Reachable(id string) bool { return r.reached[id] }

// Change is the highlight delta produced by Tracker.Update.
type Change struct {
	Highlighted []string `json:"highlighted"`
	Cleared     []string `json:"cleared"`
	// Skipped is true when the fingerprint matched and no walk ran.
	Skipped bool `json:"skipped"`
}

// Empty reports whether the change alters no highlight.
func (c Change) Empty() bool { return len(c.Highlighted) == 0 && len(c.Cleared) == 0 }

// Option configures Analyze and Tracker.
type Option func(*Options)

// Options holds walk parameters.
type Options struct {
	// Ctx is checked once per dequeued node.
	Ctx    context.Context
	Logger zerolog.Logger
}

// DefaultOptions returns a background context and a no-op logger.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Logger: zerolog.Nop()}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
