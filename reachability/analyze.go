// SPDX-License-Identifier: MIT

package reachability

import (
	"sort"

	"github.com/katalvlaran/hydronet/topology"
)

// walker holds the mutable state of one walk.
type walker struct {
	m       *Model
	opts    Options
	queue   []int
	visited []bool
	marked  []bool // per edge
}

// Analyze builds the model of snap and walks it from every pump port.
// It only fails on a nil snapshot or a cancelled context.
func Analyze(snap *topology.Snapshot, opts ...Option) (*Result, error) {
	m, err := BuildModel(snap)
	if err != nil {
		return nil, err
	}
	return m.Walk(opts...)
}

// Walk runs the multi-source walk over an already built model.
func (m *Model) Walk(opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		m:       m,
		opts:    o,
		queue:   make([]int, 0, len(m.ids)),
		visited: make([]bool, len(m.ids)),
		marked:  make([]bool, len(m.edges)),
	}

	// node indices follow sorted component order, so seeds are in id order
	for i, k := range m.kinds {
		if k == nodePump {
			w.enqueue(i)
		}
	}
	if err := w.loop(); err != nil {
		return nil, err
	}

	res := w.result()
	o.Logger.Debug().
		Int("nodes", len(res.Nodes)).
		Int("connections", len(res.Connections)).
		Int("internal", len(res.Internal)).
		Msg("reachability walk done")

	return res, nil
}

func (w *walker) enqueue(i int) {
	w.visited[i] = true
	w.queue = append(w.queue, i)
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		u := w.queue[0]
		w.queue = w.queue[1:]
		if w.m.kinds[u] == nodeOutlet {
			continue
		}
		for _, pos := range w.m.adj[u] {
			e := w.m.edges[pos]
			w.marked[pos] = true
			v := e.V
			if v == u {
				v = e.U
			}
			if !w.visited[v] {
				w.enqueue(v)
			}
		}
	}
	return nil
}

func (w *walker) result() *Result {
	res := &Result{
		Connections: []string{},
		Internal:    []string{},
		Nodes:       []string{},
		Warnings:    w.m.warnings,
		reached:     make(map[string]bool),
	}
	// unvalidated snapshots may give a connection the id of a chip
	type edgeKey struct {
		kind EdgeKind
		id   string
	}
	seen := make(map[edgeKey]bool)
	for pos, ok := range w.marked {
		if !ok {
			continue
		}
		e := w.m.edges[pos]
		res.reached[e.ID] = true
		k := edgeKey{e.Kind, e.ID}
		if seen[k] {
			continue
		}
		seen[k] = true
		if e.Kind == EdgeConnection {
			res.Connections = append(res.Connections, e.ID)
		} else {
			res.Internal = append(res.Internal, e.ID)
		}
	}
	for i, ok := range w.visited {
		if ok {
			res.reached[w.m.ids[i]] = true
			res.Nodes = append(res.Nodes, w.m.ids[i])
		}
	}
	sort.Strings(res.Connections)
	sort.Strings(res.Internal)
	sort.Strings(res.Nodes)
	return res
}
