// SPDX-License-Identifier: MIT

package reachability

import (
	"sync"

	"github.com/katalvlaran/hydronet/topology"
)

// Tracker keeps the current highlight across topology edits.
// It is safe for concurrent use.
type Tracker struct {
	mu     sync.Mutex
	opts   []Option
	primed bool
	fp     uint64
	last   *Result
}

// NewTracker returns a Tracker with nothing highlighted. opts apply to every walk.
func NewTracker(opts ...Option) *Tracker {
	return &Tracker{opts: opts}
}

// Update recomputes reachability for snap and returns the highlight delta.
// When snap has the fingerprint of the previous update the walk is skipped
// and an empty Change with Skipped set is returned.
func (t *Tracker) Update(snap *topology.Snapshot) (Change, error) {
	if snap == nil {
		return Change{}, ErrSnapshotNil
	}
	fp := snap.Fingerprint()

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.primed && fp == t.fp {
		return Change{Highlighted: []string{}, Cleared: []string{}, Skipped: true}, nil
	}

	res, err := Analyze(snap, t.opts...)
	if err != nil {
		return Change{}, err
	}

	var prev []string
	if t.last != nil {
		prev = t.last.Segments()
	}
	ch := diff(prev, res.Segments())

	t.primed = true
	t.fp = fp
	t.last = res

	return ch, nil
}

// Current returns the last result, nil before the first Update.
func (t *Tracker) Current() *Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}

// Reset clears the highlight and returns everything that was highlighted.
func (t *Tracker) Reset() Change {
	t.mu.Lock()
	defer t.mu.Unlock()

	ch := Change{Highlighted: []string{}, Cleared: []string{}}
	if t.last != nil {
		ch.Cleared = t.last.Segments()
	}
	t.primed = false
	t.fp = 0
	t.last = nil
	return ch
}

// diff compares two sorted id lists.
func diff(prev, next []string) Change {
	ch := Change{Highlighted: []string{}, Cleared: []string{}}
	i, j := 0, 0
	for i < len(prev) || j < len(next) {
		switch {
		case j == len(next) || (i < len(prev) && prev[i] < next[j]):
			ch.Cleared = append(ch.Cleared, prev[i])
			i++
		case i == len(prev) || next[j] < prev[i]:
			ch.Highlighted = append(ch.Highlighted, next[j])
			j++
		default:
			i++
			j++
		}
	}
	return ch
}
