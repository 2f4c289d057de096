// Package prim defines result types, configuration options and sentinel
// errors for the MST builder. See prim.go for the algorithm itself.
package prim

import (
	"errors"

	"github.com/katalvlaran/spantree/core"
)

// Sentinel errors returned by Build.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Build.
	ErrNilGraph = errors.New("prim: graph is nil")

	// ErrEmptyStart indicates that no start vertex was specified.
	// Build cannot grow a tree without a valid start.
	ErrEmptyStart = errors.New("prim: empty start vertex")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	// Prim's greedy choice is only correct for non-negative weights, so the
	// whole edge set is checked before construction begins.
	ErrNegativeWeight = errors.New("prim: negative edge weight encountered")
)

// Step is one admission in the construction trace.
//
// Index is 1-based: the k-th admitted edge has Index == k. Visited is the
// sorted snapshot of the visited set immediately after the admission, and
// TotalCost is the running cost after the admission.
type Step struct {
	Index     int       // 1-based step number
	Edge      core.Edge // admitted edge; From already in tree, To newly admitted
	Visited   []string  // sorted visited-set snapshot after admission
	TotalCost int64     // running total cost after admission
}

// Result holds the outcome of one Build invocation:
//   - Edges: admitted tree edges in admission order. For each edge, From was
//     already in the growing tree and To is the vertex it admitted.
//   - TotalCost: sum of admitted edge weights.
//   - Complete: true iff the visited set covers every vertex of the graph.
//     False means the graph is not connected from start and Edges spans only
//     the start vertex's component.
//   - Trace: per-admission snapshots when WithTrace() was supplied, nil
//     otherwise. len(Trace) == len(Edges) when present.
type Result struct {
	Edges     []core.Edge
	TotalCost int64
	Complete  bool
	Trace     []Step
}

// Options holds parameters and callbacks to customize Build.
type Options struct {
	// Trace records a Step per admission into Result.Trace.
	Trace bool

	// OnAdmit is called after each admission with the fresh Step,
	// independent of Trace. Useful for live rendering.
	OnAdmit func(Step)
}

// Option configures Build behavior via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
//   - no trace recorded
//   - no-op OnAdmit hook.
func DefaultOptions() Options {
	return Options{
		Trace:   false,
		OnAdmit: func(Step) {},
	}
}

// WithTrace enables recording of the per-admission trace in Result.Trace.
func WithTrace() Option {
	return func(o *Options) {
		o.Trace = true
	}
}

// WithOnAdmit registers a callback invoked after every admission.
// A nil fn is ignored.
func WithOnAdmit(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAdmit = fn
		}
	}
}
