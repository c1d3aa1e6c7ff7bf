// Package search provides options, error definitions and the result type
// shared by every search strategy.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// DefaultDeepeningCap is the number of depth bounds (0..cap-1) tried by
// IterativeDeepening before it reports "not found".
const DefaultDeepeningCap = 100

// Sentinel errors for search execution.
var (
	// ErrNilSpace is returned if a nil state space is passed.
	ErrNilSpace = errors.New("search: state space is nil")

	// ErrNilHeuristic is returned when an informed strategy gets no heuristic.
	ErrNilHeuristic = errors.New("search: heuristic is nil")

	// ErrBadDepthBound is returned by DepthLimited for a negative bound.
	ErrBadDepthBound = errors.New("search: depth bound must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm and Run for unknown names.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. a zero deepening cap), it is recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters shared by all strategies.
type Options struct {
	// Ctx parents the telemetry span of the run. Searches are not cancellable.
	Ctx context.Context

	// Logger receives a debug record per expansion.
	Logger *slog.Logger

	// DeepeningCap bounds IterativeDeepening to depths 0..DeepeningCap-1.
	DeepeningCap int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a logger that discards everything
//   - DeepeningCap == DefaultDeepeningCap
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Logger:       slog.New(slog.DiscardHandler),
		DeepeningCap: DefaultDeepeningCap,
	}
}

// WithContext sets the context used as parent of the run's span.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes expansion narration to l at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithDeepeningCap overrides the number of bounds IterativeDeepening tries.
//
//	n ≥ 1: bounds 0..n-1
//	n < 1: invalid option → ErrOptionViolation
func WithDeepeningCap(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: deepening cap must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.DeepeningCap = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Result is the outcome of one search run.
//   - Found: a goal state was reached (for HillClimbing: the walk ended on a goal).
//   - Path: states from start to the reached state, both included; nil when not found,
//     except for HillClimbing, which always returns its walk.
//   - Visited: states expanded before the run ended. The goal whose pop ends the run
//     is not counted; re-opened states count once per expansion; IterativeDeepening
//     sums over its iterations; HillClimbing counts the states on its walk.
//   - Cost: summed transition cost along Path.
//   - CostTracked: the strategy orders by path cost, so Cost is minimal (UCS, A*
//     with an optimistic heuristic).
type Result[S comparable] struct {
	Algorithm   Algorithm
	Found       bool
	Path        []S
	Visited     int
	Cost        float64
	CostTracked bool
}

// Len returns the number of transitions on Path.
func (r *Result[S]) Len() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}
