// Package dijkstra defines core types and configuration options
// for the multi-source shortest-cost oracle.
//
// Dijkstra computes the minimum true cost from the closest of a set of source
// states to every reachable state, over a transition graph with non-negative
// costs. The graph may be the reverse of a state space's transitions, in which
// case the result is the optimal cost-to-goal of every state.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |states|, E = |transitions|
//	   • Each state is settled at most once.
//	   • Each relaxation may push into the priority queue (up to E pushes).
//	– Space: O(V + E)
//	   • O(V) for the cost and predecessor maps.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap; states farther than this are not settled.
//
// Errors (sentinel):
//
//	– ErrNoSources       if no source state is given.
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrNegativeWeight  if a negative transition cost is detected.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panic in option constructor).
//
// Example usage:
//
//	costs, prev, err := dijkstra.Dijkstra(g, []string{"A"}, dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("cost to B: %g, parent: %s\n", costs.Of("B"), prev["B"])
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvsearch/statespace"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSources indicates that no source state was supplied.
	ErrNoSources = errors.New("dijkstra: no source states")

	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative transition cost was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Graph is the read-only view of a transition relation the oracle needs.
// *statespace.Graph and *statespace.Space satisfy it.
type Graph[S comparable] interface {
	// Successors returns the outgoing transitions of s.
	Successors(s S) []statespace.Transition[S]

	// Edges returns every transition; used by the negative-cost pre-scan.
	Edges() []statespace.Edge[S]
}

// Costs maps each reached state to its minimal cost from the closest source.
// Absent states are unreachable (implicitly infinite).
type Costs[S comparable] map[S]float64

// Of returns the cost of s, or +Inf if s was not reached.
func (c Costs[S]) Of(s S) float64 {
	if d, ok := c[s]; ok {
		return d
	}

	return math.Inf(1)
}

// Reached reports whether s has a finite cost.
func (c Costs[S]) Reached(s S) bool {
	_, ok := c[s]
	return ok
}

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath  – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance – cap on distances to explore. Must be ≥ 0. Default +Inf (no cap).
type Options struct {
	ReturnPath  bool    // Whether to return the predecessor map
	MaxDistance float64 // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// States whose shortest distance would exceed this value are not reached.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// no predecessor map, no distance cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}
