package heuristic

import (
	"errors"
	"fmt"
)

// Sentinel errors for heuristic evaluation and verification.
var (
	// ErrMissingValue is returned when a heuristic has no value for a state.
	// It must propagate: silently defaulting would corrupt search order and
	// optimism/consistency conclusions.
	ErrMissingValue = errors.New("heuristic: missing value for state")

	// ErrNilHeuristic is returned when a nil Func is passed to a check.
	ErrNilHeuristic = errors.New("heuristic: heuristic function is nil")

	// ErrNilGraph is returned when a nil graph or space is passed to a check.
	ErrNilGraph = errors.New("heuristic: graph is nil")
)

// Func estimates the remaining cost from a state to the nearest goal.
// Values are expected to be non-negative; a state the heuristic does not
// cover yields an error wrapping ErrMissingValue.
type Func[S comparable] func(s S) (float64, error)

// Table is a precomputed heuristic, e.g. loaded from a file.
type Table[S comparable] map[S]float64

// Func returns the table as a heuristic function.
func (t Table[S]) Func() Func[S] {
	return FromTable(t)
}

// FromTable wraps a precomputed map as a heuristic function. Looking up a
// state absent from the map fails with ErrMissingValue.
func FromTable[S comparable](table map[S]float64) Func[S] {
	return func(s S) (float64, error) {
		v, ok := table[s]
		if !ok {
			return 0, fmt.Errorf("%w: %v", ErrMissingValue, s)
		}

		return v, nil
	}
}

// Zero returns the trivial heuristic h(s) = 0, which is always optimistic
// and consistent and turns A* into uniform-cost search.
func Zero[S comparable]() Func[S] {
	return func(S) (float64, error) { return 0, nil }
}

// OptimismViolation records a state whose estimate exceeds its true optimal
// cost-to-goal.
type OptimismViolation[S comparable] struct {
	State    S
	Estimate float64 // h(s)
	Optimal  float64 // h*(s)
	Route    []S     // a cheapest route from State to a goal, State first
}

// OptimismResult is the outcome of CheckOptimism.
type OptimismResult[S comparable] struct {
	// Optimistic is true iff no violation was found.
	Optimistic bool

	// Violations lists every offending state in graph order.
	Violations []OptimismViolation[S]

	// Checked is the number of states examined.
	Checked int
}

// ConsistencyViolation records a transition (From, To, Cost) for which
// h(From) > h(To) + Cost.
type ConsistencyViolation[S comparable] struct {
	From         S
	To           S
	FromEstimate float64 // h(From)
	ToEstimate   float64 // h(To)
	Cost         float64
}

// ConsistencyResult is the outcome of CheckConsistency.
type ConsistencyResult[S comparable] struct {
	// Consistent is true iff no violation was found.
	Consistent bool

	// Violations lists every offending transition in graph order.
	Violations []ConsistencyViolation[S]

	// Checked is the number of transitions examined.
	Checked int
}

// Report bundles both checks for one heuristic over one state space.
type Report[S comparable] struct {
	Optimism    *OptimismResult[S]
	Consistency *ConsistencyResult[S]
}
