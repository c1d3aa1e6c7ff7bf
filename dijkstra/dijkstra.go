// Package dijkstra implements a multi-source Dijkstra shortest-cost oracle.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all transitions (O(E)) to detect negative costs and fail fast.
//   - We stop exploring once the minimum distance in the queue exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the queue and
//     discarding entries for states that are already settled.
//   - Ties between equal tentative distances are broken by push order.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/frontier"
)

// Dijkstra computes the minimal cost from the closest state in sources to every
// state reachable in g.
//
// Returns:
//
//   - costs: reached state → minimal cost (sources map to 0). Unreached states are absent.
//   - prev:  predecessor map if ReturnPath is set (nil otherwise);
//     prev[v] == u means one cheapest route to v ends with u→v. Sources have no entry.
//   - err:   ErrNilGraph, ErrNoSources or ErrNegativeWeight.
//
// Sources need not have outgoing transitions; a dead-end goal is a valid source.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[S comparable](g Graph[S], sources []S, opts ...Option) (Costs[S], map[S]S, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if len(sources) == 0 {
		return nil, nil, ErrNoSources
	}

	// 3) Pre-scan all transitions to detect negative costs.
	for _, e := range g.Edges() {
		if e.Cost < 0 {
			return nil, nil, fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, e.From, e.To, e.Cost)
		}
	}

	r := &runner[S]{
		g:       g,
		options: cfg,
		dist:    make(Costs[S]),
		settled: make(map[S]bool),
		pq:      frontier.NewPriority(func(it nodeItem[S]) float64 { return it.dist }),
	}
	if cfg.ReturnPath {
		r.prev = make(map[S]S)
	}

	r.init(sources)
	r.process()

	return r.dist, r.prev, nil
}

// ShortestCosts returns the minimal true cost from the closest of sources to
// every reachable state of g. It is Dijkstra without options and without the
// predecessor map.
func ShortestCosts[S comparable](sources []S, g Graph[S]) (Costs[S], error) {
	costs, _, err := Dijkstra(g, sources)

	return costs, err
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[S comparable] struct {
	g       Graph[S]                        // input graph; read-only
	options Options                         // configuration
	dist    Costs[S]                        // state → best known distance
	prev    map[S]S                         // state → predecessor (nil unless ReturnPath)
	settled map[S]bool                      // states whose distance is final
	pq      *frontier.Priority[nodeItem[S]] // lazy min-queue of tentative distances
}

// nodeItem is a queue entry: a state and its tentative distance when pushed.
type nodeItem[S comparable] struct {
	id   S
	dist float64
}

// init seeds every source with distance zero.
func (r *runner[S]) init(sources []S) {
	for _, s := range sources {
		if _, ok := r.dist[s]; ok {
			continue // duplicate source
		}
		r.dist[s] = 0
		r.pq.Push(nodeItem[S]{id: s, dist: 0})
	}
}

// process repeatedly settles the closest unsettled state and relaxes its
// outgoing transitions, until the queue empties or MaxDistance is exceeded.
func (r *runner[S]) process() {
	for !r.pq.Empty() {
		item := r.pq.Pop()

		// Stale entry for a state already settled.
		if r.settled[item.id] {
			continue
		}

		// Everything left in the queue is at least this far.
		if item.dist > r.options.MaxDistance {
			break
		}

		r.settled[item.id] = true
		r.relax(item.id)
	}
}

// relax tries to improve the distance of every successor of u.
func (r *runner[S]) relax(u S) {
	du := r.dist[u]
	for _, t := range r.g.Successors(u) {
		nd := du + t.Cost
		if nd > r.options.MaxDistance {
			continue
		}
		// strictly better only, so equal distances do not push duplicates
		if old, ok := r.dist[t.To]; ok && nd >= old {
			continue
		}
		r.dist[t.To] = nd
		if r.prev != nil {
			r.prev[t.To] = u
		}
		r.pq.Push(nodeItem[S]{id: t.To, dist: nd})
	}
}
