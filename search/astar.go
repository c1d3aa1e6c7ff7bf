package search

import (
	"log/slog"

	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/statespace"
)

// AStar expands nodes in order of f = g + h, ties broken by generation order.
// An expanded state is re-opened when a strictly cheaper g to it is found,
// so with an optimistic heuristic the first goal popped is reached by a
// cheapest path even when h is not consistent. Neither property of h is
// checked here; see heuristic.Check.
//
// Returns ErrNilSpace, ErrNilHeuristic, or any error of h wrapped with the state.
func AStar[S comparable](sp *statespace.Space[S], h heuristic.Func[S], opts ...Option) (*Result[S], error) {
	return observe(AlgAStar, sp, opts, func(o Options) (*Result[S], error) {
		if h == nil {
			return nil, ErrNilHeuristic
		}

		return aStar(sp, newEstimator(h), o.Logger)
	})
}

func aStar[S comparable](sp *statespace.Space[S], est *estimator[S], log *slog.Logger) (*Result[S], error) {
	pq := frontier.NewPriority(func(n *Node[S]) float64 { return n.Priority() })
	closed := make(map[S]float64) // best g at which each state was expanded
	visited := 0

	push := func(n *Node[S]) error {
		v, err := est.of(n.State)
		if err != nil {
			return err
		}
		n.Heuristic = v
		pq.Push(n)

		return nil
	}

	if err := push(Root(sp.Start())); err != nil {
		return nil, err
	}
	for !pq.Empty() {
		n := pq.Pop()
		if g, ok := closed[n.State]; ok && g <= n.Cost {
			continue // stale
		}
		if sp.IsGoal(n.State) {
			return found(AlgAStar, n, visited), nil
		}
		closed[n.State] = n.Cost
		visited++
		log.Debug("expand",
			slog.Any("state", n.State),
			slog.Float64("g", n.Cost),
			slog.Float64("f", n.Priority()),
			slog.Int("frontier", pq.Len()),
		)

		for _, t := range sp.Successors(n.State) {
			g := n.Cost + t.Cost
			if cg, ok := closed[t.To]; ok && cg <= g {
				continue
			}
			if err := push(n.Child(t.To, t.Cost)); err != nil {
				return nil, err
			}
		}
	}

	return notFound[S](AlgAStar, visited), nil
}
