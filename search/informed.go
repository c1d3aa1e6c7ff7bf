package search

import (
	"log/slog"

	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/statespace"
)

// GreedyBestFirst expands the node with the lowest heuristic estimate,
// ignoring the cost already paid. It is neither optimal nor guaranteed to
// find the shortest path; a popped state already expanded is skipped.
//
// Returns ErrNilSpace, ErrNilHeuristic, or any error of h wrapped with the state.
func GreedyBestFirst[S comparable](sp *statespace.Space[S], h heuristic.Func[S], opts ...Option) (*Result[S], error) {
	return observe(AlgGBFS, sp, opts, func(o Options) (*Result[S], error) {
		if h == nil {
			return nil, ErrNilHeuristic
		}
		pq := frontier.NewPriority(func(n *Node[S]) float64 { return n.Heuristic })

		return newWalker(sp, AlgGBFS, pq, h, o.Logger).run()
	})
}

// HillClimbing walks from the start, always moving to the successor with
// the least estimate (first in transition order on ties) while that estimate
// is strictly below the current one. It stops on a goal or at a local
// optimum and returns the walk either way: Found reports whether the walk
// ended on a goal. The search is incomplete and suboptimal by nature.
//
// The goal test comes before successors are examined, so the walk halts on
// the first goal it reaches even when a successor has a lower estimate. This
// differs from a pure steepest-descent climber, which would keep moving.
//
// Returns ErrNilSpace, ErrNilHeuristic, or any error of h wrapped with the state.
func HillClimbing[S comparable](sp *statespace.Space[S], h heuristic.Func[S], opts ...Option) (*Result[S], error) {
	return observe(AlgHCS, sp, opts, func(o Options) (*Result[S], error) {
		if h == nil {
			return nil, ErrNilHeuristic
		}
		est := newEstimator(h)

		cur := Root(sp.Start())
		v, err := est.of(cur.State)
		if err != nil {
			return nil, err
		}
		cur.Heuristic = v

		for !sp.IsGoal(cur.State) {
			var best *Node[S]
			for _, t := range sp.Successors(cur.State) {
				v, err := est.of(t.To)
				if err != nil {
					return nil, err
				}
				if best == nil || v < best.Heuristic {
					best = cur.Child(t.To, t.Cost)
					best.Heuristic = v
				}
			}
			if best == nil || best.Heuristic >= cur.Heuristic {
				o.Logger.Debug("local optimum", slog.Any("state", cur.State), slog.Float64("h", cur.Heuristic))
				break
			}
			o.Logger.Debug("climb", slog.Any("from", cur.State), slog.Any("to", best.State), slog.Float64("h", best.Heuristic))
			cur = best
		}

		return &Result[S]{
			Algorithm: AlgHCS,
			Found:     sp.IsGoal(cur.State),
			Path:      cur.Path(),
			Visited:   cur.Depth + 1,
			Cost:      cur.Cost,
		}, nil
	})
}
