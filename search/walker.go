package search

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/statespace"
)

// estimator evaluates a heuristic at most once per state within a run.
// A nil function estimates 0 everywhere.
type estimator[S comparable] struct {
	h    heuristic.Func[S]
	memo map[S]float64
}

func newEstimator[S comparable](h heuristic.Func[S]) *estimator[S] {
	return &estimator[S]{h: h, memo: make(map[S]float64)}
}

func (e *estimator[S]) of(s S) (float64, error) {
	if e.h == nil {
		return 0, nil
	}
	if v, ok := e.memo[s]; ok {
		return v, nil
	}
	v, err := e.h(s)
	if err != nil {
		return 0, fmt.Errorf("search: h(%v): %w", s, err)
	}
	e.memo[s] = v

	return v, nil
}

// walker encapsulates the mutable state of a frontier-driven run with a
// closed set: BFS, DFS, UCS and GBFS differ only in their frontier and in
// whether a state is admitted when generated or when expanded.
type walker[S comparable] struct {
	sp    *statespace.Space[S]
	alg   Algorithm
	front frontier.Frontier[*Node[S]]
	est   *estimator[S]
	log   *slog.Logger

	// admitOnPush marks a state as seen the first time it is generated,
	// so it enters the frontier at most once (BFS).
	admitOnPush bool
	seen        map[S]struct{}
	visited     int
}

func newWalker[S comparable](sp *statespace.Space[S], alg Algorithm, front frontier.Frontier[*Node[S]], h heuristic.Func[S], log *slog.Logger) *walker[S] {
	return &walker[S]{
		sp:    sp,
		alg:   alg,
		front: front,
		est:   newEstimator(h),
		log:   log,
		seen:  make(map[S]struct{}),
	}
}

// push estimates n, admits it if required and adds it to the frontier.
func (w *walker[S]) push(n *Node[S]) error {
	v, err := w.est.of(n.State)
	if err != nil {
		return err
	}
	n.Heuristic = v
	if w.admitOnPush {
		w.seen[n.State] = struct{}{}
	}
	w.front.Push(n)

	return nil
}

// run processes the frontier until a goal is popped or it empties.
func (w *walker[S]) run() (*Result[S], error) {
	if err := w.push(Root(w.sp.Start())); err != nil {
		return nil, err
	}

	for !w.front.Empty() {
		n := w.front.Pop()
		if !w.admitOnPush {
			if _, closed := w.seen[n.State]; closed {
				continue
			}
		}
		if w.sp.IsGoal(n.State) {
			return found(w.alg, n, w.visited), nil
		}
		if !w.admitOnPush {
			w.seen[n.State] = struct{}{}
		}
		w.visited++
		w.log.Debug("expand",
			slog.Any("state", n.State),
			slog.Int("depth", n.Depth),
			slog.Float64("g", n.Cost),
			slog.Float64("h", n.Heuristic),
			slog.Int("frontier", w.front.Len()),
		)

		for _, t := range w.sp.Successors(n.State) {
			if _, ok := w.seen[t.To]; ok {
				continue
			}
			if err := w.push(n.Child(t.To, t.Cost)); err != nil {
				return nil, err
			}
		}
	}

	return notFound[S](w.alg, w.visited), nil
}

func found[S comparable](alg Algorithm, n *Node[S], visited int) *Result[S] {
	return &Result[S]{
		Algorithm:   alg,
		Found:       true,
		Path:        n.Path(),
		Visited:     visited,
		Cost:        n.Cost,
		CostTracked: alg.CostTracked(),
	}
}

func notFound[S comparable](alg Algorithm, visited int) *Result[S] {
	return &Result[S]{Algorithm: alg, Visited: visited, CostTracked: alg.CostTracked()}
}
