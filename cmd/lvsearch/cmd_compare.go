package main

import (
	"context"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/report"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/statespace"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		hflag    string
		depth    int
		parallel int
	)
	cmd := &cobra.Command{
		Use:   "compare <space>",
		Short: "Run every applicable strategy on one space and tabulate the results",
		Long: "compare runs the uninformed strategies, ldfs when --depth is given and the\n" +
			"informed strategies when --heuristic is given, concurrently.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := a.loadSpace(args[0])
			if err != nil {
				return err
			}
			h, err := a.loadHeuristic(hflag, sp)
			if err != nil {
				return err
			}
			results, err := compareAll(cmd.Context(), a, sp, h, depth, parallel)
			if err != nil {
				return err
			}

			return report.Comparison(a.printer(cmd), results)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&hflag, "heuristic", "e", "", `Heuristic file, or "l1" for sliding-tile boards`)
	f.IntVarP(&depth, "depth", "d", -1, "Maximum depth for ldfs (ldfs is skipped when unset)")
	f.IntVarP(&parallel, "parallel", "p", runtime.NumCPU(), "Number of strategies run at once")

	return cmd
}

// applicable lists the strategies that can run with the given inputs.
func applicable(hasHeuristic bool, depth int) []search.Algorithm {
	var out []search.Algorithm
	for _, alg := range search.Algorithms() {
		if alg.Informed() && !hasHeuristic {
			continue
		}
		if alg.Bounded() && depth < 0 {
			continue
		}
		out = append(out, alg)
	}

	return out
}

// compareAll runs every applicable strategy concurrently. Results keep the
// canonical strategy order.
func compareAll[S comparable](ctx context.Context, a *app, sp *statespace.Space[S], h heuristic.Func[S], depth, parallel int) ([]*search.Result[S], error) {
	algs := applicable(h != nil, depth)
	results := make([]*search.Result[S], len(algs))

	if parallel < 1 {
		parallel = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, alg := range algs {
		g.Go(func() error {
			res, err := search.Run(alg, sp, h, depth,
				search.WithContext(gctx),
				search.WithLogger(a.searchLogger()),
			)
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	a.log.Info("comparison finished", "strategies", len(algs))

	return results, nil
}
