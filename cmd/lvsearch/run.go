package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/loader"
	"github.com/katalvlaran/lvsearch/puzzle"
	"github.com/katalvlaran/lvsearch/report"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/statespace"
)

// heuristicL1 selects the sliding-tile Manhattan distance instead of a file.
const heuristicL1 = "l1"

var (
	errNoHeuristic = errors.New("no heuristic provided")
	errNoDepth     = errors.New("maximum depth not provided")
)

// searchFlags are shared by commands that run one strategy.
type searchFlags struct {
	algorithm string
	depth     int
	check     bool
}

func (f *searchFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.algorithm, "algorithm", "a", "", "Search strategy: "+algorithmNames())
	fl.IntVarP(&f.depth, "depth", "d", -1, "Maximum depth for ldfs")
	fl.BoolVarP(&f.check, "check", "c", false, "Also check the heuristic for optimism and consistency")
	_ = cmd.MarkFlagRequired("algorithm")
}

func algorithmNames() string {
	names := make([]string, 0, len(search.Algorithms()))
	for _, a := range search.Algorithms() {
		names = append(names, a.String())
	}

	return strings.Join(names, ", ")
}

// loadSpace reads a space file and logs its size.
func (a *app) loadSpace(path string) (*statespace.Space[string], error) {
	sp, err := loader.LoadSpace(path)
	if err != nil {
		return nil, err
	}
	a.log.Info("space loaded",
		"path", path,
		"states", sp.NumStates(),
		"transitions", sp.NumTransitions(),
	)

	return sp, nil
}

// loadHeuristic resolves the -e flag: empty means none, "l1" the puzzle
// Manhattan distance to the goals of sp, anything else a heuristic file.
func (a *app) loadHeuristic(name string, sp *statespace.Space[string]) (heuristic.Func[string], error) {
	switch name {
	case "":
		return nil, nil
	case heuristicL1:
		return puzzle.Manhattan(sp.Goals()...)
	}
	table, err := loader.LoadHeuristic(name)
	if err != nil {
		return nil, err
	}
	a.log.Info("heuristic loaded", "path", name, "entries", len(table))

	return table.Func(), nil
}

// runOne validates the strategy's inputs, runs it and prints the result,
// followed by the heuristic check when requested.
func runOne[S comparable](ctx context.Context, a *app, cmd *cobra.Command, sp *statespace.Space[S], h heuristic.Func[S], f searchFlags) error {
	alg, err := search.ParseAlgorithm(f.algorithm)
	if err != nil {
		return err
	}
	if alg.Informed() && h == nil {
		return fmt.Errorf("%s: %w", alg, errNoHeuristic)
	}
	if alg.Bounded() && f.depth < 0 {
		return fmt.Errorf("%s: %w", alg, errNoDepth)
	}
	if f.check && h == nil {
		return fmt.Errorf("check: %w", errNoHeuristic)
	}

	res, err := search.Run(alg, sp, h, f.depth,
		search.WithContext(ctx),
		search.WithLogger(a.searchLogger()),
	)
	if err != nil {
		return err
	}

	p := a.printer(cmd)
	if err := report.Result(p, res); err != nil {
		return err
	}
	if !f.check {
		return nil
	}
	rep, err := heuristic.Check(h, sp)
	if err != nil {
		return err
	}

	return report.Check(p, rep)
}
