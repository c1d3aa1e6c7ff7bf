package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/loader"
)

func newGridCmd(a *app) *cobra.Command {
	var (
		sf        searchFlags
		from, to  string
		conn      int
		threshold int
		hname     string
	)
	cmd := &cobra.Command{
		Use:   "grid <grid>",
		Short: "Search a terrain grid where each cell value is the cost of entering it",
		Example: "  lvsearch grid testdata/terrain.txt --from 0,0 --to 0,2 -a astar\n" +
			"  lvsearch grid testdata/terrain.txt --from 0,0 --to 0,2 -a ucs --conn 8",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parsePoint(from)
			if err != nil {
				return err
			}
			goal, err := parsePoint(to)
			if err != nil {
				return err
			}
			values, err := loader.LoadGrid(args[0])
			if err != nil {
				return err
			}

			opts := gridgraph.DefaultGridOptions()
			opts.LandThreshold = threshold
			switch conn {
			case 4:
				opts.Conn = gridgraph.Conn4
			case 8:
				opts.Conn = gridgraph.Conn8
			default:
				return fmt.Errorf("--conn must be 4 or 8, got %d", conn)
			}
			gg, err := gridgraph.NewGridGraph(values, opts)
			if err != nil {
				return err
			}
			sp, err := gg.ToSpace(start, goal)
			if err != nil {
				return err
			}
			a.log.Info("grid loaded",
				"path", args[0],
				"width", gg.Width,
				"height", gg.Height,
				"components", len(gg.ConnectedComponents()),
			)
			if !gg.Connected(start, goal) {
				a.log.Warn("goal is not reachable from start", "from", start, "to", goal)
			}

			var h heuristic.Func[gridgraph.Point]
			switch strings.ToLower(hname) {
			case "auto":
				h = gg.Heuristic(goal)
			case "manhattan":
				h = gg.Manhattan(goal)
			case "octile":
				h = gg.Octile(goal)
			case "zero":
				h = heuristic.Zero[gridgraph.Point]()
			default:
				return fmt.Errorf("unknown grid heuristic %q", hname)
			}

			return runOne(cmd.Context(), a, cmd, sp, h, sf)
		},
	}
	sf.bind(cmd)
	f := cmd.Flags()
	f.StringVar(&from, "from", "", "Start cell as x,y")
	f.StringVar(&to, "to", "", "Goal cell as x,y")
	f.IntVar(&conn, "conn", 4, "Connectivity: 4 or 8")
	f.IntVar(&threshold, "threshold", 1, "Smallest passable cell value")
	f.StringVarP(&hname, "heuristic", "e", "auto", "Heuristic: auto, manhattan, octile, zero")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// parsePoint reads "x,y".
func parsePoint(s string) (gridgraph.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Point{}, fmt.Errorf("invalid cell %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridgraph.Point{}, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridgraph.Point{}, fmt.Errorf("invalid cell %q: %w", s, err)
	}

	return gridgraph.Point{X: x, Y: y}, nil
}
