package main

import (
	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		sf        searchFlags
		heuristic string
	)
	cmd := &cobra.Command{
		Use:   "search <space>",
		Short: "Run one search strategy over a state space file",
		Example: "  lvsearch search testdata/diamond.txt -a bfs\n" +
			"  lvsearch search testdata/diamond.txt -a astar -e testdata/diamond_h.txt -c",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := a.loadSpace(args[0])
			if err != nil {
				return err
			}
			h, err := a.loadHeuristic(heuristic, sp)
			if err != nil {
				return err
			}

			return runOne(cmd.Context(), a, cmd, sp, h, sf)
		},
	}
	sf.bind(cmd)
	cmd.Flags().StringVarP(&heuristic, "heuristic", "e", "", `Heuristic file, or "l1" for sliding-tile boards`)

	return cmd
}
