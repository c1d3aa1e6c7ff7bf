package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/puzzle"
)

func newPuzzleCmd(a *app) *cobra.Command {
	var (
		sf     searchFlags
		goals  []string
		radius int
	)
	cmd := &cobra.Command{
		Use:   "puzzle <board>",
		Short: "Solve an 8-puzzle board; informed strategies use the Manhattan distance",
		Long: "Boards list the nine cells row by row with x as the blank, optionally\n" +
			"separated by underscores: 123_456_78x.",
		Example: "  lvsearch puzzle 1234x6758 -a astar\n" +
			"  lvsearch puzzle 123_4x6_758 -a ids --radius 8",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := puzzle.NewSpace(args[0], radius, goals...)
			if err != nil {
				return err
			}
			a.log.Info("puzzle space built", "states", sp.NumStates(), "radius", radius)

			solvable := false
			for _, g := range sp.Goals() {
				solvable = solvable || puzzle.Solvable(sp.Start(), g)
			}
			if !solvable {
				a.log.Warn("no goal board is reachable from the start board", "start", sp.Start())
			}

			h, err := puzzle.Manhattan(sp.Goals()...)
			if err != nil {
				return err
			}

			return runOne(cmd.Context(), a, cmd, sp, h, sf)
		},
	}
	sf.bind(cmd)
	f := cmd.Flags()
	f.StringSliceVarP(&goals, "goal", "g", []string{puzzle.Solved}, "Goal board (repeatable)")
	f.IntVarP(&radius, "radius", "r", 0, "Only build boards within this many moves of the start (0: all)")

	return cmd
}
