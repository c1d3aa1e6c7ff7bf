package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/report"
)

func newCheckCmd(a *app) *cobra.Command {
	var hflag string
	cmd := &cobra.Command{
		Use:   "check <space>",
		Short: "Check a heuristic for optimism and consistency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := a.loadSpace(args[0])
			if err != nil {
				return err
			}
			h, err := a.loadHeuristic(hflag, sp)
			if err != nil {
				return err
			}
			if h == nil {
				return errNoHeuristic
			}
			rep, err := heuristic.Check(h, sp)
			if err != nil {
				return err
			}
			a.log.Info("heuristic checked",
				"optimistic", rep.Optimism.Optimistic,
				"consistent", rep.Consistency.Consistent,
			)

			return report.Check(a.printer(cmd), rep)
		},
	}
	cmd.Flags().StringVarP(&hflag, "heuristic", "e", "", `Heuristic file, or "l1" for sliding-tile boards`)
	_ = cmd.MarkFlagRequired("heuristic")

	return cmd
}
