package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/report"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <space>",
		Short: "Print the start state, goals and size of a state space file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := a.loadSpace(args[0])
			if err != nil {
				return err
			}

			return report.Space(a.printer(cmd), sp)
		},
	}
}
