package main

import (
	"github.com/spf13/cobra"

	"github.com/samvad-hq/gmaps/internal/app"
)

func newHistoryCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "history [place-id]",
		Short: "List archived places, or show one archived reply",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lookup, err := state.newLookup()
			if err != nil {
				return err
			}
			defer lookup.Close()

			if len(args) == 1 {
				res, err := lookup.Archived(args[0])
				if err != nil {
					return err
				}
				return app.Render(cmd.OutOrStdout(), state.cfg.OutputFormat, res)
			}

			recs, err := lookup.History()
			if err != nil {
				return err
			}
			return app.RenderHistory(cmd.OutOrStdout(), recs)
		},
	}
}
