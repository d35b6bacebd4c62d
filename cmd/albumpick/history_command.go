package main

import (
	"github.com/spf13/cobra"

	"github.com/gdql/albumpick/internal/formatter"
	"github.com/gdql/albumpick/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var format string
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently played picks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var picks []*history.Pick
			var total int
			err := ctx.withStore(func(store history.Store) error {
				var err error
				if picks, err = store.Recent(commandCtx(cmd), limit); err != nil {
					return err
				}
				total, err = store.Count(commandCtx(cmd))
				return err
			})
			if err != nil {
				return err
			}
			return printResult(cmd, format, &formatter.Result{Type: formatter.ResultHistory, History: picks, Total: total})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json or csv")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of picks to show (0 for all)")
	return cmd
}
