package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gdql/albumpick/internal/formatter"
	"github.com/gdql/albumpick/internal/resolver"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "match [root] <query>",
		Short: "Show how a typed query would resolve",
		Long: `Score every album below root against query the way the / key does and print
the ranking. The first row is the album the picker would choose.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, rest, err := rootFromArgs(ctx, args)
			if err != nil {
				return err
			}
			if len(rest) == 0 {
				// a lone argument naming a directory is still the query
				rest = args
				if root, _, err = rootFromArgs(ctx, nil); err != nil {
					return err
				}
			}
			query := strings.Join(rest, " ")
			set, err := enumerate(ctx, root, opts.playlists)
			if err != nil {
				return err
			}
			ranking, err := resolver.New().Rank(set, query)
			if err != nil {
				return err
			}
			return printResult(cmd, opts.format, &formatter.Result{
				Type:    formatter.ResultRanking,
				Root:    root,
				Query:   query,
				Ranking: ranking,
			})
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "Output format: table, json or csv")
	cmd.Flags().BoolVarP(&opts.playlists, "playlists", "p", false, "Match playlist files instead of album directories")
	return cmd
}
