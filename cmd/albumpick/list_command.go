package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gdql/albumpick/internal/candidate"
	"github.com/gdql/albumpick/internal/config"
	"github.com/gdql/albumpick/internal/formatter"
	"github.com/gdql/albumpick/internal/fuzzy"
)

type listOptions struct {
	format    string
	playlists bool
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "list [root] [pattern]",
		Short: "List the albums the picker would offer",
		Long: `List the album directories below root. With a pattern, only names that
contain its characters in order are shown, best matches first.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, rest, err := rootFromArgs(ctx, args)
			if err != nil {
				return err
			}
			set, err := enumerate(ctx, root, opts.playlists)
			if err != nil {
				return err
			}
			if len(rest) > 0 {
				set = filterSet(set, rest[0])
			}
			return printResult(cmd, opts.format, &formatter.Result{
				Type:       formatter.ResultCandidates,
				Root:       root,
				Candidates: set,
			})
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "table", "Output format: table, json or csv")
	cmd.Flags().BoolVarP(&opts.playlists, "playlists", "p", false, "List playlist files instead of album directories")
	return cmd
}

// rootFromArgs takes args[0] as the root when it is a directory, else falls
// back to the settings' DefaultAlbumDirectory and then the working directory.
// Settings are read but never created here.
func rootFromArgs(ctx *commandContext, args []string) (string, []string, error) {
	p := pickArgs{}
	if len(args) > 0 && isDir(args[0]) {
		p.root = args[0]
		args = args[1:]
	}
	var defaultDir string
	if path, err := ctx.settingsPath(); err == nil {
		if s, err := config.Load(path); err == nil {
			defaultDir = s.DefaultAlbumDirectory
		}
	}
	root, err := resolveRoot(p, defaultDir, nil)
	return root, args, err
}

func enumerate(ctx *commandContext, root string, playlists bool) (candidate.Set, error) {
	if playlists {
		return candidate.Playlists(root, ctx.log())
	}
	return candidate.Directories(root)
}

func filterSet(set candidate.Set, pattern string) candidate.Set {
	matches := fuzzy.Filter(pattern, set.Names())
	out := make(candidate.Set, 0, len(matches))
	for _, m := range matches {
		out = append(out, set[m.Index])
	}
	return out
}

func printResult(cmd *cobra.Command, format string, result *formatter.Result) error {
	f, err := formatter.ParseFormat(format)
	if err != nil {
		return err
	}
	out, err := formatter.New().Format(result, f)
	if err != nil {
		return fmt.Errorf("formatting: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
