package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var flags globalFlags
	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:   "albumpick [root] [N]",
		Short: "Pick an album at random and play it",
		Long: `albumpick offers the album directories below root one at a time in random
order. Answer y to play, n for another, / to type an album name, ; to type a
playlist file name, Esc to quit.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureLogger(cmd.ErrOrStderr())
			return err
		},
	}
	bindPickFlags(rootCmd, ctx)
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runPick(cmd, ctx, args)
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Settings file path (default: settings.json beside the executable, or $ALBUMPICK_CONFIG)")
	pf.StringVar(&flags.history, "history", "", "Pick history database (default: history.db beside the settings, or $ALBUMPICK_HISTORY)")
	pf.BoolVar(&flags.noHistory, "no-history", false, "Do not record picks")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	pf.StringVar(&flags.logFormat, "log-format", "console", "Log format: console or json")
	pf.BoolVar(&flags.dryRun, "dry-run", false, "Print the player command instead of starting it")

	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newMatchCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
