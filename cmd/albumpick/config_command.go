package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gdql/albumpick/internal/config"
	"github.com/gdql/albumpick/internal/launcher"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Settings file helpers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the settings and history file locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := ctx.settingsPath()
			if err != nil {
				return err
			}
			hist, err := ctx.historyPath()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "settings: %s\nhistory:  %s\n", settings, hist)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Check the settings file and show the resolved player command",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ctx.settingsPath()
			if err != nil {
				return err
			}
			s, err := config.Load(path)
			if err != nil {
				return err
			}
			example, err := launcher.Build(*s, "/path/to/album")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Settings valid: %s\nPlayer command: %s\n", path, example)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "edit",
		Short: "Open the settings file, creating it if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := ctx.settingsPath()
			if err != nil {
				return err
			}
			if _, created, err := config.LoadOrCreate(path); err != nil {
				return err
			} else if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote default settings to %s\n", path)
			}
			l := &launcher.Launcher{DryRun: ctx.flags.dryRun, Out: cmd.OutOrStdout()}
			return l.Launch(launcher.OpenCommand(path))
		},
	})
	return cmd
}
