package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gdql/albumpick/internal/candidate"
	"github.com/gdql/albumpick/internal/config"
	"github.com/gdql/albumpick/internal/history"
	"github.com/gdql/albumpick/internal/launcher"
	"github.com/gdql/albumpick/internal/selector"
	"github.com/gdql/albumpick/internal/terminal"
)

const noChildrenMessage = "No child directories could be found. Ensure that a directory is given as an argument, or that the application is ran from a main folder containing multiple album directories."

func runPick(cmd *cobra.Command, ctx *commandContext, args []string) error {
	out := cmd.OutOrStdout()
	logger := ctx.log()

	settingsPath, err := ctx.settingsPath()
	if err != nil {
		return err
	}
	settings, created, err := config.LoadOrCreate(settingsPath)
	if err != nil {
		return err
	}
	l := &launcher.Launcher{DryRun: ctx.flags.dryRun, Out: out}
	if created {
		fmt.Fprintf(out, "Wrote default settings to %s. Set Executable and Args to your player, then run albumpick again.\n", settingsPath)
		if err := l.Launch(launcher.OpenCommand(settingsPath)); err != nil {
			logger.Warn("could not open settings in an editor", "path", settingsPath, "error", err)
		}
		return nil
	}

	p := parsePickArgs(cmd, ctx.flags.back, args, logger)
	root, err := resolveRoot(p, settings.DefaultAlbumDirectory, out)
	if err != nil {
		return err
	}
	logger.Info("enumerating albums", "root", root)

	set, err := candidate.Directories(root)
	if err != nil {
		return err
	}
	if len(set) == 0 {
		fmt.Fprintln(out, noChildrenMessage)
		return nil
	}

	sel := selector.New(terminal.New(cmd.InOrStdin(), out), out)
	sel.Logger = logger
	if f, ok := out.(*os.File); ok {
		sel.Highlight = terminal.Highlighter(f)
	}
	sessionID := history.NewSessionID()
	outcome, err := sel.Run(commandCtx(cmd), set, func() (candidate.Set, error) {
		return candidate.Playlists(root, logger)
	})
	if err != nil {
		return err
	}
	if outcome.Aborted {
		return errAborted
	}

	chosen := outcome.Candidate
	fmt.Fprintf(out, "Will play from '%s'.\n", chosen.Name())

	command, err := launcher.Build(*settings, chosen.FullPath())
	if err != nil {
		return err
	}
	if err := l.Launch(command); err != nil {
		return err
	}
	logger.Info("player started", "command", command.String())

	ctx.recordPick(commandCtx(cmd), &history.Pick{
		SessionID: sessionID,
		PickedAt:  time.Now().UTC(),
		Name:      chosen.Name(),
		Path:      chosen.FullPath(),
		Kind:      chosen.Kind().String(),
		Method:    outcome.Method.String(),
	})
	return nil
}

// recordPick stores p unless history is disabled. Failures are logged; the
// player is already running.
func (c *commandContext) recordPick(ctx context.Context, p *history.Pick) {
	if c.flags.noHistory {
		return
	}
	err := c.withStore(func(store history.Store) error {
		_, err := store.Record(ctx, p)
		return err
	})
	if err != nil {
		c.log().Warn("could not record pick", "name", p.Name, "error", err)
	}
}

func commandCtx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
