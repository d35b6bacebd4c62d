package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gdql/albumpick/internal/candidate"
)

// pickArgs is the positional part of a pick command line.
type pickArgs struct {
	root     string
	backSet  bool
	back     int
	leftover []string
}

func bindPickFlags(cmd *cobra.Command, ctx *commandContext) {
	cmd.Flags().IntVarP(&ctx.flags.back, "back", "b", 1, "Start N parent directories above root")
	cmd.Flags().Lookup("back").NoOptDefVal = "1"
}

// parsePickArgs splits positionals into a root directory and a back count.
// As in earlier releases "-b 2" and "-b ... 2" both set the count: the flag
// switches back-travel on and a bare integer anywhere sets how far.
func parsePickArgs(cmd *cobra.Command, back int, args []string, logger *slog.Logger) pickArgs {
	p := pickArgs{back: back}
	if f := cmd.Flags().Lookup("back"); f != nil {
		p.backSet = f.Changed
	}
	for _, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			p.back = n
			continue
		}
		if p.root == "" && isDir(arg) {
			p.root = arg
			continue
		}
		p.leftover = append(p.leftover, arg)
	}
	for _, arg := range p.leftover {
		logger.Warn("ignoring argument that is neither a directory nor a number", "arg", arg)
	}
	if p.back <= 0 {
		p.back = 1
	}
	return p
}

// resolveRoot picks the directory to enumerate: the command line first, then
// the settings' DefaultAlbumDirectory, then the working directory. Back-travel
// is applied last.
func resolveRoot(p pickArgs, defaultDir string, out io.Writer) (string, error) {
	root := p.root
	if root == "" && strings.TrimSpace(defaultDir) != "" && isDir(defaultDir) {
		root = defaultDir
	}
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("working directory: %w", err)
		}
		root = wd
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", root, err)
	}
	if !p.backSet {
		return abs, nil
	}
	dir, steps := candidate.Ascend(abs, p.back)
	if steps < p.back {
		fmt.Fprintf(out, "Directory back-travel limit exceeded. No parents found for directory '%s'\n", dir)
	}
	return dir, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
