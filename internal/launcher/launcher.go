// Package launcher starts the configured player on the chosen path.
package launcher

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/google/shlex"

	"github.com/gdql/albumpick/internal/config"
	perrors "github.com/gdql/albumpick/internal/errors"
)

// Command is a resolved program invocation.
type Command struct {
	Path string
	Args []string
}

func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	for _, p := range append([]string{c.Path}, c.Args...) {
		if strings.ContainsAny(p, " \t\"'") {
			p = fmt.Sprintf("%q", p)
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, " ")
}

// Expand replaces the path placeholders in args.
func Expand(args, path string) string {
	args = strings.ReplaceAll(args, config.PlaceholderFolder, path)
	return strings.ReplaceAll(args, config.PlaceholderSource, path)
}

// Build resolves settings into a Command for path. Placeholders are replaced
// after splitting, so paths with spaces or quotes stay a single argument.
func Build(s config.Settings, path string) (Command, error) {
	exe := strings.TrimSpace(s.Executable)
	if exe == "" {
		return Command{}, perrors.New(perrors.ErrLaunch, "no executable configured")
	}
	fields, err := shlex.Split(s.Args)
	if err != nil {
		return Command{}, &perrors.PickError{Type: perrors.ErrLaunch, Message: "parsing Args", Cause: err, Hint: "check the quoting in settings.json"}
	}
	args := make([]string, len(fields))
	for i, f := range fields {
		args[i] = Expand(f, path)
	}
	return Command{Path: exe, Args: args}, nil
}

// Launcher starts commands without waiting for them.
type Launcher struct {
	// DryRun writes the command to Out instead of starting it.
	DryRun bool
	Out    io.Writer
}

// Launch starts cmd detached; the player outlives this process.
func (l *Launcher) Launch(cmd Command) error {
	if l.DryRun {
		if l.Out != nil {
			fmt.Fprintln(l.Out, cmd.String())
		}
		return nil
	}
	c := exec.Command(cmd.Path, cmd.Args...)
	if err := c.Start(); err != nil {
		return &perrors.PickError{Type: perrors.ErrLaunch, Message: "starting player", Path: cmd.Path, Cause: err}
	}
	return c.Process.Release()
}

// OpenCommand returns the platform command that opens path in its default
// application.
func OpenCommand(path string) Command {
	switch runtime.GOOS {
	case "windows":
		return Command{Path: "cmd", Args: []string{"/c", "start", "", path}}
	case "darwin":
		return Command{Path: "open", Args: []string{path}}
	default:
		return Command{Path: "xdg-open", Args: []string{path}}
	}
}
