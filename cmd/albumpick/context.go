package main

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/gdql/albumpick/internal/config"
	perrors "github.com/gdql/albumpick/internal/errors"
	"github.com/gdql/albumpick/internal/history"
	"github.com/gdql/albumpick/internal/history/sqlite"
	"github.com/gdql/albumpick/internal/logging"
)

// errAborted ends the process with status 0 after the user quits the picker.
var errAborted = errors.New("aborted")

type globalFlags struct {
	config    string
	history   string
	noHistory bool
	logLevel  string
	logFormat string
	dryRun    bool
	back      int
}

type commandContext struct {
	flags *globalFlags

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error

	// openStore is replaced in tests.
	openStore func(path string) (history.Store, error)
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{
		flags: flags,
		openStore: func(path string) (history.Store, error) {
			db, err := sqlite.Open(path)
			if err != nil {
				return nil, err
			}
			return db, nil
		},
	}
}

func (c *commandContext) ensureLogger(w io.Writer) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		c.logger, c.loggerErr = logging.New(logging.Options{
			Level:  c.flags.logLevel,
			Format: c.flags.logFormat,
			Output: w,
		})
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) log() *slog.Logger {
	if c.logger == nil {
		return logging.Discard()
	}
	return c.logger
}

func (c *commandContext) settingsPath() (string, error) {
	if p := strings.TrimSpace(c.flags.config); p != "" {
		return p, nil
	}
	return config.Path()
}

func (c *commandContext) historyPath() (string, error) {
	if p := strings.TrimSpace(c.flags.history); p != "" {
		return p, nil
	}
	settings, err := c.settingsPath()
	if err != nil {
		return "", err
	}
	return config.HistoryPath(settings), nil
}

// withStore opens the history database for the duration of fn.
func (c *commandContext) withStore(fn func(history.Store) error) error {
	path, err := c.historyPath()
	if err != nil {
		return err
	}
	store, err := c.openStore(path)
	if err != nil {
		return &perrors.PickError{Type: perrors.ErrHistory, Message: "opening history", Path: path, Cause: err}
	}
	defer store.Close()
	return fn(store)
}
