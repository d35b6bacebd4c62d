package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gdql/albumpick/internal/config"
	perrors "github.com/gdql/albumpick/internal/errors"
	"github.com/gdql/albumpick/internal/history"
	"github.com/gdql/albumpick/internal/history/mock"
	"github.com/gdql/albumpick/internal/logging"
	"github.com/gdql/albumpick/test/fixtures"
)

type cliEnv struct {
	library  string
	settings string
	history  string
}

func setupCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	base := t.TempDir()
	env := &cliEnv{
		library:  fixtures.CreateLibrary(t),
		settings: filepath.Join(base, config.FileName),
		history:  filepath.Join(base, config.HistoryFileName),
	}
	require.NoError(t, config.Write(env.settings, config.Settings{Executable: "vlc", Args: `--fullscreen "$(folder)"`}))
	return env
}

// runCLI executes the root command with stdin as the user's typing.
func runCLI(t *testing.T, env *cliEnv, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.settings, "--history", env.history, "--dry-run"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

type historyRow struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Kind   string `json:"kind"`
	Method string `json:"method"`
}

func readHistory(t *testing.T, env *cliEnv) []historyRow {
	t.Helper()
	out, _, err := runCLI(t, env, "", "history", "--format", "json")
	require.NoError(t, err)
	var decoded struct {
		History []historyRow `json:"picks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	return decoded.History
}

func TestPick_Confirm(t *testing.T) {
	env := setupCLIEnv(t)
	out, _, err := runCLI(t, env, "y\n", env.library)
	require.NoError(t, err)
	require.Contains(t, out, "Play from '")
	require.Contains(t, out, "Will play from '")
	require.Contains(t, out, "vlc --fullscreen ")

	rows := readHistory(t, env)
	require.Len(t, rows, 1)
	require.Equal(t, "random", rows[0].Method)
	require.Equal(t, "directory", rows[0].Kind)
	require.Contains(t, fixtures.Albums, rows[0].Name)
}

func TestPick_Query(t *testing.T) {
	env := setupCLIEnv(t)
	out, _, err := runCLI(t, env, "/\nlet it be\n", env.library)
	require.NoError(t, err)
	require.Contains(t, out, "Type a directory to play from: ")
	require.Contains(t, out, "Will play from 'Let It Be'.")
	require.Contains(t, out, filepath.Join(env.library, "Let It Be"))

	rows := readHistory(t, env)
	require.Len(t, rows, 1)
	require.Equal(t, "query", rows[0].Method)
}

func TestPick_FileQuery(t *testing.T) {
	env := setupCLIEnv(t)
	out, _, err := runCLI(t, env, ";\nroad trip\n", env.library)
	require.NoError(t, err)
	require.Contains(t, out, "Will play from 'road trip.m3u'.")

	rows := readHistory(t, env)
	require.Len(t, rows, 1)
	require.Equal(t, "playlist", rows[0].Kind)
	require.Equal(t, "file-query", rows[0].Method)
}

func TestPick_AbortIsNotAnError(t *testing.T) {
	env := setupCLIEnv(t)
	out, _, err := runCLI(t, env, "", env.library)
	require.ErrorIs(t, err, errAborted)
	require.NotContains(t, out, "Will play from")
	require.Empty(t, readHistory(t, env))
}

func TestPick_NoHistory(t *testing.T) {
	env := setupCLIEnv(t)
	_, _, err := runCLI(t, env, "y\n", "--no-history", env.library)
	require.NoError(t, err)
	require.Empty(t, readHistory(t, env))
}

func TestPick_NoChildren(t *testing.T) {
	env := setupCLIEnv(t)
	empty := t.TempDir()
	out, _, err := runCLI(t, env, "", empty)
	require.NoError(t, err)
	require.Contains(t, out, noChildrenMessage)
}

func TestPick_Back(t *testing.T) {
	env := setupCLIEnv(t)
	out, _, err := runCLI(t, env, "y\n", filepath.Join(env.library, "Let It Be"), "-b")
	require.NoError(t, err)
	require.Contains(t, out, "Will play from '")
	rows := readHistory(t, env)
	require.Len(t, rows, 1)
	require.Contains(t, fixtures.Albums, rows[0].Name)
}

func TestPick_WritesDefaultSettings(t *testing.T) {
	env := setupCLIEnv(t)
	require.NoError(t, os.Remove(env.settings))

	out, _, err := runCLI(t, env, "", env.library)
	require.NoError(t, err)
	require.Contains(t, out, "Wrote default settings to "+env.settings)
	require.NotContains(t, out, "Play from")

	s, err := config.Load(env.settings)
	require.NoError(t, err)
	require.Equal(t, config.Default(), *s)
}

func TestList_Filter(t *testing.T) {
	env := setupCLIEnv(t)
	out, _, err := runCLI(t, env, "", "list", env.library, "rvl")
	require.NoError(t, err)
	require.Contains(t, out, "Revolver")
	require.NotContains(t, out, "Abbey Road")
}

func TestList_PlaylistsJSON(t *testing.T) {
	env := setupCLIEnv(t)
	out, _, err := runCLI(t, env, "", "list", "--playlists", "--format", "json", env.library)
	require.NoError(t, err)
	var decoded struct {
		Candidates []struct {
			Name string `json:"name"`
			Kind string `json:"kind"`
		} `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Candidates, len(fixtures.Playlists))
	for _, c := range decoded.Candidates {
		require.Equal(t, "playlist", c.Kind)
	}
}

func TestMatch_Ranking(t *testing.T) {
	env := setupCLIEnv(t)
	out, _, err := runCLI(t, env, "", "match", env.library, "abbey")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	require.Contains(t, lines[2], "Abbey Road")
}

func TestConfig_Validate(t *testing.T) {
	env := setupCLIEnv(t)
	out, _, err := runCLI(t, env, "", "config", "validate")
	require.NoError(t, err)
	require.Contains(t, out, "Settings valid")
	require.Contains(t, out, `vlc --fullscreen /path/to/album`)
}

func TestRootFlags_BadLogLevel(t *testing.T) {
	env := setupCLIEnv(t)
	_, _, err := runCLI(t, env, "", "--log-level", "loud", "history")
	require.Error(t, err)
}

func TestRecordPick_FailureIsNotFatal(t *testing.T) {
	var logs bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Output: &logs})
	require.NoError(t, err)

	store := &mock.Store{RecordFunc: func(context.Context, *history.Pick) (int64, error) {
		return 0, errors.New("disk full")
	}}
	ctx := newCommandContext(&globalFlags{history: "unused.db"})
	ctx.logger = logger
	ctx.openStore = func(string) (history.Store, error) { return store, nil }

	ctx.recordPick(context.Background(), &history.Pick{Name: "Revolver"})
	require.True(t, store.Closed)
	require.Contains(t, logs.String(), "could not record pick")
	require.Contains(t, logs.String(), "disk full")
}

func TestRecordPick_Disabled(t *testing.T) {
	store := &mock.Store{}
	ctx := newCommandContext(&globalFlags{history: "unused.db", noHistory: true})
	ctx.openStore = func(string) (history.Store, error) { return store, nil }

	ctx.recordPick(context.Background(), &history.Pick{Name: "Revolver"})
	require.Empty(t, store.Picks)
	require.False(t, store.Closed)
}

func TestHistory_OpenFailureIsTyped(t *testing.T) {
	ctx := newCommandContext(&globalFlags{history: "unused.db"})
	ctx.openStore = func(string) (history.Store, error) { return nil, errors.New("locked") }
	err := ctx.withStore(func(history.Store) error { return nil })
	require.True(t, perrors.IsType(err, perrors.ErrHistory))
}

func TestHistory_LimitReportsTotal(t *testing.T) {
	env := setupCLIEnv(t)
	path, cleanup := fixtures.CreateTestDB(t)
	defer cleanup()
	env.history = path

	out, _, err := runCLI(t, env, "", "history", "--limit", "1")
	require.NoError(t, err)
	require.Contains(t, out, "Revolver")
	require.NotContains(t, out, "Abbey Road")
	require.Contains(t, out, "1 of 3 picks shown")

	out, _, err = runCLI(t, env, "", "history", "--limit", "1", "--format", "json")
	require.NoError(t, err)
	var decoded struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Equal(t, 3, decoded.Total)
}
