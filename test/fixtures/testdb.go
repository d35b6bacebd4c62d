package fixtures

import (
	"database/sql"
	_ "embed"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdql/albumpick/internal/history"

	_ "modernc.org/sqlite"
)

// schema.sql mirrors internal/history/sqlite/schema.sql; the store package
// tests import fixtures, so the store itself cannot be used here.
//
//go:embed schema.sql
var schemaSQL string

const storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SeedPicks are written by CreateTestDB, oldest first.
var SeedPicks = []history.Pick{
	{
		SessionID: "5f0c6f4e-8d2a-4c39-9d7e-1a2b3c4d5e01",
		PickedAt:  time.Date(2026, 10, 1, 19, 30, 0, 0, time.UTC),
		Name:      "Abbey Road",
		Path:      "/music/Abbey Road",
		Kind:      "directory",
		Method:    "random",
	},
	{
		SessionID: "5f0c6f4e-8d2a-4c39-9d7e-1a2b3c4d5e02",
		PickedAt:  time.Date(2026, 10, 2, 8, 15, 0, 0, time.UTC),
		Name:      "road trip.m3u",
		Path:      "/music/lists/road trip.m3u",
		Kind:      "playlist",
		Method:    "file-query",
	},
	{
		SessionID: "5f0c6f4e-8d2a-4c39-9d7e-1a2b3c4d5e03",
		PickedAt:  time.Date(2026, 10, 3, 21, 0, 0, 0, time.UTC),
		Name:      "Revolver",
		Path:      "/music/Revolver",
		Kind:      "directory",
		Method:    "query",
	},
}

// CreateTestDB creates a history database in a temp dir holding SeedPicks.
// The database is closed before return; cleanup is kept for callers that
// defer it, t.TempDir removes the file either way.
func CreateTestDB(t *testing.T) (path string, cleanup func()) {
	t.Helper()
	path = filepath.Join(t.TempDir(), "history.db")
	InsertPicks(t, path, SeedPicks...)
	return path, func() {}
}

// InsertPicks applies the schema to the database at path and appends picks.
func InsertPicks(t *testing.T, path string, picks ...history.Pick) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(schemaSQL); err != nil {
		t.Fatalf("exec schema: %v", err)
	}
	for _, p := range picks {
		_, err := db.Exec(
			"INSERT INTO picks (session_id, picked_at, name, path, kind, method) VALUES (?, ?, ?, ?, ?, ?)",
			p.SessionID, p.PickedAt.UTC().Format(storedTimeLayout), p.Name, p.Path, p.Kind, p.Method)
		if err != nil {
			t.Fatalf("insert %s: %v", p.Name, err)
		}
	}
}
