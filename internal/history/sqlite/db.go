package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/gdql/albumpick/internal/history"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// fixed width so stored timestamps sort as text
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// DB implements history.Store using SQLite.
type DB struct {
	conn *sql.DB
}

// Open opens (creating if needed) the history database at path, which may
// be a file path or ":memory:". The schema is applied on every open.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	// a single connection keeps ":memory:" databases alive across calls
	conn.SetMaxOpenConns(1)
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Record inserts p and returns its row ID. A zero PickedAt is set to now.
func (db *DB) Record(ctx context.Context, p *history.Pick) (int64, error) {
	if p.PickedAt.IsZero() {
		p.PickedAt = time.Now()
	}
	res, err := db.conn.ExecContext(ctx,
		"INSERT INTO picks (session_id, picked_at, name, path, kind, method) VALUES (?, ?, ?, ?, ?, ?)",
		p.SessionID, p.PickedAt.UTC().Format(timeLayout), p.Name, p.Path, p.Kind, p.Method)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	p.ID = id
	return id, nil
}

// Recent returns up to limit picks, newest first. limit <= 0 returns all.
func (db *DB) Recent(ctx context.Context, limit int) ([]*history.Pick, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.conn.QueryContext(ctx,
		"SELECT id, session_id, picked_at, name, path, kind, method FROM picks ORDER BY picked_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*history.Pick
	for rows.Next() {
		var p history.Pick
		var at string
		if err := rows.Scan(&p.ID, &p.SessionID, &at, &p.Name, &p.Path, &p.Kind, &p.Method); err != nil {
			return nil, err
		}
		t, err := time.Parse(timeLayout, at)
		if err != nil {
			return nil, fmt.Errorf("pick %d: bad timestamp %q: %w", p.ID, at, err)
		}
		p.PickedAt = t
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Count returns how many picks are stored.
func (db *DB) Count(ctx context.Context) (int, error) {
	var n int
	err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM picks").Scan(&n)
	return n, err
}
