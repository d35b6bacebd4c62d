package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store records launched picks.
type Store interface {
	Record(ctx context.Context, p *Pick) (int64, error)
	Recent(ctx context.Context, limit int) ([]*Pick, error)
	Count(ctx context.Context) (int, error)
	Close() error
}

// Pick is one launched candidate.
type Pick struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	PickedAt  time.Time `json:"picked_at"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Kind      string    `json:"kind"`   // directory or playlist
	Method    string    `json:"method"` // random, query, file-query, single
}

// NewSessionID returns a fresh identifier for one picker session.
func NewSessionID() string {
	return uuid.NewString()
}
