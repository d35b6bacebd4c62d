package mock

import (
	"context"

	"github.com/gdql/albumpick/internal/history"
)

// Store is a mock that returns configurable results (for command tests without a real DB).
// With no funcs set it keeps recorded picks in memory.
type Store struct {
	RecordFunc func(ctx context.Context, p *history.Pick) (int64, error)
	RecentFunc func(ctx context.Context, limit int) ([]*history.Pick, error)
	CountFunc  func(ctx context.Context) (int, error)
	CloseFunc  func() error

	Picks  []*history.Pick
	Closed bool
}

// Record calls RecordFunc if set, else appends p to Picks.
func (m *Store) Record(ctx context.Context, p *history.Pick) (int64, error) {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, p)
	}
	m.Picks = append(m.Picks, p)
	p.ID = int64(len(m.Picks))
	return p.ID, nil
}

// Recent calls RecentFunc if set, else returns Picks newest first.
func (m *Store) Recent(ctx context.Context, limit int) ([]*history.Pick, error) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, limit)
	}
	out := make([]*history.Pick, 0, len(m.Picks))
	for i := len(m.Picks) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, m.Picks[i])
	}
	return out, nil
}

// Count calls CountFunc if set, else returns len(Picks).
func (m *Store) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return len(m.Picks), nil
}

// Close calls CloseFunc if set.
func (m *Store) Close() error {
	m.Closed = true
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}
