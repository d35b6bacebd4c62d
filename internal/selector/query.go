package selector

import (
	"fmt"

	"github.com/gdql/albumpick/internal/candidate"
	perrors "github.com/gdql/albumpick/internal/errors"
)

// queries handles the two typed-query modes of a session.
type queries struct {
	sel      *Selector
	albums   candidate.Set
	provider PlaylistProvider

	playlists candidate.Set
	loaded    bool
}

// run prompts for a query line and resolves it. ok is false when there is
// nothing to resolve (input ended, or no playlists exist) and the caller
// should keep presenting.
func (q *queries) run(key Key) (c candidate.Candidate, ok bool, err error) {
	set := q.albums
	prompt := "Type a directory to play from: "
	if key == KeyFileQuery {
		if set, err = q.playlistSet(); err != nil {
			return nil, false, err
		}
		if len(set) == 0 {
			fmt.Fprintln(q.sel.Out, "No playlist files found.")
			return nil, false, nil
		}
		prompt = "Type a playlist file to play from: "
	}

	fmt.Fprint(q.sel.Out, prompt)
	line, ok, err := q.sel.In.ReadLine()
	if err != nil {
		return nil, false, perrors.Wrap(perrors.ErrTerminal, "reading query", err)
	}
	if !ok {
		q.sel.Logger.Debug("query input ended, re-prompting")
		fmt.Fprintln(q.sel.Out)
		return nil, false, nil
	}

	c, err = q.sel.Resolver.Resolve(set, line)
	if err != nil {
		return nil, false, err
	}
	q.sel.Logger.Debug("query resolved", "query", line, "name", c.Name())
	fmt.Fprintln(q.sel.Out)
	return c, true, nil
}

func (q *queries) playlistSet() (candidate.Set, error) {
	if q.loaded {
		return q.playlists, nil
	}
	if q.provider == nil {
		q.loaded = true
		return nil, nil
	}
	set, err := q.provider()
	if err != nil {
		return nil, fmt.Errorf("listing playlists: %w", err)
	}
	q.playlists, q.loaded = set, true
	return set, nil
}
