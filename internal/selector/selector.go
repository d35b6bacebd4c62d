// Package selector runs the interactive pick loop: offer a random candidate,
// then confirm it, reject it and draw another, resolve a typed query against
// the albums or the playlists, or abort.
package selector

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gdql/albumpick/internal/candidate"
	perrors "github.com/gdql/albumpick/internal/errors"
	"github.com/gdql/albumpick/internal/random"
	"github.com/gdql/albumpick/internal/resolver"
)

// Key is a single key press, already classified.
type Key int

const (
	KeyOther Key = iota
	KeyConfirm
	KeyReject
	KeyQuery
	KeyFileQuery
	KeyAbort
)

// Input reads from the user. ReadKey returns one unbuffered key press;
// ReadLine returns ok=false when input has ended.
type Input interface {
	ReadKey() (Key, error)
	ReadLine() (line string, ok bool, err error)
}

// QueryResolver maps a typed query to one candidate of a non-empty set.
type QueryResolver interface {
	Resolve(set candidate.Set, query string) (candidate.Candidate, error)
}

// PlaylistProvider lists the playlist candidates under the session root.
// It is called at most once per Run, on the first file query.
type PlaylistProvider func() (candidate.Set, error)

// Method records how the final candidate was chosen.
type Method int

const (
	MethodRandom Method = iota
	MethodQuery
	MethodFileQuery
	MethodSingle
)

func (m Method) String() string {
	switch m {
	case MethodRandom:
		return "random"
	case MethodQuery:
		return "query"
	case MethodFileQuery:
		return "file-query"
	case MethodSingle:
		return "single"
	default:
		return "unknown"
	}
}

// Outcome is the end of a session. When Aborted is set Candidate is nil and
// the caller decides how to exit.
type Outcome struct {
	Candidate candidate.Candidate
	Method    Method
	Aborted   bool
	Draws     int
}

// Selector holds the collaborators of one session.
type Selector struct {
	In       Input
	Out      io.Writer
	Rand     random.Source
	Resolver QueryResolver
	Logger   *slog.Logger
	// Highlight decorates candidate names in prompts. Nil leaves them plain.
	Highlight func(string) string
}

// New returns a Selector with a clock-seeded source and the fuzzy resolver.
func New(in Input, out io.Writer) *Selector {
	return &Selector{
		In:       in,
		Out:      out,
		Rand:     random.NewSource(),
		Resolver: resolver.New(),
		Logger:   slog.Default(),
	}
}

// Run offers candidates from set until the user settles on one or aborts.
// set must be non-empty. A lone candidate is still presented, so queries and
// abort stay available; rejecting it presents it again.
func (s *Selector) Run(ctx context.Context, set candidate.Set, playlists PlaylistProvider) (Outcome, error) {
	if len(set) == 0 {
		return Outcome{}, perrors.New(perrors.ErrNoCandidates, "nothing to choose from")
	}

	q := &queries{sel: s, albums: set, provider: playlists}
	last, hasLast := 0, false
	draws := 0
draw:
	for {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}
		idx, err := s.draw(len(set), last, hasLast)
		if err != nil {
			return Outcome{}, perrors.Wrap(perrors.ErrEmptyRange, "drawing a candidate", err)
		}
		draws++
		chosen := set[idx]
		s.Logger.Debug("presenting candidate", "index", idx, "name", chosen.Name(), "draw", draws)

		for {
			if err := ctx.Err(); err != nil {
				return Outcome{}, err
			}
			fmt.Fprintf(s.Out, "Play from '%s'? [Y]es/[N]o: ", s.highlight(chosen.Name()))
			key, err := s.In.ReadKey()
			if err != nil {
				return Outcome{}, perrors.Wrap(perrors.ErrTerminal, "reading key", err)
			}
			fmt.Fprintln(s.Out)

			switch key {
			case KeyConfirm:
				method := MethodRandom
				if len(set) == 1 {
					method = MethodSingle
				}
				return s.done(Outcome{Candidate: chosen, Method: method, Draws: draws}), nil
			case KeyReject:
				last, hasLast = idx, true
				continue draw
			case KeyQuery, KeyFileQuery:
				c, ok, err := q.run(key)
				if err != nil {
					return Outcome{}, err
				}
				if ok {
					method := MethodQuery
					if key == KeyFileQuery {
						method = MethodFileQuery
					}
					return s.done(Outcome{Candidate: c, Method: method, Draws: draws}), nil
				}
			case KeyAbort:
				s.Logger.Debug("session aborted", "draws", draws)
				return Outcome{Aborted: true, Draws: draws}, nil
			}
		}
	}
}

func (s *Selector) draw(n, last int, hasLast bool) (int, error) {
	if n == 1 {
		return 0, nil
	}
	if !hasLast {
		return random.Draw(s.Rand, 0, n)
	}
	return random.DrawExcluding(s.Rand, 0, n, last)
}

func (s *Selector) done(o Outcome) Outcome {
	s.Logger.Debug("candidate chosen", "name", o.Candidate.Name(), "method", o.Method.String(), "draws", o.Draws)
	return o
}

func (s *Selector) highlight(name string) string {
	if s.Highlight == nil {
		return name
	}
	return s.Highlight(name)
}
