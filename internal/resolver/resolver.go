package resolver

import (
	"fmt"
	"sort"

	"github.com/gdql/albumpick/internal/candidate"
	perrors "github.com/gdql/albumpick/internal/errors"
	"github.com/gdql/albumpick/internal/fuzzy"
)

// Scorer scores a candidate name against a query (0..100, higher is closer).
type Scorer func(name, query string) int

// ScoredMatch is one candidate with its score for a query.
type ScoredMatch struct {
	Index     int
	Score     int
	Candidate candidate.Candidate
}

// Resolver picks the candidate whose name best matches a free-text query.
type Resolver struct {
	Score Scorer
}

// New returns a Resolver scoring with fuzzy.WeightedRatio.
func New() *Resolver {
	return &Resolver{Score: fuzzy.WeightedRatio}
}

// Resolve returns the highest-scoring candidate for query. Ties go to the
// candidate that comes first in set order, so the result is deterministic.
// Any query, including the empty string, resolves when set is non-empty.
func (r *Resolver) Resolve(set candidate.Set, query string) (candidate.Candidate, error) {
	if len(set) == 0 {
		return nil, noCandidates(query)
	}
	buckets := make(map[int][]int)
	var top int
	for i, c := range set {
		s := r.score(c.Name(), query)
		buckets[s] = append(buckets[s], i)
		if i == 0 || s > top {
			top = s
		}
	}
	return set[buckets[top][0]], nil
}

// Rank scores every candidate against query, best first; equal scores keep
// set order. The first entry is what Resolve returns.
func (r *Resolver) Rank(set candidate.Set, query string) ([]ScoredMatch, error) {
	if len(set) == 0 {
		return nil, noCandidates(query)
	}
	out := make([]ScoredMatch, len(set))
	for i, c := range set {
		out[i] = ScoredMatch{Index: i, Score: r.score(c.Name(), query), Candidate: c}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}

func (r *Resolver) score(name, query string) int {
	if r.Score == nil {
		return fuzzy.WeightedRatio(name, query)
	}
	return r.Score(name, query)
}

func noCandidates(query string) error {
	return &perrors.PickError{
		Type:    perrors.ErrNoCandidates,
		Message: "nothing to match",
		Cause:   fmt.Errorf("query %q", query),
	}
}
