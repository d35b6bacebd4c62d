package fuzzy

import sfuzzy "github.com/sahilm/fuzzy"

// Match is a subsequence match of a pattern against one name.
type Match struct {
	Str   string
	Index int
	Score int
}

// Filter keeps the names that contain pattern as a subsequence, best first.
// An empty pattern keeps everything in input order.
func Filter(pattern string, names []string) []Match {
	if pattern == "" {
		out := make([]Match, len(names))
		for i, n := range names {
			out[i] = Match{Str: n, Index: i}
		}
		return out
	}
	results := sfuzzy.Find(pattern, names)
	out := make([]Match, len(results))
	for i, r := range results {
		out[i] = Match{Str: r.Str, Index: r.Index, Score: r.Score}
	}
	return out
}
