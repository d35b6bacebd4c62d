package formatter

import (
	"fmt"
	"strings"

	"github.com/gdql/albumpick/internal/candidate"
	"github.com/gdql/albumpick/internal/history"
	"github.com/gdql/albumpick/internal/resolver"
)

func formatTable(result *Result) (string, error) {
	switch result.Type {
	case ResultCandidates:
		return tableCandidates(result.Candidates), nil
	case ResultRanking:
		return tableRanking(result.Ranking), nil
	case ResultHistory:
		return tableHistory(result.History, result.Total), nil
	default:
		return "", nil
	}
}

func tableCandidates(set candidate.Set) string {
	if len(set) == 0 {
		return "No candidates found."
	}
	var b strings.Builder
	b.WriteString("  # | KIND      | NAME\n")
	b.WriteString("----+-----------+------------------------------\n")
	for i, c := range set {
		fmt.Fprintf(&b, "%3d | %-9s | %s\n", i, c.Kind(), truncate(c.Name(), 40))
	}
	return b.String()
}

func tableRanking(ranking []resolver.ScoredMatch) string {
	if len(ranking) == 0 {
		return "No candidates found."
	}
	var b strings.Builder
	b.WriteString("SCORE | NAME\n")
	b.WriteString("------+------------------------------\n")
	for _, m := range ranking {
		fmt.Fprintf(&b, "%5d | %s\n", m.Score, truncate(m.Candidate.Name(), 40))
	}
	return b.String()
}

func tableHistory(picks []*history.Pick, total int) string {
	if len(picks) == 0 {
		return "No picks recorded."
	}
	var b strings.Builder
	b.WriteString("PICKED AT        | METHOD     | NAME\n")
	b.WriteString("-----------------+------------+------------------------------\n")
	for _, p := range picks {
		at := p.PickedAt.Local().Format("2006-01-02 15:04")
		fmt.Fprintf(&b, "%-16s | %-10s | %s\n", at, p.Method, truncate(p.Name, 40))
	}
	if total > len(picks) {
		fmt.Fprintf(&b, "%d of %d picks shown\n", len(picks), total)
	}
	return b.String()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
