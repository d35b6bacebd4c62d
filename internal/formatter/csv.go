package formatter

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"
)

func formatCSV(result *Result) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	switch result.Type {
	case ResultCandidates:
		w.Write([]string{"index", "kind", "name", "path"})
		for i, c := range result.Candidates {
			w.Write([]string{fmt.Sprint(i), c.Kind().String(), c.Name(), c.FullPath()})
		}
	case ResultRanking:
		w.Write([]string{"index", "score", "name", "path"})
		for _, m := range result.Ranking {
			w.Write([]string{fmt.Sprint(m.Index), fmt.Sprint(m.Score), m.Candidate.Name(), m.Candidate.FullPath()})
		}
	case ResultHistory:
		w.Write([]string{"id", "session_id", "picked_at", "name", "path", "kind", "method"})
		for _, p := range result.History {
			w.Write([]string{
				fmt.Sprint(p.ID), p.SessionID, p.PickedAt.UTC().Format(time.RFC3339),
				p.Name, p.Path, p.Kind, p.Method,
			})
		}
	}
	w.Flush()
	return b.String(), w.Error()
}
