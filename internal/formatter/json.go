package formatter

import (
	"encoding/json"

	"github.com/gdql/albumpick/internal/candidate"
)

type jsonCandidate struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Path  string `json:"path"`
	Kind  string `json:"kind"`
	Score *int   `json:"score,omitempty"`
}

func toJSONCandidate(i int, c candidate.Candidate) jsonCandidate {
	return jsonCandidate{Index: i, Name: c.Name(), Path: c.FullPath(), Kind: c.Kind().String()}
}

func formatJSON(result *Result) (string, error) {
	out := map[string]interface{}{
		"type": resultTypeStr(result.Type),
	}
	if result.Root != "" {
		out["root"] = result.Root
	}
	switch result.Type {
	case ResultCandidates:
		list := make([]jsonCandidate, 0, len(result.Candidates))
		for i, c := range result.Candidates {
			list = append(list, toJSONCandidate(i, c))
		}
		out["candidates"] = list
	case ResultRanking:
		out["query"] = result.Query
		list := make([]jsonCandidate, 0, len(result.Ranking))
		for _, m := range result.Ranking {
			jc := toJSONCandidate(m.Index, m.Candidate)
			score := m.Score
			jc.Score = &score
			list = append(list, jc)
		}
		out["ranking"] = list
	case ResultHistory:
		out["picks"] = result.History
		out["total"] = result.Total
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func resultTypeStr(t ResultType) string {
	switch t {
	case ResultCandidates:
		return "candidates"
	case ResultRanking:
		return "ranking"
	case ResultHistory:
		return "history"
	}
	return ""
}
