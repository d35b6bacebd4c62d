package formatter

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/gdql/albumpick/internal/candidate"
	"github.com/gdql/albumpick/internal/history"
	"github.com/gdql/albumpick/internal/resolver"
	"github.com/stretchr/testify/require"
)

func sampleSet() candidate.Set {
	return candidate.Set{
		candidate.NewDirectory("/music/Abbey Road"),
		candidate.NewPlaylist("/music/road trip.m3u"),
	}
}

func TestFormat_TableCandidates(t *testing.T) {
	out, err := New().Format(&Result{Type: ResultCandidates, Candidates: sampleSet()}, FormatTable)
	require.NoError(t, err)
	require.Contains(t, out, "  0 | directory | Abbey Road\n")
	require.Contains(t, out, "  1 | playlist  | road trip.m3u\n")
}

func TestFormat_TableEmpty(t *testing.T) {
	out, err := New().Format(&Result{Type: ResultCandidates}, FormatTable)
	require.NoError(t, err)
	require.Equal(t, "No candidates found.", out)

	out, err = New().Format(&Result{Type: ResultHistory}, FormatTable)
	require.NoError(t, err)
	require.Equal(t, "No picks recorded.", out)
}

func TestFormat_JSONRanking(t *testing.T) {
	set := sampleSet()
	ranking, err := resolver.New().Rank(set, "abbey")
	require.NoError(t, err)

	out, err := New().Format(&Result{Type: ResultRanking, Root: "/music", Query: "abbey", Ranking: ranking}, FormatJSON)
	require.NoError(t, err)

	var decoded struct {
		Type    string `json:"type"`
		Root    string `json:"root"`
		Query   string `json:"query"`
		Ranking []struct {
			Index int    `json:"index"`
			Name  string `json:"name"`
			Kind  string `json:"kind"`
			Score int    `json:"score"`
		} `json:"ranking"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Equal(t, "ranking", decoded.Type)
	require.Equal(t, "/music", decoded.Root)
	require.Len(t, decoded.Ranking, 2)
	require.Equal(t, "Abbey Road", decoded.Ranking[0].Name)
	require.Equal(t, "directory", decoded.Ranking[0].Kind)
	require.Equal(t, 90, decoded.Ranking[0].Score)
}

func TestFormat_CSVHistory(t *testing.T) {
	picks := []*history.Pick{{
		ID: 7, SessionID: "s1", PickedAt: time.Date(2026, 10, 3, 21, 0, 0, 0, time.UTC),
		Name: "Revolver, Remastered", Path: "/music/Revolver", Kind: "directory", Method: "query",
	}}
	out, err := New().Format(&Result{Type: ResultHistory, History: picks}, FormatCSV)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "id,session_id,picked_at,name,path,kind,method", lines[0])
	require.Equal(t, `7,s1,2026-10-03T21:00:00Z,"Revolver, Remastered",/music/Revolver,directory,query`, lines[1])
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, f)
	f, err = ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatTable, f)
	_, err = ParseFormat("yaml")
	require.Error(t, err)
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "abc", truncate("abc", 5))
	require.Equal(t, "abcd…", truncate("abcdefgh", 5))
}

func TestFormat_TableHistoryTotal(t *testing.T) {
	picks := []*history.Pick{{Name: "Revolver", Method: "query", PickedAt: time.Date(2026, 10, 3, 21, 0, 0, 0, time.UTC)}}
	out, err := New().Format(&Result{Type: ResultHistory, History: picks, Total: 3}, FormatTable)
	require.NoError(t, err)
	require.Contains(t, out, "Revolver")
	require.True(t, strings.HasSuffix(out, "1 of 3 picks shown\n"))

	out, err = New().Format(&Result{Type: ResultHistory, History: picks, Total: 1}, FormatTable)
	require.NoError(t, err)
	require.NotContains(t, out, "picks shown")
}
