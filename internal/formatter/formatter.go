package formatter

import (
	"fmt"
	"strings"

	"github.com/gdql/albumpick/internal/candidate"
	"github.com/gdql/albumpick/internal/history"
	"github.com/gdql/albumpick/internal/resolver"
)

// OutputFormat selects output style.
type OutputFormat int

const (
	FormatTable OutputFormat = iota
	FormatJSON
	FormatCSV
)

// ResultType identifies what a Result holds.
type ResultType int

const (
	ResultCandidates ResultType = iota
	ResultRanking
	ResultHistory
)

// Result is anything the CLI prints outside the interactive loop.
type Result struct {
	Type       ResultType
	Root       string
	Query      string
	Candidates candidate.Set
	Ranking    []resolver.ScoredMatch
	History    []*history.Pick
	Total      int // stored picks; History may be a page of them
}

// Formatter renders a Result as a string.
type Formatter interface {
	Format(result *Result, format OutputFormat) (string, error)
}

type formatter struct{}

// New returns a Formatter.
func New() Formatter {
	return &formatter{}
}

// Format dispatches to the appropriate formatter by format.
func (f *formatter) Format(result *Result, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(result)
	case FormatCSV:
		return formatCSV(result)
	default:
		return formatTable(result)
	}
}

// ParseFormat converts a --format flag value.
func ParseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	}
	return FormatTable, fmt.Errorf("unknown format %q (want table, json or csv)", s)
}
