// Package search provides the query front end: tokenization, candidate
// filtering, ranking, and pagination.
package search

import (
	"fmt"
	"strings"

	"github.com/panglesd/sherlodoc/internal/typexpr"
)

// ParsedQuery is the tokenized form of a raw search query.
type ParsedQuery struct {
	// Words are the whitespace-separated, case-sensitive query words.
	Words []string
	// Type is the optional type filter, nil when the query has none.
	Type *typexpr.Type
}

// ParseQuery splits a raw query into words and an optional type filter.
// A colon separates the name part from the type part:
// "map : ('a -> 'b) -> 'a list -> 'b list". Words keep their case; the
// ranking core applies its own case rules per word.
func ParseQuery(raw string) (*ParsedQuery, error) {
	namePart, typePart, hasType := strings.Cut(raw, ":")

	parsed := &ParsedQuery{Words: strings.Fields(namePart)}

	if hasType {
		typePart = strings.TrimSpace(typePart)
		if typePart == "" {
			return nil, fmt.Errorf("empty type filter after ':'")
		}
		typ, err := typexpr.Parse(typePart)
		if err != nil {
			return nil, fmt.Errorf("invalid type filter: %w", err)
		}
		parsed.Type = typ
	}

	return parsed, nil
}
