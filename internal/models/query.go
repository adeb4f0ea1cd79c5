package models

import "fmt"

// SearchQuery represents a search request. Query holds the raw query text,
// which may carry a trailing type filter after a colon, e.g.
// "map : ('a -> 'b) -> 'a list -> 'b list".
type SearchQuery struct {
	Query  string `json:"query"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
	// PkgName restricts results to entries from one package when non-empty.
	PkgName string `json:"pkg_name,omitempty"`
}

// Validate ensures the search query has valid fields and sets defaults.
// Returns an error if the query text is empty; otherwise normalizes limit.
func (q *SearchQuery) Validate() error {
	if q.Query == "" {
		return fmt.Errorf("query cannot be empty")
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return nil
}
