package models

// SearchResult represents a single search hit. Cost is the ranking cost
// computed for this query; lower cost means higher rank.
type SearchResult struct {
	Entry *Entry `json:"entry"`
	Cost  int    `json:"cost"`
	Rank  int    `json:"rank"`
}

// SearchResponse is the response for a search request. Results are ordered
// by ascending cost; ties preserve index order (stable sort).
type SearchResponse struct {
	Results []*SearchResult `json:"results"`
	// Total is the number of candidates that matched before pagination.
	Total     int    `json:"total"`
	QueryTime int64  `json:"query_time_ms"`
	Query     string `json:"query"`
}
