package search

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/panglesd/sherlodoc/internal/config"
	"github.com/panglesd/sherlodoc/internal/index"
	"github.com/panglesd/sherlodoc/internal/models"
	"github.com/panglesd/sherlodoc/internal/ranking"
)

// Engine runs ranked entry search over the index.
type Engine struct {
	storage index.Storage
	scorer  *ranking.Scorer
	config  *config.SearchConfig
	logger  *zap.Logger
}

// NewEngine creates a search engine with the given dependencies.
func NewEngine(storage index.Storage, scorer *ranking.Scorer, cfg *config.SearchConfig, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		storage: storage,
		scorer:  scorer,
		config:  cfg,
		logger:  logger,
	}
}

// Search tokenizes the query, ranks every candidate entry, and returns the
// requested page ordered by ascending cost. The sort is stable, so exact
// cost ties preserve index order.
func (e *Engine) Search(ctx context.Context, query *models.SearchQuery) (*models.SearchResponse, error) {
	startTime := time.Now()
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if e.config != nil && e.config.MaxLimit > 0 && query.Limit > e.config.MaxLimit {
		query.Limit = e.config.MaxLimit
	}

	parsed, err := ParseQuery(query.Query)
	if err != nil {
		return nil, err
	}

	candidates, err := e.candidates(ctx, query, parsed)
	if err != nil {
		return nil, err
	}

	for _, entry := range candidates {
		e.scorer.UpdateEntryCost(parsed.Words, parsed.Type, entry)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Cost < candidates[j].Cost
	})

	total := len(candidates)
	page := paginate(candidates, query.Offset, query.Limit)
	results := make([]*models.SearchResult, 0, len(page))
	for i, entry := range page {
		results = append(results, &models.SearchResult{
			Entry: entry,
			Cost:  entry.Cost,
			Rank:  query.Offset + i + 1,
		})
	}

	e.logger.Debug("search completed",
		zap.String("query", query.Query),
		zap.Int("candidates", total),
		zap.Int("returned", len(results)),
		zap.Bool("typed", parsed.Type != nil),
	)

	return &models.SearchResponse{
		Results:   results,
		Total:     total,
		QueryTime: time.Since(startTime).Milliseconds(),
		Query:     query.Query,
	}, nil
}

// candidates returns the entries eligible for ranking. When the query
// carries a type filter, entries without an inner type are dropped here:
// the cost function requires that pre-filtering and panics otherwise.
func (e *Engine) candidates(ctx context.Context, query *models.SearchQuery, parsed *ParsedQuery) ([]*models.Entry, error) {
	var (
		entries []*models.Entry
		err     error
	)
	if query.PkgName != "" {
		entries, err = e.storage.EntriesByPackage(ctx, query.PkgName)
	} else {
		entries, err = e.storage.AllEntries(ctx)
	}
	if err != nil {
		return nil, err
	}

	if parsed.Type == nil {
		return entries, nil
	}

	typed := entries[:0]
	for _, entry := range entries {
		if entry.Kind.TypeBearing() {
			typed = append(typed, entry)
		}
	}
	return typed, nil
}

// paginate returns the page of entries at offset with the given limit.
func paginate(entries []*models.Entry, offset, limit int) []*models.Entry {
	if offset >= len(entries) {
		return nil
	}
	end := offset + limit
	if end > len(entries) {
		end = len(entries)
	}
	return entries[offset:end]
}
