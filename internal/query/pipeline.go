package query

import (
	"context"

	"go.uber.org/zap"

	"dexScope/internal/model"
)

// DataSource supplies the aggregated snapshot the pipeline runs over.
type DataSource interface {
	FetchAll(ctx context.Context) (model.DexData, error)
}

// Pipeline composes validation, filtering, pagination, and formatting
// into one operation per request.
type Pipeline struct {
	source DataSource
	logger *zap.Logger
}

// NewPipeline builds a Pipeline over the given data source.
func NewPipeline(source DataSource, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{source: source, logger: logger}
}

// Run validates params, fetches a fresh snapshot, and produces a Page.
// Validation failures return before any data is fetched.
func (p *Pipeline) Run(ctx context.Context, params Params) (Page, error) {
	q, err := ParseParams(params)
	if err != nil {
		return Page{}, err
	}

	data, err := p.source.FetchAll(ctx)
	if err != nil {
		return Page{}, err
	}

	lookup := data.TokenLookup()
	filtered := Filter(data.Pools, q)
	window := Paginate(filtered, q.Page, q.Limit)

	formatted := make([]FormattedPool, 0, len(window))
	for _, pool := range window {
		formatted = append(formatted, FormatPool(pool, lookup))
	}

	total := len(filtered)
	p.logger.Debug("query complete",
		zap.Int("pools", len(data.Pools)),
		zap.Int("filtered", total),
		zap.Int("returned", len(formatted)),
		zap.Int("page", q.Page),
		zap.Int("limit", q.Limit),
	)

	return Page{
		Data: formatted,
		Pagination: Pagination{
			Page:    q.Page,
			Limit:   q.Limit,
			Total:   total,
			HasMore: q.Page*q.Limit < total,
		},
	}, nil
}
