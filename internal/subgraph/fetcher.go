package subgraph

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"dexScope/internal/model"
)

// FetchError marks a failure to produce an aggregated snapshot, as
// opposed to a bad request.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch dex data: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher aggregates snapshots from all configured subgraph sources.
type Fetcher struct {
	client  *Client
	sources []Source
	logger  *zap.Logger
}

// NewFetcher builds a Fetcher over the given sources.
func NewFetcher(client *Client, sources []Source, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		client:  client,
		sources: sources,
		logger:  logger,
	}
}

// FetchAll queries every source in parallel and merges the results.
// A source that fails degrades to an empty contribution; the fetch as a
// whole fails only when no source is configured or every source failed.
func (f *Fetcher) FetchAll(ctx context.Context) (model.DexData, error) {
	if len(f.sources) == 0 {
		return model.DexData{}, &FetchError{Err: fmt.Errorf("no subgraph endpoints configured")}
	}

	results := make([]model.DexData, len(f.sources))
	failures := make([]error, len(f.sources))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, source := range f.sources {
		i, source := i, source
		group.Go(func() error {
			data, err := source.Fetch(groupCtx, f.client)
			if err != nil {
				f.logger.Warn("source fetch failed",
					zap.String("source", source.Name),
					zap.String("chain", source.Chain),
					zap.Error(err),
				)
				failures[i] = err
				return nil
			}
			results[i] = data
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return model.DexData{}, &FetchError{Err: err}
	}

	failed := 0
	for _, err := range failures {
		if err != nil {
			failed++
		}
	}
	if failed == len(f.sources) {
		return model.DexData{}, &FetchError{Err: fmt.Errorf("all %d sources unreachable: %v", failed, failures[0])}
	}

	return merge(results), nil
}

// merge concatenates pool lists and unions token lists, deduplicating
// tokens by address with first-seen metadata winning.
func merge(results []model.DexData) model.DexData {
	out := model.DexData{
		Tokens: make([]model.Token, 0),
		Pools:  make([]model.Pool, 0),
	}
	seen := make(map[string]struct{})

	for _, result := range results {
		for _, token := range result.Tokens {
			if _, ok := seen[token.Address]; ok {
				continue
			}
			seen[token.Address] = struct{}{}
			out.Tokens = append(out.Tokens, token)
		}
		out.Pools = append(out.Pools, result.Pools...)
	}
	return out
}
