// Package bulk fans a batch of queries out across a worker pool and
// collects per-query results, preserving input order.
package bulk

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/anthropics/searchengine/pkg/types"
)

// Engine is the subset of the engine facade the bulk runner needs.
type Engine interface {
	FindTopDocumentsDefault(raw string) ([]types.ScoredResult, error)
}

// ProcessQueries runs each of queries through engine's default
// find-top-documents form in parallel and returns one result slice per
// query, in the same order as the input. The batch is tagged with a
// correlation id, logged once at debug level, so the fan-out can be
// traced across goroutines in production logs.
func ProcessQueries(ctx context.Context, engine Engine, queries []string, workers int, logger zerolog.Logger) ([][]types.ScoredResult, error) {
	batchID := uuid.New()
	logger.Debug().Str("batch_id", batchID.String()).Int("query_count", len(queries)).Msg("processing query batch")

	results := make([][]types.ScoredResult, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			r, err := engine.FindTopDocumentsDefault(q)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ProcessQueriesJoined returns the flat concatenation of ProcessQueries'
// result, preserving query order and in-query result order.
func ProcessQueriesJoined(ctx context.Context, engine Engine, queries []string, workers int, logger zerolog.Logger) ([]types.ScoredResult, error) {
	perQuery, err := ProcessQueries(ctx, engine, queries, workers, logger)
	if err != nil {
		return nil, err
	}

	var joined []types.ScoredResult
	for _, r := range perQuery {
		joined = append(joined, r...)
	}
	return joined, nil
}
