// Package rank implements the TF-IDF scoring kernel (find-top-documents)
// and the match-document word-presence probe, each in sequential and
// parallel variants sharing one kernel.
package rank

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/anthropics/searchengine/internal/concurrent"
	"github.com/anthropics/searchengine/internal/query"
	"github.com/anthropics/searchengine/internal/textindex"
	"github.com/anthropics/searchengine/internal/tokenize"
	"github.com/anthropics/searchengine/pkg/types"
)

// DocSource answers the two facts about the document registry the ranker
// needs without depending on the engine package itself.
type DocSource interface {
	DocumentCount() int
	Document(id types.DocumentID) (types.Document, bool)
}

// FindTopDocuments runs the sequential ranking kernel: parse the query,
// accumulate tf*idf per plus-word into a plain map, erase minus-word
// hits, filter by predicate, sort by relevance descending (rating
// descending within Epsilon), and truncate to MaxResultDocumentCount.
func FindTopDocuments(idx *textindex.Index, docs DocSource, raw string, stop *tokenize.StopWords, predicate types.Predicate) ([]types.ScoredResult, error) {
	q, err := query.Parse(raw, true, stop)
	if err != nil {
		return nil, err
	}

	acc := make(map[types.DocumentID]float64)
	accumulate(idx, docs, q.Plus, predicate, func(id types.DocumentID, delta float64) {
		acc[id] += delta
	})
	erase(idx, q.Minus, func(id types.DocumentID) { delete(acc, id) })

	return materialize(acc, docs), nil
}

// FindTopDocumentsParallel has the same semantics as FindTopDocuments,
// except the plus-word accumulation step writes into a concurrent
// sharded map instead of a plain map. Minus-word erasure and sorting run
// on the materialized result, not the shared map.
func FindTopDocumentsParallel(ctx context.Context, idx *textindex.Index, docs DocSource, raw string, stop *tokenize.StopWords, predicate types.Predicate, shardCount, workers int) ([]types.ScoredResult, error) {
	q, err := query.Parse(raw, true, stop)
	if err != nil {
		return nil, err
	}

	acc := concurrent.NewShardedMap(shardCount)
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for _, term := range q.Plus {
		term := term
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			postings, ok := idx.Postings(term)
			if !ok {
				return nil
			}
			idf := inverseDocumentFrequency(docs.DocumentCount(), len(postings))
			for id, tf := range postings {
				doc, ok := docs.Document(id)
				if !ok || !predicate(id, doc.Status, doc.Rating) {
					continue
				}
				acc.Add(id, tf*idf)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	flat := acc.BuildOrdinaryMap()
	for _, term := range q.Minus {
		if postings, ok := idx.Postings(term); ok {
			for id := range postings {
				delete(flat, id)
			}
		}
	}

	return materialize(flat, docs), nil
}

func accumulate(idx *textindex.Index, docs DocSource, plus []string, predicate types.Predicate, add func(types.DocumentID, float64)) {
	for _, term := range plus {
		postings, ok := idx.Postings(term)
		if !ok {
			continue
		}
		idf := inverseDocumentFrequency(docs.DocumentCount(), len(postings))
		for id, tf := range postings {
			doc, ok := docs.Document(id)
			if !ok || !predicate(id, doc.Status, doc.Rating) {
				continue
			}
			add(id, tf*idf)
		}
	}
}

func erase(idx *textindex.Index, minus []string, remove func(types.DocumentID)) {
	for _, term := range minus {
		if postings, ok := idx.Postings(term); ok {
			for id := range postings {
				remove(id)
			}
		}
	}
}

func inverseDocumentFrequency(totalDocs, postingsCount int) float64 {
	if postingsCount == 0 {
		return 0
	}
	return math.Log(float64(totalDocs) / float64(postingsCount))
}

func materialize(acc map[types.DocumentID]float64, docs DocSource) []types.ScoredResult {
	results := make([]types.ScoredResult, 0, len(acc))
	for id, relevance := range acc {
		doc, ok := docs.Document(id)
		if !ok {
			continue
		}
		results = append(results, types.ScoredResult{ID: id, Relevance: relevance, Rating: doc.Rating})
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if math.Abs(a.Relevance-b.Relevance) < types.Epsilon {
			return a.Rating > b.Rating
		}
		return a.Relevance > b.Relevance
	})

	if len(results) > types.MaxResultDocumentCount {
		results = results[:types.MaxResultDocumentCount]
	}
	return results
}
