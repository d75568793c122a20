// Package engine binds the tokenizer, stop-word set, dual inverted
// index, query parser, ranker, and match operator into the public
// search-engine contract.
package engine

import (
	"context"
	"os"
	"runtime"
	"sort"

	"github.com/rs/zerolog"

	"github.com/anthropics/searchengine/internal/rank"
	"github.com/anthropics/searchengine/internal/textindex"
	"github.com/anthropics/searchengine/internal/tokenize"
	"github.com/anthropics/searchengine/pkg/types"
)

// Engine is a single in-memory retrieval engine instance. It holds all
// process-wide index state for its lifetime; there is no persistence.
//
// Per the contract, concurrent writes (AddDocument/RemoveDocument) are
// not supported — the caller must serialize mutations externally.
// Concurrent reads are safe, and a parallel find-top-documents call must
// not race a concurrent mutation. Engine therefore holds no internal
// lock of its own: that discipline is the caller's responsibility, not
// something this type can enforce from the inside.
type Engine struct {
	idx    *textindex.Index
	docs   map[types.DocumentID]types.Document
	stop   *tokenize.StopWords
	cfg    *types.EngineConfig
	logger zerolog.Logger
}

// New constructs an Engine over the given stop words and configuration.
// A nil cfg uses types.DefaultEngineConfig().
func New(stopWords []string, cfg *types.EngineConfig) (*Engine, error) {
	stop, err := tokenize.NewStopWords(stopWords)
	if err != nil {
		return nil, err
	}
	return newEngine(stop, cfg), nil
}

// NewFromText is a convenience constructor splitting a single
// space-separated string into the stop-word set.
func NewFromText(stopWordsText string, cfg *types.EngineConfig) (*Engine, error) {
	stop, err := tokenize.NewStopWordsFromText(stopWordsText)
	if err != nil {
		return nil, err
	}
	return newEngine(stop, cfg), nil
}

func newEngine(stop *tokenize.StopWords, cfg *types.EngineConfig) *Engine {
	if cfg == nil {
		cfg = types.DefaultEngineConfig()
	}
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	return &Engine{
		idx:    textindex.New(),
		docs:   make(map[types.DocumentID]types.Document),
		stop:   stop,
		cfg:    cfg,
		logger: logger,
	}
}

// Logger returns the engine's structured logger, e.g. for the
// deduplicator to log through.
func (e *Engine) Logger() zerolog.Logger {
	return e.logger
}

func (e *Engine) workerPoolSize() int {
	if e.cfg.WorkerPoolSize > 0 {
		return e.cfg.WorkerPoolSize
	}
	return runtime.NumCPU()
}

// AddDocument indexes document id with the given text, status, and
// rating vector. Rejection order: negative id, duplicate id, control
// character in the text, then (after stop-word removal) a document with
// no indexable tokens.
func (e *Engine) AddDocument(id types.DocumentID, text string, status types.Status, ratings []int) error {
	const op = "engine.AddDocument"

	if id < 0 {
		return types.Errorf(op, types.ErrInvalidInput, "document id %d is negative", id)
	}
	if _, exists := e.docs[id]; exists {
		return types.Errorf(op, types.ErrInvalidInput, "document id %d is already indexed", id)
	}
	if !tokenize.Valid(text) {
		return types.Errorf(op, types.ErrInvalidInput, "document text contains a control character")
	}

	kept := make([]string, 0)
	for _, tok := range tokenize.Split(text) {
		if e.stop.Contains(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	if len(kept) == 0 {
		return types.Errorf(op, types.ErrInvalidInput, "document has no indexable tokens")
	}

	inv := 1.0 / float64(len(kept))
	counts := make(map[string]int, len(kept))
	for _, tok := range kept {
		counts[tok]++
	}
	for tok, count := range counts {
		e.idx.AddTerm(tok, id, float64(count)*inv)
	}

	e.docs[id] = types.Document{
		ID:     id,
		Rating: averageRating(ratings),
		Status: status,
	}
	return nil
}

func averageRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return sum / len(ratings) // truncated integer division.
}

// RemoveDocument removes id from the engine. Unknown ids are a silent
// no-op.
func (e *Engine) RemoveDocument(id types.DocumentID) error {
	e.idx.RemoveDocument(id)
	delete(e.docs, id)
	return nil
}

// RemoveDocumentParallel has identical semantics to RemoveDocument, using
// textindex.Index.RemoveDocumentParallel for the index cleanup (its worker
// pool collects the terms; the deletions run sequentially).
func (e *Engine) RemoveDocumentParallel(ctx context.Context, id types.DocumentID) error {
	if err := e.idx.RemoveDocumentParallel(ctx, id, e.workerPoolSize()); err != nil {
		return err
	}
	delete(e.docs, id)
	return nil
}

// FindTopDocuments is the predicate-form kernel: sequential ranking
// filtered by an arbitrary predicate.
func (e *Engine) FindTopDocuments(query string, predicate types.Predicate) ([]types.ScoredResult, error) {
	return rank.FindTopDocuments(e.idx, e, query, e.stop, predicate)
}

// FindTopDocumentsByStatus is the status-form kernel: predicate is
// "status equals the given value".
func (e *Engine) FindTopDocumentsByStatus(query string, status types.Status) ([]types.ScoredResult, error) {
	return rank.FindTopDocuments(e.idx, e, query, e.stop, types.StatusPredicate(status))
}

// FindTopDocumentsDefault is the default form: status form with
// status = ACTUAL.
func (e *Engine) FindTopDocumentsDefault(query string) ([]types.ScoredResult, error) {
	return e.FindTopDocumentsByStatus(query, types.StatusActual)
}

// FindTopDocumentsParallel is the parallel predicate-form kernel.
func (e *Engine) FindTopDocumentsParallel(ctx context.Context, query string, predicate types.Predicate) ([]types.ScoredResult, error) {
	return rank.FindTopDocumentsParallel(ctx, e.idx, e, query, e.stop, predicate, e.cfg.ShardCount, e.workerPoolSize())
}

// FindTopDocumentsByStatusParallel is the parallel status-form kernel.
func (e *Engine) FindTopDocumentsByStatusParallel(ctx context.Context, query string, status types.Status) ([]types.ScoredResult, error) {
	return e.FindTopDocumentsParallel(ctx, query, types.StatusPredicate(status))
}

// FindTopDocumentsDefaultParallel is the parallel default form.
func (e *Engine) FindTopDocumentsDefaultParallel(ctx context.Context, query string) ([]types.ScoredResult, error) {
	return e.FindTopDocumentsByStatusParallel(ctx, query, types.StatusActual)
}

// MatchDocument probes document id for query's plus-words, sequentially.
func (e *Engine) MatchDocument(query string, id types.DocumentID) (rank.MatchResult, error) {
	return rank.MatchDocument(e.idx, e, query, id, e.stop)
}

// MatchDocumentParallel has identical semantics to MatchDocument, using
// the parallel filter/sort/unique path.
func (e *Engine) MatchDocumentParallel(ctx context.Context, query string, id types.DocumentID) (rank.MatchResult, error) {
	return rank.MatchDocumentParallel(ctx, e.idx, e, query, id, e.stop, e.workerPoolSize())
}

// DocumentCount returns the number of currently indexed documents.
func (e *Engine) DocumentCount() int {
	return len(e.docs)
}

// Document returns the document record for id, satisfying
// rank.DocSource.
func (e *Engine) Document(id types.DocumentID) (types.Document, bool) {
	d, ok := e.docs[id]
	return d, ok
}

// WordFrequencies returns the term/tf map for id (empty, never nil, for
// an unknown id).
func (e *Engine) WordFrequencies(id types.DocumentID) map[string]float64 {
	return e.idx.DocTerms(id)
}

// TermSet returns the sorted, deduplicated term set of document id, used
// by the deduplicator to build a duplicate-detection signature.
func (e *Engine) TermSet(id types.DocumentID) []string {
	return e.idx.TermSet(id)
}

// Iter returns the currently indexed ids in ascending order.
func (e *Engine) Iter() []types.DocumentID {
	ids := make([]types.DocumentID, 0, len(e.docs))
	for id := range e.docs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
