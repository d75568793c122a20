// Package history implements the bounded request-history counter: a
// sliding window over the last HistoryCapacity query results, counting
// how many produced zero results.
package history

import (
	"github.com/google/uuid"

	"github.com/anthropics/searchengine/pkg/types"
)

// Searcher is the subset of the engine's find-top-documents surface the
// history counter wraps. Declared here, rather than depending on the
// engine package, to keep this package a leaf.
type Searcher interface {
	FindTopDocuments(raw string, predicate types.Predicate) ([]types.ScoredResult, error)
	FindTopDocumentsByStatus(raw string, status types.Status) ([]types.ScoredResult, error)
	FindTopDocumentsDefault(raw string) ([]types.ScoredResult, error)
}

type entry struct {
	resultCount int
	requestID   uuid.UUID
}

// RequestHistory records the size of each query result set against a
// fixed-capacity FIFO window, mirroring the engine's three
// find-top-documents calling conventions. The window is a ring buffer
// over a fixed-size slice, so its backing array never grows past
// capacity.
type RequestHistory struct {
	engine        Searcher
	capacity      int
	window        []entry
	head          int
	size          int
	zeroResultCnt int
}

// New wraps engine in a RequestHistory with the standard fixed capacity
// (1 440 entries — a one-minute-granularity rolling day).
func New(engine Searcher) *RequestHistory {
	return &RequestHistory{
		engine:   engine,
		capacity: types.HistoryCapacity,
		window:   make([]entry, types.HistoryCapacity),
	}
}

// AddFindRequest issues the default find-top-documents form (status =
// ACTUAL) and records its result count.
func (h *RequestHistory) AddFindRequest(raw string) ([]types.ScoredResult, error) {
	results, err := h.engine.FindTopDocumentsDefault(raw)
	if err != nil {
		return nil, err
	}
	h.record(len(results))
	return results, nil
}

// AddFindRequestWithStatus issues the status-filtered form and records
// its result count.
func (h *RequestHistory) AddFindRequestWithStatus(raw string, status types.Status) ([]types.ScoredResult, error) {
	results, err := h.engine.FindTopDocumentsByStatus(raw, status)
	if err != nil {
		return nil, err
	}
	h.record(len(results))
	return results, nil
}

// AddFindRequestWithPredicate issues the predicate-filtered form and
// records its result count.
func (h *RequestHistory) AddFindRequestWithPredicate(raw string, predicate types.Predicate) ([]types.ScoredResult, error) {
	results, err := h.engine.FindTopDocuments(raw, predicate)
	if err != nil {
		return nil, err
	}
	h.record(len(results))
	return results, nil
}

func (h *RequestHistory) record(resultCount int) {
	tail := (h.head + h.size) % h.capacity
	if h.size == h.capacity {
		if h.window[h.head].resultCount == 0 {
			h.zeroResultCnt--
		}
		h.head = (h.head + 1) % h.capacity
		tail = (h.head + h.capacity - 1) % h.capacity
	} else {
		h.size++
	}
	h.window[tail] = entry{resultCount: resultCount, requestID: uuid.New()}
	if resultCount == 0 {
		h.zeroResultCnt++
	}
}

// NoResultRequests returns the number of entries in the current window
// whose recorded result size was zero.
func (h *RequestHistory) NoResultRequests() int {
	return h.zeroResultCnt
}
