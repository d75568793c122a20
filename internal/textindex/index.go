package textindex

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/anthropics/searchengine/pkg/types"
)

// Index holds the two lockstep views of the term/document fact table plus
// the string pool backing their keys. It is not internally synchronized:
// callers must serialize mutations themselves; concurrent reads are safe
// only while no mutation is in progress.
type Index struct {
	pool       *Pool
	termMajor  map[string]map[types.DocumentID]float64
	docMajor   map[types.DocumentID]map[string]float64
}

// New returns an empty Index.
func New() *Index {
	return &Index{
		pool:      NewPool(),
		termMajor: make(map[string]map[types.DocumentID]float64),
		docMajor:  make(map[types.DocumentID]map[string]float64),
	}
}

// AddTerm records that term occurs in document id with term-frequency tf,
// interning term and updating both index views in lockstep.
func (idx *Index) AddTerm(term string, id types.DocumentID, tf float64) {
	term = idx.pool.Intern(term)

	postings, ok := idx.termMajor[term]
	if !ok {
		postings = make(map[types.DocumentID]float64)
		idx.termMajor[term] = postings
	}
	postings[id] = tf

	doc, ok := idx.docMajor[id]
	if !ok {
		doc = make(map[string]float64)
		idx.docMajor[id] = doc
	}
	doc[term] = tf
}

// Postings returns the term-major postings list for term, and whether the
// term is known to the index.
func (idx *Index) Postings(term string) (map[types.DocumentID]float64, bool) {
	p, ok := idx.termMajor[term]
	return p, ok
}

// DocTerms returns the document-major term/tf map for id. The returned
// map is empty (never nil) for an unknown id, so callers can range over
// it unconditionally.
func (idx *Index) DocTerms(id types.DocumentID) map[string]float64 {
	if d, ok := idx.docMajor[id]; ok {
		return d
	}
	return map[string]float64{}
}

// Contains reports whether term has at least one posting.
func (idx *Index) Contains(term string) bool {
	_, ok := idx.termMajor[term]
	return ok
}

// TermCount returns the number of distinct indexed terms.
func (idx *Index) TermCount() int {
	return idx.pool.Len()
}

// RemoveDocument removes every term belonging to id from both index
// views, releasing terms from the string pool once no postings list
// still references them. Unknown ids are a silent no-op.
func (idx *Index) RemoveDocument(id types.DocumentID) {
	doc, ok := idx.docMajor[id]
	if !ok {
		return
	}
	for term := range doc {
		idx.removeTermForDoc(term, id)
	}
	delete(idx.docMajor, id)
}

// RemoveDocumentParallel has the same semantics as RemoveDocument. It
// snapshots the document's term list and hands each term to an
// errgroup-managed worker pool, which only collects the terms; the index
// and pool deletions themselves run sequentially after all workers finish,
// followed by erasing the per-document entry.
func (idx *Index) RemoveDocumentParallel(ctx context.Context, id types.DocumentID, workers int) error {
	doc, ok := idx.docMajor[id]
	if !ok {
		return nil
	}
	terms := make([]string, 0, len(doc))
	for term := range doc {
		terms = append(terms, term)
	}

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	type removal struct{ term string }
	results := make(chan removal, len(terms))
	for _, term := range terms {
		term := term
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results <- removal{term: term}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		close(results)
		return err
	}
	close(results)
	for r := range results {
		idx.removeTermForDoc(r.term, id)
	}

	delete(idx.docMajor, id)
	return nil
}

func (idx *Index) removeTermForDoc(term string, id types.DocumentID) {
	postings, ok := idx.termMajor[term]
	if !ok {
		return
	}
	delete(postings, id)
	idx.pool.Release(term)
	if len(postings) == 0 {
		delete(idx.termMajor, term)
	}
}

// TermSet returns the sorted, deduplicated set of terms in document id,
// used by the deduplicator to build a document's term-set signature.
func (idx *Index) TermSet(id types.DocumentID) []string {
	doc := idx.docMajor[id]
	terms := make([]string, 0, len(doc))
	for term := range doc {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
