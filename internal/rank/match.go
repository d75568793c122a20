package rank

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/anthropics/searchengine/internal/query"
	"github.com/anthropics/searchengine/internal/textindex"
	"github.com/anthropics/searchengine/internal/tokenize"
	"github.com/anthropics/searchengine/pkg/types"
)

// MatchResult is the outcome of a match-document probe: the plus-words
// present in the document (empty if any minus-word was present) and the
// document's status.
type MatchResult struct {
	Words  []string
	Status types.Status
}

// MatchDocument probes document id for the plus-words of raw, returning
// them in ascending order with no duplicates. If any minus-word of the
// query is present in the document, Words is empty. Fails with
// ErrNotFound if id is not indexed. The sequential form parses with
// sorted=true and relies on the parser's already-sorted, deduplicated
// output directly.
func MatchDocument(idx *textindex.Index, docs DocSource, raw string, id types.DocumentID, stop *tokenize.StopWords) (MatchResult, error) {
	doc, ok := docs.Document(id)
	if !ok {
		return MatchResult{}, types.Errorf("rank.MatchDocument", types.ErrNotFound, "document %d is not indexed", id)
	}

	q, err := query.Parse(raw, true, stop)
	if err != nil {
		return MatchResult{}, err
	}

	docTerms := idx.DocTerms(id)
	for _, term := range q.Minus {
		if _, present := docTerms[term]; present {
			return MatchResult{Words: nil, Status: doc.Status}, nil
		}
	}

	var words []string
	for _, term := range q.Plus {
		if _, present := docTerms[term]; present {
			words = append(words, term)
		}
	}
	return MatchResult{Words: words, Status: doc.Status}, nil
}

// MatchDocumentParallel has the same semantics as MatchDocument, except
// it parses with sorted=false (tolerating duplicates in parser output)
// and filters the plus-words concurrently, then sorts and deduplicates
// the matched buffer itself.
func MatchDocumentParallel(ctx context.Context, idx *textindex.Index, docs DocSource, raw string, id types.DocumentID, stop *tokenize.StopWords, workers int) (MatchResult, error) {
	doc, ok := docs.Document(id)
	if !ok {
		return MatchResult{}, types.Errorf("rank.MatchDocumentParallel", types.ErrNotFound, "document %d is not indexed", id)
	}

	q, err := query.Parse(raw, false, stop)
	if err != nil {
		return MatchResult{}, err
	}

	docTerms := idx.DocTerms(id)
	for _, term := range q.Minus {
		if _, present := docTerms[term]; present {
			return MatchResult{Words: nil, Status: doc.Status}, nil
		}
	}

	type hit struct {
		term  string
		found bool
	}
	hits := make([]hit, len(q.Plus))
	g, _ := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, term := range q.Plus {
		i, term := i, term
		g.Go(func() error {
			_, present := docTerms[term]
			hits[i] = hit{term: term, found: present}
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[string]struct{}, len(hits))
	var words []string
	for _, h := range hits {
		if !h.found {
			continue
		}
		if _, dup := seen[h.term]; dup {
			continue
		}
		seen[h.term] = struct{}{}
		words = append(words, h.term)
	}
	sort.Strings(words)

	return MatchResult{Words: words, Status: doc.Status}, nil
}
