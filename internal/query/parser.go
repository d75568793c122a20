// Package query parses raw query strings into classified plus/minus term
// lists, discarding stop words along the way.
package query

import (
	"sort"
	"strings"

	"github.com/anthropics/searchengine/internal/tokenize"
	"github.com/anthropics/searchengine/pkg/types"
)

// Query is the parsed, classified form of a raw query string.
type Query struct {
	Plus  []string
	Minus []string
}

// Parse classifies each whitespace-separated token of raw as plus, minus,
// or stop, discarding stop words. A token beginning with "-" is a minus
// word once the leading "-" is stripped; an empty result or a remaining
// leading "-" (i.e. the original token was "-" or began with "--") fails
// with ErrInvalidInput. Any token containing a control byte (< 0x20)
// also fails with ErrInvalidInput.
//
// When sorted is true, both Plus and Minus are sorted and deduplicated.
// The ranking kernels and the sequential match operator parse this way;
// the parallel match operator parses unsorted and deduplicates its own
// matched buffer.
func Parse(raw string, sorted bool, stop *tokenize.StopWords) (Query, error) {
	var q Query
	for _, tok := range tokenize.Split(raw) {
		if !tokenize.Valid(tok) {
			return Query{}, types.Errorf("query.Parse", types.ErrInvalidInput, "query token %q contains a control character", tok)
		}

		isMinus := false
		term := tok
		if strings.HasPrefix(term, "-") {
			isMinus = true
			term = term[1:]
		}
		if term == "" || strings.HasPrefix(term, "-") {
			return Query{}, types.Errorf("query.Parse", types.ErrInvalidInput, "malformed query token %q", tok)
		}

		if stop.Contains(term) {
			continue
		}
		if isMinus {
			q.Minus = append(q.Minus, term)
		} else {
			q.Plus = append(q.Plus, term)
		}
	}

	if sorted {
		q.Plus = sortDedup(q.Plus)
		q.Minus = sortDedup(q.Minus)
	}
	return q, nil
}

func sortDedup(terms []string) []string {
	if len(terms) == 0 {
		return terms
	}
	sorted := append([]string(nil), terms...)
	sort.Strings(sorted)
	out := sorted[:1]
	for _, t := range sorted[1:] {
		if t != out[len(out)-1] {
			out = append(out, t)
		}
	}
	return out
}
