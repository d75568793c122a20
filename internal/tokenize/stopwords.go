package tokenize

import (
	"sort"
	"strings"

	"github.com/anthropics/searchengine/pkg/types"
)

// StopWords is an immutable set of tokens excluded from indexing and from
// query processing.
type StopWords struct {
	set map[string]struct{}
}

// NewStopWords builds a StopWords set from any iterable of strings.
// Control-character entries fail with ErrInvalidInput; empty strings are
// silently dropped. The set is read-only once returned.
func NewStopWords(words []string) (*StopWords, error) {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if !Valid(w) {
			return nil, types.Errorf("tokenize.NewStopWords", types.ErrInvalidInput, "stop word %q contains a control character", w)
		}
		set[w] = struct{}{}
	}
	return &StopWords{set: set}, nil
}

// NewStopWordsFromText is a convenience constructor splitting a single
// space-separated string into a StopWords set.
func NewStopWordsFromText(text string) (*StopWords, error) {
	return NewStopWords(Split(text))
}

// Contains reports whether word is a stop word. A nil receiver behaves
// as the empty set.
func (s *StopWords) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.set[word]
	return ok
}

// Len returns the number of stop words.
func (s *StopWords) Len() int {
	if s == nil {
		return 0
	}
	return len(s.set)
}

// String renders the set in sorted order, mainly for diagnostics.
func (s *StopWords) String() string {
	if s == nil || len(s.set) == 0 {
		return ""
	}
	words := make([]string, 0, len(s.set))
	for w := range s.set {
		words = append(words, w)
	}
	sort.Strings(words)
	return strings.Join(words, " ")
}
