// Package dedup removes documents whose term-set duplicates an earlier
// document's, keeping the lowest id.
package dedup

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/anthropics/searchengine/pkg/types"
)

// Engine is the subset of the engine facade the deduplicator needs.
// Declared here, rather than depending on the engine package, to keep
// this package a leaf.
type Engine interface {
	Iter() []types.DocumentID
	TermSet(id types.DocumentID) []string
	RemoveDocument(id types.DocumentID) error
	RemoveDocumentParallel(ctx context.Context, id types.DocumentID) error
}

// RemoveDuplicates walks the document-id registry in ascending order,
// builds each document's term-set signature, and removes every document
// whose signature was already seen — so the lowest id in each duplicate
// group is the one that survives. Each removal is logged at info level
// as "Found duplicate document id <id>".
func RemoveDuplicates(engine Engine, logger zerolog.Logger) error {
	for _, id := range findDuplicates(engine) {
		logger.Info().Int("doc_id", int(id)).Msgf("Found duplicate document id %d", id)
		if err := engine.RemoveDocument(id); err != nil {
			return err
		}
	}
	return nil
}

// RemoveDuplicatesParallel has identical detection semantics to
// RemoveDuplicates — duplicate detection walks the registry sequentially
// since it is read-only and order-sensitive — but removes each marked
// duplicate through the engine's parallel remove-document variant.
func RemoveDuplicatesParallel(ctx context.Context, engine Engine, logger zerolog.Logger) error {
	for _, id := range findDuplicates(engine) {
		logger.Info().Int("doc_id", int(id)).Msgf("Found duplicate document id %d", id)
		if err := engine.RemoveDocumentParallel(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func findDuplicates(engine Engine) []types.DocumentID {
	seen := make(map[string]struct{})
	var duplicates []types.DocumentID

	for _, id := range engine.Iter() {
		sig := signature(engine.TermSet(id))
		if _, ok := seen[sig]; ok {
			duplicates = append(duplicates, id)
			continue
		}
		seen[sig] = struct{}{}
	}
	return duplicates
}

// signature builds a stable key for a sorted, deduplicated term set.
// TermSet is required to already be sorted; joining with a separator
// that cannot appear in a validated term (control bytes are rejected at
// index time) makes the join collision-free.
func signature(terms []string) string {
	return strings.Join(terms, "\x00")
}
