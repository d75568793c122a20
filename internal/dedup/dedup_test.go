package dedup

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthropics/searchengine/pkg/types"
)

type fakeEngine struct {
	ids      []types.DocumentID
	terms    map[types.DocumentID][]string
	removed  []types.DocumentID
}

func (f *fakeEngine) Iter() []types.DocumentID { return f.ids }

func (f *fakeEngine) TermSet(id types.DocumentID) []string { return f.terms[id] }

func (f *fakeEngine) RemoveDocument(id types.DocumentID) error {
	f.removed = append(f.removed, id)
	f.remove(id)
	return nil
}

func (f *fakeEngine) RemoveDocumentParallel(_ context.Context, id types.DocumentID) error {
	return f.RemoveDocument(id)
}

func (f *fakeEngine) remove(id types.DocumentID) {
	for i, existing := range f.ids {
		if existing == id {
			f.ids = append(f.ids[:i], f.ids[i+1:]...)
			break
		}
	}
}

func silentLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestRemoveDuplicates_KeepsLowestID(t *testing.T) {
	engine := &fakeEngine{
		ids: []types.DocumentID{0, 1, 2, 3, 6, 7},
		terms: map[types.DocumentID][]string{
			0: {"белый", "кот", "модный", "ошейник"},
			1: {"кот", "пушистый", "хвост"},
			2: {"выразительные", "глаза", "пёс", "ухоженный"},
			3: {"евгений", "скворец", "ухоженный"},
			6: {"кот", "пушистый", "хвост"},           // duplicate of 1
			7: {"белый", "кот", "модный", "ошейник"}, // duplicate of 0
		},
	}

	err := RemoveDuplicates(engine, silentLogger())
	require.NoError(t, err)

	assert.ElementsMatch(t, []types.DocumentID{6, 7}, engine.removed)
	assert.ElementsMatch(t, []types.DocumentID{0, 1, 2, 3}, engine.ids)
}

func TestRemoveDuplicates_Idempotent(t *testing.T) {
	engine := &fakeEngine{
		ids: []types.DocumentID{0, 1},
		terms: map[types.DocumentID][]string{
			0: {"a", "b"},
			1: {"a", "b"},
		},
	}

	require.NoError(t, RemoveDuplicates(engine, silentLogger()))
	assert.Equal(t, []types.DocumentID{1}, engine.removed)

	require.NoError(t, RemoveDuplicates(engine, silentLogger()))
	assert.Equal(t, []types.DocumentID{1}, engine.removed, "second pass should remove nothing further")
}

func TestRemoveDuplicatesParallel_UsesParallelRemove(t *testing.T) {
	engine := &fakeEngine{
		ids: []types.DocumentID{0, 1},
		terms: map[types.DocumentID][]string{
			0: {"a"},
			1: {"a"},
		},
	}

	require.NoError(t, RemoveDuplicatesParallel(context.Background(), engine, silentLogger()))
	assert.Equal(t, []types.DocumentID{1}, engine.removed)
}
