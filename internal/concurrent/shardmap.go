// Package concurrent provides the sharded-map accumulator primitive used
// by parallel ranking to let independent goroutines add to per-document
// scores without contending on a single lock.
package concurrent

import (
	"sort"
	"sync"

	"github.com/anthropics/searchengine/pkg/types"
)

type shard struct {
	mu     sync.Mutex
	values map[types.DocumentID]float64
}

// ShardedMap is a map from document id to a real-valued accumulator,
// backed by N independently locked shards. Key k is routed to shard
// k mod N. Correctness does not depend on N; throughput benefits from
// N >= the number of concurrent writers.
type ShardedMap struct {
	shards []*shard
}

// NewShardedMap returns a ShardedMap with the given shard count. A
// non-positive count is treated as 1.
func NewShardedMap(shardCount int) *ShardedMap {
	if shardCount < 1 {
		shardCount = 1
	}
	shards := make([]*shard, shardCount)
	for i := range shards {
		shards[i] = &shard{values: make(map[types.DocumentID]float64)}
	}
	return &ShardedMap{shards: shards}
}

func (m *ShardedMap) shardFor(id types.DocumentID) *shard {
	n := len(m.shards)
	idx := int(id) % n
	if idx < 0 {
		idx += n
	}
	return m.shards[idx]
}

// Add atomically adds delta to the accumulator for id, creating it at
// zero first if absent. The shard lock is held only for the duration of
// this call.
func (m *ShardedMap) Add(id types.DocumentID, delta float64) {
	s := m.shardFor(id)
	s.mu.Lock()
	s.values[id] += delta
	s.mu.Unlock()
}

// Delete removes id from the map, taking only the shard lock that owns
// it.
func (m *ShardedMap) Delete(id types.DocumentID) {
	s := m.shardFor(id)
	s.mu.Lock()
	delete(s.values, id)
	s.mu.Unlock()
}

// BuildOrdinaryMap acquires every shard lock in shard-index order,
// concatenates their contents into a single map, and returns it. Callers
// needing a stable iteration order should sort the returned map's keys
// themselves — Go map iteration order is unspecified, and the ranker's
// own sort step is what the contract relies on downstream.
func (m *ShardedMap) BuildOrdinaryMap() map[types.DocumentID]float64 {
	out := make(map[types.DocumentID]float64)
	for _, s := range m.shards {
		s.mu.Lock()
		for id, v := range s.values {
			out[id] = v
		}
		s.mu.Unlock()
	}
	return out
}

// Keys returns the sorted document ids currently present, mainly for
// tests and diagnostics.
func (m *ShardedMap) Keys() []types.DocumentID {
	snap := m.BuildOrdinaryMap()
	keys := make([]types.DocumentID, 0, len(snap))
	for id := range snap {
		keys = append(keys, id)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
