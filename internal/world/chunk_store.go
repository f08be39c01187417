package world

import (
	"sort"
	"sync"
)

// ChunkStore maps chunk-grid coordinates to chunks. It holds at most one
// chunk per coordinate and never evicts.
type ChunkStore struct {
	chunks map[ChunkCoord]*Chunk
	mu     sync.RWMutex
}

// NewChunkStore creates an empty chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// AddChunk registers chunk under its own coordinate. It returns false and
// leaves the store unchanged if that coordinate is already taken.
func (cs *ChunkStore) AddChunk(chunk *Chunk) bool {
	coord := chunk.Coord()
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if _, ok := cs.chunks[coord]; ok {
		return false
	}
	cs.chunks[coord] = chunk
	return true
}

// GetChunk returns the chunk at coord, or nil.
func (cs *ChunkStore) GetChunk(coord ChunkCoord) *Chunk {
	cs.mu.RLock()
	chunk := cs.chunks[coord]
	cs.mu.RUnlock()
	return chunk
}

// HasChunk checks if a chunk is registered at coord.
func (cs *ChunkStore) HasChunk(coord ChunkCoord) bool {
	cs.mu.RLock()
	_, exists := cs.chunks[coord]
	cs.mu.RUnlock()
	return exists
}

// Len returns the number of registered chunks.
func (cs *ChunkStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.chunks)
}

// Chunks returns every chunk ordered by coordinate (X, then Y, then Z).
func (cs *ChunkStore) Chunks() []*Chunk {
	cs.mu.RLock()
	out := make([]*Chunk, 0, len(cs.chunks))
	for _, chunk := range cs.chunks {
		out = append(out, chunk)
	}
	cs.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].Coord().Less(out[j].Coord())
	})
	return out
}

// ChunksNeedingMesh returns the chunks whose rebuild marker is set, in
// coordinate order.
func (cs *ChunkStore) ChunksNeedingMesh() []*Chunk {
	all := cs.Chunks()
	out := all[:0]
	for _, chunk := range all {
		if chunk.NeedsMesh() {
			out = append(out, chunk)
		}
	}
	return out
}
