package world

// World is the world index: a fixed chunk size plus the chunks generated so
// far. It resolves global block positions across chunk boundaries.
type World struct {
	chunkSize int
	store     *ChunkStore
}

// New creates an empty world. The chunk size is validated once here so an
// oversized mesh index space is rejected before any chunk exists.
func New(chunkSize int) (*World, error) {
	if err := ValidateChunkSize(chunkSize); err != nil {
		return nil, err
	}
	return &World{
		chunkSize: chunkSize,
		store:     NewChunkStore(),
	}, nil
}

func (w *World) ChunkSize() int { return w.chunkSize }

// Store exposes the underlying chunk index.
func (w *World) Store() *ChunkStore { return w.store }

// NewChunk creates an air-filled chunk of the world's size at coord. The
// chunk is not registered; use AddChunk.
func (w *World) NewChunk(coord ChunkCoord) *Chunk {
	return NewChunk(coord, w.chunkSize)
}

// AddChunk registers a chunk. Chunks of a different size are refused.
func (w *World) AddChunk(c *Chunk) bool {
	if c.Size() != w.chunkSize {
		return false
	}
	return w.store.AddChunk(c)
}

// GetChunk returns the chunk at a chunk-grid coordinate, or nil.
func (w *World) GetChunk(coord ChunkCoord) *Chunk {
	return w.store.GetChunk(coord)
}

// Block returns the block at global position g. Positions outside every
// registered chunk are absent.
func (w *World) Block(g BlockPos) (Block, bool) {
	coord, local := SplitGlobal(g, w.chunkSize)
	chunk := w.store.GetChunk(coord)
	if chunk == nil {
		return Block{}, false
	}
	return chunk.GetBlock(local)
}

// SetBlock writes b at global position g. It returns false if no chunk
// covers g. Neighbouring chunks sharing the touched border are marked for
// remeshing since their boundary faces may have changed.
func (w *World) SetBlock(g BlockPos, b Block) bool {
	coord, local := SplitGlobal(g, w.chunkSize)
	chunk := w.store.GetChunk(coord)
	if chunk == nil {
		return false
	}
	if !chunk.SetBlock(local, b) {
		return false
	}

	last := w.chunkSize - 1
	markNeighbour := func(dx, dy, dz int) {
		if nb := w.store.GetChunk(ChunkCoord{coord.X + dx, coord.Y + dy, coord.Z + dz}); nb != nil {
			nb.MarkNeedsMesh()
		}
	}
	if local.X == 0 {
		markNeighbour(-1, 0, 0)
	}
	if local.X == last {
		markNeighbour(1, 0, 0)
	}
	if local.Y == 0 {
		markNeighbour(0, -1, 0)
	}
	if local.Y == last {
		markNeighbour(0, 1, 0)
	}
	if local.Z == 0 {
		markNeighbour(0, 0, -1)
	}
	if local.Z == last {
		markNeighbour(0, 0, 1)
	}
	return true
}
