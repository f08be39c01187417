package world

import (
	"errors"
	"fmt"
	"sync"
)

const (
	// VerticesPerBlock is the worst case emitted by one block: 6 faces * 4 corners.
	VerticesPerBlock = FaceCount * 4

	// MaxChunkSize is the largest edge length whose worst-case mesh still
	// addresses every vertex with a uint32 index (563^3 * 24 < 2^32).
	MaxChunkSize = 563
)

var (
	ErrChunkSizeInvalid  = errors.New("chunk size must be positive")
	ErrChunkSizeTooLarge = errors.New("chunk size overflows uint32 mesh indices")
)

// ValidateChunkSize rejects edge lengths the mesher cannot index.
func ValidateChunkSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrChunkSizeInvalid, size)
	}
	if size > MaxChunkSize {
		return fmt.Errorf("%w: %d > %d", ErrChunkSizeTooLarge, size, MaxChunkSize)
	}
	return nil
}

// Chunk is a dense size^3 grid of blocks at a fixed chunk-grid coordinate.
//
// Readers and writers are excluded per chunk: GetBlock/SetBlock take the
// chunk lock themselves, and a mesh pass may hold RLock for its duration
// and read through BlockAtUnlocked.
type Chunk struct {
	coord  ChunkCoord
	size   int
	blocks []Block

	mu        sync.RWMutex
	needsMesh bool
	version   uint64 // bumped on every block change
}

// NewChunk creates an air-filled chunk that is marked for meshing.
// It panics if size fails ValidateChunkSize.
func NewChunk(coord ChunkCoord, size int) *Chunk {
	if err := ValidateChunkSize(size); err != nil {
		panic(err)
	}
	blocks := make([]Block, size*size*size)
	for i := range blocks {
		blocks[i] = Air
	}
	return &Chunk{
		coord:     coord,
		size:      size,
		blocks:    blocks,
		needsMesh: true,
	}
}

func (c *Chunk) Coord() ChunkCoord { return c.coord }

func (c *Chunk) Size() int { return c.size }

// Origin returns the global position of local (0,0,0).
func (c *Chunk) Origin() BlockPos { return c.coord.Origin(c.size) }

// InBounds reports whether p is a valid local coordinate.
func (c *Chunk) InBounds(p BlockPos) bool {
	return p.X >= 0 && p.X < c.size &&
		p.Y >= 0 && p.Y < c.size &&
		p.Z >= 0 && p.Z < c.size
}

// index converts local coordinates to a flat index (x-major, then y, then z)
func (c *Chunk) index(p BlockPos) int {
	return (p.X*c.size+p.Y)*c.size + p.Z
}

// GetBlock returns the block at local position p, or false if p is out of range.
func (c *Chunk) GetBlock(p BlockPos) (Block, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.BlockAtUnlocked(p)
}

// BlockAtUnlocked is GetBlock for callers already holding RLock.
func (c *Chunk) BlockAtUnlocked(p BlockPos) (Block, bool) {
	if !c.InBounds(p) {
		return Block{}, false
	}
	return c.blocks[c.index(p)], true
}

// SetBlock stores b at local position p. It returns false, without
// touching the chunk, if p is out of range.
func (c *Chunk) SetBlock(p BlockPos, b Block) bool {
	if !c.InBounds(p) {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.index(p)
	if c.blocks[idx] != b {
		c.blocks[idx] = b
		c.needsMesh = true
		c.version++
	}
	return true
}

// SolidCount returns the number of non-transparent blocks.
func (c *Chunk) SolidCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, b := range c.blocks {
		if b.IsSolid() {
			n++
		}
	}
	return n
}

func (c *Chunk) RLock()   { c.mu.RLock() }
func (c *Chunk) RUnlock() { c.mu.RUnlock() }

// NeedsMesh reports whether the chunk is waiting for a (re)build.
func (c *Chunk) NeedsMesh() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.needsMesh
}

// MarkNeedsMesh requests a rebuild.
func (c *Chunk) MarkNeedsMesh() {
	c.mu.Lock()
	c.needsMesh = true
	c.version++
	c.mu.Unlock()
}

// Version returns the block change counter. It also moves on
// MarkNeedsMesh, so a rebuild requested by a neighbour counts as a change.
func (c *Chunk) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// MarkMeshed clears the rebuild request if no block changed since the mesh
// was built from version. It reports whether the marker was cleared.
func (c *Chunk) MarkMeshed(version uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.version != version {
		return false
	}
	c.needsMesh = false
	return true
}
