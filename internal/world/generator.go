package world

import (
	"math"
	"math/rand"

	"voxel-mesher/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// HeightSource gives the surface height (global block Y) of a column.
type HeightSource interface {
	HeightAt(worldX, worldZ int) int
}

// NoiseHeight maps seeded octave value noise into the band [Min, Max].
type NoiseHeight struct {
	Seed        int64
	Scale       float64
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Min, Max    int
}

// NewNoiseHeight creates a noise height field with the default terrain shape.
func NewNoiseHeight(seed int64, minHeight, maxHeight int) *NoiseHeight {
	return &NoiseHeight{
		Seed:        seed,
		Scale:       1.0 / 64.0,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2.0,
		Min:         minHeight,
		Max:         maxHeight,
	}
}

// HeightAt computes the surface height at world X,Z, always in [Min, Max].
func (n *NoiseHeight) HeightAt(worldX, worldZ int) int {
	v := octaveNoise2D(float64(worldX)*n.Scale, float64(worldZ)*n.Scale, n.Seed, n.Octaves, n.Persistence, n.Lacunarity)
	span := n.Max - n.Min + 1
	h := n.Min + int(math.Floor(v*float64(span)))
	return min(max(h, n.Min), n.Max)
}

// FlatHeight returns the same height everywhere.
type FlatHeight int

func (f FlatHeight) HeightAt(int, int) int { return int(f) }

// Generator fills chunks from a height field. Every cell at or below the
// column height becomes a solid block with a random color; the rest is air.
type Generator struct {
	Heights HeightSource
}

// NewGenerator creates a generator over the given height field.
func NewGenerator(heights HeightSource) *Generator {
	return &Generator{Heights: heights}
}

// PopulateChunk fills c. Colors are drawn from rng in a fixed x, z, y order
// so a seeded rng reproduces the same chunk.
func (g *Generator) PopulateChunk(c *Chunk, rng *rand.Rand) {
	origin := c.Origin()
	size := c.size

	c.mu.Lock()
	defer c.mu.Unlock()

	for lx := range size {
		for lz := range size {
			height := g.Heights.HeightAt(origin.X+lx, origin.Z+lz)
			for ly := range size {
				idx := c.index(BlockPos{lx, ly, lz})
				if origin.Y+ly > height {
					c.blocks[idx] = Air
					continue
				}
				c.blocks[idx] = NewSolid(mgl32.Vec4{rng.Float32(), rng.Float32(), rng.Float32(), 1})
			}
		}
	}
	c.needsMesh = true
	c.version++
}

// Generate is the spawn loop: it creates, populates and registers a chunk
// for every coordinate in the inclusive range [from, to], iterating X, then
// Y, then Z. Coordinates that already hold a chunk are skipped. It returns
// the number of chunks added.
func (w *World) Generate(g *Generator, from, to ChunkCoord, seed int64) int {
	defer profiling.Track("world.Generate")()

	rng := rand.New(rand.NewSource(seed))
	added := 0
	for x := from.X; x <= to.X; x++ {
		for y := from.Y; y <= to.Y; y++ {
			for z := from.Z; z <= to.Z; z++ {
				coord := ChunkCoord{x, y, z}
				if w.store.HasChunk(coord) {
					continue
				}
				chunk := w.NewChunk(coord)
				g.PopulateChunk(chunk, rng)
				if w.store.AddChunk(chunk) {
					added++
				}
			}
		}
	}
	return added
}
