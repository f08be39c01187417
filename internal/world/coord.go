package world

import "github.com/go-gl/mathgl/mgl32"

// BlockPos is an integer block position, either chunk-local or global.
type BlockPos struct {
	X, Y, Z int
}

func (p BlockPos) Add(o BlockPos) BlockPos {
	return BlockPos{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}

func (p BlockPos) Sub(o BlockPos) BlockPos {
	return BlockPos{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

// Vec3 converts the position into a float translation.
func (p BlockPos) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
}

// ChunkCoord is a position on the chunk grid.
type ChunkCoord struct {
	X, Y, Z int
}

// Less orders coordinates by X, then Y, then Z.
func (c ChunkCoord) Less(o ChunkCoord) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.Z < o.Z
}

// Origin returns the global position of the chunk's (0,0,0) block.
func (c ChunkCoord) Origin(size int) BlockPos {
	return BlockPos{c.X * size, c.Y * size, c.Z * size}
}

// FloorDiv divides rounding towards negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Mod returns the remainder of a/b in [0, |b|).
func Mod(a, b int) int {
	m := a % b
	if m < 0 {
		if b < 0 {
			m -= b
		} else {
			m += b
		}
	}
	return m
}

// SplitGlobal splits a global block position into its chunk coordinate and
// the local position inside that chunk.
func SplitGlobal(g BlockPos, size int) (ChunkCoord, BlockPos) {
	cc := ChunkCoord{FloorDiv(g.X, size), FloorDiv(g.Y, size), FloorDiv(g.Z, size)}
	local := BlockPos{Mod(g.X, size), Mod(g.Y, size), Mod(g.Z, size)}
	return cc, local
}
