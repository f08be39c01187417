package meshing

import "voxel-mesher/internal/world"

// BlockSource resolves global block positions, typically a *world.World.
// Absent blocks count as open space.
type BlockSource interface {
	Block(global world.BlockPos) (world.Block, bool)
}

// VisibleFaces returns the faces of the block at local position pos that
// border absent or transparent space. Neighbours inside c are read
// directly; the rest go through src at their global position. A nil src
// treats every chunk boundary as open.
//
// No lock on c is held while src is consulted.
func VisibleFaces(c *world.Chunk, pos world.BlockPos, src BlockSource) world.FaceMask {
	origin := c.Origin()
	var mask world.FaceMask
	for _, face := range world.AllFaces {
		n := pos.Add(face.Dir())

		var (
			neighbour world.Block
			ok        bool
		)
		if c.InBounds(n) {
			neighbour, ok = c.GetBlock(n)
		} else if src != nil {
			neighbour, ok = src.Block(origin.Add(n))
		}
		if !ok || neighbour.Transparent {
			mask |= face.Bit()
		}
	}
	return mask
}

// cell is a neighbour block copied out of another chunk.
type cell struct {
	block   world.Block
	present bool
}

// halo holds the six planes of blocks just outside a chunk, one per face,
// copied before the chunk itself is locked.
type halo struct {
	size   int
	planes [world.FaceCount][]cell
}

// planeIndex maps a boundary neighbour to its slot in the plane of face f,
// using the two coordinates that lie in that plane.
func planeIndex(f world.Face, n world.BlockPos, size int) int {
	switch f {
	case world.FaceLeft, world.FaceRight:
		return n.Y*size + n.Z
	case world.FaceBottom, world.FaceTop:
		return n.X*size + n.Z
	default:
		return n.X*size + n.Y
	}
}

// gatherHalo reads the boundary planes around c through src. Each lookup
// locks only the chunk it lands in, one at a time. A nil src leaves every
// cell absent.
func gatherHalo(c *world.Chunk, src BlockSource) *halo {
	size := c.Size()
	h := &halo{size: size}
	origin := c.Origin()
	for _, face := range world.AllFaces {
		plane := make([]cell, size*size)
		h.planes[face] = plane
		if src == nil {
			continue
		}
		d := face.Dir()
		for a := range size {
			for b := range size {
				// n is the outside neighbour of a boundary block on this face
				var n world.BlockPos
				switch face {
				case world.FaceLeft, world.FaceRight:
					n = world.BlockPos{X: boundary(d.X, size), Y: a, Z: b}
				case world.FaceBottom, world.FaceTop:
					n = world.BlockPos{X: a, Y: boundary(d.Y, size), Z: b}
				default:
					n = world.BlockPos{X: a, Y: b, Z: boundary(d.Z, size)}
				}
				blk, ok := src.Block(origin.Add(n))
				plane[a*size+b] = cell{block: blk, present: ok}
			}
		}
	}
	return h
}

// boundary is the local coordinate just outside the chunk along one axis.
func boundary(dir, size int) int {
	if dir < 0 {
		return -1
	}
	return size
}

// visibleFacesUnlocked expects the caller to hold c's read lock. Neighbours
// outside c come from h, never from another chunk's lock.
func visibleFacesUnlocked(c *world.Chunk, pos world.BlockPos, h *halo) world.FaceMask {
	var mask world.FaceMask
	for _, face := range world.AllFaces {
		n := pos.Add(face.Dir())

		var nb cell
		if c.InBounds(n) {
			nb.block, nb.present = c.BlockAtUnlocked(n)
		} else {
			nb = h.planes[face][planeIndex(face, n, h.size)]
		}

		if !nb.present || nb.block.Transparent {
			mask |= face.Bit()
		}
	}
	return mask
}
