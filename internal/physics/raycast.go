package physics

import (
	"math"

	"voxel-mesher/internal/profiling"
	"voxel-mesher/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 256.0
)

// Blocks is anything that can answer block lookups by global position.
// *world.World satisfies it.
type Blocks interface {
	Block(global world.BlockPos) (world.Block, bool)
}

// RaycastResult stores the result of a raycast operation
type RaycastResult struct {
	HitPosition      world.BlockPos
	AdjacentPosition world.BlockPos // last empty cell before the hit
	Face             world.Face     // face of the hit block the ray entered through
	Distance         float32
	Hit              bool
}

// Raycast walks the grid cells along the ray from start, in order, and
// stops at the first solid block between minDist and maxDist. Blocks are
// unit cubes centred on their position, matching the mesh corners. Missing
// chunks count as air.
func Raycast(start, direction mgl32.Vec3, minDist, maxDist float32, blocks Blocks) RaycastResult {
	defer profiling.Track("physics.Raycast")()

	if direction.Len() == 0 {
		return RaycastResult{}
	}
	dir := direction.Normalize()

	// Shift by half a block so cell boundaries fall on integers.
	shifted := start.Add(mgl32.Vec3{0.5, 0.5, 0.5})
	cell := world.BlockPos{
		X: int(math.Floor(float64(shifted.X()))),
		Y: int(math.Floor(float64(shifted.Y()))),
		Z: int(math.Floor(float64(shifted.Z()))),
	}

	var step [3]int
	var tMax, tDelta [3]float64
	for a := range 3 {
		d := float64(dir[a])
		s := float64(shifted[a])
		c := math.Floor(s)
		switch {
		case d > 0:
			step[a] = 1
			tMax[a] = (c + 1 - s) / d
			tDelta[a] = 1 / d
		case d < 0:
			step[a] = -1
			tMax[a] = (s - c) / -d
			tDelta[a] = -1 / d
		default:
			tMax[a] = math.Inf(1)
			tDelta[a] = math.Inf(1)
		}
	}

	prev := cell
	entered := world.Face(world.FaceCount) // invalid while still in the start cell
	t := 0.0
	for t <= float64(maxDist) {
		if t >= float64(minDist) {
			if b, ok := blocks.Block(cell); ok && b.IsSolid() {
				return RaycastResult{
					HitPosition:      cell,
					AdjacentPosition: prev,
					Face:             entered,
					Distance:         float32(t),
					Hit:              true,
				}
			}
		}

		a := 0
		if tMax[1] < tMax[a] {
			a = 1
		}
		if tMax[2] < tMax[a] {
			a = 2
		}
		if math.IsInf(tMax[a], 1) {
			break
		}

		prev = cell
		t = tMax[a]
		tMax[a] += tDelta[a]
		switch a {
		case 0:
			cell.X += step[0]
			entered = entryFace(step[0], world.FaceLeft, world.FaceRight)
		case 1:
			cell.Y += step[1]
			entered = entryFace(step[1], world.FaceBottom, world.FaceTop)
		case 2:
			cell.Z += step[2]
			entered = entryFace(step[2], world.FaceFront, world.FaceBack)
		}
	}
	return RaycastResult{}
}

// entryFace is the face crossed when moving along an axis in direction step:
// moving towards + enters through the block's negative face.
func entryFace(step int, negative, positive world.Face) world.Face {
	if step > 0 {
		return negative
	}
	return positive
}
