package meshing

import (
	"voxel-mesher/internal/profiling"
	"voxel-mesher/internal/world"
)

// Sink is the rendering backend side of the pipeline. The mesh belongs to
// the sink once handed over; the builder never touches it again.
type Sink interface {
	UploadChunkMesh(coord world.ChunkCoord, mesh *MeshData)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(coord world.ChunkCoord, mesh *MeshData)

func (f SinkFunc) UploadChunkMesh(coord world.ChunkCoord, mesh *MeshData) { f(coord, mesh) }

// BuildChunkMesh builds the culled mesh for c. Vertex positions are local
// to the chunk; the backend translates by c.Origin(). Boundary faces are
// resolved through src (nil leaves them open). The chunk is only read.
func BuildChunkMesh(c *world.Chunk, src BlockSource) *MeshData {
	mesh, _ := buildChunkMesh(c, src)
	return mesh
}

// buildChunkMesh also returns the chunk version the mesh is valid for.
//
// The neighbour planes are copied first, without holding c's lock, so a
// build never waits on another chunk while it holds its own. The version is
// taken before that copy: a border write in a neighbour marks c afterwards
// through World.SetBlock, which moves the version and keeps c marked.
func buildChunkMesh(c *world.Chunk, src BlockSource) (*MeshData, uint64) {
	defer profiling.Track("meshing.BuildChunkMesh")()

	version := c.Version()
	h := gatherHalo(c, src)

	c.RLock()
	defer c.RUnlock()

	size := c.Size()
	mesh := NewMeshData(size * size)

	for x := range size {
		for y := range size {
			for z := range size {
				pos := world.BlockPos{X: x, Y: y, Z: z}
				b, _ := c.BlockAtUnlocked(pos)
				if b.Transparent {
					continue
				}
				mask := visibleFacesUnlocked(c, pos, h)
				if mask == 0 {
					continue
				}
				mesh.AppendBlock(pos, b.ColorOr(world.DefaultBlockColor), mask)
			}
		}
	}
	return mesh, version
}

// RemeshDirty rebuilds every chunk of w whose rebuild marker is set, hands
// each mesh to sink and clears the marker. Chunks that are not marked are
// left alone. It returns the number of chunks meshed.
func RemeshDirty(w *world.World, sink Sink) int {
	defer profiling.Track("meshing.RemeshDirty")()

	built := 0
	for _, c := range w.Store().ChunksNeedingMesh() {
		mesh, version := buildChunkMesh(c, w)
		sink.UploadChunkMesh(c.Coord(), mesh)
		c.MarkMeshed(version)
		built++
	}
	return built
}
