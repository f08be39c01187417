package graphics

import (
	"voxel-mesher/internal/meshing"
	"voxel-mesher/internal/profiling"
	"voxel-mesher/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type chunkMesh struct {
	vao        uint32
	vbos       [3]uint32 // positions, normals, colors
	ebo        uint32
	indexCount int32
}

func (m *chunkMesh) delete() {
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteBuffers(int32(len(m.vbos)), &m.vbos[0])
	gl.DeleteVertexArrays(1, &m.vao)
}

// ChunkRenderer keeps one GPU mesh per chunk and draws them with a single
// directional light. It implements meshing.Sink; all methods must run on
// the goroutine that owns the GL context.
type ChunkRenderer struct {
	shader    *Shader
	chunkSize int
	meshes    map[world.ChunkCoord]*chunkMesh
	LightDir  mgl32.Vec3

	drawn int
}

func NewChunkRenderer(chunkSize int) (*ChunkRenderer, error) {
	shader, err := NewShader(chunkVertexShader, chunkFragmentShader)
	if err != nil {
		return nil, err
	}
	return &ChunkRenderer{
		shader:    shader,
		chunkSize: chunkSize,
		meshes:    make(map[world.ChunkCoord]*chunkMesh),
		LightDir:  mgl32.Vec3{-0.4, -1, -0.3},
	}, nil
}

// UploadChunkMesh replaces whatever was uploaded for coord. An empty mesh
// just frees the old buffers.
func (r *ChunkRenderer) UploadChunkMesh(coord world.ChunkCoord, mesh *meshing.MeshData) {
	defer profiling.Track("graphics.UploadChunkMesh")()

	if old, ok := r.meshes[coord]; ok {
		old.delete()
		delete(r.meshes, coord)
	}
	if mesh == nil || mesh.Empty() || mesh.IndexCount() == 0 {
		return
	}

	m := &chunkMesh{indexCount: int32(mesh.IndexCount())}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(int32(len(m.vbos)), &m.vbos[0])

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbos[0])
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*3*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbos[1])
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Normals)*3*4, gl.Ptr(mesh.Normals), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbos[2])
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Colors)*4*4, gl.Ptr(mesh.Colors), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	// unbind the VAO first so it keeps its element buffer
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	r.meshes[coord] = m
}

// Draw renders every uploaded chunk inside the camera frustum.
func (r *ChunkRenderer) Draw(cam *OrbitCamera) {
	defer profiling.Track("graphics.ChunkRenderer.Draw")()

	viewProj := cam.ViewProjection()
	frustum := NewFrustum(viewProj)

	r.shader.Use()
	r.shader.SetMat4("viewProj", viewProj)
	r.shader.SetVec3("lightDir", r.LightDir)

	r.drawn = 0
	for coord, m := range r.meshes {
		lo, hi := chunkBounds(coord, r.chunkSize)
		if !frustum.IntersectsAABB(lo, hi) {
			continue
		}
		origin := coord.Origin(r.chunkSize)
		model := mgl32.Translate3D(float32(origin.X), float32(origin.Y), float32(origin.Z))
		r.shader.SetMat4("model", model)
		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
		r.drawn++
	}
	gl.BindVertexArray(0)
}

// Uploaded is the number of chunks holding GPU buffers.
func (r *ChunkRenderer) Uploaded() int { return len(r.meshes) }

// Drawn is the number of chunks that passed culling in the last Draw.
func (r *ChunkRenderer) Drawn() int { return r.drawn }

// Dispose cleans up OpenGL resources
func (r *ChunkRenderer) Dispose() {
	for coord, m := range r.meshes {
		m.delete()
		delete(r.meshes, coord)
	}
	r.shader.Delete()
}

// chunkBounds is the world-space box covered by the chunk at coord. Block
// cubes are centred on their position, so the box starts half a block
// below the origin.
func chunkBounds(coord world.ChunkCoord, size int) (lo, hi mgl32.Vec3) {
	lo = coord.Origin(size).Vec3().Sub(mgl32.Vec3{0.5, 0.5, 0.5})
	s := float32(size)
	return lo, lo.Add(mgl32.Vec3{s, s, s})
}
