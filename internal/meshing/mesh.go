package meshing

import (
	"errors"
	"fmt"
	"math"

	"voxel-mesher/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrAttributeLength = errors.New("mesh attribute lengths differ")
	ErrIndexCount      = errors.New("mesh index count is not a multiple of 3")
	ErrIndexOutOfRange = errors.New("mesh index out of range")
)

// Reaching this is a programming error: world.ValidateChunkSize keeps a
// single chunk inside the uint32 index space.
const indexOverflowMsg = "meshing: mesh exceeds uint32 index space"

// MeshData is the buffer handed to the rendering backend: index-aligned
// positions, normals and colors plus a triangle list into them.
type MeshData struct {
	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3
	Colors   []mgl32.Vec4
	Indices  []uint32
}

// NewMeshData preallocates room for faces quads.
func NewMeshData(faces int) *MeshData {
	return &MeshData{
		Vertices: make([]mgl32.Vec3, 0, faces*4),
		Normals:  make([]mgl32.Vec3, 0, faces*4),
		Colors:   make([]mgl32.Vec4, 0, faces*4),
		Indices:  make([]uint32, 0, faces*6),
	}
}

func (m *MeshData) VertexCount() int { return len(m.Vertices) }

func (m *MeshData) IndexCount() int { return len(m.Indices) }

// FaceCount returns the number of quads, assuming every face was emitted
// with AppendFace.
func (m *MeshData) FaceCount() int { return len(m.Indices) / 6 }

func (m *MeshData) Empty() bool { return len(m.Vertices) == 0 }

// Reset empties the buffer while keeping its capacity.
func (m *MeshData) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Normals = m.Normals[:0]
	m.Colors = m.Colors[:0]
	m.Indices = m.Indices[:0]
}

// AppendFace emits one quad for face of the block at pos: 4 corners
// translated by pos, 4 copies of the normal and color, and 6 indices in
// the face's winding order based at the current vertex count.
func (m *MeshData) AppendFace(pos world.BlockPos, face world.Face, color mgl32.Vec4) {
	base := len(m.Vertices)
	if uint64(base)+4 > math.MaxUint32 {
		panic(indexOverflowMsg)
	}

	offset := pos.Vec3()
	normal := face.Normal()
	for _, corner := range face.Corners() {
		m.Vertices = append(m.Vertices, corner.Add(offset))
		m.Normals = append(m.Normals, normal)
		m.Colors = append(m.Colors, color)
	}
	for _, i := range face.Winding() {
		m.Indices = append(m.Indices, uint32(base)+i)
	}
}

// AppendBlock emits every face set in mask, in canonical face order.
func (m *MeshData) AppendBlock(pos world.BlockPos, color mgl32.Vec4, mask world.FaceMask) {
	for _, face := range world.AllFaces {
		if mask.Has(face) {
			m.AppendFace(pos, face, color)
		}
	}
}

// Merge appends other to m. Attributes are copied unchanged; indices are
// shifted by m's vertex count before the merge.
func (m *MeshData) Merge(other *MeshData) {
	if other == nil {
		return
	}
	offset := len(m.Vertices)
	if uint64(offset)+uint64(len(other.Vertices)) > math.MaxUint32 {
		panic(indexOverflowMsg)
	}

	m.Vertices = append(m.Vertices, other.Vertices...)
	m.Normals = append(m.Normals, other.Normals...)
	m.Colors = append(m.Colors, other.Colors...)
	for _, i := range other.Indices {
		m.Indices = append(m.Indices, i+uint32(offset))
	}
}

// Validate checks the renderer contract: parallel attribute slices, whole
// triangles, and every index inside the vertex range.
func (m *MeshData) Validate() error {
	n := len(m.Vertices)
	if len(m.Normals) != n || len(m.Colors) != n {
		return fmt.Errorf("%w: vertices=%d normals=%d colors=%d", ErrAttributeLength, n, len(m.Normals), len(m.Colors))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d", ErrIndexCount, len(m.Indices))
	}
	for pos, i := range m.Indices {
		if int(i) >= n {
			return fmt.Errorf("%w: indices[%d]=%d, vertices=%d", ErrIndexOutOfRange, pos, i, n)
		}
	}
	return nil
}
