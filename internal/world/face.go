package world

import (
	"math/bits"

	"github.com/go-gl/mathgl/mgl32"
)

// Face identifies one of the six axis-aligned sides of a block.
// The numeric value is the canonical order used by FaceMask.
type Face uint8

const (
	FaceFront  Face = iota // -Z
	FaceBack               // +Z
	FaceLeft               // -X
	FaceRight              // +X
	FaceBottom             // -Y
	FaceTop                // +Y

	FaceCount = 6
)

// AllFaces lists every face in canonical order.
var AllFaces = [FaceCount]Face{FaceFront, FaceBack, FaceLeft, FaceRight, FaceBottom, FaceTop}

var faceNames = [FaceCount]string{"front", "back", "left", "right", "bottom", "top"}

var faceDirs = [FaceCount]BlockPos{
	FaceFront:  {0, 0, -1},
	FaceBack:   {0, 0, 1},
	FaceLeft:   {-1, 0, 0},
	FaceRight:  {1, 0, 0},
	FaceBottom: {0, -1, 0},
	FaceTop:    {0, 1, 0},
}

var faceNormals = [FaceCount]mgl32.Vec3{
	FaceFront:  {0, 0, -1},
	FaceBack:   {0, 0, 1},
	FaceLeft:   {-1, 0, 0},
	FaceRight:  {1, 0, 0},
	FaceBottom: {0, -1, 0},
	FaceTop:    {0, 1, 0},
}

var faceOpposites = [FaceCount]Face{
	FaceFront:  FaceBack,
	FaceBack:   FaceFront,
	FaceLeft:   FaceRight,
	FaceRight:  FaceLeft,
	FaceBottom: FaceTop,
	FaceTop:    FaceBottom,
}

// Corners of the unit cube centred on the block position. Front/Back and
// Left/Right share the same corner walk, so the winding below differs
// between them to keep every face counter-clockwise from outside.
var faceCorners = [FaceCount][4]mgl32.Vec3{
	FaceFront: {
		{-0.5, -0.5, -0.5},
		{-0.5, 0.5, -0.5},
		{0.5, 0.5, -0.5},
		{0.5, -0.5, -0.5},
	},
	FaceBack: {
		{-0.5, -0.5, 0.5},
		{-0.5, 0.5, 0.5},
		{0.5, 0.5, 0.5},
		{0.5, -0.5, 0.5},
	},
	FaceLeft: {
		{-0.5, -0.5, -0.5},
		{-0.5, -0.5, 0.5},
		{-0.5, 0.5, 0.5},
		{-0.5, 0.5, -0.5},
	},
	FaceRight: {
		{0.5, -0.5, -0.5},
		{0.5, -0.5, 0.5},
		{0.5, 0.5, 0.5},
		{0.5, 0.5, -0.5},
	},
	FaceBottom: {
		{-0.5, -0.5, -0.5},
		{0.5, -0.5, -0.5},
		{0.5, -0.5, 0.5},
		{-0.5, -0.5, 0.5},
	},
	FaceTop: {
		{-0.5, 0.5, -0.5},
		{0.5, 0.5, -0.5},
		{0.5, 0.5, 0.5},
		{-0.5, 0.5, 0.5},
	},
}

var (
	windingA = [6]uint32{0, 1, 2, 2, 3, 0}
	windingB = [6]uint32{0, 3, 2, 2, 1, 0}
)

var faceWindings = [FaceCount][6]uint32{
	FaceFront:  windingA,
	FaceBack:   windingB,
	FaceLeft:   windingA,
	FaceRight:  windingB,
	FaceBottom: windingA,
	FaceTop:    windingB,
}

// Dir returns the neighbour offset in block units.
func (f Face) Dir() BlockPos { return faceDirs[f] }

// Normal returns the outward unit normal.
func (f Face) Normal() mgl32.Vec3 { return faceNormals[f] }

// Opposite returns the face pointing the other way.
func (f Face) Opposite() Face { return faceOpposites[f] }

// Corners returns the four local-space corners of the face.
func (f Face) Corners() [4]mgl32.Vec3 { return faceCorners[f] }

// Winding returns the two-triangle index order for the face corners.
func (f Face) Winding() [6]uint32 { return faceWindings[f] }

// Bit returns the mask bit for the face.
func (f Face) Bit() FaceMask { return 1 << f }

func (f Face) String() string {
	if int(f) < FaceCount {
		return faceNames[f]
	}
	return "invalid"
}

// FaceMask holds one bit per face in canonical order.
type FaceMask uint8

// AllFacesMask has every face bit set.
const AllFacesMask FaceMask = 1<<FaceCount - 1

func (m FaceMask) Has(f Face) bool { return m&f.Bit() != 0 }

func (m FaceMask) With(f Face) FaceMask { return m | f.Bit() }

// Count returns how many faces are set.
func (m FaceMask) Count() int { return bits.OnesCount8(uint8(m & AllFacesMask)) }
