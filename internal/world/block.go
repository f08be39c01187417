package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Block is the smallest unit of world state. It is a plain value; chunks
// store blocks by value and hand out copies.
type Block struct {
	Transparent bool
	Color       mgl32.Vec4
	HasColor    bool
}

var (
	// Air is the transparent fill every chunk starts with.
	Air = Block{Transparent: true}

	// DefaultBlockColor is used for solid blocks that carry no color.
	DefaultBlockColor = mgl32.Vec4{1, 1, 1, 1}
)

// NewSolid returns an opaque block with the given color.
func NewSolid(color mgl32.Vec4) Block {
	return Block{Color: color, HasColor: true}
}

// IsSolid reports whether the block occludes its neighbours and emits geometry.
func (b Block) IsSolid() bool {
	return !b.Transparent
}

// ColorOr returns the block color, or fallback if the block has none.
func (b Block) ColorOr(fallback mgl32.Vec4) mgl32.Vec4 {
	if b.HasColor {
		return b.Color
	}
	return fallback
}
