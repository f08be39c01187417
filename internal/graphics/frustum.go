package graphics

import "github.com/go-gl/mathgl/mgl32"

// Frustum is the six clip planes of a view-projection matrix, each stored as
// (a, b, c, d) with a unit normal pointing inwards.
type Frustum [6]mgl32.Vec4

// NewFrustum extracts the planes from the rows of clip (Gribb/Hartmann):
// left/right are w±x, bottom/top w±y and near/far w±z.
func NewFrustum(clip mgl32.Mat4) Frustum {
	w := clip.Row(3)
	var f Frustum
	for axis := range 3 {
		r := clip.Row(axis)
		f[2*axis] = unitPlane(w.Add(r))
		f[2*axis+1] = unitPlane(w.Sub(r))
	}
	return f
}

func unitPlane(p mgl32.Vec4) mgl32.Vec4 {
	l := p.Vec3().Len()
	if l == 0 {
		return p
	}
	return p.Mul(1 / l)
}

// IntersectsAABB reports whether the box [lo, hi] is at least partly inside.
// Only the corner furthest along each plane normal is tested.
func (f *Frustum) IntersectsAABB(lo, hi mgl32.Vec3) bool {
	for _, p := range f {
		corner := hi
		for axis := range 3 {
			if p[axis] < 0 {
				corner[axis] = lo[axis]
			}
		}
		if p.Dot(corner.Vec4(1)) < 0 {
			return false
		}
	}
	return true
}
