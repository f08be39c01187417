package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFaceOpposites(t *testing.T) {
	for _, f := range AllFaces {
		if f.Opposite().Opposite() != f {
			t.Errorf("%v: opposite of opposite is %v", f, f.Opposite().Opposite())
		}
		if f.Opposite() == f {
			t.Errorf("%v is its own opposite", f)
		}
		if got := f.Normal().Add(f.Opposite().Normal()); got != (mgl32.Vec3{}) {
			t.Errorf("%v: normals do not cancel: %v", f, got)
		}
		if f.Dir().Vec3() != f.Normal() {
			t.Errorf("%v: direction %v disagrees with normal %v", f, f.Dir(), f.Normal())
		}
	}
}

func TestFaceCornersLieOnFace(t *testing.T) {
	for _, f := range AllFaces {
		n := f.Normal()
		for i, c := range f.Corners() {
			for axis := range 3 {
				if c[axis] != 0.5 && c[axis] != -0.5 {
					t.Errorf("%v corner %d: coordinate %v not on the unit cube", f, i, c[axis])
				}
			}
			// Projection onto the normal is always +0.5 for the face plane.
			if d := c.Dot(n); d != 0.5 {
				t.Errorf("%v corner %d: %v is off the face plane (dot=%v)", f, i, c, d)
			}
		}
	}
}

func TestFaceWindingFacesOutward(t *testing.T) {
	for _, f := range AllFaces {
		corners := f.Corners()
		w := f.Winding()
		for tri := range 2 {
			a := corners[w[tri*3]]
			b := corners[w[tri*3+1]]
			c := corners[w[tri*3+2]]
			cross := b.Sub(a).Cross(c.Sub(a))
			if cross.Dot(f.Normal()) <= 0 {
				t.Errorf("%v triangle %d winds inward (cross=%v)", f, tri, cross)
			}
		}
	}
}

func TestFaceMask(t *testing.T) {
	var m FaceMask
	if m.Count() != 0 {
		t.Fatalf("empty mask count = %d", m.Count())
	}
	m = m.With(FaceTop).With(FaceLeft)
	if !m.Has(FaceTop) || !m.Has(FaceLeft) || m.Has(FaceFront) {
		t.Errorf("mask %06b has wrong bits", m)
	}
	if m.Count() != 2 {
		t.Errorf("count = %d, want 2", m.Count())
	}
	if AllFacesMask.Count() != FaceCount {
		t.Errorf("AllFacesMask count = %d", AllFacesMask.Count())
	}
	for i, f := range AllFaces {
		if f.Bit() != 1<<i {
			t.Errorf("%v bit = %06b, want bit %d", f, f.Bit(), i)
		}
	}
}
