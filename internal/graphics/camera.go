package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const maxPitch = 89.0

// OrbitCamera circles a target point. Yaw and Pitch are in degrees.
type OrbitCamera struct {
	Target      mgl32.Vec3
	Distance    float32
	Yaw         float32
	Pitch       float32
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

func NewOrbitCamera(target mgl32.Vec3, distance float32, width, height int) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		Distance:    distance,
		Yaw:         45,
		Pitch:       35,
		AspectRatio: float32(width) / float32(height),
		FOV:         60.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
	}
}

// Orbit rotates around the target. Pitch stays short of the poles so the
// view matrix never degenerates.
func (c *OrbitCamera) Orbit(dYaw, dPitch float32) {
	c.Yaw = float32(math.Mod(float64(c.Yaw+dYaw), 360))
	c.Pitch = mgl32.Clamp(c.Pitch+dPitch, -maxPitch, maxPitch)
}

// Zoom scales the distance to the target by factor.
func (c *OrbitCamera) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	c.Distance = mgl32.Clamp(c.Distance*factor, 1, c.FarPlane/2)
}

// Position is the eye position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	cp := float32(math.Cos(float64(pitch)))
	offset := mgl32.Vec3{
		cp * float32(math.Cos(float64(yaw))),
		float32(math.Sin(float64(pitch))),
		cp * float32(math.Sin(float64(yaw))),
	}
	return c.Target.Add(offset.Mul(c.Distance))
}

func (c *OrbitCamera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

func (c *OrbitCamera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// ViewProjection is projection * view.
func (c *OrbitCamera) ViewProjection() mgl32.Mat4 {
	return c.GetProjectionMatrix().Mul4(c.GetViewMatrix())
}

// SetViewport updates the aspect ratio after a resize.
func (c *OrbitCamera) SetViewport(width, height int) {
	if width > 0 && height > 0 {
		c.AspectRatio = float32(width) / float32(height)
	}
}

// Ray returns the world-space ray through window pixel (x, y) of a
// width x height viewport, with y growing downwards.
func (c *OrbitCamera) Ray(x, y float64, width, height int) (origin, dir mgl32.Vec3) {
	inv := c.ViewProjection().Inv()
	nx := float32(2*x/float64(width) - 1)
	ny := float32(1 - 2*y/float64(height))

	near := inv.Mul4x1(mgl32.Vec4{nx, ny, -1, 1})
	far := inv.Mul4x1(mgl32.Vec4{nx, ny, 1, 1})
	n := near.Vec3().Mul(1 / near.W())
	f := far.Vec3().Mul(1 / far.W())
	return n, f.Sub(n).Normalize()
}
