package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// cellAspect is the width/height ratio correction for terminal cells, which are about twice as tall as wide
const cellAspect = 2

// Isometric eye offset from the look-at target: yaw π/4, pitch atan(-1/√2)
var isoOffset = mgl32.Vec3{20, 20, 20}

// Camera is an isometric orthographic camera following a target point in backend space
type Camera struct {
	target mgl32.Vec3
	offset mgl32.Vec3
	zoom   float32 // cells per backend unit, vertically
	up     mgl32.Vec3
}

// NewCamera creates a camera looking at the backend origin
func NewCamera(zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	return &Camera{
		offset: isoOffset,
		zoom:   float32(zoom),
		up:     mgl32.Vec3{0, 1, 0},
	}
}

// MoveBy shifts eye and target by a logical (dx, dy) delta
// Logical x runs along backend -Z and logical y along -X
func (c *Camera) MoveBy(dx, dy float64) {
	c.target = c.target.Add(mgl32.Vec3{float32(-dy), 0, float32(-dx)})
}

// Target returns the point the camera looks at
func (c *Camera) Target() mgl32.Vec3 {
	return c.target
}

// Eye returns the camera position
func (c *Camera) Eye() mgl32.Vec3 {
	return c.target.Add(c.offset)
}

// Facing returns the unit vector from the scene toward the camera
func (c *Camera) Facing() mgl32.Vec3 {
	return c.offset.Normalize()
}

// ViewProjection returns the combined matrix for a viewport of w×h cells
func (c *Camera) ViewProjection(w, h int) mgl32.Mat4 {
	halfH := float32(h) / (2 * c.zoom)
	halfW := float32(w) / (2 * c.zoom * cellAspect)
	view := mgl32.LookAtV(c.Eye(), c.target, c.up)
	proj := mgl32.Ortho(-halfW, halfW, -halfH, halfH, -1000, 1000)
	return proj.Mul4(view)
}

// Project maps a backend-space point to fractional cell coordinates
// depth grows away from the camera
func (c *Camera) Project(v mgl32.Vec3, w, h int) (sx, sy, depth float32) {
	return project(c.ViewProjection(w, h), v, w, h)
}

func project(vp mgl32.Mat4, v mgl32.Vec3, w, h int) (sx, sy, depth float32) {
	ndc := vp.Mul4x1(v.Vec4(1))
	sx = (ndc.X() + 1) * 0.5 * float32(w)
	sy = (1 - ndc.Y()) * 0.5 * float32(h)
	return sx, sy, ndc.Z()
}
