package render

import "github.com/go-gl/mathgl/mgl32"

// ShapeKind selects the backend volume primitive
type ShapeKind uint8

const (
	ShapeBox ShapeKind = iota
	ShapePyramid
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "box"
	case ShapePyramid:
		return "pyramid"
	}
	return "unknown"
}

// Shape describes a volume in logical coordinates
// Origin is the minimum corner; Width runs along x, Depth along y, Height along z
type Shape struct {
	Kind   ShapeKind
	Origin Point
	Width  float64
	Depth  float64
	Height float64
}

// Prism returns a box standing on origin
func Prism(origin Point, width, depth, height float64) Shape {
	return Shape{Kind: ShapeBox, Origin: origin, Width: width, Depth: depth, Height: height}
}

// Pyramid returns a square-based pyramid standing on origin
func Pyramid(origin Point, width, depth, height float64) Shape {
	return Shape{Kind: ShapePyramid, Origin: origin, Width: width, Depth: depth, Height: height}
}

// Extents returns the backend-space size: logical depth on X, height on Y, width on Z
func (s Shape) Extents() mgl32.Vec3 {
	return mgl32.Vec3{float32(s.Depth), float32(s.Height), float32(s.Width)}
}

// Center returns the backend-space center of the volume
// Isometric remap: logical depth runs along backend -X, width along -Z, z up on Y
func (s Shape) Center() mgl32.Vec3 {
	p := s.Origin
	return mgl32.Vec3{
		float32(-(p.Y + s.Depth*0.5)),
		float32(p.Z + s.Height*0.5),
		float32(-(p.X + s.Width*0.5)),
	}
}

// lightLift raises point lights above the floor they illuminate
const lightLift = 2

// LightPosition maps a logical light position to backend space
func LightPosition(p Point) mgl32.Vec3 {
	return mgl32.Vec3{float32(-p.Y), float32(p.Z + lightLift), float32(-p.X)}
}
