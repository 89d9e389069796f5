package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/isoscape/render"
)

// face is one planar polygon of a volume with its outward normal
type face struct {
	corners []mgl32.Vec3
	normal  mgl32.Vec3
}

// Box corner i has x, y, z signs from bits 0, 1, 2
var boxFaces = [6][4]int{
	{0, 2, 6, 4}, // -X
	{1, 3, 7, 5}, // +X
	{0, 1, 5, 4}, // -Y
	{2, 3, 7, 6}, // +Y
	{0, 1, 3, 2}, // -Z
	{4, 5, 7, 6}, // +Z
}

// faces builds the polygons of a volume centered at center
func faces(kind render.ShapeKind, center, extents mgl32.Vec3) []face {
	half := extents.Mul(0.5)
	switch kind {
	case render.ShapePyramid:
		return pyramidFaces(center, half)
	default:
		return boxFacesAt(center, half)
	}
}

func boxFacesAt(center, half mgl32.Vec3) []face {
	var corners [8]mgl32.Vec3
	for i := range corners {
		v := center
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) != 0 {
				v[axis] += half[axis]
			} else {
				v[axis] -= half[axis]
			}
		}
		corners[i] = v
	}

	out := make([]face, 0, len(boxFaces))
	for _, idx := range boxFaces {
		poly := []mgl32.Vec3{corners[idx[0]], corners[idx[1]], corners[idx[2]], corners[idx[3]]}
		out = append(out, face{corners: poly, normal: outward(poly, center)})
	}
	return out
}

func pyramidFaces(center, half mgl32.Vec3) []face {
	base := center.Y() - half.Y()
	b := [4]mgl32.Vec3{
		{center.X() - half.X(), base, center.Z() - half.Z()},
		{center.X() + half.X(), base, center.Z() - half.Z()},
		{center.X() + half.X(), base, center.Z() + half.Z()},
		{center.X() - half.X(), base, center.Z() + half.Z()},
	}
	apex := mgl32.Vec3{center.X(), center.Y() + half.Y(), center.Z()}

	out := make([]face, 0, 5)
	bottom := []mgl32.Vec3{b[0], b[1], b[2], b[3]}
	out = append(out, face{corners: bottom, normal: outward(bottom, center)})
	for i := range b {
		tri := []mgl32.Vec3{b[i], b[(i+1)%4], apex}
		out = append(out, face{corners: tri, normal: outward(tri, center)})
	}
	return out
}

// outward returns the polygon normal pointing away from center
func outward(poly []mgl32.Vec3, center mgl32.Vec3) mgl32.Vec3 {
	n := poly[1].Sub(poly[0]).Cross(poly[2].Sub(poly[0]))
	if n.Len() == 0 {
		return n
	}
	n = n.Normalize()

	if n.Dot(mean(poly).Sub(center)) < 0 {
		n = n.Mul(-1)
	}
	return n
}

func mean(ps []mgl32.Vec3) mgl32.Vec3 {
	var c mgl32.Vec3
	for _, p := range ps {
		c = c.Add(p)
	}
	return c.Mul(1 / float32(len(ps)))
}
