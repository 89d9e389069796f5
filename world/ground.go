package world

import "github.com/lixenwraith/isoscape/render"

var groundColor = render.Color(235, 208, 143)

// Ground is the map slab everything stands on, top face at z=1
type Ground struct {
	id     render.ResourceID
	width  int
	height int
}

func NewGround(width, height int) *Ground {
	return &Ground{id: render.NewID(), width: width, height: height}
}

func (g *Ground) Render(_ render.Canvas, s render.Scene) {
	s.Add(render.Prism(render.Pt(0, 0, 0), float64(g.width), float64(g.height), 1), groundColor, g.id)
}

func (g *Ground) Position() (render.Point, bool) {
	return render.Pt(0, 0, 0), true
}

func (g *Ground) MeshIDs() []render.ResourceID {
	return []render.ResourceID{g.id}
}

// TileAt returns the unit tile strictly containing (x, y)
// Points on tile edges belong to no tile
func (g *Ground) TileAt(x, y float64) (tx, ty int, ok bool) {
	tx, ty = int(x), int(y)
	if x <= float64(tx) || y <= float64(ty) || tx < 0 || ty < 0 || tx >= g.width || ty >= g.height {
		return 0, 0, false
	}
	return tx, ty, true
}

// Contains reports whether (x, y) is on the map, edges included
func (g *Ground) Contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x < float64(g.width) && y < float64(g.height)
}
