package world

import (
	"github.com/lixenwraith/isoscape/render"
	"github.com/lixenwraith/isoscape/status"
)

// Entity composes optional behaviours around a drawable look
// Nil behaviours are absent; the drawable contract is forwarded to Look
type Entity struct {
	Look     render.Drawable
	Collider *Collider
	Pickup   *Pickup
	Building *Building
}

// Collider blocks moves onto the entity's footprint
type Collider struct {
	Width, Depth float64
}

// Pickup is collected with the pick-up key when in range
type Pickup struct {
	Take func(stats *status.Stats)
}

// Building progresses every world tick
type Building struct {
	Progress func(dt float64, player *Player)
}

func (e *Entity) Render(c render.Canvas, s render.Scene) {
	e.Look.Render(c, s)
}

func (e *Entity) Position() (render.Point, bool) {
	return render.PositionOf(e.Look)
}

func (e *Entity) ShouldDispose() bool {
	return render.ShouldDispose(e.Look)
}

func (e *Entity) MeshIDs() []render.ResourceID {
	return render.MeshIDsOf(e.Look)
}

// CollidesWith reports whether (x, y) lies on the collider footprint
func (e *Entity) CollidesWith(x, y float64) bool {
	if e.Collider == nil {
		return false
	}
	p, ok := e.Position()
	if !ok {
		return false
	}
	return pointIn(x, y, p.X, p.Y, e.Collider.Width, e.Collider.Depth)
}

// pointIn reports whether (px, py) lies in the rect at (x, y), min edges inclusive
func pointIn(px, py, x, y, w, h float64) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}
