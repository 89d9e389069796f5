package world

import (
	"github.com/lixenwraith/isoscape/render"
	"github.com/lixenwraith/isoscape/status"
)

var (
	woodColor     = render.Color(90, 146, 120)
	farmColor     = render.Color(205, 205, 10)
	houseColor    = render.Color(205, 154, 42)
	roofColor     = render.Color(225, 174, 62)
	mountainColor = [3]render.RGB{
		render.Color(165, 165, 165),
		render.Color(125, 125, 125),
		render.Color(95, 95, 95),
	}
)

const (
	woodPerBlock  = 100
	woodBlockTier = 6
	farmStrips    = 4
)

// NewWoodBlock returns a collidable stack of wood that gives wood when picked up
func NewWoodBlock(x, y float64) *Entity {
	id := render.NewID()
	ids := id.Slots(woodBlockTier)
	taken := false

	look := render.Object{
		RenderFunc: func(_ render.Canvas, s render.Scene) {
			for i, sub := range ids {
				s.Add(render.Prism(render.Pt(x+.02, y+.02, 1+float64(i)), .92, .92, 1), woodColor, sub)
			}
		},
		PositionFunc: func() (render.Point, bool) { return render.Pt(x, y, 1), true },
		DisposeFunc:  func() bool { return taken },
		MeshIDsFunc:  func() []render.ResourceID { return ids },
	}
	return &Entity{
		Look:     look,
		Collider: &Collider{Width: 1, Depth: 1},
		Pickup: &Pickup{Take: func(stats *status.Stats) {
			stats.Change(StatWood, func(w float64) float64 { return w + woodPerBlock })
			taken = true
		}},
		Building: &Building{},
	}
}

// NewFarm returns four crop strips producing one food per second
func NewFarm(pos render.Point) *Entity {
	ids := render.NewID().Slots(farmStrips)
	look := render.Object{
		RenderFunc: func(_ render.Canvas, s render.Scene) {
			for i, sub := range ids {
				s.Add(render.Prism(render.Pt(pos.X+.25*float64(i), pos.Y, pos.Z), .22, 1, .05), farmColor, sub)
			}
		},
		PositionFunc: func() (render.Point, bool) { return pos, true },
		MeshIDsFunc:  func() []render.ResourceID { return ids },
	}
	return &Entity{
		Look: look,
		Building: &Building{Progress: func(dt float64, p *Player) {
			p.Stats().Change(StatFood, func(f float64) float64 { return f + dt })
		}},
	}
}

// NewHouse returns a collidable house producing one credit per second
// Each existing house makes the next one a quarter unit larger
func NewHouse(pos render.Point, existing int) *Entity {
	ids := render.NewID().Slots(2)
	size := 1 + float64(existing)*.25
	look := render.Object{
		RenderFunc: func(_ render.Canvas, s render.Scene) {
			s.Add(render.Prism(pos, size, size, size), houseColor, ids[0])
			s.Add(render.Pyramid(render.Pt(pos.X, pos.Y, pos.Z+size), size, size, 1), roofColor, ids[1])
		},
		PositionFunc: func() (render.Point, bool) { return pos, true },
		MeshIDsFunc:  func() []render.ResourceID { return ids },
	}
	return &Entity{
		Look:     look,
		Collider: &Collider{Width: 1, Depth: 1},
		Building: &Building{Progress: func(dt float64, p *Player) {
			p.Stats().Change(StatCredits, func(c float64) float64 { return c + dt })
		}},
	}
}

// NewMountain returns three grey peaks around (x, y)
func NewMountain(x, y float64) *Entity {
	ids := render.NewID().Slots(3)
	peaks := [3]render.Shape{
		render.Pyramid(render.Pt(x+4.5, y+2.6, 1), 4, 4, 2.8),
		render.Pyramid(render.Pt(x+.5, y+.5, 1), 6, 6, 5),
		render.Pyramid(render.Pt(x-.5, y, 1), 4, 4, 2.8),
	}
	look := render.Object{
		RenderFunc: func(_ render.Canvas, s render.Scene) {
			for i, p := range peaks {
				s.Add(p, mountainColor[i], ids[i])
			}
		},
		PositionFunc: func() (render.Point, bool) { return render.Pt(x, y, 1), true },
		MeshIDsFunc:  func() []render.ResourceID { return ids },
	}
	return &Entity{
		Look:     look,
		Collider: &Collider{Width: 7, Depth: 7},
	}
}
