package world

import (
	"testing"

	"github.com/lixenwraith/isoscape/render"
	"github.com/lixenwraith/isoscape/status"
)

func TestCollisionBlocked(t *testing.T) {
	buildings := &Buildings{}
	buildings.Add(NewWoodBlock(3, 3))
	buildings.Add(NewFarm(render.Pt(6, 6, 1)))
	c := NewCollision(buildings, NewGround(10, 10))

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"free tile", 1, 1, false},
		{"wood block", 3, 3, true},
		{"farm has no collider", 6, 6, false},
		{"west edge", -1, 4, true},
		{"east edge", 10, 4, true},
		{"last tile", 9, 9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Blocked(tt.x, tt.y); got != tt.want {
				t.Errorf("Blocked(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCollisionTouches(t *testing.T) {
	c := NewCollision(&Buildings{}, nil)
	p := NewPlayer(render.Pt(4, 4, 1), nil, nil)

	if !c.Touches(p, 4.5, 4.2) {
		t.Error("point on player tile not touching")
	}
	if c.Touches(p, 5, 4) {
		t.Error("adjacent tile touching")
	}
}

func TestBuildingsPrune(t *testing.T) {
	b := &Buildings{}
	block := NewWoodBlock(1, 1)
	b.Add(block)
	b.Add(NewFarm(render.Pt(2, 2, 1)))

	if n := b.Prune(); n != 0 {
		t.Errorf("pruned %d live buildings", n)
	}
	block.Pickup.Take(status.NewStats(nil))
	if n := b.Prune(); n != 1 || len(b.All()) != 1 {
		t.Errorf("prune = %d, left %d", n, len(b.All()))
	}
}
