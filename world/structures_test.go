package world

import (
	"testing"

	"github.com/lixenwraith/isoscape/render"
	"github.com/lixenwraith/isoscape/status"
)

func TestWoodBlockPickup(t *testing.T) {
	block := NewWoodBlock(4, 7)
	stats := status.NewStats(map[string]float64{StatWood: 5})

	r := draw(block)
	if len(r.shapes) != woodBlockTier {
		t.Errorf("rendered %d tiers, want %d", len(r.shapes), woodBlockTier)
	}
	if block.ShouldDispose() {
		t.Fatal("fresh block disposed")
	}

	block.Pickup.Take(stats)
	if got := stats.Get(StatWood); got != 105 {
		t.Errorf("wood = %v, want 105", got)
	}
	if !block.ShouldDispose() {
		t.Error("taken block not disposed")
	}
	if !block.CollidesWith(4.5, 7.5) || block.CollidesWith(5, 7) {
		t.Error("collider footprint wrong")
	}
}

func TestFarmProducesFood(t *testing.T) {
	farm := NewFarm(render.Pt(10, 10, 1))
	p := NewPlayer(render.Pt(1, 1, 1), nil, nil)

	tick(4, func() { farm.Building.Progress(.25, p) })
	if got := p.Stats().Get(StatFood); got != 1 {
		t.Errorf("food = %v, want 1", got)
	}
	if farm.CollidesWith(10, 10) {
		t.Error("farm must not block")
	}
	if r := draw(farm); len(r.shapes) != farmStrips {
		t.Errorf("strips = %d", len(r.shapes))
	}
}

func TestHouseGrowsWithCount(t *testing.T) {
	first := draw(NewHouse(render.Pt(0, 0, 1), 0))
	third := draw(NewHouse(render.Pt(0, 0, 1), 2))

	size := func(r *recorder) float64 {
		for _, s := range r.shapes {
			if s.Kind == render.ShapeBox {
				return s.Width
			}
		}
		return 0
	}
	if size(first) != 1 || size(third) != 1.5 {
		t.Errorf("sizes = %v, %v", size(first), size(third))
	}

	var roof render.Shape
	for _, s := range third.shapes {
		if s.Kind == render.ShapePyramid {
			roof = s
		}
	}
	if roof.Origin.Z != 2.5 {
		t.Errorf("roof base z = %v, want on top of the walls", roof.Origin.Z)
	}
}

func TestHouseProducesCredits(t *testing.T) {
	house := NewHouse(render.Pt(3, 3, 1), 0)
	p := NewPlayer(render.Pt(1, 1, 1), status.NewStats(map[string]float64{StatCredits: 50}), nil)

	house.Building.Progress(2, p)
	if got := p.Stats().Get(StatCredits); got != 52 {
		t.Errorf("credits = %v", got)
	}
}

func TestMountainDistinctPeaks(t *testing.T) {
	m := NewMountain(20, 20)
	r := draw(m)

	if len(r.shapes) != 3 {
		t.Fatalf("peaks = %d, want 3 distinct ids", len(r.shapes))
	}
	for id, s := range r.shapes {
		if s.Kind != render.ShapePyramid {
			t.Errorf("%s is %v", id, s.Kind)
		}
	}
	if !m.CollidesWith(26, 26) || m.CollidesWith(27, 20) {
		t.Error("mountain footprint wrong")
	}
}
