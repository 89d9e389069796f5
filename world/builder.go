package world

import (
	"math/rand"

	"github.com/lixenwraith/isoscape/render"
)

// Builder places generated content on the map
type Builder struct {
	rng *rand.Rand
}

func NewBuilder(rng *rand.Rand) *Builder {
	return &Builder{rng: rng}
}

// WoodBlocks places n blocks on random tiles of a w×h map, never on keep
func (b *Builder) WoodBlocks(n, w, h int, keep ...render.Point) []*Entity {
	blocks := make([]*Entity, 0, n)
	for len(blocks) < n {
		x, y := float64(b.rng.Intn(w)), float64(b.rng.Intn(h))
		if reserved(x, y, keep) && w*h > len(keep) {
			continue
		}
		blocks = append(blocks, NewWoodBlock(x, y))
	}
	return blocks
}

// Spawns returns n enemy positions: the fixed ones first, then random tiles
func (b *Builder) Spawns(n, w, h int, fixed []render.Point) []render.Point {
	out := make([]render.Point, 0, n)
	for i := 0; i < n; i++ {
		if i < len(fixed) {
			out = append(out, fixed[i])
			continue
		}
		out = append(out, render.Pt(float64(b.rng.Intn(w)), float64(b.rng.Intn(h)), 1))
	}
	return out
}

func reserved(x, y float64, keep []render.Point) bool {
	for _, p := range keep {
		if pointIn(x, y, p.X, p.Y, 1, 1) {
			return true
		}
	}
	return false
}
