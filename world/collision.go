package world

// Buildings is the repository of placed entities progressed each tick
type Buildings struct {
	items []*Entity
}

func (b *Buildings) Add(e *Entity) {
	b.items = append(b.items, e)
}

// All returns the live buildings in placement order
func (b *Buildings) All() []*Entity {
	return b.items
}

// Prune drops disposed buildings, returning how many were removed
func (b *Buildings) Prune() int {
	kept := b.items[:0]
	for _, e := range b.items {
		if !e.ShouldDispose() {
			kept = append(kept, e)
		}
	}
	n := len(b.items) - len(kept)
	clear(b.items[len(kept):])
	b.items = kept
	return n
}

// Collision answers blocked-move and player-contact queries
type Collision struct {
	buildings *Buildings
	ground    *Ground
}

func NewCollision(buildings *Buildings, ground *Ground) *Collision {
	return &Collision{buildings: buildings, ground: ground}
}

// Blocked reports whether (x, y) is off the map or on a collider
func (c *Collision) Blocked(x, y float64) bool {
	if c.ground != nil && !c.ground.Contains(x, y) {
		return true
	}
	for _, b := range c.buildings.All() {
		if b.CollidesWith(x, y) {
			return true
		}
	}
	return false
}

// Touches reports whether an actor at (x, y) is on the player's tile
func (c *Collision) Touches(p *Player, x, y float64) bool {
	return pointIn(x, y, p.x, p.y, 1, 1)
}
