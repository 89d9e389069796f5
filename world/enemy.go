package world

import (
	"math"

	"github.com/lixenwraith/isoscape/render"
)

const (
	enemyRange    = 7   // chase distance in tiles
	enemyCooldown = 1.0 // seconds between moves in the same direction
)

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
	dirCount
)

// Enemy chases the player through an inner Player it delegates to
type Enemy struct {
	inner    *Player
	clock    float64
	lastMove [dirCount]float64
}

func NewEnemy(pos render.Point, blocked BlockFunc) *Enemy {
	inner := NewPlayer(pos, nil, blocked)
	inner.color = enemyColor
	e := &Enemy{inner: inner}
	for i := range e.lastMove {
		e.lastMove[i] = math.Inf(-1)
	}
	return e
}

func (e *Enemy) Render(c render.Canvas, s render.Scene) {
	e.inner.Render(c, s)
}

func (e *Enemy) Position() (render.Point, bool) {
	return e.inner.Position()
}

func (e *Enemy) MeshIDs() []render.ResourceID {
	return e.inner.MeshIDs()
}

// Chase steps toward (px, py) along the dominant axis when within range
// Out of range enemies stand still, animation included
func (e *Enemy) Chase(dt, px, py float64) {
	e.clock += dt
	ex, ey := e.inner.x, e.inner.y
	dx, dy := px-ex, py-ey
	if math.Hypot(dx, dy) > enemyRange {
		return
	}

	var dir direction
	if math.Abs(dx) > math.Abs(dy) {
		dir = dirDown
		if dx > 0 {
			dir = dirUp
		}
	} else {
		dir = dirRight
		if dy > 0 {
			dir = dirLeft
		}
	}
	e.throttled(dir)
	e.inner.Progress(dt)
}

// throttled moves in dir at most once per cooldown
func (e *Enemy) throttled(dir direction) {
	if e.clock-e.lastMove[dir] < enemyCooldown {
		return
	}
	e.lastMove[dir] = e.clock
	switch dir {
	case dirUp:
		e.inner.MoveUp()
	case dirDown:
		e.inner.MoveDown()
	case dirLeft:
		e.inner.MoveLeft()
	case dirRight:
		e.inner.MoveRight()
	}
}
