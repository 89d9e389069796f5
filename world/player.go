package world

import (
	"math"

	"github.com/lixenwraith/isoscape/render"
	"github.com/lixenwraith/isoscape/status"
)

// Stat names
const (
	StatCredits = "credits"
	StatWood    = "wood"
	StatFood    = "food"
)

// moveDuration is the length of one grid step animation in seconds
const moveDuration = 0.12

var (
	playerColor = render.Color(100, 100, 255)
	enemyColor  = render.Color(230, 60, 60)
)

// BlockFunc reports whether a move onto (x, y) is blocked
type BlockFunc func(x, y float64) bool

type stepAnimation struct {
	running bool
	elapsed float64
	startX  float64
	startY  float64
	endX    float64
	endY    float64
}

// Player is an actor moving one tile at a time with a light following it
type Player struct {
	x, y, z float64
	color   render.RGB
	stats   *status.Stats
	blocked BlockFunc
	anim    stepAnimation

	id      render.ResourceID
	lightID render.ResourceID
}

// NewPlayer places a player; blocked may be nil
func NewPlayer(pos render.Point, stats *status.Stats, blocked BlockFunc) *Player {
	if stats == nil {
		stats = status.NewStats(nil)
	}
	id := render.NewID()
	return &Player{
		x: pos.X, y: pos.Y, z: pos.Z,
		color:   playerColor,
		stats:   stats,
		blocked: blocked,
		id:      id,
		lightID: id.Slot(4),
	}
}

func (p *Player) Render(_ render.Canvas, s render.Scene) {
	s.Add(render.Prism(render.Pt(p.x, p.y, p.z), 1, 1, .1), p.color, p.id)
	s.Light(render.Pt(p.x, p.y, p.z), p.color, p.lightID, p.id)
}

func (p *Player) Position() (render.Point, bool) {
	return render.Pt(p.x, p.y, p.z), true
}

func (p *Player) MeshIDs() []render.ResourceID {
	return []render.ResourceID{p.id, p.lightID}
}

// Stats returns the player's resources
func (p *Player) Stats() *status.Stats {
	return p.stats
}

// Moving reports whether a step animation is running
func (p *Player) Moving() bool {
	return p.anim.running
}

// Move starts a step by (dx, dy) unless one is running or the target is blocked
func (p *Player) Move(dx, dy float64) bool {
	ex, ey := p.x+dx, p.y+dy
	if p.blocked != nil && p.blocked(ex, ey) {
		return false
	}
	if p.anim.running {
		return false
	}
	p.anim = stepAnimation{running: true, startX: p.x, startY: p.y, endX: ex, endY: ey}
	return true
}

func (p *Player) MoveUp() bool    { return p.Move(1, 0) }
func (p *Player) MoveDown() bool  { return p.Move(-1, 0) }
func (p *Player) MoveLeft() bool  { return p.Move(0, 1) }
func (p *Player) MoveRight() bool { return p.Move(0, -1) }

// Progress advances the step animation by dt seconds
// The position snaps to the grid on the tick after the step completes
func (p *Player) Progress(dt float64) {
	if !p.anim.running {
		return
	}
	t := p.anim.elapsed / moveDuration
	if t >= 1 {
		p.anim.running = false
		p.x = math.Round(p.anim.endX)
		p.y = math.Round(p.anim.endY)
		return
	}
	p.x = p.anim.startX + t*(p.anim.endX-p.anim.startX)
	p.y = p.anim.startY + t*(p.anim.endY-p.anim.startY)
	p.anim.elapsed += dt
}
