package world

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/isoscape/audio"
	"github.com/lixenwraith/isoscape/config"
	"github.com/lixenwraith/isoscape/render"
	"github.com/lixenwraith/isoscape/status"
)

// Key is a game input, decoupled from the terminal key codes
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyPickUp
	KeyMenu
	KeyMenuUp
	KeyMenuDown
	KeyMenuClose
)

// Stage is the part of the screen game logic registers drawables with
type Stage interface {
	Focuser
	Add(d render.Drawable)
	AddLayer(d render.Drawable, order int)
}

// Sounds plays one-shot cues
type Sounds interface {
	Play(c audio.Cue)
}

type nopSounds struct{}

func (nopSounds) Play(audio.Cue) {}

var (
	playerStart  = render.Pt(1, 1, 1)
	farmStart    = render.Pt(10, 10, 1)
	enemySpawns  = []render.Point{render.Pt(5, 15, 1), render.Pt(1, 13, 1), render.Pt(5, 19, 1)}
	mountainSite = render.Pt(30, 8, 1)
	startStats   = map[string]float64{StatCredits: 50, StatWood: 105}
)

type cost map[string]float64

var buildCosts = map[string]cost{
	"House": {StatWood: 100},
	"Farm":  {StatWood: 150},
}

// Game wires every world object and runs the per-tick rules
type Game struct {
	stage  Stage
	sounds Sounds
	log    *zap.Logger

	ground    *Ground
	buildings *Buildings
	collision *Collision
	player    *Player
	enemies   []*Enemy
	pickups   []*Entity
	messages  *Log
	menu      *ContextMenu
	focus     *FocusTracker
	houses    int
	ended     bool
}

// New builds the world and registers its drawables with stage
// sounds and log may be nil; rng must not be
func New(cfg config.WorldConfig, stage Stage, sounds Sounds, rng *rand.Rand, log *zap.Logger) *Game {
	if sounds == nil {
		sounds = nopSounds{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		stage:     stage,
		sounds:    sounds,
		log:       log,
		ground:    NewGround(cfg.Width, cfg.Height),
		buildings: &Buildings{},
		messages:  NewLog(cfg.LogExpiry),
	}
	g.collision = NewCollision(g.buildings, g.ground)

	builder := NewBuilder(rng)
	woodBlocks := builder.WoodBlocks(cfg.WoodBlocks, cfg.Width, cfg.Height, playerStart)
	for _, b := range woodBlocks {
		g.buildings.Add(b)
	}
	g.pickups = woodBlocks

	g.player = NewPlayer(playerStart, status.NewStats(startStats), g.collision.Blocked)
	for _, at := range builder.Spawns(cfg.Enemies, cfg.Width, cfg.Height, enemySpawns) {
		g.enemies = append(g.enemies, NewEnemy(at, g.collision.Blocked))
	}

	farm := NewFarm(farmStart)
	g.buildings.Add(farm)
	mountain := NewMountain(mountainSite.X, mountainSite.Y)
	g.buildings.Add(mountain)

	g.menu = NewContextMenu([]MenuItem{
		{Name: "House", Action: g.buildHouse},
		{Name: "Farm", Action: g.buildFarm},
	}, func() render.Point {
		p, _ := g.player.Position()
		return p
	})

	stage.Add(g.messages)
	stage.Add(g.menu)
	stage.Add(NewStatusDisplay(g.player.Stats()))
	stage.AddLayer(g.ground, render.LayerGround)
	for _, b := range woodBlocks {
		stage.AddLayer(b, render.LayerEntities)
	}
	for _, e := range g.enemies {
		stage.AddLayer(e, render.LayerEntities)
	}
	stage.AddLayer(g.player, render.LayerEntities)
	stage.AddLayer(farm, render.LayerFields)
	stage.AddLayer(mountain, render.LayerEntities)

	g.focus = NewFocusTracker(stage, g.player, cfg.FocusDelay, cfg.FocusTween, cfg.FocusTrigger)

	log.Info("world created",
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("wood_blocks", len(woodBlocks)),
		zap.Int("enemies", len(g.enemies)))
	return g
}

// HandleKey applies one input; movement is ignored while the menu is open
func (g *Game) HandleKey(k Key) {
	if g.ended {
		return
	}
	switch k {
	case KeyMenu:
		g.menu.Confirm()
		return
	case KeyMenuClose:
		g.menu.Close()
		return
	}

	if g.menu.IsOpen() {
		switch k {
		case KeyMenuUp, KeyUp:
			g.menu.Prev()
		case KeyMenuDown, KeyDown:
			g.menu.Next()
		}
		return
	}

	switch k {
	case KeyUp:
		g.player.MoveUp()
	case KeyDown:
		g.player.MoveDown()
	case KeyLeft:
		g.player.MoveLeft()
	case KeyRight:
		g.player.MoveRight()
	case KeyPickUp:
		g.PickUp()
	}
}

// PickUp collects the first pickup within one tile of the player
func (g *Game) PickUp() bool {
	p, _ := g.player.Position()
	for _, item := range g.pickups {
		if item.ShouldDispose() {
			continue
		}
		at, ok := item.Position()
		if !ok || !pointIn(at.X, at.Y, p.X-1, p.Y-1, 3, 3) {
			continue
		}
		item.Pickup.Take(g.player.Stats())
		g.sounds.Play(audio.CuePickup)
		g.log.Debug("picked up", zap.Float64("x", at.X), zap.Float64("y", at.Y))
		return true
	}
	return false
}

// Update advances the world by dt
func (g *Game) Update(dt time.Duration) {
	g.messages.Advance(dt)
	g.focus.Update(dt)
	if g.ended {
		return
	}
	sec := dt.Seconds()

	g.buildings.Prune()
	g.pickups = pruneEntities(g.pickups)
	for _, b := range g.buildings.All() {
		if b.Building != nil && b.Building.Progress != nil {
			b.Building.Progress(sec, g.player)
		}
	}

	g.player.Progress(sec)
	p, _ := g.player.Position()
	for _, e := range g.enemies {
		e.Chase(sec, p.X, p.Y)
		at, _ := e.Position()
		if g.collision.Touches(g.player, at.X, at.Y) {
			g.end()
			return
		}
	}
}

func (g *Game) end() {
	g.ended = true
	g.messages.Add("YOU DIED!")
	g.sounds.Play(audio.CueGameOver)
	g.log.Info("game over", zap.String("stats", g.player.Stats().Format(" ")))
}

func (g *Game) buildHouse(at render.Point) {
	if !g.charge("House") {
		return
	}
	house := NewHouse(at, g.houses)
	g.houses++
	g.stage.AddLayer(house, render.LayerEntities)
	g.buildings.Add(house)
	g.sounds.Play(audio.CueBuild)
}

func (g *Game) buildFarm(at render.Point) {
	if !g.charge("Farm") {
		return
	}
	farm := NewFarm(at)
	g.stage.AddLayer(farm, render.LayerFields)
	g.buildings.Add(farm)
	g.sounds.Play(audio.CueBuild)
}

// charge deducts the cost of kind if every material is affordable
func (g *Game) charge(kind string) bool {
	stats := g.player.Stats()
	c := buildCosts[kind]
	for material, amount := range c {
		if stats.Get(material) < amount {
			g.messages.Add("Cannot afford " + kind)
			g.sounds.Play(audio.CueDenied)
			return false
		}
	}
	for material, amount := range c {
		stats.Change(material, func(v float64) float64 { return v - amount })
	}
	return true
}

func pruneEntities(es []*Entity) []*Entity {
	kept := es[:0]
	for _, e := range es {
		if !e.ShouldDispose() {
			kept = append(kept, e)
		}
	}
	clear(es[len(kept):])
	return kept
}

// Ended reports whether the player was caught
func (g *Game) Ended() bool {
	return g.ended
}

func (g *Game) Player() *Player {
	return g.player
}

func (g *Game) Buildings() *Buildings {
	return g.buildings
}

func (g *Game) Log() *Log {
	return g.messages
}

func (g *Game) Menu() *ContextMenu {
	return g.menu
}

func (g *Game) Enemies() []*Enemy {
	return g.enemies
}
