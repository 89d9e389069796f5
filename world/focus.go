package world

import (
	"math"
	"time"

	"github.com/lixenwraith/isoscape/render"
)

// Focuser receives camera focus points
type Focuser interface {
	SetFocus(x, y float64)
}

// FocusTracker follows a drawable with the camera
// Once the target moves beyond the trigger distance from the last focus, it waits
// delay, then tweens linearly to where the target is at that moment
type FocusTracker struct {
	screen  Focuser
	follow  render.Drawable
	delay   time.Duration
	tween   time.Duration
	trigger float64

	fromX, fromY float64
	goalX, goalY float64

	queued   bool
	due      bool
	waited   time.Duration
	tweening bool
	elapsed  time.Duration
}

// NewFocusTracker focuses the screen on follow's current position
func NewFocusTracker(screen Focuser, follow render.Drawable, delay, tween time.Duration, trigger float64) *FocusTracker {
	p, _ := render.PositionOf(follow)
	screen.SetFocus(p.X, p.Y)
	return &FocusTracker{
		screen:  screen,
		follow:  follow,
		delay:   delay,
		tween:   tween,
		trigger: trigger,
		fromX:   p.X,
		fromY:   p.Y,
		goalX:   p.X,
		goalY:   p.Y,
	}
}

// Focus returns the point the camera last settled on
func (f *FocusTracker) Focus() (x, y float64) {
	return f.fromX, f.fromY
}

// Update advances the delay and tween by dt
func (f *FocusTracker) Update(dt time.Duration) {
	p, _ := render.PositionOf(f.follow)

	if !f.queued && !f.due && !f.tweening && f.beyondTrigger(p) {
		f.queued = true
	}

	if f.due {
		f.goalX, f.goalY = p.X, p.Y
		f.due = false
		f.tweening = true
	}

	if f.tweening {
		f.elapsed += dt
		t := float64(f.elapsed) / float64(f.tween)
		if f.tween <= 0 || t >= 1 {
			f.screen.SetFocus(f.goalX, f.goalY)
			f.fromX, f.fromY = f.goalX, f.goalY
			f.elapsed = 0
			f.tweening = false
		} else {
			f.screen.SetFocus(f.fromX+(f.goalX-f.fromX)*t, f.fromY+(f.goalY-f.fromY)*t)
		}
	}

	if f.queued {
		f.waited += dt
		if f.waited >= f.delay {
			f.queued = false
			f.due = true
			f.waited = 0
		}
	}
}

func (f *FocusTracker) beyondTrigger(p render.Point) bool {
	return math.Abs(p.X-f.fromX) > f.trigger || math.Abs(p.Y-f.fromY) > f.trigger
}
