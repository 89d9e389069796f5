package world

import (
	"github.com/lixenwraith/isoscape/render"
	"github.com/lixenwraith/isoscape/status"
)

const statusFontPx = 56

// StatusDisplay shows the player's stats at the top of the overlay
type StatusDisplay struct {
	id    render.ResourceID
	stats *status.Stats
}

func NewStatusDisplay(stats *status.Stats) *StatusDisplay {
	return &StatusDisplay{id: render.NewID(), stats: stats}
}

func (d *StatusDisplay) Render(c render.Canvas, _ render.Scene) {
	c.SetFillStyle("white")
	c.SetFont("56px Helvetica")
	c.FillText(d.stats.Format("   "), 50, statusFontPx*2, 0, d.id)
}

// DebugDisplay shows the frame counters published to a registry
type DebugDisplay struct {
	id       render.ResourceID
	registry *status.Registry
}

func NewDebugDisplay(registry *status.Registry) *DebugDisplay {
	return &DebugDisplay{id: render.NewID(), registry: registry}
}

func (d *DebugDisplay) Render(c render.Canvas, _ render.Scene) {
	c.SetFillStyle("rgba(0, 0, 0, 0.6)")
	c.FillRect(0, 0, 1000, 20, d.id.Slot(0))
	c.SetFillStyle("#9ece6a")
	c.SetFont("16px monospace")
	c.FillText(d.registry.Format("  "), 10, 0, 0, d.id.Slot(1))
}
