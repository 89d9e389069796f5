package world

import "github.com/lixenwraith/isoscape/render"

const (
	menuWidth      = 210
	menuHeight     = 180
	menuItemHeight = 60
	menuFontPx     = 30
)

// MenuItem is one action of the context menu, run at the player position
type MenuItem struct {
	Name   string
	Action func(at render.Point)
}

type menuEntry struct {
	MenuItem
	id render.ResourceID
}

// ContextMenu is an overlay list of build actions driven by the menu keys
type ContextMenu struct {
	id       render.ResourceID
	items    []menuEntry
	open     bool
	selected int // -1 for none
	at       func() render.Point
}

// NewContextMenu creates a closed menu; at supplies the action position
func NewContextMenu(items []MenuItem, at func() render.Point) *ContextMenu {
	m := &ContextMenu{id: render.NewID(), selected: -1, at: at}
	for _, it := range items {
		m.items = append(m.items, menuEntry{MenuItem: it, id: render.NewID()})
	}
	return m
}

func (m *ContextMenu) IsOpen() bool {
	return m.open
}

// Selected returns the highlighted item index, -1 for none
func (m *ContextMenu) Selected() int {
	return m.selected
}

// Confirm opens a closed menu, or runs the selected item and closes
func (m *ContextMenu) Confirm() {
	if !m.open {
		m.open = true
		return
	}
	if m.selected >= 0 && m.selected < len(m.items) {
		m.items[m.selected].Action(m.at())
	}
	m.Close()
}

// Close hides the menu and clears the selection
func (m *ContextMenu) Close() {
	m.open = false
	m.selected = -1
}

func (m *ContextMenu) Next() {
	if m.open && m.selected < len(m.items)-1 {
		m.selected++
	}
}

func (m *ContextMenu) Prev() {
	if m.open && m.selected > 0 {
		m.selected--
	}
}

func (m *ContextMenu) Render(c render.Canvas, _ render.Scene) {
	if !m.open {
		return
	}
	c.SetFillStyle("#D6D6D6")
	c.FillRect(0, 0, menuWidth, menuHeight, m.id)
	for i, it := range m.items {
		y := float64(i * menuItemHeight)
		if i == m.selected {
			c.SetFillStyle("#cc3")
		} else {
			c.SetFillStyle("#333")
		}
		c.FillRect(0, y, menuWidth, menuItemHeight, it.id.Slot(0))
		c.SetFillStyle("#fff")
		c.SetFont("30px Helvetica")
		c.FillText(it.Name, 10, y+menuFontPx*.33, menuWidth-10, it.id.Slot(1))
	}
}
