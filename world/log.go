package world

import (
	"strconv"
	"time"

	"github.com/lixenwraith/isoscape/render"
)

const (
	logFontPx = 48
	logTop    = logFontPx*2 + 300
)

type logEntry struct {
	text    string
	expires time.Duration
}

// Log shows recent messages on the overlay until they expire
type Log struct {
	id      render.ResourceID
	entries []logEntry
	expiry  time.Duration
	clock   time.Duration
}

func NewLog(expiry time.Duration) *Log {
	return &Log{id: render.NewID(), expiry: expiry}
}

// Add appends a message expiring after the configured time
func (l *Log) Add(text string) {
	l.entries = append(l.entries, logEntry{text: text, expires: l.clock + l.expiry})
}

// Advance moves the log clock and drops expired messages
func (l *Log) Advance(dt time.Duration) {
	l.clock += dt
	n := 0
	for n < len(l.entries) && l.entries[n].expires <= l.clock {
		n++
	}
	l.entries = l.entries[n:]
}

// Messages returns the live messages, oldest first
func (l *Log) Messages() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.text
	}
	return out
}

func (l *Log) Render(c render.Canvas, _ render.Scene) {
	c.SetFillStyle("white")
	c.SetFont(strconv.Itoa(logFontPx) + "px Helvetica")
	for i, e := range l.entries {
		y := logTop + logFontPx*1.5*float64(i+1)
		c.FillText(e.text, 50, y, 0, l.id.Slot(i))
	}
}
