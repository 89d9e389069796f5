package render

import "go.uber.org/zap"

// Element positioning written on every overlay draw
const (
	positionAbsolute = "absolute"
	displayInline    = "inline-block"
)

// OverlayPool caches overlay elements by ResourceID across frames
// A rect owns one element, a text owns a wrapper and an inner element
type OverlayPool struct {
	backend  OverlayBackend
	elements map[ResourceID][]Handle
	log      *zap.Logger
}

// NewOverlayPool creates an empty pool over the backend
func NewOverlayPool(backend OverlayBackend, log *zap.Logger) *OverlayPool {
	if log == nil {
		log = zap.NewNop()
	}
	return &OverlayPool{
		backend:  backend,
		elements: make(map[ResourceID][]Handle),
		log:      log,
	}
}

// Len returns the number of pooled ids
func (p *OverlayPool) Len() int {
	return len(p.elements)
}

// Lookup returns the elements stored for id
func (p *OverlayPool) Lookup(id ResourceID) ([]Handle, bool) {
	hs, ok := p.elements[id]
	return hs, ok
}

// Begin starts a frame with an empty liveness set and reset ambient style
func (p *OverlayPool) Begin() *OverlayFrame {
	return &OverlayFrame{
		pool: p,
		seen: make(map[ResourceID]struct{}),
	}
}

// OverlayFrame is the per-frame Canvas handle over an OverlayPool
// Ambient fill style and font live here so they cannot leak into the next frame
type OverlayFrame struct {
	pool      *OverlayPool
	seen      map[ResourceID]struct{}
	fillStyle string
	font      string
	stats     PoolStats
	done      bool
}

// SetFillStyle sets the color used by subsequent rect backgrounds and text
func (f *OverlayFrame) SetFillStyle(style string) {
	f.fillStyle = style
}

// SetFont sets the font used by subsequent text
func (f *OverlayFrame) SetFont(font string) {
	f.font = font
}

// FillRect draws an absolutely positioned rectangle in the current fill style
// An id last used for text is rebuilt as a single rect element
func (f *OverlayFrame) FillRect(x, y, w, h float64, id ResourceID) {
	if f.done {
		return
	}
	f.seen[id] = struct{}{}

	p := f.pool
	hs, ok := p.elements[id]
	if !ok || len(hs) != 1 {
		if ok {
			p.removeAll(hs)
		}
		el := p.backend.CreateElement()
		p.backend.AppendToContainer(el)
		hs = []Handle{el}
		p.elements[id] = hs
		f.stats.Created++
		p.log.Debug("rect created", zap.String("id", string(id)))
	} else {
		f.stats.Updated++
	}

	p.backend.SetStyle(hs[0], Style{
		Position:   positionAbsolute,
		Left:       x,
		Top:        y,
		Width:      w,
		Height:     h,
		Background: f.fillStyle,
	})
}

// FillText draws text at (x, y) in the current font and fill style
// maxWidth bounds the line width in pixels, 0 leaves it unbounded
func (f *OverlayFrame) FillText(text string, x, y, maxWidth float64, id ResourceID) {
	if f.done {
		return
	}
	f.seen[id] = struct{}{}

	p := f.pool
	hs, ok := p.elements[id]
	if !ok || len(hs) < 2 {
		// A rect id reused for text is a caller collision; rebuild as a text pair
		if ok {
			p.removeAll(hs)
		}
		wrapper := p.backend.CreateElement()
		inner := p.backend.CreateElement()
		p.backend.AppendChild(wrapper, inner)
		p.backend.AppendToContainer(wrapper)
		hs = []Handle{wrapper, inner}
		p.elements[id] = hs
		f.stats.Created++
		p.log.Debug("text created", zap.String("id", string(id)))
	} else {
		f.stats.Updated++
	}

	p.backend.SetStyle(hs[0], Style{
		Position: positionAbsolute,
		Left:     x,
		Top:      y,
	})
	p.backend.SetStyle(hs[1], Style{
		Display:  displayInline,
		MaxWidth: maxWidth,
		Font:     f.font,
		Color:    f.fillStyle,
	})
	p.backend.SetText(hs[1], text)
}

// Seen reports whether id was drawn in this frame
func (f *OverlayFrame) Seen(id ResourceID) bool {
	_, ok := f.seen[id]
	return ok
}

// Stats returns the work done so far in this frame
func (f *OverlayFrame) Stats() PoolStats {
	return f.stats
}

// Finalize removes the elements of every id not drawn this frame and clears the liveness set
// Calling it more than once is a no-op
func (f *OverlayFrame) Finalize() {
	if f.done {
		return
	}
	f.done = true

	p := f.pool
	for id, hs := range p.elements {
		if _, ok := f.seen[id]; ok {
			continue
		}
		p.removeAll(hs)
		delete(p.elements, id)
		f.stats.Evicted++
		p.log.Debug("overlay evicted", zap.String("id", string(id)), zap.Int("elements", len(hs)))
	}
	clear(f.seen)
}

// removeAll removes elements children first so each is removed exactly once
func (p *OverlayPool) removeAll(hs []Handle) {
	for i := len(hs) - 1; i >= 0; i-- {
		p.backend.Remove(hs[i])
	}
}
