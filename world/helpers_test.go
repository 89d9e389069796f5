package world

import (
	"github.com/lixenwraith/isoscape/audio"
	"github.com/lixenwraith/isoscape/render"
)

type drawCall struct {
	op    string // "rect" or "text"
	text  string
	x, y  float64
	style string
	font  string
	id    render.ResourceID
}

// recorder captures canvas and scene calls of one render
type recorder struct {
	fill   string
	font   string
	calls  []drawCall
	shapes map[render.ResourceID]render.Shape
	colors map[render.ResourceID]render.RGB
	lights map[render.ResourceID]render.Point
}

func newRecorder() *recorder {
	return &recorder{
		shapes: make(map[render.ResourceID]render.Shape),
		colors: make(map[render.ResourceID]render.RGB),
		lights: make(map[render.ResourceID]render.Point),
	}
}

func (r *recorder) SetFillStyle(s string) { r.fill = s }
func (r *recorder) SetFont(f string)      { r.font = f }

func (r *recorder) FillRect(x, y, w, h float64, id render.ResourceID) {
	r.calls = append(r.calls, drawCall{op: "rect", x: x, y: y, style: r.fill, id: id})
}

func (r *recorder) FillText(text string, x, y, maxWidth float64, id render.ResourceID) {
	r.calls = append(r.calls, drawCall{op: "text", text: text, x: x, y: y, style: r.fill, font: r.font, id: id})
}

func (r *recorder) Add(shape render.Shape, color render.RGB, id render.ResourceID) {
	r.shapes[id] = shape
	r.colors[id] = color
}

func (r *recorder) Light(p render.Point, color render.RGB, id, target render.ResourceID) {
	r.lights[id] = p
}

func (r *recorder) texts() []string {
	var out []string
	for _, c := range r.calls {
		if c.op == "text" {
			out = append(out, c.text)
		}
	}
	return out
}

func draw(d render.Drawable) *recorder {
	r := newRecorder()
	d.Render(r, r)
	return r
}

// fakeStage records registrations and focus changes
type fakeStage struct {
	unordered []render.Drawable
	layers    map[int][]render.Drawable
	focusX    float64
	focusY    float64
	focusSets int
}

func newFakeStage() *fakeStage {
	return &fakeStage{layers: make(map[int][]render.Drawable)}
}

func (s *fakeStage) Add(d render.Drawable) { s.unordered = append(s.unordered, d) }

func (s *fakeStage) AddLayer(d render.Drawable, order int) {
	s.layers[order] = append(s.layers[order], d)
}

func (s *fakeStage) SetFocus(x, y float64) {
	s.focusX, s.focusY = x, y
	s.focusSets++
}

type fakeSounds struct {
	played []audio.Cue
}

func (f *fakeSounds) Play(c audio.Cue) { f.played = append(f.played, c) }

func (f *fakeSounds) last() audio.Cue {
	if len(f.played) == 0 {
		return -1
	}
	return f.played[len(f.played)-1]
}

// mover is a drawable whose position tests set directly
type mover struct {
	render.Object
	at render.Point
}

func newMover(x, y float64) *mover {
	m := &mover{at: render.Pt(x, y, 1)}
	m.PositionFunc = func() (render.Point, bool) { return m.at, true }
	return m
}

// tick calls fn n times
func tick(n int, fn func()) {
	for i := 0; i < n; i++ {
		fn()
	}
}
