package render

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

var errExhausted = errors.New("backend exhausted")

type sceneNode struct {
	kind    ShapeKind
	light   bool
	extents mgl32.Vec3
	color   RGB
	pos     mgl32.Vec3
	inScene bool
}

// fakeScene records every backend call
type fakeScene struct {
	next      Handle
	nodes     map[Handle]*sceneNode
	created   int
	positions int
	removed   map[Handle]int
	presents  int
	camDX     float64
	camDY     float64
	limit     int // creations allowed, 0 = unlimited
}

func newFakeScene() *fakeScene {
	return &fakeScene{
		nodes:   make(map[Handle]*sceneNode),
		removed: make(map[Handle]int),
	}
}

func (f *fakeScene) create(n *sceneNode) (Handle, error) {
	if f.limit > 0 && f.created >= f.limit {
		return 0, errExhausted
	}
	f.next++
	f.created++
	f.nodes[f.next] = n
	return f.next, nil
}

func (f *fakeScene) CreateVolume(kind ShapeKind, extents mgl32.Vec3, color RGB) (Handle, error) {
	return f.create(&sceneNode{kind: kind, extents: extents, color: color})
}

func (f *fakeScene) CreatePointLight(color RGB, intensity, distance float32) (Handle, error) {
	return f.create(&sceneNode{light: true, color: color})
}

func (f *fakeScene) Position(h Handle, pos mgl32.Vec3) {
	f.positions++
	if n, ok := f.nodes[h]; ok {
		n.pos = pos
	}
}

func (f *fakeScene) AddToScene(h Handle) {
	f.nodes[h].inScene = true
}

func (f *fakeScene) RemoveFromScene(h Handle) {
	f.removed[h]++
	if n, ok := f.nodes[h]; ok {
		n.inScene = false
	}
}

func (f *fakeScene) Present() error {
	f.presents++
	return nil
}

func (f *fakeScene) MoveCameraBy(dx, dy float64) {
	f.camDX += dx
	f.camDY += dy
}

func (f *fakeScene) inScene() int {
	n := 0
	for _, node := range f.nodes {
		if node.inScene {
			n++
		}
	}
	return n
}

type element struct {
	parent   Handle
	attached bool
	style    Style
	text     string
}

// fakeOverlay records the element tree
type fakeOverlay struct {
	next     Handle
	elements map[Handle]*element
	created  int
	removed  map[Handle]int
	styles   int
}

func newFakeOverlay() *fakeOverlay {
	return &fakeOverlay{
		elements: make(map[Handle]*element),
		removed:  make(map[Handle]int),
	}
}

func (f *fakeOverlay) CreateElement() Handle {
	f.next++
	f.created++
	f.elements[f.next] = &element{}
	return f.next
}

func (f *fakeOverlay) AppendToContainer(h Handle) {
	f.elements[h].attached = true
}

func (f *fakeOverlay) AppendChild(parent, child Handle) {
	f.elements[child].parent = parent
}

func (f *fakeOverlay) Remove(h Handle) {
	f.removed[h]++
	if e, ok := f.elements[h]; ok {
		e.attached = false
	}
}

func (f *fakeOverlay) SetStyle(h Handle, st Style) {
	f.styles++
	f.elements[h].style = st
}

func (f *fakeOverlay) SetText(h Handle, text string) {
	f.elements[h].text = text
}

// traceDrawable is a drawable recording its render calls into a shared log
type traceDrawable struct {
	name     string
	log      *[]string
	disposed bool
	draw     func(c Canvas, s Scene)
}

func (p *traceDrawable) Render(c Canvas, s Scene) {
	*p.log = append(*p.log, p.name)
	if p.draw != nil {
		p.draw(c, s)
	}
}

func (p *traceDrawable) ShouldDispose() bool {
	return p.disposed
}
