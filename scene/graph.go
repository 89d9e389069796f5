package scene

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/lixenwraith/isoscape/render"
)

// ErrNodeLimit is returned by create calls once MaxNodes resources exist
var ErrNodeLimit = errors.New("scene node limit reached")

// Face shading: ambient floor plus directional sun contribution
const (
	ambient  = 0.45
	sunShare = 0.55
)

var sunDir = mgl32.Vec3{0.4, 1, 0.7}.Normalize()

// Painter draws on top of the volumes each Present
type Painter interface {
	Paint(buf *render.RenderBuffer)
}

type node struct {
	kind    render.ShapeKind
	light   bool
	extents mgl32.Vec3
	color   render.RGB
	pos     mgl32.Vec3
	inScene bool

	intensity float32
	distance  float32
}

// Graph is a retained scene of volumes and point lights rasterized into terminal cells
type Graph struct {
	nodes    map[render.Handle]*node
	next     render.Handle
	maxNodes int

	camera   *Camera
	buf      *render.RenderBuffer
	surface  render.Surface
	painters []Painter

	// Reused across frames
	visible []*node
	lights  []*node

	log *zap.Logger
}

// NewGraph creates an empty scene presenting to surface; maxNodes 0 means unlimited
func NewGraph(surface render.Surface, camera *Camera, maxNodes int, log *zap.Logger) *Graph {
	if log == nil {
		log = zap.NewNop()
	}
	w, h := surface.Size()
	return &Graph{
		nodes:    make(map[render.Handle]*node),
		maxNodes: maxNodes,
		camera:   camera,
		buf:      render.NewRenderBuffer(w, h),
		surface:  surface,
		log:      log,
	}
}

// AddPainter registers a painter, called in registration order after the volumes
func (g *Graph) AddPainter(p Painter) {
	g.painters = append(g.painters, p)
}

// Camera returns the scene camera
func (g *Graph) Camera() *Camera {
	return g.camera
}

// Buffer returns the compositor of the last Present
func (g *Graph) Buffer() *render.RenderBuffer {
	return g.buf
}

// Len returns the number of live resources, in scene or not
func (g *Graph) Len() int {
	return len(g.nodes)
}

func (g *Graph) create(n *node) (render.Handle, error) {
	if g.maxNodes > 0 && len(g.nodes) >= g.maxNodes {
		return 0, fmt.Errorf("%w: %d", ErrNodeLimit, g.maxNodes)
	}
	g.next++
	g.nodes[g.next] = n
	return g.next, nil
}

func (g *Graph) CreateVolume(kind render.ShapeKind, extents mgl32.Vec3, color render.RGB) (render.Handle, error) {
	return g.create(&node{kind: kind, extents: extents, color: color})
}

func (g *Graph) CreatePointLight(color render.RGB, intensity, distance float32) (render.Handle, error) {
	return g.create(&node{light: true, color: color, intensity: intensity, distance: distance})
}

func (g *Graph) Position(h render.Handle, pos mgl32.Vec3) {
	if n, ok := g.nodes[h]; ok {
		n.pos = pos
	}
}

func (g *Graph) AddToScene(h render.Handle) {
	if n, ok := g.nodes[h]; ok {
		n.inScene = true
	}
}

func (g *Graph) RemoveFromScene(h render.Handle) {
	delete(g.nodes, h)
}

func (g *Graph) MoveCameraBy(dx, dy float64) {
	g.camera.MoveBy(dx, dy)
}

// Present rasterizes the scene back to front, runs the painters and flushes to the surface
func (g *Graph) Present() error {
	w, h := g.surface.Size()
	if bw, bh := g.buf.Bounds(); bw != w || bh != h {
		g.buf.Resize(w, h)
	} else {
		g.buf.Clear()
	}

	vp := g.camera.ViewProjection(w, h)
	facing := g.camera.Facing()

	g.visible = g.visible[:0]
	g.lights = g.lights[:0]
	for _, n := range g.nodes {
		if !n.inScene {
			continue
		}
		if n.light {
			g.lights = append(g.lights, n)
		} else {
			g.visible = append(g.visible, n)
		}
	}

	// Painter's algorithm: farthest volume first
	depths := make(map[*node]float32, len(g.visible))
	for _, n := range g.visible {
		_, _, d := project(vp, n.pos, w, h)
		depths[n] = d
	}
	slices.SortStableFunc(g.visible, func(a, b *node) int {
		switch da, db := depths[a], depths[b]; {
		case da > db:
			return -1
		case da < db:
			return 1
		}
		return 0
	})

	for _, n := range g.visible {
		for _, f := range faces(n.kind, n.pos, n.extents) {
			if f.normal.Dot(facing) <= 0 {
				continue
			}
			g.fillFace(vp, f, n.color, w, h)
		}
	}

	for _, p := range g.painters {
		p.Paint(g.buf)
	}

	g.buf.FlushTo(g.surface)
	return nil
}

// fillFace paints every cell whose center lies inside the projected face
func (g *Graph) fillFace(vp mgl32.Mat4, f face, color render.RGB, w, h int) {
	shade := ambient + sunShare*math.Max(0, float64(f.normal.Dot(sunDir)))
	base := render.Scale(color, shade)
	glow := g.lightAt(mean(f.corners))

	pts := make([][2]float32, len(f.corners))
	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := float32(-math.MaxFloat32), float32(-math.MaxFloat32)
	for i, c := range f.corners {
		sx, sy, _ := project(vp, c, w, h)
		pts[i] = [2]float32{sx, sy}
		minX, maxX = min(minX, sx), max(maxX, sx)
		minY, maxY = min(minY, sy), max(maxY, sy)
	}

	x0, x1 := max(0, int(minX)), min(w-1, int(maxX))
	y0, y1 := max(0, int(minY)), min(h-1, int(maxY))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !inside(pts, float32(x)+0.5, float32(y)+0.5) {
				continue
			}
			g.buf.SetBgOnly(x, y, base)
			if glow != render.RGBBlack {
				g.buf.Set(x, y, 0, render.RGBBlack, glow, render.BlendAddBg, 1.0, tcell.AttrNone)
			}
		}
	}
}

// lightAt sums point light contributions at p with quadratic falloff to zero at range
func (g *Graph) lightAt(p mgl32.Vec3) render.RGB {
	sum := render.RGBBlack
	for _, l := range g.lights {
		d := l.pos.Sub(p).Len()
		if d >= l.distance {
			continue
		}
		k := 1 - d/l.distance
		sum = render.Add(sum, render.Scale(l.color, float64(l.intensity*k*k)), 1.0)
	}
	return sum
}

// inside reports whether (x, y) lies within the convex polygon, either winding
func inside(pts [][2]float32, x, y float32) bool {
	var pos, neg bool
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		cross := (b[0]-a[0])*(y-a[1]) - (b[1]-a[1])*(x-a[0])
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}
