package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// PoolStats counts pool work done in one frame
type PoolStats struct {
	Created int
	Updated int
	Evicted int
}

type meshEntry struct {
	handle Handle
	kind   ShapeKind
	light  bool
	color  RGB
	pos    mgl32.Vec3
}

// MeshPool caches 3D backend resources by ResourceID across frames
// Owned by one Screen; draw calls reach it only through a MeshFrame
type MeshPool struct {
	backend SceneBackend
	entries map[ResourceID]*meshEntry
	log     *zap.Logger
}

// NewMeshPool creates an empty pool over the backend
func NewMeshPool(backend SceneBackend, log *zap.Logger) *MeshPool {
	if log == nil {
		log = zap.NewNop()
	}
	return &MeshPool{
		backend: backend,
		entries: make(map[ResourceID]*meshEntry),
		log:     log,
	}
}

// Len returns the number of pooled resources
func (p *MeshPool) Len() int {
	return len(p.entries)
}

// Lookup returns the backend handle and backend position stored for id
func (p *MeshPool) Lookup(id ResourceID) (Handle, mgl32.Vec3, bool) {
	e, ok := p.entries[id]
	if !ok {
		return 0, mgl32.Vec3{}, false
	}
	return e.handle, e.pos, true
}

// Begin starts a frame with an empty liveness set
func (p *MeshPool) Begin() *MeshFrame {
	return &MeshFrame{
		pool: p,
		seen: make(map[ResourceID]struct{}),
	}
}

// MeshFrame is the per-frame Scene handle over a MeshPool
// It records which ids were drawn so Finalize can evict the rest
type MeshFrame struct {
	pool  *MeshPool
	seen  map[ResourceID]struct{}
	stats PoolStats
	err   error
	done  bool
}

// Add draws a volume: created on first sight of id, only repositioned afterwards
// Color is fixed at creation; later colors for the same id are ignored
func (f *MeshFrame) Add(shape Shape, color RGB, id ResourceID) {
	if f.done || f.err != nil {
		return
	}
	f.seen[id] = struct{}{}

	p := f.pool
	pos := shape.Center()
	if e, ok := p.entries[id]; ok {
		e.pos = pos
		p.backend.Position(e.handle, pos)
		f.stats.Updated++
		return
	}

	h, err := p.backend.CreateVolume(shape.Kind, shape.Extents(), color)
	if err != nil {
		f.err = fmt.Errorf("create %s %s: %w", shape.Kind, id, err)
		return
	}
	p.backend.Position(h, pos)
	p.backend.AddToScene(h)
	p.entries[id] = &meshEntry{handle: h, kind: shape.Kind, color: color, pos: pos}
	f.stats.Created++
	p.log.Debug("mesh created",
		zap.String("id", string(id)),
		zap.Stringer("kind", shape.Kind),
		zap.String("color", color.Hex()))
}

// Light draws a point light: created on first sight of id, only repositioned afterwards
// target is accepted for callers that aim lights; this backend does not honor it
func (f *MeshFrame) Light(position Point, color RGB, id, target ResourceID) {
	if f.done || f.err != nil {
		return
	}
	f.seen[id] = struct{}{}

	p := f.pool
	pos := LightPosition(position)
	if e, ok := p.entries[id]; ok {
		e.pos = pos
		p.backend.Position(e.handle, pos)
		f.stats.Updated++
		return
	}

	h, err := p.backend.CreatePointLight(color, LightIntensity, LightRange)
	if err != nil {
		f.err = fmt.Errorf("create light %s: %w", id, err)
		return
	}
	p.backend.Position(h, pos)
	p.backend.AddToScene(h)
	p.entries[id] = &meshEntry{handle: h, light: true, color: color, pos: pos}
	f.stats.Created++
	p.log.Debug("light created", zap.String("id", string(id)), zap.String("target", string(target)))
}

// Seen reports whether id was drawn in this frame
func (f *MeshFrame) Seen(id ResourceID) bool {
	_, ok := f.seen[id]
	return ok
}

// Err returns the first backend error of the frame
func (f *MeshFrame) Err() error {
	return f.err
}

// Stats returns the work done so far in this frame
func (f *MeshFrame) Stats() PoolStats {
	return f.stats
}

// Finalize removes every pooled resource not drawn this frame and clears the liveness set
// Calling it more than once is a no-op
func (f *MeshFrame) Finalize() {
	if f.done {
		return
	}
	f.done = true

	p := f.pool
	for id, e := range p.entries {
		if _, ok := f.seen[id]; ok {
			continue
		}
		p.backend.RemoveFromScene(e.handle)
		delete(p.entries, id)
		f.stats.Evicted++
		p.log.Debug("mesh evicted", zap.String("id", string(id)), zap.Bool("light", e.light))
	}
	clear(f.seen)
}
