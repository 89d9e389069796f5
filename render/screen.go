package render

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrFrameAborted wraps the backend error that stopped a frame before present
var ErrFrameAborted = errors.New("frame aborted")

// FrameStats summarizes the last completed frame
type FrameStats struct {
	Frame    uint64
	Drawn    int
	Disposed int
	Meshes   PoolStats
	Elements PoolStats
}

// Inspection is a diagnostic snapshot of one registered drawable
type Inspection struct {
	Layer       int
	Ordered     bool
	Position    Point
	HasPosition bool
	MeshIDs     []ResourceID
}

// Screen owns the drawable registry and composes one frame per Render call
// Not safe for concurrent use: the frame loop is the only caller
type Screen struct {
	scene    SceneBackend
	meshes   *MeshPool
	elements *OverlayPool

	layers    map[int][]Drawable
	order     []int // layer keys, ascending
	unordered []Drawable

	width  int
	height int

	focusX float64
	focusY float64

	frame uint64
	stats FrameStats
	log   *zap.Logger
}

// NewScreen creates a screen driving both backends through its own pools
// width and height are the logical dimensions reported to game logic
func NewScreen(scene SceneBackend, overlay OverlayBackend, width, height int, log *zap.Logger) *Screen {
	if log == nil {
		log = zap.NewNop()
	}
	return &Screen{
		scene:     scene,
		meshes:    NewMeshPool(scene, log.Named("meshes")),
		elements:  NewOverlayPool(overlay, log.Named("overlay")),
		layers:    make(map[int][]Drawable),
		order:     make([]int, 0, 8),
		unordered: make([]Drawable, 0, 16),
		width:     width,
		height:    height,
		log:       log,
	}
}

// Add registers a drawable rendered after every layer, in insertion order
// Registering the same drawable twice renders it twice
func (s *Screen) Add(d Drawable) {
	s.unordered = append(s.unordered, d)
}

// AddLayer registers a drawable in the layer with the given sort order
// Within a layer drawables render in insertion order
func (s *Screen) AddLayer(d Drawable, order int) {
	if _, ok := s.layers[order]; !ok {
		// Insertion sort: find position and insert
		pos := len(s.order)
		for i, k := range s.order {
			if order < k {
				pos = i
				break
			}
		}
		s.order = append(s.order, 0)
		copy(s.order[pos+1:], s.order[pos:])
		s.order[pos] = order
	}
	s.layers[order] = append(s.layers[order], d)
}

// Render executes one frame: prune disposed, draw all, evict unseen, present
// A backend error aborts the frame before eviction and present; drawable panics are not recovered
func (s *Screen) Render() error {
	s.frame++
	canvas := s.elements.Begin()
	scene := s.meshes.Begin()

	stats := FrameStats{Frame: s.frame}

	for _, k := range s.order {
		var n int
		s.layers[k], n = prune(s.layers[k])
		stats.Disposed += n
	}
	var n int
	s.unordered, n = prune(s.unordered)
	stats.Disposed += n

	for _, k := range s.order {
		for _, d := range s.layers[k] {
			d.Render(canvas, scene)
			stats.Drawn++
		}
	}
	for _, d := range s.unordered {
		d.Render(canvas, scene)
		stats.Drawn++
	}

	if err := scene.Err(); err != nil {
		s.log.Error("frame aborted", zap.Uint64("frame", s.frame), zap.Error(err))
		return fmt.Errorf("%w: frame %d: %w", ErrFrameAborted, s.frame, err)
	}

	scene.Finalize()
	canvas.Finalize()

	stats.Meshes = scene.Stats()
	stats.Elements = canvas.Stats()
	s.stats = stats

	if stats.Meshes.Evicted > 0 || stats.Elements.Evicted > 0 {
		s.log.Debug("frame evicted",
			zap.Uint64("frame", s.frame),
			zap.Int("meshes", stats.Meshes.Evicted),
			zap.Int("elements", stats.Elements.Evicted))
	}

	if err := s.scene.Present(); err != nil {
		return fmt.Errorf("present frame %d: %w", s.frame, err)
	}
	return nil
}

// prune drops disposed drawables in place, keeping order
func prune(ds []Drawable) ([]Drawable, int) {
	kept := ds[:0]
	for _, d := range ds {
		if !ShouldDispose(d) {
			kept = append(kept, d)
		}
	}
	removed := len(ds) - len(kept)
	clear(ds[len(kept):])
	return kept, removed
}

// SetFocus moves the camera by the change from the previous focus point
func (s *Screen) SetFocus(x, y float64) {
	s.scene.MoveCameraBy(x-s.focusX, y-s.focusY)
	s.focusX, s.focusY = x, y
}

// Focus returns the current focus point
func (s *Screen) Focus() (x, y float64) {
	return s.focusX, s.focusY
}

// Dimensions returns the logical screen size
func (s *Screen) Dimensions() (width, height int) {
	return s.width, s.height
}

// Stats returns the counters of the last completed frame
func (s *Screen) Stats() FrameStats {
	return s.stats
}

// Len returns the number of registered drawables
func (s *Screen) Len() int {
	n := len(s.unordered)
	for _, k := range s.order {
		n += len(s.layers[k])
	}
	return n
}

// Meshes returns the 3D resource pool
func (s *Screen) Meshes() *MeshPool {
	return s.meshes
}

// Elements returns the overlay resource pool
func (s *Screen) Elements() *OverlayPool {
	return s.elements
}

// Inspect returns every registered drawable's position and owned ids in traversal order
func (s *Screen) Inspect() []Inspection {
	out := make([]Inspection, 0, s.Len())
	for _, k := range s.order {
		for _, d := range s.layers[k] {
			out = append(out, inspect(d, k, true))
		}
	}
	for _, d := range s.unordered {
		out = append(out, inspect(d, 0, false))
	}
	return out
}

func inspect(d Drawable, layer int, ordered bool) Inspection {
	p, ok := PositionOf(d)
	return Inspection{
		Layer:       layer,
		Ordered:     ordered,
		Position:    p,
		HasPosition: ok,
		MeshIDs:     MeshIDsOf(d),
	}
}
