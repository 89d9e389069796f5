package render

// Point is a logical world position
type Point struct {
	X, Y, Z float64
}

// Pt builds a Point
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Canvas receives overlay draw calls for one frame
// Fill style and font are ambient: set them before the calls that use them
type Canvas interface {
	SetFillStyle(style string)
	SetFont(font string)
	FillRect(x, y, w, h float64, id ResourceID)
	FillText(text string, x, y, maxWidth float64, id ResourceID)
}

// Scene receives 3D draw calls for one frame
type Scene interface {
	Add(shape Shape, color RGB, id ResourceID)
	Light(position Point, color RGB, id, target ResourceID)
}

// Drawable is implemented by every scene participant
// Render is called once per frame and may draw nothing
type Drawable interface {
	Render(c Canvas, s Scene)
}

// Positioner is optionally implemented to report a world position
// ok=false means the object has no position
type Positioner interface {
	Position() (p Point, ok bool)
}

// Disposer is optionally implemented to leave the registry before the next frame
type Disposer interface {
	ShouldDispose() bool
}

// MeshOwner is optionally implemented to report the ids the object currently owns
// Diagnostics only: pools derive liveness from draw calls
type MeshOwner interface {
	MeshIDs() []ResourceID
}

// PositionOf returns d's position, or ok=false if d has none
func PositionOf(d Drawable) (Point, bool) {
	if p, ok := d.(Positioner); ok {
		return p.Position()
	}
	return Point{}, false
}

// ShouldDispose reports whether d asked to be removed, false if d never does
func ShouldDispose(d Drawable) bool {
	if dp, ok := d.(Disposer); ok {
		return dp.ShouldDispose()
	}
	return false
}

// MeshIDsOf returns the ids d owns, empty if d does not say
func MeshIDsOf(d Drawable) []ResourceID {
	if mo, ok := d.(MeshOwner); ok {
		if ids := mo.MeshIDs(); ids != nil {
			return ids
		}
	}
	return []ResourceID{}
}

// Object implements the full contract from optional funcs
// A nil func behaves as the safe default; embed Object to override single methods
type Object struct {
	RenderFunc   func(c Canvas, s Scene)
	PositionFunc func() (Point, bool)
	DisposeFunc  func() bool
	MeshIDsFunc  func() []ResourceID
}

func (o Object) Render(c Canvas, s Scene) {
	if o.RenderFunc != nil {
		o.RenderFunc(c, s)
	}
}

func (o Object) Position() (Point, bool) {
	if o.PositionFunc != nil {
		return o.PositionFunc()
	}
	return Point{}, false
}

func (o Object) ShouldDispose() bool {
	if o.DisposeFunc != nil {
		return o.DisposeFunc()
	}
	return false
}

func (o Object) MeshIDs() []ResourceID {
	if o.MeshIDsFunc != nil {
		if ids := o.MeshIDsFunc(); ids != nil {
			return ids
		}
	}
	return []ResourceID{}
}
