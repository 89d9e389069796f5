package render

import "github.com/go-gl/mathgl/mgl32"

// Handle is an opaque backend resource reference
type Handle uint64

// Point light parameters used for every pooled light
const (
	LightIntensity = 1
	LightRange     = 100
)

// SceneBackend is the retained 3D scene the mesh pool drives
type SceneBackend interface {
	// CreateVolume instantiates a volume not yet in the scene
	CreateVolume(kind ShapeKind, extents mgl32.Vec3, color RGB) (Handle, error)

	// CreatePointLight instantiates a light not yet in the scene
	CreatePointLight(color RGB, intensity, distance float32) (Handle, error)

	// Position moves a volume or light center in backend space
	Position(h Handle, pos mgl32.Vec3)

	AddToScene(h Handle)

	// RemoveFromScene detaches and destroys the resource
	RemoveFromScene(h Handle)

	// Present draws the current scene, once per frame
	Present() error

	// MoveCameraBy shifts the camera relative to its position in logical units
	MoveCameraBy(dx, dy float64)
}

// Style is the subset of element style the overlay pool writes
// Zero fields are unset; MaxWidth 0 means auto
type Style struct {
	Position   string
	Display    string
	Left       float64
	Top        float64
	Width      float64
	Height     float64
	Background string
	Font       string
	Color      string
	MaxWidth   float64
}

// OverlayBackend is the retained element tree the overlay pool drives
type OverlayBackend interface {
	CreateElement() Handle

	// AppendToContainer attaches an element to the fixed root container
	AppendToContainer(h Handle)

	AppendChild(parent, child Handle)

	// Remove detaches the element and its children and destroys it
	Remove(h Handle)

	SetStyle(h Handle, st Style)
	SetText(h Handle, text string)
}
