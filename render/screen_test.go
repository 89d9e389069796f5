package render

import (
	"errors"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestScreen() (*Screen, *fakeScene, *fakeOverlay) {
	scene := newFakeScene()
	overlay := newFakeOverlay()
	return NewScreen(scene, overlay, 1000, 1000, nil), scene, overlay
}

func TestScreenBoxScenario(t *testing.T) {
	screen, backend, _ := newTestScreen()
	var log []string
	d1 := &traceDrawable{name: "D1", log: &log, draw: func(c Canvas, s Scene) {
		s.Add(Prism(Pt(0, 0, 0), 1, 1, 1), RGB{255, 0, 0}, "abc")
	}}
	screen.AddLayer(d1, 0)

	if err := screen.Render(); err != nil {
		t.Fatalf("frame 1: %v", err)
	}
	if backend.created != 1 {
		t.Fatalf("expected one resource created, got %d", backend.created)
	}
	h, pos, _ := screen.Meshes().Lookup("abc")
	if want := (mgl32.Vec3{-0.5, 0.5, -0.5}); pos != want {
		t.Errorf("backend position = %v, want %v", pos, want)
	}
	if !backend.nodes[h].inScene {
		t.Error("resource not added to scene")
	}

	positions := backend.positions
	if err := screen.Render(); err != nil {
		t.Fatalf("frame 2: %v", err)
	}
	if backend.created != 1 {
		t.Errorf("frame 2 created %d new resources", backend.created-1)
	}
	if backend.positions-positions != 1 {
		t.Errorf("frame 2 repositioned %d times, want 1", backend.positions-positions)
	}

	d1.disposed = true
	if err := screen.Render(); err != nil {
		t.Fatalf("frame 3: %v", err)
	}
	if backend.removed[h] != 1 || backend.nodes[h].inScene {
		t.Errorf("expected resource removed from scene once, removed=%d", backend.removed[h])
	}
	if _, _, ok := screen.Meshes().Lookup("abc"); ok {
		t.Error("abc still pooled after disposal")
	}
	if backend.presents != 3 {
		t.Errorf("expected one present per frame, got %d", backend.presents)
	}
	if !reflect.DeepEqual(log, []string{"D1", "D1"}) {
		t.Errorf("render calls = %v", log)
	}
}

func TestScreenDrawOrder(t *testing.T) {
	screen, _, _ := newTestScreen()
	var log []string
	screen.Add(&traceDrawable{name: "D4", log: &log})
	screen.AddLayer(&traceDrawable{name: "D2", log: &log}, 3)
	screen.AddLayer(&traceDrawable{name: "D3", log: &log}, 3)

	if err := screen.Render(); err != nil {
		t.Fatal(err)
	}
	if want := []string{"D2", "D3", "D4"}; !reflect.DeepEqual(log, want) {
		t.Errorf("draw order = %v, want %v", log, want)
	}
}

func TestScreenLayerOrdering(t *testing.T) {
	screen, _, _ := newTestScreen()
	var log []string

	registrations := []struct {
		name  string
		order int
	}{
		{"l10-a", 10},
		{"l3-a", 3},
		{"lneg-a", -2},
		{"l3-b", 3},
		{"l0-a", 0},
		{"l10-b", 10},
	}
	for _, r := range registrations {
		screen.AddLayer(&traceDrawable{name: r.name, log: &log}, r.order)
	}
	screen.Add(&traceDrawable{name: "ui", log: &log})

	for frame := 0; frame < 2; frame++ {
		log = log[:0]
		if err := screen.Render(); err != nil {
			t.Fatal(err)
		}
		want := []string{"lneg-a", "l0-a", "l3-a", "l3-b", "l10-a", "l10-b", "ui"}
		if !reflect.DeepEqual(log, want) {
			t.Errorf("frame %d order = %v, want %v", frame, log, want)
		}
	}
}

func TestScreenDisposalFiltering(t *testing.T) {
	screen, _, _ := newTestScreen()
	var log []string
	gone := &traceDrawable{name: "gone", log: &log, disposed: true}
	layered := &traceDrawable{name: "layered", log: &log}
	screen.AddLayer(gone, 1)
	screen.AddLayer(layered, 1)
	screen.Add(&traceDrawable{name: "ui-gone", log: &log, disposed: true})

	if err := screen.Render(); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(log, []string{"layered"}) {
		t.Errorf("rendered = %v, want only layered", log)
	}
	if screen.Len() != 1 {
		t.Errorf("registry len = %d, want 1", screen.Len())
	}
	if st := screen.Stats(); st.Disposed != 2 || st.Drawn != 1 {
		t.Errorf("stats = %+v", st)
	}
}

func TestScreenPoolsAreIndependentNamespaces(t *testing.T) {
	screen, scene, overlay := newTestScreen()
	var log []string
	shared := ResourceID("shared")
	screen.Add(&traceDrawable{name: "both", log: &log, draw: func(c Canvas, s Scene) {
		s.Add(Prism(Pt(0, 0, 0), 1, 1, 1), RGB{1, 2, 3}, shared)
		c.FillRect(0, 0, 1, 1, shared)
	}})

	if err := screen.Render(); err != nil {
		t.Fatal(err)
	}
	if scene.created != 1 || overlay.created != 1 {
		t.Errorf("created scene=%d overlay=%d, want 1 each", scene.created, overlay.created)
	}
	if screen.Meshes().Len() != 1 || screen.Elements().Len() != 1 {
		t.Error("shared id missing from one pool")
	}
}

func TestScreenAbortsFrameOnBackendError(t *testing.T) {
	screen, backend, _ := newTestScreen()
	var log []string
	screen.Add(&traceDrawable{name: "old", log: &log, draw: func(c Canvas, s Scene) {
		s.Add(Prism(Pt(0, 0, 0), 1, 1, 1), RGB{}, "old")
	}})
	if err := screen.Render(); err != nil {
		t.Fatal(err)
	}

	backend.limit = 1
	screen.Add(&traceDrawable{name: "new", log: &log, draw: func(c Canvas, s Scene) {
		s.Add(Prism(Pt(1, 0, 0), 1, 1, 1), RGB{}, "new")
	}})

	err := screen.Render()
	if !errors.Is(err, errExhausted) || !errors.Is(err, ErrFrameAborted) {
		t.Fatalf("expected aborted frame wrapping exhaustion, got %v", err)
	}
	if backend.presents != 1 {
		t.Errorf("aborted frame presented: presents=%d", backend.presents)
	}
	if _, _, ok := screen.Meshes().Lookup("old"); !ok {
		t.Error("aborted frame must not evict")
	}
}

func TestScreenSetFocus(t *testing.T) {
	screen, backend, _ := newTestScreen()

	screen.SetFocus(1, 1)
	screen.SetFocus(4, -1)

	if backend.camDX != 4 || backend.camDY != -1 {
		t.Errorf("camera moved by (%v, %v), want (4, -1)", backend.camDX, backend.camDY)
	}
	if x, y := screen.Focus(); x != 4 || y != -1 {
		t.Errorf("focus = (%v, %v)", x, y)
	}
	if w, h := screen.Dimensions(); w != 1000 || h != 1000 {
		t.Errorf("dimensions = %dx%d", w, h)
	}
}

func TestScreenInspect(t *testing.T) {
	screen, _, _ := newTestScreen()
	id := ResourceID("farm")
	screen.AddLayer(Object{
		PositionFunc: func() (Point, bool) { return Pt(10, 10, 1), true },
		MeshIDsFunc:  func() []ResourceID { return id.Slots(4) },
	}, 2)
	screen.Add(Object{})

	got := screen.Inspect()
	if len(got) != 2 {
		t.Fatalf("inspect len = %d", len(got))
	}
	if !got[0].Ordered || got[0].Layer != 2 || !got[0].HasPosition || got[0].Position != Pt(10, 10, 1) {
		t.Errorf("first = %+v", got[0])
	}
	if len(got[0].MeshIDs) != 4 || got[0].MeshIDs[3] != "farm:3" {
		t.Errorf("mesh ids = %v", got[0].MeshIDs)
	}
	if got[1].Ordered || got[1].HasPosition || len(got[1].MeshIDs) != 0 {
		t.Errorf("second = %+v", got[1])
	}
}
