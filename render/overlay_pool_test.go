package render

import "testing"

func TestOverlayPoolRectCreatedOnce(t *testing.T) {
	backend := newFakeOverlay()
	pool := NewOverlayPool(backend, nil)

	for frame := 0; frame < 3; frame++ {
		f := pool.Begin()
		f.SetFillStyle("#D6D6D6")
		f.FillRect(float64(frame*10), 5, 210, 180, "menu")
		f.Finalize()
	}

	if backend.created != 1 {
		t.Fatalf("expected 1 element, got %d", backend.created)
	}
	hs, ok := pool.Lookup("menu")
	if !ok || len(hs) != 1 {
		t.Fatalf("expected one pooled element, got %v", hs)
	}
	el := backend.elements[hs[0]]
	if !el.attached {
		t.Error("rect not appended to container")
	}
	want := Style{Position: "absolute", Left: 20, Top: 5, Width: 210, Height: 180, Background: "#D6D6D6"}
	if el.style != want {
		t.Errorf("style = %+v, want %+v", el.style, want)
	}
}

func TestOverlayAmbientStyleOrder(t *testing.T) {
	backend := newFakeOverlay()
	pool := NewOverlayPool(backend, nil)

	f := pool.Begin()
	f.SetFillStyle("#333")
	f.FillRect(0, 0, 10, 10, "item:0")
	f.SetFillStyle("#fff")
	f.SetFont("30px Helvetica")
	f.FillText("House", 10, 10, 200, "item:1")
	f.Finalize()

	rect, _ := pool.Lookup("item:0")
	if got := backend.elements[rect[0]].style.Background; got != "#333" {
		t.Errorf("rect background = %q, want style set before it", got)
	}
	text, _ := pool.Lookup("item:1")
	inner := backend.elements[text[1]].style
	if inner.Color != "#fff" || inner.Font != "30px Helvetica" {
		t.Errorf("text style = %+v", inner)
	}
}

func TestOverlayAmbientStyleResetsEachFrame(t *testing.T) {
	backend := newFakeOverlay()
	pool := NewOverlayPool(backend, nil)

	f := pool.Begin()
	f.SetFillStyle("white")
	f.SetFont("56px Helvetica")
	f.FillText("credits: 50", 50, 112, 0, "status")
	f.Finalize()

	f = pool.Begin()
	f.FillText("credits: 51", 50, 112, 0, "status")
	f.Finalize()

	hs, _ := pool.Lookup("status")
	inner := backend.elements[hs[1]]
	if inner.style.Color != "" || inner.style.Font != "" {
		t.Errorf("ambient style leaked into next frame: %+v", inner.style)
	}
	if inner.text != "credits: 51" {
		t.Errorf("text = %q", inner.text)
	}
}

func TestOverlayTextPair(t *testing.T) {
	backend := newFakeOverlay()
	pool := NewOverlayPool(backend, nil)

	f := pool.Begin()
	f.FillText("hello", 3, 4, 120, "t")
	f.FillText("hello again", 5, 6, 120, "t")
	f.Finalize()

	if backend.created != 2 {
		t.Fatalf("expected wrapper and inner, got %d elements", backend.created)
	}
	hs, _ := pool.Lookup("t")
	wrapper, inner := backend.elements[hs[0]], backend.elements[hs[1]]
	if !wrapper.attached || wrapper.style.Left != 5 || wrapper.style.Top != 6 {
		t.Errorf("wrapper = %+v", wrapper)
	}
	if inner.parent != hs[0] {
		t.Errorf("inner parent = %d, want %d", inner.parent, hs[0])
	}
	if inner.style.Display != "inline-block" || inner.style.MaxWidth != 120 {
		t.Errorf("inner style = %+v", inner.style)
	}
	if inner.text != "hello again" {
		t.Errorf("inner text = %q", inner.text)
	}
}

func TestOverlayRectReplacesTextPair(t *testing.T) {
	backend := newFakeOverlay()
	pool := NewOverlayPool(backend, nil)

	f := pool.Begin()
	f.FillText("label", 0, 0, 50, "x")
	pair, _ := pool.Lookup("x")
	f.SetFillStyle("red")
	f.FillRect(1, 2, 3, 4, "x")
	f.Finalize()

	for _, h := range pair {
		if backend.removed[h] != 1 {
			t.Errorf("handle %d removed %d times, want 1", h, backend.removed[h])
		}
	}
	hs, ok := pool.Lookup("x")
	if !ok || len(hs) != 1 {
		t.Fatalf("lookup = %v, %v; want one rect element", hs, ok)
	}
	rect := backend.elements[hs[0]]
	if !rect.attached || rect.text != "" || rect.style.Background != "red" {
		t.Errorf("rect = %+v", rect)
	}
	if backend.created != 3 {
		t.Errorf("created = %d, want 3", backend.created)
	}
}

func TestOverlayFinalizeRemovesAllElements(t *testing.T) {
	backend := newFakeOverlay()
	pool := NewOverlayPool(backend, nil)

	f := pool.Begin()
	f.FillText("gone soon", 0, 0, 0, "log:0")
	f.FillRect(0, 0, 1, 1, "box")
	f.Finalize()

	text, _ := pool.Lookup("log:0")

	f = pool.Begin()
	f.FillRect(0, 0, 1, 1, "box")
	f.Finalize()

	if _, ok := pool.Lookup("log:0"); ok {
		t.Fatal("expected log:0 evicted")
	}
	for _, h := range text {
		if backend.removed[h] != 1 {
			t.Errorf("element %d removed %d times, want 1", h, backend.removed[h])
		}
	}
	if f.Stats().Evicted != 1 {
		t.Errorf("expected one evicted id, got %d", f.Stats().Evicted)
	}
	if pool.Len() != 1 {
		t.Errorf("expected box to stay, len=%d", pool.Len())
	}
}
