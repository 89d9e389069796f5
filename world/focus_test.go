package world

import (
	"testing"
	"time"
)

func TestFocusTrackerInitialFocus(t *testing.T) {
	stage := newFakeStage()
	NewFocusTracker(stage, newMover(3, 4), 0, 0, 10)

	if stage.focusX != 3 || stage.focusY != 4 {
		t.Errorf("initial focus = (%v, %v)", stage.focusX, stage.focusY)
	}
}

func TestFocusTrackerWithinTrigger(t *testing.T) {
	stage := newFakeStage()
	target := newMover(0, 0)
	f := NewFocusTracker(stage, target, 200*time.Millisecond, 600*time.Millisecond, 10)

	target.at.X = 10
	tick(20, func() { f.Update(100 * time.Millisecond) })
	if stage.focusSets != 1 {
		t.Errorf("focus changed %d times for a move inside the trigger", stage.focusSets-1)
	}
}

func TestFocusTrackerDelayThenTween(t *testing.T) {
	stage := newFakeStage()
	target := newMover(0, 0)
	f := NewFocusTracker(stage, target, 200*time.Millisecond, 600*time.Millisecond, 10)

	target.at.X = 20
	f.Update(100 * time.Millisecond)
	f.Update(100 * time.Millisecond)
	if stage.focusSets != 1 {
		t.Fatal("focus moved during the delay")
	}

	f.Update(300 * time.Millisecond)
	if stage.focusX != 10 || stage.focusY != 0 {
		t.Errorf("half tween focus = (%v, %v), want (10, 0)", stage.focusX, stage.focusY)
	}

	// Target moves on during the tween; the goal was fixed when it started
	target.at.X = 25
	f.Update(300 * time.Millisecond)
	if stage.focusX != 20 {
		t.Errorf("tween end focus x = %v, want 20", stage.focusX)
	}
	if x, y := f.Focus(); x != 20 || y != 0 {
		t.Errorf("settled focus = (%v, %v)", x, y)
	}
}

func TestFocusTrackerDelayResets(t *testing.T) {
	stage := newFakeStage()
	target := newMover(0, 0)
	f := NewFocusTracker(stage, target, 200*time.Millisecond, 0, 10)

	target.at.Y = 15
	f.Update(150 * time.Millisecond)
	f.Update(100 * time.Millisecond)
	f.Update(time.Millisecond)
	if stage.focusY != 15 {
		t.Fatalf("first follow focus y = %v", stage.focusY)
	}

	// A second trigger waits the full delay again
	target.at.Y = 30
	f.Update(150 * time.Millisecond)
	f.Update(time.Millisecond)
	if stage.focusY != 15 {
		t.Errorf("second follow skipped the delay: y = %v", stage.focusY)
	}
}
