package treent

import "testing"

// windowLog records every signal a window emits.
type windowLog struct {
	kinds []string
	mouse []MouseEvent
	touch []TouchEvent
}

func watchWindow(w Window) *windowLog {
	l := &windowLog{}
	onMouse := func(kind string) func(*MouseEvent) {
		return func(e *MouseEvent) {
			l.kinds = append(l.kinds, kind)
			l.mouse = append(l.mouse, *e)
		}
	}
	onTouch := func(kind string) func(*TouchEvent) {
		return func(e *TouchEvent) {
			l.kinds = append(l.kinds, kind)
			l.touch = append(l.touch, *e)
		}
	}
	w.MouseDown().Connect(onMouse("down"))
	w.MouseDrag().Connect(onMouse("drag"))
	w.MouseUp().Connect(onMouse("up"))
	w.TouchesBegan().Connect(onTouch("began"))
	w.TouchesMoved().Connect(onTouch("moved"))
	w.TouchesEnded().Connect(onTouch("ended"))
	w.FocusLost().Connect(func(*FocusEvent) { l.kinds = append(l.kinds, "focus") })
	return l
}

func (l *windowLog) assertKinds(t *testing.T, want ...string) {
	t.Helper()
	if len(l.kinds) != len(want) {
		t.Fatalf("signals = %v, want %v", l.kinds, want)
	}
	for i := range want {
		if l.kinds[i] != want[i] {
			t.Fatalf("signals = %v, want %v", l.kinds, want)
		}
	}
}

// --- Mouse ---

func TestStepMousePressDragRelease(t *testing.T) {
	w := NewEbitenWindow()
	l := watchWindow(w)

	w.stepMouse(mouseSample{x: 10, y: 10}, 0)
	w.stepMouse(mouseSample{x: 10, y: 10, pressed: true, button: MouseButtonRight}, ModShift)
	w.stepMouse(mouseSample{x: 15, y: 12, pressed: true, button: MouseButtonRight}, 0)
	w.stepMouse(mouseSample{x: 15, y: 12, pressed: true, button: MouseButtonRight}, 0)
	w.stepMouse(mouseSample{x: 20, y: 12}, 0)

	l.assertKinds(t, "down", "drag", "up")

	down := l.mouse[0]
	if down.X != 10 || down.Y != 10 || down.Button != MouseButtonRight || down.Modifiers != ModShift {
		t.Errorf("down = %+v", down)
	}
	drag := l.mouse[1]
	if drag.DeltaX != 5 || drag.DeltaY != 2 || drag.Button != MouseButtonRight {
		t.Errorf("drag = %+v", drag)
	}
	up := l.mouse[2]
	if up.X != 20 || up.DeltaX != 5 || up.Button != MouseButtonRight {
		t.Errorf("up = %+v", up)
	}
}

func TestStepMouseHoverEmitsNothing(t *testing.T) {
	w := NewEbitenWindow()
	l := watchWindow(w)

	w.stepMouse(mouseSample{x: 1, y: 1}, 0)
	w.stepMouse(mouseSample{x: 50, y: 80}, 0)

	l.assertKinds(t)
}

// --- Touches ---

func TestStepTouchesLifecycle(t *testing.T) {
	w := NewEbitenWindow()
	l := watchWindow(w)

	w.stepTouches([]touchSample{{id: 1, x: 10, y: 10}}, 0)
	w.stepTouches([]touchSample{{id: 1, x: 12, y: 10}, {id: 2, x: 50, y: 50}}, 0)
	w.stepTouches([]touchSample{{id: 2, x: 50, y: 50}}, 0)
	w.stepTouches(nil, 0)

	l.assertKinds(t, "began", "began", "moved", "ended", "ended")

	if got := l.touch[0].Touches; len(got) != 1 || got[0].ID != 1 {
		t.Errorf("began 0 = %+v", got)
	}
	if got := l.touch[1].Touches; len(got) != 1 || got[0].ID != 2 {
		t.Errorf("began 1 = %+v", got)
	}
	moved := l.touch[2].Touches
	if len(moved) != 1 || moved[0].X != 12 || moved[0].PrevX != 10 {
		t.Errorf("moved = %+v", moved)
	}
	ended := l.touch[3].Touches
	if len(ended) != 1 || ended[0].ID != 1 || ended[0].X != 12 || ended[0].PrevX != 12 {
		t.Errorf("ended = %+v", ended)
	}
	if w.ActiveTouches() != 0 {
		t.Errorf("ActiveTouches = %d, want 0", w.ActiveTouches())
	}
}

func TestStepTouchesBatchesPerStep(t *testing.T) {
	w := NewEbitenWindow()
	l := watchWindow(w)

	w.stepTouches([]touchSample{{id: 1, x: 0, y: 0}, {id: 2, x: 5, y: 5}}, ModCtrl)

	l.assertKinds(t, "began")
	if len(l.touch[0].Touches) != 2 || l.touch[0].Modifiers != ModCtrl {
		t.Errorf("began = %+v", l.touch[0])
	}
	if w.ActiveTouches() != 2 {
		t.Errorf("ActiveTouches = %d, want 2", w.ActiveTouches())
	}
}

// --- Focus ---

func TestStepFocusLostOnce(t *testing.T) {
	w := NewEbitenWindow()
	l := watchWindow(w)
	w.stepMouse(mouseSample{pressed: true}, 0)
	w.stepTouches([]touchSample{{id: 3}}, 0)

	if w.stepFocus(false) {
		t.Error("unfocused window should not process input")
	}
	w.stepFocus(false)

	l.assertKinds(t, "down", "began", "focus")
	if w.pressed || w.ActiveTouches() != 0 {
		t.Error("pointer state should be dropped on focus loss")
	}

	if !w.stepFocus(true) {
		t.Error("focused window should process input")
	}
	w.stepFocus(false)
	l.assertKinds(t, "down", "began", "focus", "focus")
}

// --- Synthetic input ---

func TestInjectClick(t *testing.T) {
	w := NewEbitenWindow()
	l := watchWindow(w)

	w.InjectClick(30, 40)
	if w.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", w.Pending())
	}
	for w.processInjected(0) {
	}

	l.assertKinds(t, "down", "up")
	if l.mouse[0].X != 30 || l.mouse[0].Y != 40 {
		t.Errorf("down = %+v", l.mouse[0])
	}
}

func TestInjectDragInterpolates(t *testing.T) {
	w := NewEbitenWindow()
	l := watchWindow(w)

	w.InjectDrag(0, 0, 30, 60, 4)
	if w.Pending() != 4 {
		t.Fatalf("Pending = %d, want 4", w.Pending())
	}
	for w.processInjected(0) {
	}

	l.assertKinds(t, "down", "drag", "drag", "up")
	assertNear(t, "drag 1 x", l.mouse[1].X, 10)
	assertNear(t, "drag 1 y", l.mouse[1].Y, 20)
	assertNear(t, "drag 2 x", l.mouse[2].X, 20)
	assertNear(t, "up x", l.mouse[3].X, 30)
}

func TestInjectDragMinimumFrames(t *testing.T) {
	w := NewEbitenWindow()
	w.InjectDrag(0, 0, 1, 1, 0)
	if w.Pending() != 2 {
		t.Errorf("Pending = %d, want 2", w.Pending())
	}
}

func TestProcessInjectedEmptyQueue(t *testing.T) {
	w := NewEbitenWindow()
	if w.processInjected(0) {
		t.Error("empty queue should report nothing consumed")
	}
}
