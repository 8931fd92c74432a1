package treent

import "testing"

func TestRootNodeForwardsEverySignal(t *testing.T) {
	reg := NewRegistry()
	var w Signals
	root := NewRootNode(reg)
	root.Connect(&w)

	child := NewNode(reg, "child")
	root.AppendChild(child)
	calls := map[string]int{}
	child.SetInteraction(&InteractionFuncs{
		OnTouchesBegan: func(*TouchEvent, Affine) bool { calls["tb"]++; return true },
		OnTouchesMoved: func(*TouchEvent, Affine) bool { calls["tm"]++; return true },
		OnTouchesEnded: func(*TouchEvent, Affine) bool { calls["te"]++; return true },
		OnMouseDown:    func(*MouseEvent, Affine) bool { calls["md"]++; return true },
		OnMouseDrag:    func(*MouseEvent, Affine) bool { calls["mg"]++; return true },
		OnMouseUp:      func(*MouseEvent, Affine) bool { calls["mu"]++; return true },
		OnCancel:       func() { calls["cancel"]++ },
	})

	w.TouchesBegan().Emit(&TouchEvent{})
	w.TouchesMoved().Emit(&TouchEvent{})
	w.TouchesEnded().Emit(&TouchEvent{})
	w.MouseDown().Emit(&MouseEvent{})
	w.MouseDrag().Emit(&MouseEvent{})
	w.MouseUp().Emit(&MouseEvent{})
	w.FocusLost().Emit(&FocusEvent{})

	for _, k := range []string{"tb", "tm", "te", "md", "mg", "mu", "cancel"} {
		if calls[k] != 1 {
			t.Errorf("calls[%s] = %d, want 1", k, calls[k])
		}
	}
}

func TestRootNodeForwardsEventUnchanged(t *testing.T) {
	reg := NewRegistry()
	var w Signals
	root := NewRootNode(reg)
	root.Connect(&w)

	var got *MouseEvent
	root.SetInteraction(&InteractionFuncs{
		OnMouseDown: func(e *MouseEvent, _ Affine) bool {
			got = e
			return true
		},
	})
	sent := &MouseEvent{X: 3, Y: 4, Button: MouseButtonRight}
	w.MouseDown().Emit(sent)

	if got != sent {
		t.Error("root should pass the emitted event through")
	}
}

func TestRootNodeDisconnect(t *testing.T) {
	reg := NewRegistry()
	var w Signals
	root := NewRootNode(reg)
	root.Connect(&w)
	if !root.Connected() {
		t.Fatal("root should be connected")
	}

	var calls int
	root.SetInteraction(&InteractionFuncs{
		OnMouseDown: func(*MouseEvent, Affine) bool { calls++; return true },
	})
	root.Disconnect()
	w.MouseDown().Emit(&MouseEvent{})

	if calls != 0 {
		t.Error("disconnected root should not receive input")
	}
	if root.Connected() || w.MouseDown().Len() != 0 {
		t.Error("subscriptions should be released")
	}
}

func TestRootNodeReconnectReplacesWindow(t *testing.T) {
	reg := NewRegistry()
	var first, second Signals
	root := NewRootNode(reg)
	root.Connect(&first)
	root.Connect(&second)

	if first.MouseDown().Len() != 0 {
		t.Error("first window should be released")
	}
	if second.MouseDown().Len() != 1 {
		t.Error("second window should have one subscriber")
	}
}

func TestRootNodeDestroyReleasesWindow(t *testing.T) {
	reg := NewRegistry()
	var w Signals
	root := NewRootNode(reg)
	root.Connect(&w)
	child := NewNode(reg, "child")
	root.AppendChild(child)

	root.Destroy()

	if w.TouchesBegan().Len() != 0 || w.FocusLost().Len() != 0 {
		t.Error("destroyed root should hold no subscriptions")
	}
	if !root.IsDestroyed() || child.IsDestroyed() {
		t.Error("root destroyed, child kept")
	}
	if child.Parent() != nil {
		t.Error("child should be detached")
	}
}

func TestRootNodeFocusLostCancelsHeldPress(t *testing.T) {
	reg := NewRegistry()
	w := NewEbitenWindow()
	root := NewRootNode(reg)
	root.Connect(w)

	btn := NewNode(reg, "btn")
	hit := NewHitInteraction(HitRect{Width: 10, Height: 10})
	var cancelled bool
	hit.OnCancel = func() { cancelled = true }
	btn.SetInteraction(hit)
	root.AppendChild(btn)
	root.UpdateTree(Identity)

	w.stepMouse(mouseSample{x: 5, y: 5, pressed: true}, 0)
	if !hit.Active() {
		t.Fatal("press should be captured")
	}
	w.stepFocus(false)

	if !cancelled || hit.Active() {
		t.Error("focus loss should cancel the held press")
	}
}
