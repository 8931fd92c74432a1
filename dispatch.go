package treent

// Interaction is the optional per-node input capability. Each handler is
// given the event and the node's current world matrix and reports whether it
// captured the event. How an event is matched against the node's bounds is
// entirely up to the implementation.
type Interaction interface {
	TouchesBegan(e *TouchEvent, world Affine) bool
	TouchesMoved(e *TouchEvent, world Affine) bool
	TouchesEnded(e *TouchEvent, world Affine) bool
	MouseDown(e *MouseEvent, world Affine) bool
	MouseDrag(e *MouseEvent, world Affine) bool
	MouseUp(e *MouseEvent, world Affine) bool
	// Cancel aborts any gesture in progress.
	Cancel()
}

// DeepTouchesBegan offers e to n's Interaction and then to each child
// subtree in order, stopping at the first capture. Reports whether any node
// captured.
func (n *Node) DeepTouchesBegan(e *TouchEvent) bool {
	return n.deepDispatch(func(in Interaction, world Affine) bool {
		return in.TouchesBegan(e, world)
	})
}

// DeepTouchesMoved routes e like DeepTouchesBegan.
func (n *Node) DeepTouchesMoved(e *TouchEvent) bool {
	return n.deepDispatch(func(in Interaction, world Affine) bool {
		return in.TouchesMoved(e, world)
	})
}

// DeepTouchesEnded routes e like DeepTouchesBegan.
func (n *Node) DeepTouchesEnded(e *TouchEvent) bool {
	return n.deepDispatch(func(in Interaction, world Affine) bool {
		return in.TouchesEnded(e, world)
	})
}

// DeepMouseDown routes e like DeepTouchesBegan.
func (n *Node) DeepMouseDown(e *MouseEvent) bool {
	return n.deepDispatch(func(in Interaction, world Affine) bool {
		return in.MouseDown(e, world)
	})
}

// DeepMouseDrag routes e like DeepTouchesBegan.
func (n *Node) DeepMouseDrag(e *MouseEvent) bool {
	return n.deepDispatch(func(in Interaction, world Affine) bool {
		return in.MouseDrag(e, world)
	})
}

// DeepMouseUp routes e like DeepTouchesBegan.
func (n *Node) DeepMouseUp(e *MouseEvent) bool {
	return n.deepDispatch(func(in Interaction, world Affine) bool {
		return in.MouseUp(e, world)
	})
}

// deepDispatch is the shared capture search: self first, then children in
// order, depth-first, stopping everywhere at the first capture.
//
// The child list is snapshotted before iterating so handlers may edit the
// tree. Snapshot members that an earlier handler detached from n (or
// destroyed) are skipped; children added during the call are not visited.
func (n *Node) deepDispatch(handle func(Interaction, Affine) bool) bool {
	if n.destroyed {
		return false
	}
	if in := n.Interaction(); in != nil {
		if handle(in, n.WorldTransform()) {
			return true
		}
	}
	if len(n.children) == 0 {
		return false
	}
	for _, child := range snapshotChildren(n) {
		if child.parent != n || child.destroyed {
			continue
		}
		if child.deepDispatch(handle) {
			return true
		}
	}
	return false
}

// CancelInteractions cancels n's own Interaction, if any.
func (n *Node) CancelInteractions() {
	if in := n.Interaction(); in != nil {
		in.Cancel()
	}
}

// DeepCancelInteractions cancels n and every node below it. Unlike the
// capture search it never stops early. Uses the same snapshot rule as
// deepDispatch.
func (n *Node) DeepCancelInteractions() {
	if n.destroyed {
		return
	}
	n.CancelInteractions()
	if len(n.children) == 0 {
		return
	}
	for _, child := range snapshotChildren(n) {
		if child.parent != n || child.destroyed {
			continue
		}
		child.DeepCancelInteractions()
	}
}

func snapshotChildren(n *Node) []*Node {
	return append([]*Node(nil), n.children...)
}

// InteractionFuncs adapts plain functions to Interaction. Each method calls
// the matching On* field; nil fields never capture.
type InteractionFuncs struct {
	OnTouchesBegan func(*TouchEvent, Affine) bool
	OnTouchesMoved func(*TouchEvent, Affine) bool
	OnTouchesEnded func(*TouchEvent, Affine) bool
	OnMouseDown    func(*MouseEvent, Affine) bool
	OnMouseDrag    func(*MouseEvent, Affine) bool
	OnMouseUp      func(*MouseEvent, Affine) bool
	OnCancel       func()
}

// TouchesBegan calls OnTouchesBegan.
func (f *InteractionFuncs) TouchesBegan(e *TouchEvent, world Affine) bool {
	return f.OnTouchesBegan != nil && f.OnTouchesBegan(e, world)
}

// TouchesMoved calls OnTouchesMoved.
func (f *InteractionFuncs) TouchesMoved(e *TouchEvent, world Affine) bool {
	return f.OnTouchesMoved != nil && f.OnTouchesMoved(e, world)
}

// TouchesEnded calls OnTouchesEnded.
func (f *InteractionFuncs) TouchesEnded(e *TouchEvent, world Affine) bool {
	return f.OnTouchesEnded != nil && f.OnTouchesEnded(e, world)
}

// MouseDown calls OnMouseDown.
func (f *InteractionFuncs) MouseDown(e *MouseEvent, world Affine) bool {
	return f.OnMouseDown != nil && f.OnMouseDown(e, world)
}

// MouseDrag calls OnMouseDrag.
func (f *InteractionFuncs) MouseDrag(e *MouseEvent, world Affine) bool {
	return f.OnMouseDrag != nil && f.OnMouseDrag(e, world)
}

// MouseUp calls OnMouseUp.
func (f *InteractionFuncs) MouseUp(e *MouseEvent, world Affine) bool {
	return f.OnMouseUp != nil && f.OnMouseUp(e, world)
}

// Cancel calls OnCancel.
func (f *InteractionFuncs) Cancel() {
	if f.OnCancel != nil {
		f.OnCancel()
	}
}
