package treent

// HitShape is a hit region in a node's local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Shape-based interaction ---

// PointerContext carries pointer data to HitInteraction callbacks.
type PointerContext struct {
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	DeltaX    float64
	DeltaY    float64
	Button    MouseButton
	PointerID int // -1 for the mouse, otherwise the touch ID
	Modifiers KeyModifiers
}

// MousePointerID is the PointerContext.PointerID used for mouse events.
const MousePointerID = -1

// HitInteraction is an Interaction that captures presses landing inside
// Shape and then acts as first responder for them: only the HitInteraction
// that captured a press captures its moves and its release.
//
// Callbacks are optional (nil by default; zero cost when unused).
type HitInteraction struct {
	Shape HitShape

	OnPress   func(PointerContext)
	OnMove    func(PointerContext)
	OnRelease func(PointerContext)
	OnCancel  func()

	mouseHeld bool
	touches   []int
}

// NewHitInteraction creates a HitInteraction for shape.
func NewHitInteraction(shape HitShape) *HitInteraction {
	return &HitInteraction{Shape: shape}
}

// Active reports whether a press captured by h is in progress.
func (h *HitInteraction) Active() bool {
	return h.mouseHeld || len(h.touches) > 0
}

func (h *HitInteraction) contains(world Affine, wx, wy float64) (lx, ly float64, ok bool) {
	if h.Shape == nil {
		return 0, 0, false
	}
	lx, ly = transformPoint(invertAffine(world), wx, wy)
	return lx, ly, h.Shape.Contains(lx, ly)
}

// TouchesBegan captures if any new touch lands inside the shape.
func (h *HitInteraction) TouchesBegan(e *TouchEvent, world Affine) bool {
	captured := false
	for _, t := range e.Touches {
		lx, ly, ok := h.contains(world, t.X, t.Y)
		if !ok || h.ownsTouch(t.ID) {
			continue
		}
		h.touches = append(h.touches, t.ID)
		captured = true
		if h.OnPress != nil {
			h.OnPress(touchContext(t, lx, ly, e.Modifiers))
		}
	}
	return captured
}

// TouchesMoved captures if any moved touch is one h began.
func (h *HitInteraction) TouchesMoved(e *TouchEvent, world Affine) bool {
	captured := false
	for _, t := range e.Touches {
		if !h.ownsTouch(t.ID) {
			continue
		}
		captured = true
		if h.OnMove != nil {
			lx, ly := transformPoint(invertAffine(world), t.X, t.Y)
			h.OnMove(touchContext(t, lx, ly, e.Modifiers))
		}
	}
	return captured
}

// TouchesEnded captures if any ended touch is one h began, and stops
// tracking it.
func (h *HitInteraction) TouchesEnded(e *TouchEvent, world Affine) bool {
	captured := false
	for _, t := range e.Touches {
		if !h.releaseTouch(t.ID) {
			continue
		}
		captured = true
		if h.OnRelease != nil {
			lx, ly := transformPoint(invertAffine(world), t.X, t.Y)
			h.OnRelease(touchContext(t, lx, ly, e.Modifiers))
		}
	}
	return captured
}

// MouseDown captures if the press lands inside the shape.
func (h *HitInteraction) MouseDown(e *MouseEvent, world Affine) bool {
	lx, ly, ok := h.contains(world, e.X, e.Y)
	if !ok {
		return false
	}
	h.mouseHeld = true
	if h.OnPress != nil {
		h.OnPress(mouseContext(e, lx, ly))
	}
	return true
}

// MouseDrag captures while h holds the mouse.
func (h *HitInteraction) MouseDrag(e *MouseEvent, world Affine) bool {
	if !h.mouseHeld {
		return false
	}
	if h.OnMove != nil {
		lx, ly := transformPoint(invertAffine(world), e.X, e.Y)
		h.OnMove(mouseContext(e, lx, ly))
	}
	return true
}

// MouseUp captures if h holds the mouse, and releases it.
func (h *HitInteraction) MouseUp(e *MouseEvent, world Affine) bool {
	if !h.mouseHeld {
		return false
	}
	h.mouseHeld = false
	if h.OnRelease != nil {
		lx, ly := transformPoint(invertAffine(world), e.X, e.Y)
		h.OnRelease(mouseContext(e, lx, ly))
	}
	return true
}

// Cancel drops every tracked press. OnCancel runs only if one was active.
func (h *HitInteraction) Cancel() {
	active := h.Active()
	h.mouseHeld = false
	h.touches = h.touches[:0]
	if active && h.OnCancel != nil {
		h.OnCancel()
	}
}

func (h *HitInteraction) ownsTouch(id int) bool {
	for _, t := range h.touches {
		if t == id {
			return true
		}
	}
	return false
}

func (h *HitInteraction) releaseTouch(id int) bool {
	for i, t := range h.touches {
		if t == id {
			h.touches = append(h.touches[:i], h.touches[i+1:]...)
			return true
		}
	}
	return false
}

func touchContext(t Touch, lx, ly float64, mods KeyModifiers) PointerContext {
	return PointerContext{
		GlobalX: t.X, GlobalY: t.Y, LocalX: lx, LocalY: ly,
		DeltaX: t.X - t.PrevX, DeltaY: t.Y - t.PrevY,
		Button: MouseButtonLeft, PointerID: t.ID, Modifiers: mods,
	}
}

func mouseContext(e *MouseEvent, lx, ly float64) PointerContext {
	return PointerContext{
		GlobalX: e.X, GlobalY: e.Y, LocalX: lx, LocalY: ly,
		DeltaX: e.DeltaX, DeltaY: e.DeltaY,
		Button: e.Button, PointerID: MousePointerID, Modifiers: e.Modifiers,
	}
}
