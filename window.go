package treent

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Window is the windowing layer as seen by a RootNode: one signal per input
// kind, each emitted synchronously once per physical input step.
type Window interface {
	TouchesBegan() *Signal[TouchEvent]
	TouchesMoved() *Signal[TouchEvent]
	TouchesEnded() *Signal[TouchEvent]
	MouseDown() *Signal[MouseEvent]
	MouseDrag() *Signal[MouseEvent]
	MouseUp() *Signal[MouseEvent]
	FocusLost() *Signal[FocusEvent]
}

// FocusEvent is emitted when the window loses input focus.
type FocusEvent struct{}

// Signals is a plain Window whose signals are emitted by the caller.
// EbitenWindow embeds it; tests and custom backends can use it directly.
type Signals struct {
	touchesBegan Signal[TouchEvent]
	touchesMoved Signal[TouchEvent]
	touchesEnded Signal[TouchEvent]
	mouseDown    Signal[MouseEvent]
	mouseDrag    Signal[MouseEvent]
	mouseUp      Signal[MouseEvent]
	focusLost    Signal[FocusEvent]
}

func (s *Signals) TouchesBegan() *Signal[TouchEvent] { return &s.touchesBegan }
func (s *Signals) TouchesMoved() *Signal[TouchEvent] { return &s.touchesMoved }
func (s *Signals) TouchesEnded() *Signal[TouchEvent] { return &s.touchesEnded }
func (s *Signals) MouseDown() *Signal[MouseEvent]    { return &s.mouseDown }
func (s *Signals) MouseDrag() *Signal[MouseEvent]    { return &s.mouseDrag }
func (s *Signals) MouseUp() *Signal[MouseEvent]      { return &s.mouseUp }
func (s *Signals) FocusLost() *Signal[FocusEvent]    { return &s.focusLost }

// --- Ebiten backend ---

// mouseSample is one frame of mouse state.
type mouseSample struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

// touchSample is one active touch in one frame.
type touchSample struct {
	id   int
	x, y float64
}

// EbitenWindow turns ebiten's polled mouse and touch state into signals.
// Call Poll once per tick from the game's Update.
type EbitenWindow struct {
	Signals

	// mouse
	pressed bool
	button  MouseButton // button captured at press time
	lastX   float64
	lastY   float64

	// touches, in the order they began
	touches  []Touch
	touchIDs []ebiten.TouchID
	touchBuf []touchSample

	unfocused   bool
	injectQueue []mouseSample
}

// NewEbitenWindow creates an ebiten-backed Window.
func NewEbitenWindow() *EbitenWindow {
	return &EbitenWindow{}
}

// Poll reads the current ebiten input state and emits the resulting signals.
func (w *EbitenWindow) Poll() {
	if !w.stepFocus(ebiten.IsFocused()) {
		return
	}

	mods := readModifiers()
	if !w.processInjected(mods) {
		w.stepMouse(readMouse(), mods)
	}

	w.touchIDs = ebiten.AppendTouchIDs(w.touchIDs[:0])
	w.touchBuf = w.touchBuf[:0]
	for _, id := range w.touchIDs {
		x, y := ebiten.TouchPosition(id)
		w.touchBuf = append(w.touchBuf, touchSample{id: int(id), x: float64(x), y: float64(y)})
	}
	w.stepTouches(w.touchBuf, mods)
}

// stepFocus tracks focus changes. On losing focus it drops all pointer state
// and emits FocusLost. Returns whether input should be processed this frame.
func (w *EbitenWindow) stepFocus(focused bool) bool {
	if focused {
		w.unfocused = false
		return true
	}
	if !w.unfocused {
		w.unfocused = true
		w.pressed = false
		w.touches = w.touches[:0]
		w.focusLost.Emit(&FocusEvent{})
	}
	return false
}

// readMouse reads the cursor and the highest-priority pressed button.
func readMouse() mouseSample {
	mx, my := ebiten.CursorPosition()
	s := mouseSample{x: float64(mx), y: float64(my)}
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		s.pressed, s.button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		s.pressed, s.button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		s.pressed, s.button = true, MouseButtonMiddle
	}
	return s
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// stepMouse runs the mouse state machine for one sample: press emits
// MouseDown, movement while held emits MouseDrag, release emits MouseUp.
func (w *EbitenWindow) stepMouse(s mouseSample, mods KeyModifiers) {
	switch {
	case s.pressed && !w.pressed:
		// Just pressed: capture button for the duration of this interaction.
		w.pressed = true
		w.button = s.button
		w.mouseDown.Emit(&MouseEvent{X: s.x, Y: s.y, Button: w.button, Modifiers: mods})
	case s.pressed && w.pressed:
		if s.x != w.lastX || s.y != w.lastY {
			w.mouseDrag.Emit(&MouseEvent{
				X: s.x, Y: s.y,
				DeltaX: s.x - w.lastX, DeltaY: s.y - w.lastY,
				Button: w.button, Modifiers: mods,
			})
		}
	case !s.pressed && w.pressed:
		w.pressed = false
		w.mouseUp.Emit(&MouseEvent{
			X: s.x, Y: s.y,
			DeltaX: s.x - w.lastX, DeltaY: s.y - w.lastY,
			Button: w.button, Modifiers: mods,
		})
	}
	w.lastX = s.x
	w.lastY = s.y
}

// stepTouches diffs the active touches against the previous frame. New IDs
// are emitted as TouchesBegan, moved ones as TouchesMoved and vanished ones
// as TouchesEnded at their last known position. Each signal fires at most
// once per step and only if it has touches.
func (w *EbitenWindow) stepTouches(active []touchSample, mods KeyModifiers) {
	var began, moved, ended []Touch

	for _, s := range active {
		i := w.touchIndex(s.id)
		if i < 0 {
			t := Touch{ID: s.id, X: s.x, Y: s.y, PrevX: s.x, PrevY: s.y}
			w.touches = append(w.touches, t)
			began = append(began, t)
			continue
		}
		prev := w.touches[i]
		if prev.X != s.x || prev.Y != s.y {
			t := Touch{ID: s.id, X: s.x, Y: s.y, PrevX: prev.X, PrevY: prev.Y}
			w.touches[i] = t
			moved = append(moved, t)
		}
	}

	kept := w.touches[:0]
	for _, t := range w.touches {
		if containsTouch(active, t.ID) {
			kept = append(kept, t)
			continue
		}
		t.PrevX, t.PrevY = t.X, t.Y
		ended = append(ended, t)
	}
	for i := len(kept); i < len(w.touches); i++ {
		w.touches[i] = Touch{}
	}
	w.touches = kept

	if len(began) > 0 {
		w.touchesBegan.Emit(&TouchEvent{Touches: began, Modifiers: mods})
	}
	if len(moved) > 0 {
		w.touchesMoved.Emit(&TouchEvent{Touches: moved, Modifiers: mods})
	}
	if len(ended) > 0 {
		w.touchesEnded.Emit(&TouchEvent{Touches: ended, Modifiers: mods})
	}
}

func (w *EbitenWindow) touchIndex(id int) int {
	for i := range w.touches {
		if w.touches[i].ID == id {
			return i
		}
	}
	return -1
}

func containsTouch(active []touchSample, id int) bool {
	for _, s := range active {
		if s.id == id {
			return true
		}
	}
	return false
}

// ActiveTouches returns the number of touches currently down.
func (w *EbitenWindow) ActiveTouches() int {
	return len(w.touches)
}

// --- Synthetic input ---

// InjectPress queues a left-button press at (x, y). Each queued event is
// consumed by one Poll, replacing real mouse input for that frame.
func (w *EbitenWindow) InjectPress(x, y float64) {
	w.injectQueue = append(w.injectQueue, mouseSample{x: x, y: y, pressed: true, button: MouseButtonLeft})
}

// InjectMove queues a move with the button held. Use it between InjectPress
// and InjectRelease to simulate a drag.
func (w *EbitenWindow) InjectMove(x, y float64) {
	w.injectQueue = append(w.injectQueue, mouseSample{x: x, y: y, pressed: true, button: MouseButtonLeft})
}

// InjectRelease queues a release at (x, y).
func (w *EbitenWindow) InjectRelease(x, y float64) {
	w.injectQueue = append(w.injectQueue, mouseSample{x: x, y: y, button: MouseButtonLeft})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (w *EbitenWindow) InjectClick(x, y float64) {
	w.InjectPress(x, y)
	w.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). Minimum frames is 2 (press + release).
func (w *EbitenWindow) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	w.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		w.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	w.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (w *EbitenWindow) Pending() int {
	return len(w.injectQueue)
}

// processInjected pops one queued event and feeds it through stepMouse.
// Returns true if an event was consumed (real mouse input should be skipped).
func (w *EbitenWindow) processInjected(mods KeyModifiers) bool {
	if len(w.injectQueue) == 0 {
		return false
	}
	evt := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]
	w.stepMouse(evt, mods)
	return true
}
