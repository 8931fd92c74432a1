package treent

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Touch is a single touch point in window coordinates.
type Touch struct {
	ID    int
	X, Y  float64
	PrevX float64
	PrevY float64
}

// TouchEvent carries the touches that changed in one input step. Handlers
// receive it by pointer and may annotate it; Handled is free for that use.
type TouchEvent struct {
	Touches   []Touch
	Modifiers KeyModifiers
	Handled   bool
}

// MouseEvent carries one mouse input step in window coordinates.
type MouseEvent struct {
	X, Y      float64
	DeltaX    float64
	DeltaY    float64
	Button    MouseButton
	Modifiers KeyModifiers
	Handled   bool
}
