package treent

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the registry, the root node and
// the window the root listens to. It plays the external scheduler: each
// Update refreshes world transforms, then delivers input.
type Scene struct {
	registry *Registry
	root     *RootNode
	window   *EbitenWindow
	runner   *TestRunner

	// ClearColor fills the screen before OnDraw when its alpha is non-zero.
	ClearColor Color

	// OnUpdate runs at the start of every Update, before transforms are
	// propagated (nil by default).
	OnUpdate func()

	// OnDraw renders the scene; treent itself draws nothing (nil by default).
	OnDraw func(screen *ebiten.Image)
}

// NewScene creates a scene with a fresh registry and a root connected to an
// ebiten window.
func NewScene() *Scene {
	return NewSceneWithRegistry(NewRegistry())
}

// NewSceneWithRegistry creates a scene whose nodes live in reg.
func NewSceneWithRegistry(reg *Registry) *Scene {
	s := &Scene{
		registry: reg,
		root:     NewRootNode(reg),
		window:   NewEbitenWindow(),
	}
	s.root.Connect(s.window)
	return s
}

// Root returns the scene's root node.
func (s *Scene) Root() *RootNode {
	return s.root
}

// Registry returns the registry the scene's nodes live in.
func (s *Scene) Registry() *Registry {
	return s.registry
}

// Window returns the ebiten window feeding the root.
func (s *Scene) Window() *EbitenWindow {
	return s.window
}

// NewNode creates a node in the scene's registry. The node is not attached.
func (s *Scene) NewNode(name string) *Node {
	return NewNode(s.registry, name)
}

// Update runs one tick: OnUpdate, queued registry events, transform
// propagation from Identity, the test runner if any, then input polling.
func (s *Scene) Update() {
	if s.OnUpdate != nil {
		s.OnUpdate()
	}
	s.registry.ProcessEvents()

	// Refresh world transforms first so hit testing sees this frame's positions.
	s.root.UpdateTree(Identity)

	if s.runner != nil {
		s.runner.step(s.window)
	}
	s.window.Poll()
}

// Draw clears the screen to ClearColor and calls OnDraw.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	if s.OnDraw != nil {
		s.OnDraw(screen)
	}
}

// Dispose disconnects the root from the window and destroys it. Children of
// the root are detached, not destroyed.
func (s *Scene) Dispose() {
	s.root.Destroy()
}

// SetDebugMode enables or disables debug mode. When enabled, ignored tree
// requests, deep trees, wide nodes and uncaptured input are reported on
// stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// toRGBA converts a Color to color.RGBA (premultiplied).
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
