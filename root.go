package treent

// RootNode is the parentless top of a tree and its only link to a Window.
// It forwards each input signal unchanged to the matching Deep* operation.
type RootNode struct {
	*Node
	conns Connections
}

// NewRootNode creates a root node with a fresh entity in reg.
func NewRootNode(reg *Registry) *RootNode {
	return &RootNode{Node: NewNode(reg, "root")}
}

// Connect subscribes the root to w's input signals. Any previous
// subscriptions are released first. Focus loss cancels every interaction in
// the tree.
func (r *RootNode) Connect(w Window) {
	r.Disconnect()
	r.conns.Store(w.TouchesBegan().Connect(func(e *TouchEvent) { debugLogDispatch("touches began", r.DeepTouchesBegan(e)) }))
	r.conns.Store(w.TouchesMoved().Connect(func(e *TouchEvent) { debugLogDispatch("touches moved", r.DeepTouchesMoved(e)) }))
	r.conns.Store(w.TouchesEnded().Connect(func(e *TouchEvent) { debugLogDispatch("touches ended", r.DeepTouchesEnded(e)) }))
	r.conns.Store(w.MouseDown().Connect(func(e *MouseEvent) { debugLogDispatch("mouse down", r.DeepMouseDown(e)) }))
	r.conns.Store(w.MouseDrag().Connect(func(e *MouseEvent) { debugLogDispatch("mouse drag", r.DeepMouseDrag(e)) }))
	r.conns.Store(w.MouseUp().Connect(func(e *MouseEvent) { debugLogDispatch("mouse up", r.DeepMouseUp(e)) }))
	r.conns.Store(w.FocusLost().Connect(func(*FocusEvent) { r.DeepCancelInteractions() }))
}

// Disconnect releases all window subscriptions.
func (r *RootNode) Disconnect() {
	r.conns.DisconnectAll()
}

// Connected reports whether the root is subscribed to a window.
func (r *RootNode) Connected() bool {
	return r.conns.Len() > 0
}

// Destroy releases the window subscriptions, then destroys the node.
func (r *RootNode) Destroy() {
	r.Disconnect()
	r.Node.Destroy()
}
