package treent

import "github.com/yohamta/donburi"

// nodeIDCounter is a plain counter (tree operations are single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the scene graph element. It owns its children and an entity in a
// Registry; the entity carries the node's Transform and, optionally, its
// Interaction capability.
//
// The parent link is a plain back-reference. It never keeps the parent alive
// and is cleared whenever the relation ends.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	parent   *Node
	children []*Node

	// Registry binding (exclusively owned)
	reg    *Registry
	entity donburi.Entity

	// Metadata
	UserData any

	// OnChildAdded is called after a child is inserted (nil by default).
	OnChildAdded func(child *Node)

	destroyed bool
}

// NewNode creates a standalone node with an identity local transform and a
// fresh entity in reg.
func NewNode(reg *Registry, name string) *Node {
	return &Node{
		ID:     nextNodeID(),
		Name:   name,
		reg:    reg,
		entity: reg.create(),
	}
}

// Entity returns the node's entity handle.
func (n *Node) Entity() donburi.Entity {
	return n.entity
}

// Registry returns the registry the node's entity lives in.
func (n *Node) Registry() *Registry {
	return n.reg
}

// Transform returns the node's Transform component, or nil once the node has
// been destroyed. The pointer is only valid until the next structural change
// to the entity (attaching or detaching an Interaction); fetch it again
// instead of holding on to it.
func (n *Node) Transform() *Transform {
	if n.destroyed {
		return nil
	}
	return n.reg.transform(n.entity)
}

// Interaction returns the node's Interaction capability, or nil if it has none.
func (n *Node) Interaction() Interaction {
	if n.destroyed {
		return nil
	}
	return n.reg.interaction(n.entity)
}

// SetInteraction attaches in to the node's entity, replacing any previous
// capability. Passing nil makes the node transparent to input.
func (n *Node) SetInteraction(in Interaction) {
	if n.destroyed {
		debugIgnored(n, "SetInteraction", "node is destroyed")
		return
	}
	n.reg.setInteraction(n.entity, in)
}

// --- Tree queries ---

// Parent returns the node's parent, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at index, or nil if index is out of range.
func (n *Node) ChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	return n.children[index]
}

// ChildIndex returns the position of child, or -1.
func (n *Node) ChildIndex(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// FindChild returns the first direct child named name, or nil.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the visited node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// --- Tree manipulation ---

// AppendChild adds child at the end of the child list.
func (n *Node) AppendChild(child *Node) {
	n.InsertChildAt(child, len(n.children))
}

// InsertChildAt makes child a child of n at index, clamped to
// [0, NumChildren()]. A child with another parent is detached from it first.
// If child is already in n's child list it is moved to index instead; a child
// whose parent was only recorded with SetParent is inserted.
// Nil or destroyed nodes and insertions that would create a cycle are ignored.
func (n *Node) InsertChildAt(child *Node, index int) {
	switch {
	case child == nil:
		debugIgnored(n, "InsertChildAt", "nil child")
		return
	case n.destroyed || child.destroyed:
		debugIgnored(n, "InsertChildAt", "node is destroyed")
		return
	case isAncestor(child, n):
		debugIgnored(n, "InsertChildAt", "child would become its own ancestor")
		return
	}
	if n.ChildIndex(child) >= 0 {
		n.SetChildIndex(child, index)
		return
	}

	child.SetParent(n)
	index = clampIndex(index, len(n.children))
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child

	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
	n.childAdded(child, index)
}

// childAdded notifies observers of a new child.
func (n *Node) childAdded(child *Node, index int) {
	if n.OnChildAdded != nil {
		n.OnChildAdded(child)
	}
	n.reg.publishChildAdded(n, child, index)
}

// SetChildIndex moves child to index among its siblings, clamped to the
// valid range. The relative order of the other children is preserved.
// No-op if child is not a child of n.
func (n *Node) SetChildIndex(child *Node, index int) {
	oldIndex := n.ChildIndex(child)
	if oldIndex < 0 {
		debugIgnored(n, "SetChildIndex", "not a child")
		return
	}
	index = clampIndex(index, len(n.children)-1)
	if oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(n.children[oldIndex:], n.children[oldIndex+1:index+1])
	} else {
		copy(n.children[index+1:], n.children[index:oldIndex])
	}
	n.children[index] = child
}

// RemoveChild detaches child from n and clears its parent.
// No-op if child is not a child of n.
func (n *Node) RemoveChild(child *Node) {
	if child == nil {
		return
	}
	n.removeChildAt(n.ChildIndex(child))
}

// RemoveChildByID detaches the child whose ID is id.
// No-op if no child has that ID.
func (n *Node) RemoveChildByID(id uint32) {
	for i, c := range n.children {
		if c.ID == id {
			n.removeChildAt(i)
			return
		}
	}
}

// RemoveChildAt removes and returns the child at index, or returns nil if
// index is out of range.
func (n *Node) RemoveChildAt(index int) *Node {
	return n.removeChildAt(index)
}

// RemoveFromParent detaches n from its parent. A parent recorded with
// SetParent but never completed by an insertion is cleared as well.
// No-op if n has no parent.
func (n *Node) RemoveFromParent() {
	p := n.parent
	if p == nil {
		return
	}
	if i := p.ChildIndex(n); i >= 0 {
		p.removeChildAt(i)
		return
	}
	n.parent = nil
}

// ClearChildren detaches all children from n.
// Children are NOT destroyed.
func (n *Node) ClearChildren() {
	for i, child := range n.children {
		child.parent = nil
		n.children[i] = nil
	}
	n.children = n.children[:0]
}

// SetParent records p as n's parent, first detaching n from a different
// current parent. It does not insert n into p's children; use
// p.AppendChild or p.InsertChildAt for a full attachment. A p that is n or
// one of its descendants is ignored, as is any call involving a destroyed node.
func (n *Node) SetParent(p *Node) {
	if n.parent == p {
		return
	}
	if n.destroyed || (p != nil && p.destroyed) {
		debugIgnored(n, "SetParent", "node is destroyed")
		return
	}
	if p != nil && isAncestor(n, p) {
		debugIgnored(n, "SetParent", "node would become its own ancestor")
		return
	}
	n.RemoveFromParent()
	n.parent = p
}

// --- Destruction ---

// Destroy detaches n's children (they stay alive with no parent), removes n
// from its parent, and releases its entity together with the Transform and
// Interaction components attached to it. Destroying twice is a no-op.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}
	n.ClearChildren()
	n.RemoveFromParent()
	n.reg.destroy(n.entity)
	n.destroyed = true
	n.OnChildAdded = nil
	n.UserData = nil
}

// IsDestroyed reports whether Destroy has been called.
func (n *Node) IsDestroyed() bool {
	return n.destroyed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildAt removes the child at i and clears its parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		debugIgnored(n, "RemoveChild", "not a child")
		return nil
	}
	child := n.children[i]
	copy(n.children[i:], n.children[i+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.parent = nil
	return child
}

func clampIndex(i, hi int) int {
	if i < 0 {
		return 0
	}
	if i > hi {
		return hi
	}
	return i
}
