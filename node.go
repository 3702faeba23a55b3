package vgl

import "github.com/go-gl/mathgl/mgl64"

// nodeIDCounter is a plain counter (no atomic; vgl is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a scene graph element with a local transform and an ordered list of
// children. Position is in scene units, Rotation in radians.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	Position mgl64.Vec3
	Rotation Euler
	Scale    mgl64.Vec3

	// Computed, refreshed by Scene.Update
	worldTransform mgl64.Mat4
	transformDirty bool

	disposed bool
}

// NewNode creates a node at the origin with no rotation and unit scale.
func NewNode(name string) *Node {
	return &Node{
		ID:             nextNodeID(),
		Name:           name,
		Scale:          mgl64.Vec3{1, 1, 1},
		worldTransform: mgl64.Ident4(),
		transformDirty: true,
	}
}

// --- Tree manipulation ---

// AddChild appends each child to this node's children in argument order.
// A child that already has a parent is removed from that parent first.
// Panics if a child is nil or is an ancestor of this node (cycle).
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		n.addChild(child)
	}
}

func (n *Node) addChild(child *Node) {
	if child == nil {
		panic("vgl: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("vgl: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("vgl: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("vgl: adding child would create a cycle")
	}
	size := len(n.children)
	if child.Parent == n {
		size--
	}
	if index < 0 || index > size {
		panic("vgl: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
	}
	if child.Parent != n {
		panic("vgl: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		panic("vgl: child index out of range")
	}
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.Parent = nil
	markSubtreeDirty(child)
	return child
}

// ReplaceChild puts replacement in old's slot and detaches old. If
// replacement already has a parent it is removed from it first.
// Panics if old.Parent != n or replacement would create a cycle.
func (n *Node) ReplaceChild(old, replacement *Node) {
	if replacement == nil {
		panic("vgl: cannot add nil child")
	}
	if old.Parent != n {
		panic("vgl: child's parent is not this node")
	}
	if old == replacement {
		return
	}
	if isAncestor(replacement, n) {
		panic("vgl: adding child would create a cycle")
	}
	if replacement.Parent != nil {
		replacement.Parent.removeChildByPtr(replacement)
	}
	i := n.childIndex(old)
	n.children[i] = replacement
	replacement.Parent = n
	old.Parent = nil
	markSubtreeDirty(old)
	markSubtreeDirty(replacement)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node and returns them in
// their previous order. Children are NOT disposed.
func (n *Node) RemoveChildren() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	for i, child := range n.children {
		child.Parent = nil
		markSubtreeDirty(child)
		n.children[i] = nil
	}
	n.children = n.children[:0]
	return out
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// HasChild reports whether child is a direct child of n.
func (n *Node) HasChild(child *Node) bool {
	return n.childIndex(child) >= 0
}

// Walk calls fn for n and each descendant in depth-first order, passing the
// depth relative to n. Returning false from fn skips that node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.children {
		child.walk(fn, depth+1)
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

func (n *Node) childIndex(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	i := n.childIndex(child)
	if i < 0 {
		return
	}
	copy(n.children[i:], n.children[i+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
