package vgl

import "github.com/go-gl/mathgl/mgl64"

// computeLocalTransform computes the local matrix from the node's transform
// properties.
//
// Composition order:
//
//	Scale -> Rotate (Euler, in Rotation.Order) -> Translate(Position)
func computeLocalTransform(n *Node) mgl64.Mat4 {
	s := mgl64.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2])
	r := n.Quaternion().Mat4()
	t := mgl64.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	return t.Mul4(r).Mul4(s)
}

// invertTransform inverts m, returning the identity matrix if m is singular
// (a zero scale axis collapses the node).
func invertTransform(m mgl64.Mat4) mgl64.Mat4 {
	det := m.Det()
	if det > -1e-12 && det < 1e-12 {
		return mgl64.Ident4()
	}
	return m.Inv()
}

// updateWorldTransform recomputes a node's worldTransform.
// parentRecomputed indicates whether the parent was recomputed this pass,
// which forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parentTransform mgl64.Mat4, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = parentTransform.Mul4(computeLocalTransform(n))
		n.transformDirty = false
	}

	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, recompute)
	}
}

// --- Transform property setters ---

// SetPosition copies p into the node's position and marks it dirty.
func (n *Node) SetPosition(p mgl64.Vec3) {
	n.Position = p
	markSubtreeDirty(n)
}

// SetRotation copies r (angles and order) into the node's rotation and marks
// it dirty.
func (n *Node) SetRotation(r Euler) {
	n.Rotation = r
	markSubtreeDirty(n)
}

// SetScale copies s into the node's scale and marks it dirty.
func (n *Node) SetScale(s mgl64.Vec3) {
	n.Scale = s
	markSubtreeDirty(n)
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next Scene.Update. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	markSubtreeDirty(n)
}

// Quaternion returns the node's local rotation as a quaternion.
func (n *Node) Quaternion() mgl64.Quat {
	return n.Rotation.Quat()
}

// LocalMatrix returns the node's local transform matrix.
func (n *Node) LocalMatrix() mgl64.Mat4 {
	return computeLocalTransform(n)
}

// WorldMatrix returns the world matrix computed by the last
// UpdateWorldMatrix or Scene.Update call.
func (n *Node) WorldMatrix() mgl64.Mat4 {
	return n.worldTransform
}

// UpdateWorldMatrix recomputes world matrices for n and its subtree,
// composing with the ancestors' current local transforms.
func (n *Node) UpdateWorldMatrix() {
	parent := mgl64.Ident4()
	var chain []*Node
	for p := n.Parent; p != nil; p = p.Parent {
		chain = append(chain, p)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		parent = parent.Mul4(computeLocalTransform(chain[i]))
	}
	updateWorldTransform(n, parent, true)
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(w mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(w, invertTransform(n.worldTransform))
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(l mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(l, n.worldTransform)
}
