package vgl

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates the three components of one node transform
// simultaneously. Create one via the convenience constructors (TweenPosition,
// TweenRotation, TweenScale or the Object3D methods) and call Update(dt) each
// frame. The group auto-applies values and marks the node dirty. If the target
// node is disposed, the group stops immediately.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [3]*gween.Tween
	target func() *Node
	fields func(*Node) [3]*float64
	after  func(*Node)
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. The target is looked up on every call, so an
// Object3D tween follows the object across ReplaceInstance. If there is no
// live target, Done is set to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	n := g.target()
	if n == nil || n.IsDisposed() {
		g.Done = true
		return
	}

	fields := g.fields(n)
	allDone := true
	for i := range g.tweens {
		val, finished := g.tweens[i].Update(dt)
		*fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	n.MarkDirty()
	if g.after != nil {
		g.after(n)
	}
}

func newTweenGroup(from *Node, target func() *Node, fields func(*Node) [3]*float64, to mgl64.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: target, fields: fields}
	for i, f := range fields(from) {
		g.tweens[i] = gween.New(float32(*f), float32(to[i]), duration, fn)
	}
	return g
}

func fixedNode(n *Node) func() *Node {
	return func() *Node { return n }
}

func positionFields(n *Node) [3]*float64 {
	return [3]*float64{&n.Position[0], &n.Position[1], &n.Position[2]}
}

func scaleFields(n *Node) [3]*float64 {
	return [3]*float64{&n.Scale[0], &n.Scale[1], &n.Scale[2]}
}

func rotationFields(n *Node) [3]*float64 {
	return [3]*float64{&n.Rotation.X, &n.Rotation.Y, &n.Rotation.Z}
}

// TweenPosition creates a TweenGroup that animates node.Position to the
// given target over the specified duration using the easing function.
func TweenPosition(node *Node, to mgl64.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, fixedNode(node), positionFields, to, duration, fn)
}

// TweenScale creates a TweenGroup that animates node.Scale to the given
// target over the specified duration using the easing function.
func TweenScale(node *Node, to mgl64.Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, fixedNode(node), scaleFields, to, duration, fn)
}

// TweenRotation creates a TweenGroup that animates the node's Euler angles to
// the target angles. The target's axis order is applied immediately.
func TweenRotation(node *Node, to Euler, duration float32, fn ease.TweenFunc) *TweenGroup {
	node.Rotation.Order = to.Order
	return newTweenGroup(node, fixedNode(node), rotationFields, to.Vec3(), duration, fn)
}

// liveNode returns the node the object currently owns, or nil once it has
// been destroyed.
func (o *Object3D) liveNode() *Node {
	if o.destroyed {
		return nil
	}
	return o.inst
}

// TweenPosition animates the owned node towards the parsed position target.
// The position prop follows the animated value, and the tween moves on to
// the new node after a ReplaceInstance. Destroying the object stops it.
func (o *Object3D) TweenPosition(to TransformInput, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(o.inst, o.liveNode, positionFields, ParsePosition(to), duration, fn)
	g.after = func(n *Node) { o.props.Position = InputOf(n.Position) }
	return g
}

// TweenRotation animates the owned node towards the parsed rotation target
// and keeps the rotation prop in sync. The target order is applied at once.
func (o *Object3D) TweenRotation(to TransformInput, duration float32, fn ease.TweenFunc) *TweenGroup {
	target := ParseRotation(to)
	o.inst.Rotation.Order = target.Order
	o.inst.MarkDirty()
	o.props.Rotation = InputOf(o.inst.Rotation)
	g := newTweenGroup(o.inst, o.liveNode, rotationFields, target.Vec3(), duration, fn)
	g.after = func(n *Node) {
		n.Rotation.Order = target.Order
		o.props.Rotation = InputOf(n.Rotation)
	}
	return g
}

// TweenScale animates the owned node towards the parsed scale target and
// keeps the scale prop in sync.
func (o *Object3D) TweenScale(to TransformInput, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(o.inst, o.liveNode, scaleFields, ParseScale(to), duration, fn)
	g.after = func(n *Node) { o.props.Scale = InputOf(n.Scale) }
	return g
}
