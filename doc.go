// Package vgl binds a host component tree to a 3D scene graph.
//
// Every scene-owning component ([Object3D]) owns one [Node] with a position,
// rotation and scale, and attaches that node under the node of its nearest
// scene-owning ancestor. Components in between that own no node (layout,
// slots, logic) are skipped, so the scene graph mirrors the component tree
// with the non-scene levels collapsed.
//
// # Quick start
//
// A [Scene] is the top of the tree. Mount objects under it, or under any
// other [Component], and drive them from the host's lifecycle:
//
//	scene := vgl.NewScene()
//	box := vgl.NewObject3D(scene, vgl.Props{
//		Name:     "box",
//		Position: vgl.Text("0 1 0"),
//		Rotation: vgl.Seq(0, math.Pi/4, 0, "YXZ"),
//		Scale:    vgl.Seq(2),
//	})
//	box.Create()
//
//	// later, when the host reports a prop change
//	box.NotifyPositionChanged(vgl.Rec(1, 2, 3))
//
//	// and when the component goes away
//	box.Destroy()
//
// # Transform inputs
//
// Props arrive as a [TransformInput]: a sequence ([Seq]), a record with x, y,
// z and order fields ([Rec], [RecOrder]) or whitespace-delimited text
// ([Text]). [ParsePosition], [ParseRotation] and [ParseScale] never fail.
// Unparsable position and rotation values become NaN; unparsable or zero
// scale values become 1. Rotation orders are matched exactly against
// [RotationOrders] and default to XYZ.
//
// TransformInput decodes from YAML and JSON, so props can be read straight
// from configuration or lifecycle scripts ([LoadScript]).
//
// # Instance replacement
//
// When the host swaps the node an object owns, [Object3D.ReplaceInstance]
// moves the old node's children to the new one, re-applies the props, and
// puts the new node in the old one's slot under the same parent.
//
// # Observers
//
// Lifecycle events can be forwarded to an [EventSink] set on the scene; the
// vgl/ecs package publishes them into a [Donburi] world. Transform tweens
// (via [gween]) are available through [TweenPosition] and friends.
//
// [Donburi]: https://github.com/yohamta/donburi
// [gween]: https://github.com/tanema/gween
package vgl
