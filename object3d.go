package vgl

// Props are the declared inputs of an Object3D.
type Props struct {
	Name     string         `yaml:"name" json:"name"`
	Position TransformInput `yaml:"position" json:"position"`
	Rotation TransformInput `yaml:"rotation" json:"rotation"`
	Scale    TransformInput `yaml:"scale" json:"scale"`
}

// Object3D is a scene-owning component. It owns exactly one Node at a time
// and keeps that node attached under the node of its nearest scene-owning
// ancestor.
//
// The host drives it with Create, Destroy, the Notify* methods and
// ReplaceInstance, in the order its own lifecycle delivers them. None of the
// methods are safe for concurrent use.
type Object3D struct {
	parent Component
	props  Props
	inst   *Node
	scene  *Scene

	created   bool
	destroyed bool
}

// NewObject3D creates an Object3D under parent with a fresh node. The node
// is not transformed or attached until Create is called.
func NewObject3D(parent Component, props Props) *Object3D {
	return &Object3D{
		parent: parent,
		props:  props,
		inst:   NewNode(props.Name),
	}
}

// ParentComponent implements Component.
func (o *Object3D) ParentComponent() Component {
	if o == nil {
		return nil
	}
	return o.parent
}

// Kind implements Component. Object3D always declares scene ownership.
func (o *Object3D) Kind() ComponentKind {
	return KindSceneOwner
}

// Instance implements Component. It returns the owned *Node, or nil once the
// object has been destroyed.
func (o *Object3D) Instance() any {
	if o == nil || o.destroyed || o.inst == nil {
		return nil
	}
	return o.inst
}

// Node returns the currently owned node. After Destroy it still returns the
// discarded node so callers can inspect it.
func (o *Object3D) Node() *Node {
	return o.inst
}

// Props returns the current declared inputs.
func (o *Object3D) Props() Props {
	return o.props
}

// Created reports whether Create has run.
func (o *Object3D) Created() bool {
	return o.created
}

// Destroyed reports whether Destroy has run.
func (o *Object3D) Destroyed() bool {
	return o.destroyed
}

// Create applies the parsed transforms to the node and attaches it under the
// nearest scene-owning ancestor. A node with no such ancestor stays a root.
// Calling Create more than once is a no-op.
func (o *Object3D) Create() {
	if o.created || o.destroyed {
		return
	}
	o.created = true
	o.scene = sceneOf(o.parent)

	inst := o.inst
	inst.Name = o.props.Name
	applyProps(inst, o.props)

	if p := FindSceneParent(o); p != nil {
		sceneNodeOf(p).AddChild(inst)
	}
	o.emit(SceneEvent{Type: EventAttached})
}

// Destroy detaches the node from its current parent. It runs at most once;
// afterwards the object no longer counts as a scene parent for anything
// below it.
func (o *Object3D) Destroy() {
	if o.destroyed {
		return
	}
	inst := o.inst
	parentID := uint32(0)
	if inst.Parent != nil {
		parentID = inst.Parent.ID
		inst.Parent.RemoveChild(inst)
	}
	o.destroyed = true
	if globalDebug {
		debugLogger.Debug().Uint32("node", inst.ID).Str("name", inst.Name).
			Uint32("parent", parentID).Msg("detached")
	}
	if o.scene != nil && o.scene.sink != nil {
		o.scene.sink.EmitEvent(SceneEvent{
			Type:     EventDetached,
			NodeID:   inst.ID,
			ParentID: parentID,
			Name:     inst.Name,
		})
	}
}

// NotifyPositionChanged stores in as the position prop and copies the parsed
// position into the live node.
func (o *Object3D) NotifyPositionChanged(in TransformInput) {
	o.props.Position = in
	if o.destroyed {
		return
	}
	o.inst.SetPosition(ParsePosition(in))
	o.emit(SceneEvent{Type: EventTransformChanged, Prop: "position"})
}

// NotifyRotationChanged stores in as the rotation prop and copies the parsed
// rotation into the live node.
func (o *Object3D) NotifyRotationChanged(in TransformInput) {
	o.props.Rotation = in
	if o.destroyed {
		return
	}
	o.inst.SetRotation(ParseRotation(in))
	o.emit(SceneEvent{Type: EventTransformChanged, Prop: "rotation"})
}

// NotifyScaleChanged stores in as the scale prop and copies the parsed scale
// into the live node.
func (o *Object3D) NotifyScaleChanged(in TransformInput) {
	o.props.Scale = in
	if o.destroyed {
		return
	}
	o.inst.SetScale(ParseScale(in))
	o.emit(SceneEvent{Type: EventTransformChanged, Prop: "scale"})
}

// NotifyNameChanged stores name and passes it through to the live node.
func (o *Object3D) NotifyNameChanged(name string) {
	o.props.Name = name
	if o.destroyed {
		return
	}
	o.inst.Name = name
}

// ReplaceInstance makes node the owned instance. The old node's children
// move onto node in order, node receives the transforms parsed from the
// current props, and node takes the old node's slot under its parent. The
// old node ends up detached and childless. Observers are notified once,
// after the swap is complete.
//
// A nil node, the current node, or a destroyed object is ignored.
func (o *Object3D) ReplaceInstance(node *Node) {
	old := o.inst
	if node == nil || node == old || o.destroyed {
		return
	}
	if isAncestor(node, old) || isAncestor(old, node) {
		panic("vgl: replacement node is related to the current instance")
	}

	node.AddChild(old.RemoveChildren()...)
	node.Name = o.props.Name
	applyProps(node, o.props)
	if parent := old.Parent; parent != nil {
		parent.ReplaceChild(old, node)
	} else {
		node.RemoveFromParent()
	}
	o.inst = node

	if globalDebug {
		debugLogger.Debug().Uint32("node", node.ID).Uint32("previous", old.ID).
			Int("children", node.NumChildren()).Msg("replaced")
	}
	o.emit(SceneEvent{Type: EventReplaced, PreviousID: old.ID})
}

// applyProps copies the parsed position, rotation and scale into n.
func applyProps(n *Node, p Props) {
	n.SetPosition(ParsePosition(p.Position))
	n.SetRotation(ParseRotation(p.Rotation))
	n.SetScale(ParseScale(p.Scale))
}

// emit fills in the node fields of e and forwards it to the scene's sink.
func (o *Object3D) emit(e SceneEvent) {
	if globalDebug && e.Type == EventAttached {
		debugLogger.Debug().Uint32("node", o.inst.ID).Str("name", o.inst.Name).
			Bool("root", o.inst.Parent == nil).Msg("attached")
	}
	if o.scene == nil || o.scene.sink == nil {
		return
	}
	e.NodeID = o.inst.ID
	e.Name = o.inst.Name
	if o.inst.Parent != nil {
		e.ParentID = o.inst.Parent.ID
	}
	o.scene.sink.EmitEvent(e)
}
