package vgl

import "github.com/go-gl/mathgl/mgl64"

// AxisOrder is the sequence in which Euler angles are applied.
type AxisOrder uint8

const (
	OrderXYZ AxisOrder = iota // default; matches the engine's default Euler order
	OrderXZY
	OrderYXZ
	OrderYZX
	OrderZXY
	OrderZYX
)

// RotationOrders lists the valid axis-order names, indexed by AxisOrder.
var RotationOrders = [...]string{"XYZ", "XZY", "YXZ", "YZX", "ZXY", "ZYX"}

// ParseAxisOrder matches s exactly (case-sensitive, no trimming) against
// RotationOrders. It returns OrderXYZ and false when nothing matches.
func ParseAxisOrder(s string) (AxisOrder, bool) {
	for i, name := range RotationOrders {
		if name == s {
			return AxisOrder(i), true
		}
	}
	return OrderXYZ, false
}

// String returns the order's name, e.g. "YXZ".
func (o AxisOrder) String() string {
	if int(o) < len(RotationOrders) {
		return RotationOrders[o]
	}
	return RotationOrders[OrderXYZ]
}

// MGL returns the mathgl rotation order for o.
func (o AxisOrder) MGL() mgl64.RotationOrder {
	switch o {
	case OrderXZY:
		return mgl64.XZY
	case OrderYXZ:
		return mgl64.YXZ
	case OrderYZX:
		return mgl64.YZX
	case OrderZXY:
		return mgl64.ZXY
	case OrderZYX:
		return mgl64.ZYX
	default:
		return mgl64.XYZ
	}
}

// Euler is a rotation in radians around X, Y and Z applied in Order.
type Euler struct {
	X, Y, Z float64
	Order   AxisOrder
}

// Quat converts the rotation to a unit quaternion. For order "ABC" the result
// is the intrinsic composition A(angle) * B(angle) * C(angle).
func (e Euler) Quat() mgl64.Quat {
	name := e.Order.String()
	// mathgl takes the angles in the order the axes are applied.
	return mgl64.AnglesToQuat(e.angle(name[0]), e.angle(name[1]), e.angle(name[2]), e.Order.MGL())
}

func (e Euler) angle(axis byte) float64 {
	switch axis {
	case 'X':
		return e.X
	case 'Y':
		return e.Y
	default:
		return e.Z
	}
}

// Vec3 returns the angles as a vector, dropping the order.
func (e Euler) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{e.X, e.Y, e.Z}
}

// ComponentKind tags whether a host component can own a scene node.
type ComponentKind uint8

const (
	KindOther      ComponentKind = iota // layout, slot or logic components with no node
	KindSceneOwner                      // components whose instance is a *Node
)

// String returns a lowercase name for the kind.
func (k ComponentKind) String() string {
	switch k {
	case KindSceneOwner:
		return "scene-owner"
	default:
		return "other"
	}
}

// EventType identifies a scene lifecycle event.
type EventType uint8

const (
	EventAttached         EventType = iota // node added under its scene parent
	EventDetached                          // node removed from its parent on destroy
	EventTransformChanged                  // position, rotation or scale re-applied
	EventReplaced                          // owned node swapped for a new instance
)

// String returns the event's name.
func (t EventType) String() string {
	switch t {
	case EventAttached:
		return "attached"
	case EventDetached:
		return "detached"
	case EventTransformChanged:
		return "transform-changed"
	case EventReplaced:
		return "replaced"
	default:
		return "unknown"
	}
}

// SceneEvent describes a completed lifecycle operation. Events are emitted
// only after the operation has finished mutating the scene graph.
type SceneEvent struct {
	Type       EventType
	NodeID     uint32
	ParentID   uint32 // 0 when the node has no parent
	PreviousID uint32 // replaced node, valid for EventReplaced
	Name       string
	Prop       string // "position", "rotation" or "scale" for EventTransformChanged
}

// EventSink is the interface for optional lifecycle observers.
// When set on a Scene, events from its objects are forwarded to it.
type EventSink interface {
	EmitEvent(event SceneEvent)
}
