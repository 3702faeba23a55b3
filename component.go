package vgl

// Component is an element of the host component tree. The lifecycle manager
// only needs to walk upward through it and inspect each ancestor's declared
// capability and live instance.
type Component interface {
	// ParentComponent returns the enclosing component, or nil at the root.
	ParentComponent() Component
	// Kind reports the capability the component declares.
	Kind() ComponentKind
	// Instance returns the component's current owned instance, or nil.
	// Scene owners return a *Node once they are live.
	Instance() any
}

// Element is a plain host component. Use it for components that own no scene
// node, or to model hosts whose declared kind and live instance differ.
type Element struct {
	Name     string
	Parent   Component
	Declared ComponentKind
	Inst     any
}

// NewElement creates a component of KindOther under parent.
func NewElement(name string, parent Component) *Element {
	return &Element{Name: name, Parent: parent}
}

// ParentComponent implements Component.
func (e *Element) ParentComponent() Component {
	if e == nil {
		return nil
	}
	return e.Parent
}

// Kind implements Component.
func (e *Element) Kind() ComponentKind {
	if e == nil {
		return KindOther
	}
	return e.Declared
}

// Instance implements Component.
func (e *Element) Instance() any {
	if e == nil {
		return nil
	}
	return e.Inst
}

// FindSceneParent returns the nearest ancestor of c that declares scene
// ownership and whose instance is a live *Node, or nil when the walk reaches
// the root. Ancestors that declare the capability but have no node yet, or
// have a disposed one, are skipped.
func FindSceneParent(c Component) Component {
	if c == nil {
		return nil
	}
	for p := c.ParentComponent(); p != nil; p = p.ParentComponent() {
		if p.Kind() != KindSceneOwner {
			continue
		}
		if sceneNodeOf(p) != nil {
			return p
		}
		if globalDebug {
			debugLogger.Debug().Str("kind", p.Kind().String()).
				Msg("skipping scene-owner ancestor without a live node")
		}
	}
	return nil
}

// sceneNodeOf returns c's instance when it is a usable *Node.
func sceneNodeOf(c Component) *Node {
	n, ok := c.Instance().(*Node)
	if !ok || n == nil || n.disposed {
		return nil
	}
	return n
}

// sceneOf returns the Scene at the top of c's component chain, if any.
func sceneOf(c Component) *Scene {
	for p := c; p != nil; p = p.ParentComponent() {
		if s, ok := p.(*Scene); ok && s != nil {
			return s
		}
	}
	return nil
}
