package vgl

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

// Scene is the top-level scene-owning component. Its instance is the root
// node, so Object3Ds mounted directly under a Scene attach to Root.
type Scene struct {
	root  *Node
	sink  EventSink
	debug bool
}

// NewScene creates a new scene with a pre-created root node.
func NewScene() *Scene {
	return &Scene{root: NewNode("scene")}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// ParentComponent implements Component. A scene is always a tree root.
func (s *Scene) ParentComponent() Component {
	return nil
}

// Kind implements Component.
func (s *Scene) Kind() ComponentKind {
	return KindSceneOwner
}

// Instance implements Component and returns the root node.
func (s *Scene) Instance() any {
	if s == nil || s.root == nil {
		return nil
	}
	return s.root
}

// Update refreshes world matrices for every dirty subtree.
func (s *Scene) Update() {
	updateWorldTransform(s.root, mgl64.Ident4(), false)
}

// SetEventSink sets the optional lifecycle observer. Objects pick up the
// sink of their scene when they are created.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and
// lifecycle operations are traced at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// SetLogger replaces the logger used in debug mode.
func (s *Scene) SetLogger(logger zerolog.Logger) {
	debugLogger = logger
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
