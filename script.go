package vgl

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// scriptStep represents a single host lifecycle notification in a script.
type scriptStep struct {
	Action   string         `yaml:"action"`
	ID       string         `yaml:"id"`
	Parent   string         `yaml:"parent,omitempty"`
	Kind     string         `yaml:"kind,omitempty"`
	Name     string         `yaml:"name,omitempty"`
	Prop     string         `yaml:"prop,omitempty"`
	Position TransformInput `yaml:"position,omitempty"`
	Rotation TransformInput `yaml:"rotation,omitempty"`
	Scale    TransformInput `yaml:"scale,omitempty"`
	Value    TransformInput `yaml:"value,omitempty"`
}

// script is the top-level structure for a lifecycle script.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// Component kinds accepted by the mount action.
const (
	scriptKindObject      = "object3d"
	scriptKindGroup       = "group"
	scriptKindPlaceholder = "placeholder"
)

// ScriptRunner replays host lifecycle notifications (mount, set, replace,
// destroy) against a Scene. It stands in for a host framework when
// reproducing a component tree outside of one.
type ScriptRunner struct {
	steps      []scriptStep
	components map[string]Component
	order      []string
}

// LoadScript parses a YAML (or JSON) lifecycle script and returns a
// ScriptRunner ready to Run.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "parse lifecycle script")
	}
	if len(s.Steps) == 0 {
		return nil, errors.New("parse lifecycle script: no steps")
	}
	return &ScriptRunner{steps: s.Steps, components: make(map[string]Component)}, nil
}

// Run executes every step in order against scene. Components mounted without
// a parent are mounted directly under the scene. It stops at the first
// failing step.
func (r *ScriptRunner) Run(scene *Scene) error {
	for i, st := range r.steps {
		if err := r.step(scene, st); err != nil {
			return errors.Wrapf(err, "step %d (%s)", i, st.Action)
		}
	}
	return nil
}

// Lookup returns the component mounted under id.
func (r *ScriptRunner) Lookup(id string) (Component, bool) {
	c, ok := r.components[id]
	return c, ok
}

// Object returns the Object3D mounted under id, or nil.
func (r *ScriptRunner) Object(id string) *Object3D {
	o, _ := r.components[id].(*Object3D)
	return o
}

// IDs returns the mounted component ids in mount order.
func (r *ScriptRunner) IDs() []string {
	return r.order
}

func (r *ScriptRunner) step(scene *Scene, st scriptStep) error {
	switch st.Action {
	case "mount":
		return r.mount(scene, st)
	case "set":
		o, err := r.object(st.ID)
		if err != nil {
			return err
		}
		switch st.Prop {
		case "position":
			o.NotifyPositionChanged(st.Value)
		case "rotation":
			o.NotifyRotationChanged(st.Value)
		case "scale":
			o.NotifyScaleChanged(st.Value)
		case "name":
			o.NotifyNameChanged(st.Name)
		default:
			return errors.Errorf("unknown prop %q", st.Prop)
		}
	case "replace":
		o, err := r.object(st.ID)
		if err != nil {
			return err
		}
		if st.Name != "" {
			o.NotifyNameChanged(st.Name)
		}
		o.ReplaceInstance(NewNode(o.Props().Name))
	case "destroy":
		o, err := r.object(st.ID)
		if err != nil {
			return err
		}
		o.Destroy()
	case "update":
		scene.Update()
	default:
		return errors.Errorf("unknown action %q", st.Action)
	}
	return nil
}

func (r *ScriptRunner) mount(scene *Scene, st scriptStep) error {
	if st.ID == "" {
		return errors.New("mount requires an id")
	}
	if _, dup := r.components[st.ID]; dup {
		return errors.Errorf("duplicate id %q", st.ID)
	}
	var parent Component = scene
	if st.Parent != "" {
		p, ok := r.components[st.Parent]
		if !ok {
			return errors.Errorf("unknown parent %q", st.Parent)
		}
		parent = p
	}

	var c Component
	switch st.Kind {
	case "", scriptKindObject:
		o := NewObject3D(parent, Props{
			Name:     st.Name,
			Position: st.Position,
			Rotation: st.Rotation,
			Scale:    st.Scale,
		})
		o.Create()
		c = o
	case scriptKindGroup:
		c = &Element{Name: st.Name, Parent: parent, Declared: KindOther}
	case scriptKindPlaceholder:
		c = &Element{Name: st.Name, Parent: parent, Declared: KindSceneOwner}
	default:
		return errors.Errorf("unknown kind %q", st.Kind)
	}
	r.components[st.ID] = c
	r.order = append(r.order, st.ID)
	return nil
}

func (r *ScriptRunner) object(id string) (*Object3D, error) {
	c, ok := r.components[id]
	if !ok {
		return nil, errors.Errorf("unknown id %q", id)
	}
	o, ok := c.(*Object3D)
	if !ok {
		return nil, errors.Errorf("component %q is not an object3d", id)
	}
	return o, nil
}
