package vgl

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const chainScript = `
steps:
  - {action: mount, id: a, name: A, position: "1 0 0"}
  - {action: mount, id: b, parent: a, kind: group, name: B}
  - {action: mount, id: c, parent: b, name: C, rotation: [0, 1, 0, YXZ], scale: [2]}
  - {action: update}
`

func TestLoadScriptEmpty(t *testing.T) {
	if _, err := LoadScript([]byte("steps: []")); err == nil {
		t.Error("expected error for empty script")
	}
}

func TestLoadScriptMalformed(t *testing.T) {
	if _, err := LoadScript([]byte("steps: [")); err == nil {
		t.Error("expected error for malformed script")
	}
}

func TestScriptBuildsChain(t *testing.T) {
	r, err := LoadScript([]byte(chainScript))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	scene := NewScene()
	if err := r.Run(scene); err != nil {
		t.Fatalf("Run: %v", err)
	}

	a, c := r.Object("a"), r.Object("c")
	if a == nil || c == nil {
		t.Fatal("objects a and c should be mounted")
	}
	if a.Node().Parent != scene.Root() {
		t.Error("A should hang under the scene root")
	}
	if c.Node().Parent != a.Node() {
		t.Error("C should skip group B and hang under A")
	}
	assertEuler(t, "C rotation", c.Node().Rotation, Euler{0, 1, 0, OrderYXZ})
	assertVec(t, "C scale", c.Node().Scale, mgl64.Vec3{2, 2, 2})
	assertVec(t, "C world", c.Node().LocalToWorld(mgl64.Vec3{}), mgl64.Vec3{1, 0, 0})

	if b, ok := r.Lookup("b"); !ok || b.Kind() != KindOther {
		t.Error("b should be a group element")
	}
	if ids := r.IDs(); len(ids) != 3 || ids[0] != "a" || ids[2] != "c" {
		t.Errorf("IDs = %v", ids)
	}
}

func TestScriptSetReplaceDestroy(t *testing.T) {
	src := chainScript + `
  - {action: set, id: c, prop: position, value: {x: 1, y: 2, z: 3}}
  - {action: set, id: c, prop: name, name: renamed}
  - {action: replace, id: a, name: A2}
  - {action: destroy, id: c}
`
	r, err := LoadScript([]byte(src))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	scene := NewScene()
	if err := r.Run(scene); err != nil {
		t.Fatalf("Run: %v", err)
	}

	a, c := r.Object("a"), r.Object("c")
	if a.Node().Name != "A2" || scene.Root().ChildAt(0) != a.Node() {
		t.Error("A's replacement should sit under the scene root")
	}
	if a.Node().NumChildren() != 0 {
		t.Error("C should be detached after destroy")
	}
	if c.Node().Name != "renamed" {
		t.Errorf("C name = %q, want renamed", c.Node().Name)
	}
	assertVec(t, "C position", c.Node().Position, mgl64.Vec3{1, 2, 3})
}

func TestScriptPlaceholderSkipped(t *testing.T) {
	src := `
steps:
  - {action: mount, id: p, kind: placeholder}
  - {action: mount, id: o, parent: p}
`
	r, err := LoadScript([]byte(src))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	scene := NewScene()
	if err := r.Run(scene); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.Object("o").Node().Parent != scene.Root() {
		t.Error("placeholder without a node should be skipped")
	}
}

func TestScriptJSON(t *testing.T) {
	src := `{"steps": [{"action": "mount", "id": "a", "position": [1, 2, 3]}]}`
	r, err := LoadScript([]byte(src))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if err := r.Run(NewScene()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	assertVec(t, "position", r.Object("a").Node().Position, mgl64.Vec3{1, 2, 3})
}

func TestScriptErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"unknown action", "steps: [{action: explode}]", `unknown action "explode"`},
		{"unknown parent", "steps: [{action: mount, id: a, parent: nope}]", `unknown parent "nope"`},
		{"duplicate", "steps: [{action: mount, id: a}, {action: mount, id: a}]", `duplicate id "a"`},
		{"missing id", "steps: [{action: mount}]", "mount requires an id"},
		{"unknown kind", "steps: [{action: mount, id: a, kind: light}]", `unknown kind "light"`},
		{"unknown target", "steps: [{action: destroy, id: ghost}]", `unknown id "ghost"`},
		{"not an object", "steps: [{action: mount, id: g, kind: group}, {action: destroy, id: g}]", "not an object3d"},
		{"unknown prop", "steps: [{action: mount, id: a}, {action: set, id: a, prop: color}]", `unknown prop "color"`},
	}
	for _, c := range cases {
		r, err := LoadScript([]byte(c.src))
		if err != nil {
			t.Fatalf("%s: LoadScript: %v", c.name, err)
		}
		err = r.Run(NewScene())
		if err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.want) || !strings.Contains(err.Error(), "step ") {
			t.Errorf("%s: error = %q, want it to mention %q", c.name, err, c.want)
		}
	}
}
