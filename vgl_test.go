package vgl

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestParseAxisOrder(t *testing.T) {
	for i, name := range RotationOrders {
		got, ok := ParseAxisOrder(name)
		if !ok || got != AxisOrder(i) {
			t.Errorf("ParseAxisOrder(%q) = %v, %v", name, got, ok)
		}
		if got.String() != name {
			t.Errorf("String() = %q, want %q", got.String(), name)
		}
	}
	for _, bad := range []string{"", "xyz", " XYZ", "XYZ ", "XXX"} {
		if got, ok := ParseAxisOrder(bad); ok || got != OrderXYZ {
			t.Errorf("ParseAxisOrder(%q) = %v, %v; want XYZ, false", bad, got, ok)
		}
	}
}

func TestAxisOrderMGL(t *testing.T) {
	want := []mgl64.RotationOrder{mgl64.XYZ, mgl64.XZY, mgl64.YXZ, mgl64.YZX, mgl64.ZXY, mgl64.ZYX}
	for i, w := range want {
		if got := AxisOrder(i).MGL(); got != w {
			t.Errorf("AxisOrder(%d).MGL() = %v, want %v", i, got, w)
		}
	}
}

func TestAxisOrderOutOfRangeString(t *testing.T) {
	if got := AxisOrder(99).String(); got != "XYZ" {
		t.Errorf("String() = %q, want XYZ", got)
	}
}

func TestEnumStrings(t *testing.T) {
	if KindSceneOwner.String() != "scene-owner" || KindOther.String() != "other" {
		t.Error("unexpected ComponentKind names")
	}
	names := map[EventType]string{
		EventAttached:         "attached",
		EventDetached:         "detached",
		EventTransformChanged: "transform-changed",
		EventReplaced:         "replaced",
	}
	for typ, want := range names {
		if typ.String() != want {
			t.Errorf("%d.String() = %q, want %q", typ, typ.String(), want)
		}
	}
}
