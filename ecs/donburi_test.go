package ecs

import (
	"testing"

	vgl "github.com/islxyqwe/vue-gl"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []vgl.SceneEvent
	SceneEventType.Subscribe(world, func(w donburi.World, e vgl.SceneEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(vgl.SceneEvent{Type: vgl.EventAttached, NodeID: 42, ParentID: 7, Name: "box"})
	sink.EmitEvent(vgl.SceneEvent{Type: vgl.EventReplaced, NodeID: 43, PreviousID: 42})

	// Events are queued; process them.
	SceneEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != vgl.EventAttached || e.NodeID != 42 || e.ParentID != 7 || e.Name != "box" {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != vgl.EventReplaced || e.PreviousID != 42 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiSink_SceneLifecycle(t *testing.T) {
	world := donburi.NewWorld()
	scene := vgl.NewScene()
	scene.SetEventSink(NewDonburiSink(world))

	var types []vgl.EventType
	SceneEventType.Subscribe(world, func(w donburi.World, e vgl.SceneEvent) {
		types = append(types, e.Type)
	})

	obj := vgl.NewObject3D(scene, vgl.Props{Name: "obj"})
	obj.Create()
	obj.NotifyPositionChanged(vgl.Text("1 2 3"))
	obj.ReplaceInstance(vgl.NewNode("obj2"))
	obj.Destroy()
	events.ProcessAllEvents(world)

	want := []vgl.EventType{vgl.EventAttached, vgl.EventTransformChanged, vgl.EventReplaced, vgl.EventDetached}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink vgl.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}
