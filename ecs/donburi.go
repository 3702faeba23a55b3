package ecs

import (
	vgl "github.com/islxyqwe/vue-gl"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventType is the Donburi event type for vgl lifecycle events.
// Subscribe to this in your ECS systems to receive attach, detach,
// transform and replacement events.
var SceneEventType = events.NewEventType[vgl.SceneEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Lifecycle events are published to SceneEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) vgl.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event vgl.SceneEvent) {
	SceneEventType.Publish(s.world, event)
}
