// Package ecs provides ECS adapters for vgl's scene lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges vgl lifecycle
// events (attach, detach, transform change, instance replacement) into a
// [Donburi] world as typed events. Subscribe to [SceneEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
