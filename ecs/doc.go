// Package ecs provides ECS adapters for scrollstage's event stream.
//
// The primary adapter is [NewDonburiSink], which bridges stage events
// (progress, pin, unpin, hover, teardown) into a [Donburi] world as typed
// events. Subscribe to [StageEventType] in your ECS systems to receive them,
// or create a [StageState] entity with [NewStageEntity].
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	stage.SetEventSink(sink)
//	state := ecs.NewStageEntity(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
