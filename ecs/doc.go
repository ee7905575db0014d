// Package ecs provides ECS adapters for reveal's transition events.
//
// [NewDonburiStore] bridges every applied viewport crossing into a [Donburi]
// world as a typed event. Subscribe to [RevealEventType] in your ECS systems
// to receive them, or call [TrackHeadings] to keep one entity per heading
// with its latest reveal state.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
