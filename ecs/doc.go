// Package ecs provides ECS adapters for holddrag's gesture outcomes.
//
// The primary adapter is [NewDonburiStore], which bridges tap and drop
// outcomes into a [Donburi] world as typed events. Subscribe to
// [OutcomeEventType] in your ECS systems to receive them, or call
// [ApplyDrops] to have drops move [MealEntry] entities between meals.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	board.SetOutcomeStore(store)
//	ecs.ApplyDrops(world)
//	// each frame:
//	ecs.OutcomeEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
