// Package ecs bridges figbridge builds into a [Donburi] world.
//
// [NewDonburiSink] publishes build diagnostics as typed events on
// [DiagnosticEventType]. [Mirror] creates one entity per built node carrying
// its source bounding box and frame, so ECS systems can query the imported
// layout without walking the node tree.
//
// Usage:
//
//	world := donburi.NewWorld()
//	b := figbridge.NewBuilder(scene, table, cfg, figbridge.WithSink(ecs.NewDonburiSink(world)))
//	res, err := b.Build(nodes, "Document")
//	ecs.Mirror(world, scene.Root(), cfg.PositionScale)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
