// Package ecs provides ECS adapters for rgss sprites.
//
// [SpriteComponent] links a [Donburi] entity to an rgss sprite, and
// [UpdateSprites] is a system that ticks every sprite once per update and
// drops entities whose sprite has been disposed, publishing
// [SpriteDisposedEvent] for each.
//
// Usage:
//
//	world := donburi.NewWorld()
//	ecs.NewSpriteEntity(world, rt.NewSprite(nil))
//	rt.SetUpdateFunc(func() error {
//		ecs.UpdateSprites(world)
//		ecs.SpriteDisposedEvent.ProcessEvents(world)
//		return nil
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
