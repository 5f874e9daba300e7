// Package ecs provides ECS adapters for rgss.
package ecs

import (
	"github.com/phanxgames/rgss"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// SpriteData is the component payload linking an entity to its sprite.
type SpriteData struct {
	Sprite *rgss.Sprite
}

// SpriteComponent attaches an rgss sprite to an entity.
var SpriteComponent = donburi.NewComponentType[SpriteData]()

// SpriteDisposed is published when UpdateSprites removes an entity whose
// sprite was disposed.
type SpriteDisposed struct {
	Entity donburi.Entity
}

// SpriteDisposedEvent is the Donburi event type for SpriteDisposed.
// Subscribe to it and call ProcessEvents to receive removals.
var SpriteDisposedEvent = events.NewEventType[SpriteDisposed]()

var spriteQuery = donburi.NewQuery(filter.Contains(SpriteComponent))

// NewSpriteEntity creates an entity carrying sp.
func NewSpriteEntity(world donburi.World, sp *rgss.Sprite) donburi.Entity {
	e := world.Create(SpriteComponent)
	SpriteComponent.Get(world.Entry(e)).Sprite = sp
	return e
}

// UpdateSprites advances every live sprite by one tick. Entities whose
// sprite is nil or disposed are removed from the world and announced through
// SpriteDisposedEvent.
func UpdateSprites(world donburi.World) {
	var dead []donburi.Entity
	spriteQuery.Each(world, func(entry *donburi.Entry) {
		sp := SpriteComponent.Get(entry).Sprite
		if sp == nil || sp.IsDisposed() {
			dead = append(dead, entry.Entity())
			return
		}
		sp.Update()
	})
	for _, e := range dead {
		world.Remove(e)
		SpriteDisposedEvent.Publish(world, SpriteDisposed{Entity: e})
	}
}
