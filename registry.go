package treent

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// TransformComponent is the donburi component type holding a node's Transform.
var TransformComponent = donburi.NewComponentType[Transform]()

// InteractionComponent is the donburi component type holding a node's
// optional Interaction capability.
var InteractionComponent = donburi.NewComponentType[InteractionData]()

// InteractionData wraps an Interaction so it can be stored as a component.
type InteractionData struct {
	Handler Interaction
}

// ChildAdded is published on ChildAddedEvent whenever a node gains a child.
type ChildAdded struct {
	ParentID     uint32
	ChildID      uint32
	ParentEntity donburi.Entity
	ChildEntity  donburi.Entity
	Index        int
}

// ChildAddedEvent is the donburi event type for child insertions. A registry
// publishes to it only while it has SubscribeChildAdded connections; queued
// events are delivered by Registry.ProcessEvents.
var ChildAddedEvent = events.NewEventType[ChildAdded]()

// nodeQuery matches every entity created for a node.
var nodeQuery = donburi.NewQuery(filter.Contains(TransformComponent))

// Registry is the component store nodes bind their entities into.
type Registry struct {
	world donburi.World

	childAdded Signal[ChildAdded]
	forwarding bool
}

// NewRegistry creates a registry backed by a fresh donburi world.
func NewRegistry() *Registry {
	return &Registry{world: donburi.NewWorld()}
}

// NewRegistryFromWorld creates a registry over an existing donburi world, so
// game systems and scene nodes can share one store.
func NewRegistryFromWorld(world donburi.World) *Registry {
	return &Registry{world: world}
}

// World returns the underlying donburi world.
func (r *Registry) World() donburi.World {
	return r.world
}

// Len returns the number of live node entities in the registry. Entities the
// world holds for other purposes (event storage, game systems) are not counted.
func (r *Registry) Len() int {
	return nodeQuery.Count(r.world)
}

// Valid reports whether e is a live entity.
func (r *Registry) Valid(e donburi.Entity) bool {
	return r.world.Valid(e)
}

// SubscribeChildAdded calls fn for every child insertion published after
// this call, during the next ProcessEvents. Insertions are only queued while
// at least one connection is open. An event may name an entity destroyed
// since it was queued; check Valid before touching it.
func (r *Registry) SubscribeChildAdded(fn func(e *ChildAdded)) *Connection {
	if !r.forwarding {
		r.forwarding = true
		ChildAddedEvent.Subscribe(r.world, func(_ donburi.World, e ChildAdded) {
			r.childAdded.Emit(&e)
		})
	}
	return r.childAdded.Connect(fn)
}

// ProcessEvents delivers queued ChildAddedEvent events to subscribers.
// Scene.Update calls it once per tick.
func (r *Registry) ProcessEvents() {
	if !r.forwarding {
		return
	}
	ChildAddedEvent.ProcessEvents(r.world)
}

// create makes a new entity with an identity Transform attached.
func (r *Registry) create() donburi.Entity {
	e := r.world.Create(TransformComponent)
	TransformComponent.SetValue(r.world.Entry(e), newTransform())
	return e
}

// destroy removes e and every component attached to it.
func (r *Registry) destroy(e donburi.Entity) {
	if r.world.Valid(e) {
		r.world.Remove(e)
	}
}

// transform returns e's Transform, or nil if e is not live.
func (r *Registry) transform(e donburi.Entity) *Transform {
	if !r.world.Valid(e) {
		return nil
	}
	return TransformComponent.Get(r.world.Entry(e))
}

// interaction returns e's Interaction, or nil if none is attached.
func (r *Registry) interaction(e donburi.Entity) Interaction {
	if !r.world.Valid(e) {
		return nil
	}
	entry := r.world.Entry(e)
	if !entry.HasComponent(InteractionComponent) {
		return nil
	}
	return InteractionComponent.Get(entry).Handler
}

// setInteraction attaches, replaces or (with nil) detaches e's Interaction.
func (r *Registry) setInteraction(e donburi.Entity, in Interaction) {
	if !r.world.Valid(e) {
		return
	}
	entry := r.world.Entry(e)
	has := entry.HasComponent(InteractionComponent)
	if in == nil {
		if has {
			entry.RemoveComponent(InteractionComponent)
		}
		return
	}
	if !has {
		entry.AddComponent(InteractionComponent)
	}
	InteractionComponent.SetValue(entry, InteractionData{Handler: in})
}

func (r *Registry) publishChildAdded(parent, child *Node, index int) {
	if r.childAdded.Len() == 0 {
		return
	}
	ChildAddedEvent.Publish(r.world, ChildAdded{
		ParentID:     parent.ID,
		ChildID:      child.ID,
		ParentEntity: parent.entity,
		ChildEntity:  child.entity,
		Index:        index,
	})
}
