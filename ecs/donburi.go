package ecs

import (
	"github.com/phanxgames/reveal"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// RevealEventType is the Donburi event type for reveal transitions.
var RevealEventType = events.NewEventType[reveal.RevealEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Transitions are published to RevealEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) reveal.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event reveal.RevealEvent) {
	RevealEventType.Publish(s.world, event)
}

// HeadingData mirrors one heading's reveal state inside the world.
type HeadingData struct {
	Name        string
	NodeID      uint32
	State       reveal.State
	HasAnimated bool
	// Entries counts forward and backward enters seen so far.
	Entries int
}

// Heading is the component TrackHeadings maintains.
var Heading = donburi.NewComponentType[HeadingData]()

// TrackHeadings subscribes to RevealEventType and keeps one Heading entity
// per reveal node, created on its first event. Entities update when events
// are processed.
func TrackHeadings(world donburi.World) {
	byNode := make(map[uint32]donburi.Entity)
	RevealEventType.Subscribe(world, func(w donburi.World, e reveal.RevealEvent) {
		ent, ok := byNode[e.NodeID]
		if !ok || !w.Valid(ent) {
			ent = w.Create(Heading)
			byNode[e.NodeID] = ent
		}
		entry := w.Entry(ent)
		h := Heading.Get(entry)
		h.Name = e.Heading
		h.NodeID = e.NodeID
		h.State = e.State
		h.HasAnimated = e.HasAnimated
		if e.Edge == reveal.Enter {
			h.Entries++
		}
	})
}
