// Package ecs provides ECS adapters for scrollstage.
package ecs

import (
	"github.com/phanxgames/scrollstage"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StageEventType is the Donburi event type for scrollstage events.
// Subscribe to this in your ECS systems to receive progress, pin, hover and
// teardown events.
var StageEventType = events.NewEventType[scrollstage.Event]()

// StageState mirrors the latest stage events onto an entity.
type StageState struct {
	Progress float64
	Pinned   bool
	Hovered  scrollstage.Handle
	Params   scrollstage.FilterParams
	Disposed bool
}

// StageStateComponent holds a StageState.
var StageStateComponent = donburi.NewComponentType[StageState]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Stage events are published to StageEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) scrollstage.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event scrollstage.Event) {
	StageEventType.Publish(s.world, event)
}

// NewStageEntity creates an entity carrying a StageState and subscribes a
// handler that keeps it current as StageEventType events are processed.
func NewStageEntity(world donburi.World) donburi.Entity {
	entity := world.Create(StageStateComponent)
	StageEventType.Subscribe(world, func(w donburi.World, e scrollstage.Event) {
		if !w.Valid(entity) {
			return
		}
		applyEvent(StageStateComponent.Get(w.Entry(entity)), e)
	})
	return entity
}

func applyEvent(st *StageState, e scrollstage.Event) {
	switch e.Type {
	case scrollstage.EventProgress:
		st.Progress = e.Progress
	case scrollstage.EventPin:
		st.Pinned = true
	case scrollstage.EventUnpin:
		st.Pinned = false
	case scrollstage.EventHoverEnter:
		st.Hovered = e.Target
		st.Params = e.Params
	case scrollstage.EventHoverLeave:
		st.Hovered = scrollstage.NoHandle
		st.Params = e.Params
	case scrollstage.EventDisposed:
		st.Disposed = true
		st.Pinned = false
		st.Hovered = scrollstage.NoHandle
		st.Params = e.Params
	}
}
