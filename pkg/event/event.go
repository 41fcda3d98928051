// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-boink/pkg/vehicle"
)

// Type represents the type of event
type Type string

// Session event types
const (
	SessionStarted      Type = "session_started"
	SessionEnded        Type = "session_ended"
	VehicleStateChanged Type = "vehicle_state_changed"
	VehicleJumped       Type = "vehicle_jumped"
	VehicleBoosted      Type = "vehicle_boosted"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription is returned by Subscribe. Cancel removes the handler.
type Subscription struct {
	ID     uint64
	Type   Type
	Cancel func()
}

type subscription struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]subscription
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscription),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Type:   eventType,
		Cancel: func() { b.Unsubscribe(eventType, id) },
	}
}

// Unsubscribe removes a handler by subscription id. It reports whether
// the id was registered.
func (b *Bus) Unsubscribe(eventType Type, id uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.handlers[eventType]
	if !ok {
		return false
	}

	for i, s := range subs {
		if s.id != id {
			continue
		}
		// copy so a Publish holding the old slice is unaffected
		next := make([]subscription, 0, len(subs)-1)
		next = append(next, subs[:i]...)
		next = append(next, subs[i+1:]...)
		if len(next) == 0 {
			delete(b.handlers, eventType)
		} else {
			b.handlers[eventType] = next
		}
		return true
	}
	return false
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, s := range subs {
		s.handler(event)
	}
}

// Specific event implementations

// StateEvent reports a Ground/Air classification change.
type StateEvent struct {
	BaseEvent
	From vehicle.State
	To   vehicle.State
	Tick uint64
}

// NewStateEvent creates a new state change event
func NewStateEvent(source interface{}, from, to vehicle.State, tick uint64) *StateEvent {
	return &StateEvent{
		BaseEvent: BaseEvent{
			EventType: VehicleStateChanged,
			Source:    source,
		},
		From: from,
		To:   to,
		Tick: tick,
	}
}

// ActionEvent reports a one-shot action such as a jump or a boost.
type ActionEvent struct {
	BaseEvent
	Tick uint64
}

// NewActionEvent creates a new action event
func NewActionEvent(eventType Type, source interface{}, tick uint64) *ActionEvent {
	return &ActionEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Tick: tick,
	}
}

// SessionEvent marks the start or end of a session.
type SessionEvent struct {
	BaseEvent
	SessionID string
	Tick      uint64
}

// NewSessionEvent creates a new session event
func NewSessionEvent(eventType Type, source interface{}, sessionID string, tick uint64) *SessionEvent {
	return &SessionEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		SessionID: sessionID,
		Tick:      tick,
	}
}
