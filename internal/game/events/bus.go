package events

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

type funcHandler struct {
	id      string
	pattern string
	handle  EventHandler
}

// EventBus is a synchronous event bus. Handlers run on the publisher's
// goroutine in registration order, after the bus lock is released, so a
// handler may subscribe or publish. A panicking handler is logged and does
// not stop delivery.
type EventBus struct {
	mu          sync.RWMutex
	subscribers []Subscriber
	handlers    []funcHandler
	logger      zerolog.Logger
}

// NewEventBus creates a new event bus instance
func NewEventBus(logger zerolog.Logger) *EventBus {
	return &EventBus{logger: logger.With().Str("component", "EventBus").Logger()}
}

func (eb *EventBus) indexOf(subscriberID string) int {
	for i, s := range eb.subscribers {
		if s.ID() == subscriberID {
			return i
		}
	}
	return -1
}

// Subscribe adds a subscriber. Re-subscribing an ID replaces the previous
// one in place.
func (eb *EventBus) Subscribe(subscriber Subscriber) {
	eb.mu.Lock()
	if i := eb.indexOf(subscriber.ID()); i >= 0 {
		eb.subscribers[i] = subscriber
	} else {
		eb.subscribers = append(eb.subscribers, subscriber)
	}
	eb.mu.Unlock()

	eb.logger.Debug().Str("subscriber_id", subscriber.ID()).Msg("Subscriber added to event bus")
}

// Unsubscribe removes a subscriber from the event bus
func (eb *EventBus) Unsubscribe(subscriberID string) {
	eb.mu.Lock()
	i := eb.indexOf(subscriberID)
	if i >= 0 {
		eb.subscribers = append(eb.subscribers[:i:i], eb.subscribers[i+1:]...)
	}
	eb.mu.Unlock()

	if i >= 0 {
		eb.logger.Debug().Str("subscriber_id", subscriberID).Msg("Subscriber removed from event bus")
	}
}

// SubscribeFunc registers handler for every event matching pattern and
// returns the handler's ID.
func (eb *EventBus) SubscribeFunc(pattern string, handler EventHandler) string {
	eb.mu.Lock()
	n := 1
	for _, h := range eb.handlers {
		if h.pattern == pattern {
			n++
		}
	}
	id := fmt.Sprintf("%s_func_%d", pattern, n)
	eb.handlers = append(eb.handlers, funcHandler{id: id, pattern: pattern, handle: handler})
	eb.mu.Unlock()

	eb.logger.Debug().Str("pattern", pattern).Str("handler_id", id).Msg("Function handler added to event bus")
	return id
}

// UnsubscribeFunc removes a handler registered with SubscribeFunc
func (eb *EventBus) UnsubscribeFunc(handlerID string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	for i, h := range eb.handlers {
		if h.id == handlerID {
			eb.handlers = append(eb.handlers[:i:i], eb.handlers[i+1:]...)
			return
		}
	}
}

// Publish delivers event to interested subscribers first and then to
// matching function handlers.
func (eb *EventBus) Publish(event Event) {
	eventType := event.Type()

	eb.mu.RLock()
	subs := make([]Subscriber, 0, len(eb.subscribers))
	for _, s := range eb.subscribers {
		if s.InterestedIn(eventType) {
			subs = append(subs, s)
		}
	}
	var handlers []funcHandler
	for _, h := range eb.handlers {
		if Matches(h.pattern, eventType) {
			handlers = append(handlers, h)
		}
	}
	eb.mu.RUnlock()

	eb.logger.Debug().
		Str("event_type", eventType).
		Str("game_id", event.GameID()).
		Int("receivers", len(subs)+len(handlers)).
		Msg("Publishing event")

	for _, s := range subs {
		eb.deliver(s.ID(), event, s.HandleEvent)
	}
	for _, h := range handlers {
		eb.deliver(h.id, event, h.handle)
	}
}

func (eb *EventBus) deliver(receiver string, event Event, handle EventHandler) {
	defer func() {
		if r := recover(); r != nil {
			eb.logger.Error().
				Str("receiver", receiver).
				Str("event_type", event.Type()).
				Interface("panic", r).
				Msg("Event handler panicked")
		}
	}()
	handle(event)
}

// GetSubscriberCount returns the number of subscribers for debugging
func (eb *EventBus) GetSubscriberCount() int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.subscribers)
}

// GetFuncHandlerCount returns the number of function handlers registered
// under pattern
func (eb *EventBus) GetFuncHandlerCount(pattern string) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	n := 0
	for _, h := range eb.handlers {
		if h.pattern == pattern {
			n++
		}
	}
	return n
}
