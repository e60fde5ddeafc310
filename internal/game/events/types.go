package events

import (
	"strings"
	"time"
)

// Event is something that happened in a game session. Types are dotted
// names such as "unit.killed"; the part before the dot is the category.
type Event interface {
	Type() string
	Timestamp() time.Time
	GameID() string
}

// BaseEvent carries the fields every event shares
type BaseEvent struct {
	EventType string    `json:"type"`
	Time      time.Time `json:"timestamp"`
	Game      string    `json:"game_id"`
}

func newBase(eventType, gameID string) BaseEvent {
	return BaseEvent{EventType: eventType, Time: time.Now(), Game: gameID}
}

func (e BaseEvent) Type() string         { return e.EventType }
func (e BaseEvent) Timestamp() time.Time { return e.Time }
func (e BaseEvent) GameID() string       { return e.Game }

// Category returns the part of eventType before the first dot
func Category(eventType string) string {
	category, _, _ := strings.Cut(eventType, ".")
	return category
}

// Wildcard matches every event type
const Wildcard = "*"

// Matches reports whether pattern selects eventType. A pattern is an exact
// type, a category wildcard such as "unit.*", or Wildcard.
func Matches(pattern, eventType string) bool {
	switch {
	case pattern == Wildcard:
		return true
	case strings.HasSuffix(pattern, ".*"):
		return Category(eventType) == strings.TrimSuffix(pattern, ".*")
	default:
		return pattern == eventType
	}
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// Subscriber receives the events it declares interest in
type Subscriber interface {
	ID() string
	HandleEvent(Event)
	InterestedIn(eventType string) bool
}

// Publisher is the narrow side of the bus handed to producers
type Publisher interface {
	Publish(Event)
}

// Bus is the main event bus interface
type Bus interface {
	Publisher
	Subscribe(Subscriber)
	Unsubscribe(subscriberID string)
	SubscribeFunc(pattern string, handler EventHandler) string
}
