package types

// Attribute is a key/value tag attached to an event.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func NewAttribute(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Event is a typed occurrence emitted by a state transition.
type Event struct {
	Type       string      `json:"type"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

func NewEvent(ty string, attrs ...Attribute) Event {
	return Event{Type: ty, Attributes: attrs}
}

type Events []Event

// EventManager collects events emitted during the handling of one message.
type EventManager struct {
	events Events
}

func NewEventManager() *EventManager {
	return &EventManager{}
}

func (em *EventManager) Events() Events {
	return em.events
}

func (em *EventManager) EmitEvent(event Event) {
	em.events = append(em.events, event)
}

func (em *EventManager) EmitEvents(events Events) {
	em.events = append(em.events, events...)
}
