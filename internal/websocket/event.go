package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents what happened to an entity
type EventType string

const (
	EventTypeCreated        EventType = "created"
	EventTypeUpdated        EventType = "updated"
	EventTypeDeleted        EventType = "deleted"
	EventTypeToggled        EventType = "toggled"
	EventTypeDefaultChanged EventType = "default_changed"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeExpense          EntityType = "expense"
	EntityTypeIncome           EntityType = "income"
	EntityTypeRecurringExpense EntityType = "recurring_expense"
	EntityTypePaymentMethod    EntityType = "payment_method"
	EntityTypeInvestment       EntityType = "investment"
	EntityTypeSession          EntityType = "session"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "expense.created"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "expense"
	Payload   interface{} `json:"payload"`   // Full entity data, or {id} for deletions
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Created creates an <entity>.created event
func Created(entity EntityType, payload interface{}) Event {
	return NewEvent(EventTypeCreated, entity, payload)
}

// Updated creates an <entity>.updated event
func Updated(entity EntityType, payload interface{}) Event {
	return NewEvent(EventTypeUpdated, entity, payload)
}

// Deleted creates an <entity>.deleted event carrying only the id
func Deleted(entity EntityType, id string) Event {
	return NewEvent(EventTypeDeleted, entity, map[string]string{"id": id})
}

// RecurringExpenseToggled creates a recurring_expense.toggled event
func RecurringExpenseToggled(payload interface{}) Event {
	return NewEvent(EventTypeToggled, EntityTypeRecurringExpense, payload)
}

// PaymentMethodDefaultChanged creates a payment_method.default_changed event
func PaymentMethodDefaultChanged(payload interface{}) Event {
	return NewEvent(EventTypeDefaultChanged, EntityTypePaymentMethod, payload)
}

// SessionEnded creates a session.deleted event so other tabs can sign out
func SessionEnded() Event {
	return NewEvent(EventTypeDeleted, EntityTypeSession, nil)
}
