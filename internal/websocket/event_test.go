package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventType_String(t *testing.T) {
	tests := []struct {
		name     string
		et       EventType
		expected string
	}{
		{"created", EventTypeCreated, "created"},
		{"updated", EventTypeUpdated, "updated"},
		{"deleted", EventTypeDeleted, "deleted"},
		{"toggled", EventTypeToggled, "toggled"},
		{"default changed", EventTypeDefaultChanged, "default_changed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.et))
		})
	}
}

func TestEntityType_String(t *testing.T) {
	tests := []struct {
		name     string
		et       EntityType
		expected string
	}{
		{"expense", EntityTypeExpense, "expense"},
		{"income", EntityTypeIncome, "income"},
		{"recurring expense", EntityTypeRecurringExpense, "recurring_expense"},
		{"payment method", EntityTypePaymentMethod, "payment_method"},
		{"investment", EntityTypeInvestment, "investment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.et))
		})
	}
}

func TestNewEvent(t *testing.T) {
	payload := map[string]interface{}{
		"id":    "1",
		"name":  "Groceries",
		"value": 100,
	}

	before := time.Now()
	evt := NewEvent(EventTypeCreated, EntityTypeExpense, payload)
	after := time.Now()

	assert.Equal(t, "expense.created", evt.Type)
	assert.Equal(t, EntityTypeExpense, evt.Entity)
	assert.Equal(t, payload, evt.Payload)
	assert.True(t, !evt.Timestamp.Before(before) && !evt.Timestamp.After(after))
}

func TestEvent_JSON_Serialization(t *testing.T) {
	fixedTime := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	payload := map[string]interface{}{
		"id":    "1",
		"name":  "Groceries",
		"value": float64(100),
	}

	evt := Event{
		Type:      "expense.created",
		Entity:    EntityTypeExpense,
		Payload:   payload,
		Timestamp: fixedTime,
	}

	data, err := json.Marshal(evt)
	require.NoError(t, err)

	var decoded Event
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)

	assert.Equal(t, evt.Type, decoded.Type)
	assert.Equal(t, evt.Entity, decoded.Entity)
	assert.Equal(t, fixedTime.UTC(), decoded.Timestamp.UTC())

	decodedPayload, ok := decoded.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "1", decodedPayload["id"])
	assert.Equal(t, "Groceries", decodedPayload["name"])
	assert.Equal(t, float64(100), decodedPayload["value"])
}

func TestEvent_ToJSON(t *testing.T) {
	evt := Updated(EntityTypeIncome, map[string]interface{}{"id": "42"})

	data, err := evt.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)

	assert.Equal(t, "income.updated", decoded["type"])
	assert.Equal(t, "income", decoded["entity"])
	assert.NotNil(t, decoded["payload"])
	assert.NotNil(t, decoded["timestamp"])
}

func TestEvent_Helpers(t *testing.T) {
	payload := map[string]interface{}{"id": "7", "isActive": false}

	t.Run("Created", func(t *testing.T) {
		evt := Created(EntityTypeInvestment, payload)
		assert.Equal(t, "investment.created", evt.Type)
		assert.Equal(t, EntityTypeInvestment, evt.Entity)
	})

	t.Run("Deleted carries only the id", func(t *testing.T) {
		evt := Deleted(EntityTypeExpense, "9")
		assert.Equal(t, "expense.deleted", evt.Type)
		assert.Equal(t, map[string]string{"id": "9"}, evt.Payload)
	})

	t.Run("RecurringExpenseToggled", func(t *testing.T) {
		evt := RecurringExpenseToggled(payload)
		assert.Equal(t, "recurring_expense.toggled", evt.Type)
		assert.Equal(t, payload, evt.Payload)
	})

	t.Run("PaymentMethodDefaultChanged", func(t *testing.T) {
		evt := PaymentMethodDefaultChanged(payload)
		assert.Equal(t, "payment_method.default_changed", evt.Type)
		assert.Equal(t, EntityTypePaymentMethod, evt.Entity)
	})

	t.Run("SessionEnded", func(t *testing.T) {
		evt := SessionEnded()
		assert.Equal(t, "session.deleted", evt.Type)
		assert.Nil(t, evt.Payload)
	})
}
