package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHub_Implements_EventPublisher(t *testing.T) {
	var _ EventPublisher = (*Hub)(nil)
}

func TestHub_Publish(t *testing.T) {
	hub := NewHub()

	client := newMockClient("client-1", ChannelFor("token-a"))
	other := newMockClient("client-2", ChannelFor("token-b"))
	hub.Register(client)
	hub.Register(other)

	var publisher EventPublisher = hub
	publisher.Publish("token-a", Created(EntityTypeExpense, map[string]interface{}{"id": "42"}))

	// Allow async broadcast to complete
	time.Sleep(10 * time.Millisecond)

	assert.Len(t, client.GetMessages(), 1)
	assert.Len(t, other.GetMessages(), 0)
}

func TestChannelFor(t *testing.T) {
	assert.Equal(t, ChannelFor("abc"), ChannelFor("abc"))
	assert.NotEqual(t, ChannelFor("abc"), ChannelFor("abd"))
	assert.NotContains(t, ChannelFor("secret-token").String(), "secret")
}

func TestNoOpPublisher_Publish(t *testing.T) {
	publisher := &NoOpPublisher{}

	assert.NotPanics(t, func() {
		publisher.Publish("token", Created(EntityTypeExpense, nil))
	})
}

func TestNoOpPublisher_Implements_EventPublisher(t *testing.T) {
	var _ EventPublisher = (*NoOpPublisher)(nil)
}
