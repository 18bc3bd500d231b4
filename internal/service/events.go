package service

import "github.com/dafibh/fortuna/fortuna-web/internal/websocket"

// eventSource is embedded by services that notify open tabs of changes
type eventSource struct {
	eventPublisher websocket.EventPublisher
}

// SetEventPublisher sets the WebSocket event publisher
func (s *eventSource) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *eventSource) publishEvent(token string, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(token, event)
	}
}
