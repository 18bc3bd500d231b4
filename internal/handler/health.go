package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse reports liveness and the live-update load
type HealthResponse struct {
	Status           string `json:"status"`
	WebSocketClients int    `json:"websocketClients"`
}

// ClientCounter reports connected WebSocket clients
type ClientCounter interface {
	TotalClientCount() int
}

// Health returns the GET /health handler
func Health(clients ClientCounter) echo.HandlerFunc {
	return func(c echo.Context) error {
		resp := HealthResponse{Status: "ok"}
		if clients != nil {
			resp.WebSocketClients = clients.TotalClientCount()
		}
		return c.JSON(http.StatusOK, resp)
	}
}
