package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs runs one editor session until the peer disconnects.
func ServeWs(hub *Hub, c *websocket.Conn, userID uuid.UUID, initialValue string) {
	client := &Client{
		Hub:     hub,
		Conn:    c,
		UserID:  userID,
		Send:    make(chan []byte, sendBuffer),
		Session: NewSession(initialValue),
	}
	client.Hub.register <- client

	// Initial state so the client can render before its first command.
	client.enqueue(client.Session.State())

	go client.writePump()
	client.readPump()
}
