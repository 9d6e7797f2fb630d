package server

import (
	"encoding/json"
	"log"

	"tandem/internal/notifications"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebsocketHandler handles GET /api/ws. Clients stay connected and receive
// friend-request events published to their Redis notification channel. The
// socket is receive-only; inbound frames are read to detect disconnects and
// otherwise dropped.
func (s *Server) WebsocketHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userIDVal := conn.Locals("userID")
		if userIDVal == nil {
			log.Printf("WebSocket: Unauthenticated connection attempt")
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"unauthorized"}`))
			_ = conn.Close()
			return
		}
		userID := userIDVal.(uint)

		if s.hub == nil {
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"notifications unavailable"}`))
			_ = conn.Close()
			return
		}

		// All writes go through the client's send queue: the write pump is
		// the connection's single writer, so a broadcast arriving while the
		// welcome frame is queued cannot interleave on the wire.
		client := notifications.NewClient(s.hub, conn, userID)
		s.hub.Register(client)
		go client.WritePump()

		welcome, _ := json.Marshal(map[string]any{
			"type":    "connected",
			"user_id": userID,
		})
		client.TrySend(welcome)

		client.ReadPump()
	})
}
