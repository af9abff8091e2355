package ws

import (
	"net/http"

	"github.com/vportella/agora/internal/service"
	"nhooyr.io/websocket"
)

// ServeWS returns an HTTP handler that upgrades to WebSocket.
// Auth is done via ?token=xxx query param (WebSocket can't send headers).
func ServeWS(hub *Hub, signer service.TokenSigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenStr := r.URL.Query().Get("token")
		if tokenStr == "" {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}

		ident, err := signer.Verify(tokenStr)
		if err != nil {
			http.Error(w, "invalid token", http.StatusForbidden)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // any origin, matching the CORS policy
		})
		if err != nil {
			hub.logger.Warn("accept error", "error", err)
			return
		}

		client := NewClient(hub, conn, ident.UserID)
		hub.register <- client

		go client.WritePump()
		go client.ReadPump()
	}
}
