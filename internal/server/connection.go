package server

import (
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
)

const maxMessageSize = 4096

// handleWebSocket answers every Request frame on the socket with a Response
// frame until the client goes away
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}
	defer func() {
		_ = conn.Close() // Ignore close errors
	}()
	conn.SetReadLimit(maxMessageSize)

	logger := s.logger.With("remote", r.RemoteAddr)
	logger.Info("Client connected")

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) || errors.Is(err, websocket.ErrCloseSent) {
				logger.Info("Client disconnected")
			} else {
				logger.Warn("Failed to read request", "error", err)
			}
			return
		}

		resp, err := s.Compute(r.Context(), req)
		if err != nil {
			resp.Error = err.Error()
		}
		if err := conn.WriteJSON(resp); err != nil {
			logger.Error("Failed to send response", "error", err, "id", resp.ID)
			return
		}
	}
}
