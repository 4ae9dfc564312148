package handlers

import (
	"context"
	"net/http"
	"time"

	"properly-backend/internal/transport"
)

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{"status": "ok"}
	if err := s.Cols.Users.Database().Client().Ping(ctx, nil); err != nil {
		status["status"] = "degraded"
		status["mongo"] = "unreachable"
		transport.WriteJSON(w, http.StatusServiceUnavailable, status)
		return
	}

	transport.WriteJSON(w, http.StatusOK, status)
}
