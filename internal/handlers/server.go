package handlers

import (
	"log/slog"
	"net/http"

	"properly-backend/internal/auth"
	"properly-backend/internal/cache"
	"properly-backend/internal/config"
	"properly-backend/internal/db"
	"properly-backend/internal/middleware"
	"properly-backend/internal/storage"
	"properly-backend/internal/validation"
)

type Server struct {
	Cfg      *config.Config
	Cols     *db.Collections
	Val      *validation.Validator
	Log      *slog.Logger
	Cache    cache.Cache
	Auth     *auth.Manager
	Uploader storage.Uploader
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}
