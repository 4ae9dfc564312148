package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"properly-backend/internal/storage"
	"properly-backend/internal/transport"
)

const maxUploadBytes = 10 << 20

type UploadResponse struct {
	URL string `json:"url"`
}

// AdminUpload accepts a multipart form with a "file" field and stores
// it in the configured bucket.
func (s *Server) AdminUpload(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	if s.Uploader == nil {
		log.Warn("admin upload: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "uploads not configured", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Warn("admin upload: invalid multipart form", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, "invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Warn("admin upload: missing file field")
		transport.WriteError(w, http.StatusBadRequest, "missing file", nil)
		return
	}
	defer file.Close()

	key := storage.ObjectKey(s.Cfg.UploadPrefix, header.Filename)
	contentType := header.Header.Get("Content-Type")

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	url, err := s.Uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		log.Error("admin upload: storage error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "upload failed", nil)
		return
	}

	log.Info("admin upload: ok", slog.String("object", key), slog.Int64("size", header.Size))
	transport.WriteJSON(w, http.StatusOK, UploadResponse{URL: url})
}
