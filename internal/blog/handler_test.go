package blog

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"properly-backend/internal/validation"
)

func testBlogHandler(repo Repository) *Handler {
	svc := NewService(repo, time.UTC)
	log := slog.New(slog.NewTextHandler(discardWriter{}, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewHandler(svc, validation.New(), log)
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestPublicListRejectsUnknownCategory(t *testing.T) {
	h := testBlogHandler(newFakeRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/blog?category=plumbing", nil)
	rec := httptest.NewRecorder()
	h.PublicList(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublicListFiltersByCategory(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC)

	insurance := draftRequest("Wind Mitigation Explained")
	insurance.Category = "insurance"
	insurance.Published = boolPtr(true)
	_, err := svc.Create(context.Background(), insurance, "")
	require.NoError(t, err)

	maintenance := draftRequest("Roof Basics")
	maintenance.Published = boolPtr(true)
	_, err = svc.Create(context.Background(), maintenance, "")
	require.NoError(t, err)

	h := testBlogHandler(repo)
	req := httptest.NewRequest(http.MethodGet, "/api/blog?category=insurance", nil)
	rec := httptest.NewRecorder()
	h.PublicList(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Posts []Post `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, "insurance", resp.Posts[0].Category)
}

func TestAdminListRejectsUnknownCategory(t *testing.T) {
	h := testBlogHandler(newFakeRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/blog?category=plumbing", nil)
	rec := httptest.NewRecorder()
	h.AdminList(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
