package contact

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"properly-backend/internal/notifications"
	"properly-backend/internal/validation"
)

type signalNotifier struct {
	mu    sync.Mutex
	sent  []notifications.Payload
	fired chan struct{}
}

func newSignalNotifier() *signalNotifier {
	return &signalNotifier{fired: make(chan struct{}, 1)}
}

func (n *signalNotifier) Send(ctx context.Context, p notifications.Payload) notifications.Result {
	n.mu.Lock()
	n.sent = append(n.sent, p)
	n.mu.Unlock()
	select {
	case n.fired <- struct{}{}:
	default:
	}
	return notifications.Result{Success: true}
}

func testHandler(repo Repository, notifier Notifier) *Handler {
	svc := NewService(repo, time.UTC, notifier)
	log := slog.New(slog.NewTextHandler(testWriter{}, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewHandler(svc, validation.New(), log)
}

type testWriter struct{}

func (testWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestCreateHandlerSuccess(t *testing.T) {
	repo := newFakeRepo()
	notifier := newSignalNotifier()
	h := testHandler(repo, notifier)

	body := `{"name":"Jane","email":"jane@example.com","message":"Need an inspection","phone":"8135551234"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp createResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SubmissionID)
	assert.Equal(t, 1, repo.len())

	stored, err := repo.GetByID(context.Background(), resp.SubmissionID)
	require.NoError(t, err)
	assert.Equal(t, StatusNew, stored.Status)

	select {
	case <-notifier.fired:
	case <-time.After(2 * time.Second):
		t.Fatal("expected webhook notifier to be invoked")
	}
}

func TestCreateHandlerMissingMessage(t *testing.T) {
	repo := newFakeRepo()
	h := testHandler(repo, nil)

	body := `{"name":"Jane","email":"jane@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, repo.len(), "validation failure must not write a record")
}

func TestCreateHandlerInvalidEmail(t *testing.T) {
	repo := newFakeRepo()
	h := testHandler(repo, nil)

	body := `{"name":"Jane","email":"not-an-email","message":"hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, repo.len())
}

func TestCreateHandlerPersistenceFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.fail = true
	h := testHandler(repo, nil)

	body := `{"name":"Jane","email":"jane@example.com","message":"hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "call us directly")
}

func TestAdminUpdateStatusHandler(t *testing.T) {
	repo := newFakeRepo()
	h := testHandler(repo, nil)

	svc := NewService(repo, time.UTC, nil)
	item, err := svc.Create(context.Background(), CreateRequest{
		Name: "Joe", Email: "joe@example.com", Message: "hi",
	})
	require.NoError(t, err)

	body := `{"status":"read"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/contacts/"+item.ID+"/status", strings.NewReader(body))
	req = withURLParam(req, "id", item.ID)
	rec := httptest.NewRecorder()
	h.AdminUpdateStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	stored, err := repo.GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusRead, stored.Status)
}

func TestAdminUpdateStatusHandlerRejectsUnknown(t *testing.T) {
	repo := newFakeRepo()
	h := testHandler(repo, nil)

	body := `{"status":"bogus"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/contacts/abc/status", strings.NewReader(body))
	req = withURLParam(req, "id", "abc")
	rec := httptest.NewRecorder()
	h.AdminUpdateStatus(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
