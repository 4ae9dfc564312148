package notifications

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() Payload {
	return Payload{
		Name:      "Jane Buyer",
		Email:     "jane@example.com",
		Message:   "Need a 4-point inspection",
		Source:    "website",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// noSleep replaces the backoff sleep and records the requested delays.
func noSleep(recorded *[]time.Duration) func(ctx context.Context, d time.Duration) {
	return func(ctx context.Context, d time.Duration) {
		*recorded = append(*recorded, d)
	}
}

func TestSendUnconfiguredIsNoopSuccess(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	client := NewWebhookClient("", "")
	res := client.Send(context.Background(), testPayload())

	assert.True(t, res.Success)
	assert.Zero(t, calls.Load(), "unconfigured client must not call anywhere")
}

func TestSendSuccessFirstAttempt(t *testing.T) {
	var calls atomic.Int32
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewWebhookClient(srv.URL, "secret-token")
	res := client.Send(context.Background(), testPayload())

	require.True(t, res.Success)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestSendRetriesServerErrorThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var delays []time.Duration
	client := NewWebhookClient(srv.URL, "")
	client.sleep = noSleep(&delays)

	res := client.Send(context.Background(), testPayload())

	require.True(t, res.Success)
	assert.Equal(t, int32(3), calls.Load(), "500, 500, then 200 takes exactly 3 calls")
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, delays)
}

func TestSendExhaustsRetryBudget(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	var delays []time.Duration
	client := NewWebhookClient(srv.URL, "")
	client.sleep = noSleep(&delays)

	res := client.Send(context.Background(), testPayload())

	require.False(t, res.Success)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Contains(t, res.Error, "upstream exploded")
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, delays)
}

func TestSendRetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	var delays []time.Duration
	client := NewWebhookClient(srv.URL, "")
	client.sleep = noSleep(&delays)

	res := client.Send(context.Background(), testPayload())

	require.True(t, res.Success)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, []time.Duration{time.Second}, delays)
}

func TestSendClientErrorDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	var delays []time.Duration
	client := NewWebhookClient(srv.URL, "")
	client.sleep = noSleep(&delays)

	res := client.Send(context.Background(), testPayload())

	require.False(t, res.Success)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Empty(t, delays)
}

func TestSendNetworkErrorRetries(t *testing.T) {
	// Point at a server that is already closed to force connection errors.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	var delays []time.Duration
	client := NewWebhookClient(url, "")
	client.sleep = noSleep(&delays)

	res := client.Send(context.Background(), testPayload())

	require.False(t, res.Success)
	assert.Zero(t, res.StatusCode)
	assert.NotEmpty(t, res.Error)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, delays)
}
