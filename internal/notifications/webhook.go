// Package notifications delivers contact submissions to the configured CRM
// webhook. Delivery is best-effort: transient failures are retried a fixed
// number of times and a lost notification is acceptable.
package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"properly-backend/internal/metrics"
)

const (
	maxRetries     = 2
	requestTimeout = 10 * time.Second
)

type Payload struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Message   string `json:"message"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
	Subject   string `json:"subject"`
}

type Result struct {
	Success    bool
	Error      string
	StatusCode int
}

type WebhookClient struct {
	url        string
	apiKey     string
	httpClient *http.Client
	sleep      func(ctx context.Context, d time.Duration)
}

// NewWebhookClient returns a client for the given destination. An empty URL
// is allowed: Send becomes a no-op success so an unconfigured integration
// never fails the contact form.
func NewWebhookClient(url, apiKey string) *WebhookClient {
	return &WebhookClient{
		url:        strings.TrimSpace(url),
		apiKey:     strings.TrimSpace(apiKey),
		httpClient: &http.Client{Timeout: requestTimeout},
		sleep:      sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// Send posts the payload to the webhook. Server errors (5xx), rate limiting
// (429) and network failures are retried up to two more times with 1s then 2s
// backoff; any other non-2xx status fails immediately.
func (c *WebhookClient) Send(ctx context.Context, payload Payload) Result {
	if c == nil || c.url == "" {
		metrics.IncWebhookDelivery("skipped")
		return Result{Success: true}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		metrics.IncWebhookDelivery("failure")
		return Result{Success: false, Error: fmt.Sprintf("marshal payload: %v", err)}
	}

	var res Result
	for attempt := 0; ; attempt++ {
		res = c.attempt(ctx, raw)
		if res.Success || !res.retryable() || attempt >= maxRetries {
			break
		}
		c.sleep(ctx, time.Duration(1<<attempt)*time.Second)
	}

	if res.Success {
		metrics.IncWebhookDelivery("success")
	} else {
		metrics.IncWebhookDelivery("failure")
	}
	return res
}

func (r Result) retryable() bool {
	if r.Success {
		return false
	}
	// Network-level failures carry no status code and are always transient.
	if r.StatusCode == 0 {
		return true
	}
	return r.StatusCode >= http.StatusInternalServerError || r.StatusCode == http.StatusTooManyRequests
}

func (c *WebhookClient) attempt(ctx context.Context, body []byte) Result {
	metrics.IncWebhookAttempt()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Result{Success: false, Error: fmt.Sprintf("create request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{Success: false, Error: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return Result{Success: true, StatusCode: resp.StatusCode}
	}

	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return Result{
		Success:    false,
		Error:      fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(detail))),
		StatusCode: resp.StatusCode,
	}
}
