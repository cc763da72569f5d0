// Package notify posts fire-and-forget admin notifications over HTTP.
// Delivery failures are logged and otherwise swallowed; nothing in the
// request path waits on or reacts to the outcome.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"vecino-backend-go/internal/models"
)

// HTTPNotifier implements core.AdminNotifier against a notify-admin
// endpoint, usually this server's own.
type HTTPNotifier struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPNotifier creates an HTTPNotifier. Returns nil when url is empty,
// which callers treat as notifications disabled.
func NewHTTPNotifier(url string, logger *zap.Logger) *HTTPNotifier {
	if url == "" {
		return nil
	}
	return &HTTPNotifier{
		url:        url,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		logger:     logger,
	}
}

// NotifyAdmin posts the notification in the background. The caller's
// context is deliberately not used; the request should outlive the
// originating handler.
func (n *HTTPNotifier) NotifyAdmin(subject, body string, meta map[string]string) {
	payload := models.AdminNotification{Subject: subject, Body: body, Meta: meta}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		raw, err := json.Marshal(payload)
		if err != nil {
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(raw))
		if err != nil {
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.httpClient.Do(req)
		if err != nil {
			n.logger.Debug("admin notification failed", zap.String("subject", subject), zap.Error(err))
			return
		}
		resp.Body.Close()
	}()
}
