// Package ai implements the outbound chat-completion client.
package ai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/doeshing/safety-dash/internal/domain"
	"github.com/doeshing/safety-dash/internal/pkg/logger"
	"github.com/doeshing/safety-dash/internal/ports"
)

// maxResponseBytes caps how much of an upstream body is read.
const maxResponseBytes = 4 << 20

// Client performs exactly one HTTP attempt per Complete call.
type Client struct {
	httpClient *http.Client
	maxTokens  int
	now        func() time.Time
	logger     ports.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithMaxTokens sets max_tokens on outgoing requests. Zero omits it.
func WithMaxTokens(n int) Option {
	return func(c *Client) {
		c.maxTokens = n
	}
}

// WithClock overrides the clock used to measure elapsed time.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger attaches a logger. The credential is never logged.
func WithLogger(l ports.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient builds a client with a transport-level timeout ceiling.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: domain.DefaultHTTPClientTimeout},
		now:        time.Now,
		logger:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends req and returns the first choice's text with the
// client-measured elapsed time.
func (c *Client) Complete(ctx context.Context, req domain.CompletionRequest, credential domain.Credential) (domain.CompletionResult, error) {
	if credential.Empty() {
		return domain.CompletionResult{}, &domain.AuthError{Err: domain.ErrMissingCredential}
	}

	endpoint := defaultString(req.Endpoint, domain.DefaultCompletionEndpoint)
	kind := domain.ProviderKindFor(endpoint)
	adapter := adapterFor(kind)

	body, err := adapter.buildRequest(req, c.maxTokens)
	if err != nil {
		return domain.CompletionResult{}, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.CompletionResult{}, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("content-type", "application/json")
	adapter.setHeaders(httpReq, credential)

	fields := map[string]interface{}{
		"request_id": req.ID,
		"model":      req.ModelID,
		"provider":   string(kind),
	}
	c.logger.Debug("sending completion request", fields)

	start := c.now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return domain.CompletionResult{}, &domain.NetworkError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domain.CompletionResult{}, &domain.NetworkError{Endpoint: endpoint, Err: err}
	}
	elapsed := c.now().Sub(start)

	fields["status"] = resp.StatusCode
	fields["elapsed_ms"] = elapsed.Milliseconds()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return domain.CompletionResult{}, &domain.AuthError{
			Status:  resp.StatusCode,
			Message: upstreamMessage(raw, resp.Status),
		}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return domain.CompletionResult{}, &domain.UpstreamError{
			Status:  resp.StatusCode,
			Message: upstreamMessage(raw, resp.Status),
		}
	}

	text, err := adapter.parseResponse(raw)
	if err != nil {
		return domain.CompletionResult{}, &domain.UpstreamError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("unreadable response: %v", err),
		}
	}

	c.logger.Debug("completion received", fields)
	return domain.CompletionResult{Text: text, Elapsed: elapsed}, nil
}

var _ ports.CompletionClient = (*Client)(nil)
