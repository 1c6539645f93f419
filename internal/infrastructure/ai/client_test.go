package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/safety-dash/internal/domain"
)

func steppingClock(step time.Duration) func() time.Time {
	base := time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC)
	var calls int64
	return func() time.Time {
		n := atomic.AddInt64(&calls, 1) - 1
		return base.Add(time.Duration(n) * step)
	}
}

func testRequest(endpoint string) domain.CompletionRequest {
	return domain.CompletionRequest{
		ID:           "req-1",
		ModelID:      "gpt-4",
		Endpoint:     endpoint,
		SystemPrompt: domain.DefaultSystemPrompt,
		UserPrompt:   "What is the capital of France?",
	}
}

func TestCompleteEmptyCredentialMakesNoCall(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	client := NewClient()
	for _, cred := range []domain.Credential{"", domain.NewCredential("   ")} {
		_, err := client.Complete(context.Background(), testRequest(srv.URL), cred)

		var authErr *domain.AuthError
		require.ErrorAs(t, err, &authErr)
		assert.ErrorIs(t, err, domain.ErrMissingCredential)
	}
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestCompleteOpenAISuccess(t *testing.T) {
	var captured chatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("content-type", "application/json")
		_, _ = io.WriteString(w, `{"response_ms": 1, "choices":[{"message":{"role":"assistant","content":"\n\nParis is the capital of France.  "}}]}`)
	}))
	defer srv.Close()

	client := NewClient(WithClock(steppingClock(850 * time.Millisecond)))
	result, err := client.Complete(context.Background(), testRequest(srv.URL), domain.NewCredential("sk-test"))
	require.NoError(t, err)

	assert.Equal(t, "\n\nParis is the capital of France.  ", result.Text, "content is returned unchanged")
	assert.Equal(t, int64(850), result.ElapsedMs())

	assert.Equal(t, "gpt-4", captured.Model)
	assert.Zero(t, captured.MaxTokens)
	assert.Equal(t, []chatMessage{
		{Role: "system", Content: domain.DefaultSystemPrompt},
		{Role: "user", Content: "What is the capital of France?"},
	}, captured.Messages)
}

func TestCompleteAnthropicDialect(t *testing.T) {
	var captured anthropicRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sk-ant", r.Header.Get("x-api-key"))
		assert.Equal(t, domain.AnthropicVersion, r.Header.Get("anthropic-version"))
		assert.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = io.WriteString(w, `{"content":[{"type":"text","text":" Paris.\n"}]}`)
	}))
	defer srv.Close()

	req := testRequest(srv.URL + "/v1/messages")
	req.ModelID = "claude-3-opus-20240229"

	result, err := NewClient().Complete(context.Background(), req, domain.NewCredential("sk-ant"))
	require.NoError(t, err)
	assert.Equal(t, " Paris.\n", result.Text)

	assert.Equal(t, domain.DefaultSystemPrompt, captured.System)
	assert.Equal(t, domain.DefaultAnthropicMaxTokens, captured.MaxTokens)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
}

func TestCompleteErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind string
		wantMsg  string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":{"message":"Incorrect API key provided"}}`, "auth", "Incorrect API key provided"},
		{"forbidden", http.StatusForbidden, `forbidden`, "auth", "forbidden"},
		{"rate limited", http.StatusTooManyRequests, `{"error":{"message":"Rate limit reached"}}`, "upstream", "Rate limit reached"},
		{"server error", http.StatusInternalServerError, ``, "upstream", "500 Internal Server Error"},
		{"no choices", http.StatusOK, `{"choices":[]}`, "upstream", "no message content"},
		{"bad json", http.StatusOK, `not json`, "upstream", "unreadable response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewClient().Complete(context.Background(), testRequest(srv.URL), domain.NewCredential("sk-test"))
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, domain.ErrorKind(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestCompleteNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	_, err := NewClient().Complete(context.Background(), testRequest(endpoint), domain.NewCredential("sk-test"))

	var netErr *domain.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, endpoint, netErr.Endpoint)
}

func TestCompleteHonoursContextDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := NewClient().Complete(ctx, testRequest(srv.URL), domain.NewCredential("sk-test"))

	var netErr *domain.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestProviderKindFor(t *testing.T) {
	assert.Equal(t, domain.ProviderKindAnthropic, domain.ProviderKindFor("https://api.anthropic.com/v1/messages"))
	assert.Equal(t, domain.ProviderKindAnthropic, domain.ProviderKindFor("http://127.0.0.1:4000/v1/messages"))
	assert.Equal(t, domain.ProviderKindOpenAI, domain.ProviderKindFor(domain.DefaultCompletionEndpoint))
	assert.Equal(t, domain.ProviderKindOpenAI, domain.ProviderKindFor("https://openrouter.ai/api/v1/chat/completions"))
}
