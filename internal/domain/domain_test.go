package domain_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/safety-dash/internal/domain"
)

func TestCredentialIsRedacted(t *testing.T) {
	cred := domain.NewCredential("  sk-secret-value \n")

	assert.Equal(t, "sk-secret-value", cred.Reveal())
	assert.False(t, cred.Empty())
	assert.NotContains(t, fmt.Sprintf("%v %s %+v %#v", cred, cred, cred, cred), "sk-secret")

	raw, err := json.Marshal(struct{ Key domain.Credential }{cred})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "sk-secret")

	assert.True(t, domain.NewCredential("   ").Empty())
}

func TestParseSection(t *testing.T) {
	for _, section := range domain.Sections() {
		bySlug, err := domain.ParseSection(section.Slug())
		require.NoError(t, err)
		assert.Equal(t, section, bySlug)

		byTitle, err := domain.ParseSection(section.Title())
		require.NoError(t, err)
		assert.Equal(t, section, byTitle)
	}

	_, err := domain.ParseSection("settings")
	assert.Error(t, err)
	assert.Len(t, domain.Sections(), 6)
	assert.False(t, domain.SectionPromptTesting.Static())
	assert.True(t, domain.SectionRedTeam.Static())
}

func TestParseCategory(t *testing.T) {
	tests := map[string]domain.Category{
		"safe":                       domain.CategorySafe,
		"Safe Prompts":               domain.CategorySafe,
		"unsafe":                     domain.CategoryPotentiallyUnsafe,
		"Potentially Unsafe Prompts": domain.CategoryPotentiallyUnsafe,
	}
	for input, want := range tests {
		got, err := domain.ParseCategory(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := domain.ParseCategory("spicy")
	assert.Error(t, err)
}

func TestErrorKind(t *testing.T) {
	auth := &domain.AuthError{Err: domain.ErrMissingCredential}
	network := &domain.NetworkError{Endpoint: "https://x", Err: errors.New("dial tcp: refused")}
	upstream := &domain.UpstreamError{Status: http.StatusTooManyRequests, Message: "rate limited"}

	assert.Equal(t, "auth", domain.ErrorKind(fmt.Errorf("wrapped: %w", auth)))
	assert.Equal(t, "network", domain.ErrorKind(network))
	assert.Equal(t, "upstream", domain.ErrorKind(upstream))
	assert.Equal(t, "internal", domain.ErrorKind(errors.New("boom")))
	assert.Equal(t, "", domain.ErrorKind(nil))

	assert.ErrorIs(t, auth, domain.ErrMissingCredential)
	assert.Contains(t, upstream.Error(), "429")
	assert.Contains(t, upstream.Error(), "rate limited")
	assert.Contains(t, network.Error(), "refused")
}

func TestMetricsRows(t *testing.T) {
	m := domain.Metrics{ResponseLength: 1234, ResponseTimeMs: 850, SafetyLabel: domain.SafetyLabelSafe, ModelName: "GPT-4"}

	assert.Equal(t, []domain.MetricRow{
		{Metric: "Response Length", Value: "1,234"},
		{Metric: "Response Time", Value: "850 ms"},
		{Metric: "Safety Score", Value: "Safe"},
		{Metric: "Model", Value: "GPT-4"},
	}, m.Rows())
}

func TestCompletionRequestMessages(t *testing.T) {
	req := domain.CompletionRequest{SystemPrompt: "be safe", UserPrompt: "hi"}
	assert.Equal(t, []domain.PromptMessage{
		{Role: "system", Content: "be safe"},
		{Role: "user", Content: "hi"},
	}, req.Messages())

	assert.Equal(t, int64(850), domain.CompletionResult{Elapsed: 850 * time.Millisecond}.ElapsedMs())
}
