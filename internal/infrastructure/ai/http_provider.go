package ai

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/doeshing/safety-dash/internal/domain"
)

// providerAdapter isolates the wire dialect of one endpoint family.
type providerAdapter struct {
	buildRequest  func(domain.CompletionRequest, int) ([]byte, error)
	parseResponse func([]byte) (string, error)
	setHeaders    func(*http.Request, domain.Credential)
}

var errNoContent = errors.New("response contained no message content")

func adapterFor(kind domain.ProviderKind) providerAdapter {
	if kind == domain.ProviderKindAnthropic {
		return anthropicAdapter()
	}
	return openaiAdapter()
}

func openaiAdapter() providerAdapter {
	return providerAdapter{
		buildRequest:  buildChatCompletionRequest,
		parseResponse: parseChatCompletionResponse,
		setHeaders:    setOpenAIHeaders,
	}
}

func anthropicAdapter() providerAdapter {
	return providerAdapter{
		buildRequest:  buildAnthropicRequest,
		parseResponse: parseAnthropicResponse,
		setHeaders:    setAnthropicHeaders,
	}
}

func buildChatCompletionRequest(req domain.CompletionRequest, maxTokens int) ([]byte, error) {
	messages := req.Messages()
	chatMessages := make([]chatMessage, 0, len(messages))
	for _, msg := range messages {
		chatMessages = append(chatMessages, chatMessage{Role: msg.Role, Content: msg.Content})
	}
	return json.Marshal(chatCompletionRequest{
		Model:     req.ModelID,
		Messages:  chatMessages,
		MaxTokens: maxTokens,
	})
}

func parseChatCompletionResponse(body []byte) (string, error) {
	var response chatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	content, ok := response.FirstMessage()
	if !ok {
		return "", errNoContent
	}
	return content, nil
}

func setOpenAIHeaders(req *http.Request, credential domain.Credential) {
	req.Header.Set("authorization", "Bearer "+credential.Reveal())
}

func buildAnthropicRequest(req domain.CompletionRequest, maxTokens int) ([]byte, error) {
	return json.Marshal(anthropicRequest{
		Model:     req.ModelID,
		System:    req.SystemPrompt,
		MaxTokens: defaultInt(maxTokens, domain.DefaultAnthropicMaxTokens),
		Messages: []anthropicMessage{{
			Role:    "user",
			Content: []anthropicTextBlock{{Type: "text", Text: req.UserPrompt}},
		}},
	})
}

func parseAnthropicResponse(body []byte) (string, error) {
	var response anthropicResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	if len(response.Content) == 0 {
		return "", errNoContent
	}
	return response.Content[0].Text, nil
}

func setAnthropicHeaders(req *http.Request, credential domain.Credential) {
	req.Header.Set("x-api-key", credential.Reveal())
	req.Header.Set("anthropic-version", domain.AnthropicVersion)
}

// upstreamMessage extracts a human readable message from an error body.
func upstreamMessage(body []byte, status string) string {
	var envelope upstreamErrorBody
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	text := strings.TrimSpace(string(body))
	if text == "" || len(text) > 200 {
		return status
	}
	return text
}
