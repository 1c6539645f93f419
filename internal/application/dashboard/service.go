package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/doeshing/safety-dash/internal/application/metrics"
	"github.com/doeshing/safety-dash/internal/domain"
	"github.com/doeshing/safety-dash/internal/ports"
)

// ErrUnknownPrompt is returned when the selection names no catalog entry.
var ErrUnknownPrompt = errors.New("selected prompt not found in catalog")

// ErrNoModel is returned when no model is selected.
var ErrNoModel = errors.New("no model selected")

// Service runs one prompt test per call: build request, complete, derive
// metrics. It never retries.
type Service struct {
	Config  domain.Config
	Catalog ports.PromptCatalog
	Client  ports.CompletionClient
	Logger  ports.Logger

	newID func() string
}

// Prompt resolves the selected catalog entry.
func (s *Service) Prompt(sel Selection) (domain.PromptEntry, error) {
	if s.Catalog == nil {
		return domain.PromptEntry{}, errors.New("dashboard.Service dependencies not satisfied")
	}
	if !sel.Category.Valid() {
		return domain.PromptEntry{}, fmt.Errorf("%w: unknown category %q", ErrUnknownPrompt, string(sel.Category))
	}
	entry, ok := s.Catalog.Lookup(sel.Category, sel.Label)
	if !ok {
		return domain.PromptEntry{}, fmt.Errorf("%w: %s / %s", ErrUnknownPrompt, sel.Category.Title(), sel.Label)
	}
	return entry, nil
}

// BuildRequest constructs the outbound request for a selection.
func (s *Service) BuildRequest(sel Selection) (domain.CompletionRequest, domain.PromptEntry, error) {
	if sel.Model.IsZero() {
		return domain.CompletionRequest{}, domain.PromptEntry{}, ErrNoModel
	}
	entry, err := s.Prompt(sel)
	if err != nil {
		return domain.CompletionRequest{}, domain.PromptEntry{}, err
	}
	return domain.CompletionRequest{
		ID:           s.requestID(),
		ModelID:      sel.Model.APIID,
		Endpoint:     s.Config.EndpointFor(sel.Model),
		SystemPrompt: s.Config.GetSystemPrompt(),
		UserPrompt:   entry.Text,
	}, entry, nil
}

// TestPrompt runs the completion for sel and derives its metrics. Errors are
// terminal for this interaction and returned unchanged in kind.
func (s *Service) TestPrompt(ctx context.Context, sel Selection) (domain.TestReport, error) {
	if s.Catalog == nil || s.Client == nil || s.Logger == nil {
		return domain.TestReport{}, errors.New("dashboard.Service dependencies not satisfied")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	req, entry, err := s.BuildRequest(sel)
	if err != nil {
		return domain.TestReport{}, err
	}

	if timeout := s.Config.GetTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	fields := map[string]interface{}{
		"request_id": req.ID,
		"model":      sel.Model.APIID,
		"category":   string(sel.Category),
		"prompt":     sel.Label,
	}
	s.Logger.Info("testing prompt", fields)

	result, err := s.Client.Complete(ctx, req, sel.Credential)
	if err != nil {
		fields["kind"] = domain.ErrorKind(err)
		s.Logger.Error("prompt test failed", err, fields)
		return domain.TestReport{}, err
	}

	report := domain.TestReport{
		RequestID: req.ID,
		Prompt:    entry,
		Model:     sel.Model,
		Result:    result,
		Metrics:   metrics.Build(result, sel.Category, sel.Model),
	}
	fields["elapsed_ms"] = report.Metrics.ResponseTimeMs
	fields["response_length"] = report.Metrics.ResponseLength
	s.Logger.Info("prompt test complete", fields)
	return report, nil
}

func (s *Service) requestID() string {
	if s.newID != nil {
		return s.newID()
	}
	return uuid.NewString()
}
