package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/safety-dash/internal/domain"
	"github.com/doeshing/safety-dash/internal/ports"
)

// Service runs offline diagnostics. It never contacts the completion endpoint.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Catalog        ports.PromptCatalog
	Dataset        ports.DatasetSource
	Getenv         func(string) string
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("format %s", cfg.ConfigFormatVersion)))
	checks = append(checks, modelsCheck(cfg))
	checks = append(checks, endpointCheck(cfg))
	checks = append(checks, s.catalogCheck())
	checks = append(checks, s.datasetCheck())
	checks = append(checks, s.credentialCheck(cfg))

	report := domain.HealthReport{Checks: checks}
	if report.Failed() {
		return report, fmt.Errorf("one or more checks failed")
	}
	return report, nil
}

func modelsCheck(cfg domain.Config) domain.HealthCheck {
	def, err := cfg.GetDefaultModel()
	if err != nil {
		return fail("Models", err.Error())
	}
	return ok("Models", fmt.Sprintf("%d configured, default %s (%s)", len(cfg.Models), def.Name, def.ModelID))
}

func endpointCheck(cfg domain.Config) domain.HealthCheck {
	endpoint := cfg.Completion.Endpoint
	if endpoint == "" {
		endpoint = domain.DefaultCompletionEndpoint
	}
	return ok("Endpoint", fmt.Sprintf("%s (%s dialect)", endpoint, domain.ProviderKindFor(endpoint)))
}

func (s *Service) catalogCheck() domain.HealthCheck {
	if s.Catalog == nil {
		return warn("Prompt catalog", "catalog not initialized")
	}
	var parts []string
	for _, category := range s.Catalog.Categories() {
		prompts := s.Catalog.PromptsFor(category)
		if len(prompts) == 0 {
			return fail("Prompt catalog", fmt.Sprintf("%s has no prompts", category.Title()))
		}
		parts = append(parts, fmt.Sprintf("%s: %d", category.Title(), len(prompts)))
	}
	if len(parts) == 0 {
		return fail("Prompt catalog", "no categories")
	}
	return ok("Prompt catalog", fmt.Sprintf("version %s, %s", s.Catalog.Version(), strings.Join(parts, ", ")))
}

func (s *Service) datasetCheck() domain.HealthCheck {
	if s.Dataset == nil {
		return warn("Evaluation data", "dataset not initialized")
	}
	ds := s.Dataset.Dataset()
	for _, section := range domain.Sections() {
		if !section.Static() {
			continue
		}
		if _, found := ds.Section(section); !found {
			return fail("Evaluation data", fmt.Sprintf("missing section %s", section.Slug()))
		}
	}
	return ok("Evaluation data", fmt.Sprintf("version %s from %s", ds.Version, ds.Source))
}

// credentialCheck reports only which variable is set, never its value.
func (s *Service) credentialCheck(cfg domain.Config) domain.HealthCheck {
	getenv := s.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	names := cfg.CredentialEnvVars()
	for _, name := range names {
		if strings.TrimSpace(getenv(name)) != "" {
			return ok("API key", fmt.Sprintf("found in $%s", name))
		}
	}
	return warn("API key", fmt.Sprintf("%s not set; enter the key interactively", strings.Join(names, " / ")))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
