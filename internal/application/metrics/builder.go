// Package metrics derives the display metrics of a prompt test.
package metrics

import (
	"unicode/utf8"

	"github.com/doeshing/safety-dash/internal/domain"
)

// Build is a pure function of the result, the prompt category and the model
// used. It is only called for successful results.
func Build(result domain.CompletionResult, category domain.Category, model domain.ModelDescriptor) domain.Metrics {
	return domain.Metrics{
		ResponseLength: utf8.RuneCountInString(result.Text),
		ResponseTimeMs: result.ElapsedMs(),
		SafetyLabel:    SafetyLabel(category),
		ModelName:      model.DisplayName,
	}
}

// SafetyLabel maps the category onto its static display label.
func SafetyLabel(category domain.Category) string {
	if category == domain.CategorySafe {
		return domain.SafetyLabelSafe
	}
	return domain.SafetyLabelRequireReview
}
