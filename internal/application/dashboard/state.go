// Package dashboard holds the interactive state of the dashboard and
// orchestrates the prompt-testing flow.
package dashboard

import (
	"github.com/doeshing/safety-dash/internal/domain"
	"github.com/doeshing/safety-dash/internal/ports"
)

// State is the single in-memory store of the credential and the current
// model/prompt selection. It is owned by the UI event loop and is not safe
// for concurrent use; pass Selection snapshots to background work.
type State struct {
	credential domain.Credential
	model      domain.ModelDescriptor
	category   domain.Category
	label      string
}

// Selection is an immutable snapshot of State.
type Selection struct {
	Credential domain.Credential
	Model      domain.ModelDescriptor
	Category   domain.Category
	Label      string
}

// NewState starts with no credential, the given model and the first prompt
// of the catalog's first category.
func NewState(model domain.ModelDescriptor, catalog ports.PromptCatalog) *State {
	s := &State{model: model}
	if categories := catalog.Categories(); len(categories) > 0 {
		s.category = categories[0]
		if prompts := catalog.PromptsFor(s.category); len(prompts) > 0 {
			s.label = prompts[0].Label
		}
	}
	return s
}

// SetCredential replaces the stored credential unconditionally.
func (s *State) SetCredential(value string) {
	s.credential = domain.NewCredential(value)
}

// SetModel updates the selected model.
func (s *State) SetModel(model domain.ModelDescriptor) {
	s.model = model
}

// SetPromptSelection updates the selected category and prompt label.
func (s *State) SetPromptSelection(category domain.Category, label string) {
	s.category = category
	s.label = label
}

// CanTest reports whether the Test Prompt action is enabled.
func (s *State) CanTest() bool {
	return !s.credential.Empty()
}

// Model returns the selected model.
func (s *State) Model() domain.ModelDescriptor {
	return s.model
}

// Category returns the selected prompt category.
func (s *State) Category() domain.Category {
	return s.category
}

// Label returns the selected prompt label.
func (s *State) Label() string {
	return s.label
}

// Selection snapshots the state.
func (s *State) Selection() Selection {
	return Selection{
		Credential: s.credential,
		Model:      s.model,
		Category:   s.category,
		Label:      s.label,
	}
}
