package domain

import (
	"fmt"
	"strings"
)

// Section is the dashboard page currently displayed.
type Section int

const (
	SectionOverview Section = iota
	SectionEvaluations
	SectionPreparedness
	SectionChainOfThought
	SectionRedTeam
	SectionPromptTesting
)

var sectionMeta = []struct {
	slug  string
	title string
}{
	{"overview", "Overview"},
	{"evaluations", "Safety Evaluations"},
	{"preparedness", "Preparedness Framework"},
	{"chain-of-thought", "Chain of Thought Safety"},
	{"red-team", "Red Teaming Results"},
	{"prompt-testing", "Prompt Testing"},
}

// Sections lists every section in navigation order.
func Sections() []Section {
	out := make([]Section, len(sectionMeta))
	for i := range sectionMeta {
		out[i] = Section(i)
	}
	return out
}

// Valid reports whether s is a known section.
func (s Section) Valid() bool {
	return s >= 0 && int(s) < len(sectionMeta)
}

// Slug is the CLI and config identifier.
func (s Section) Slug() string {
	if !s.Valid() {
		return fmt.Sprintf("section(%d)", int(s))
	}
	return sectionMeta[s].slug
}

// Title is the navigation label.
func (s Section) Title() string {
	if !s.Valid() {
		return s.Slug()
	}
	return sectionMeta[s].title
}

func (s Section) String() string {
	return s.Title()
}

// Static reports whether the section renders only constant data.
func (s Section) Static() bool {
	return s.Valid() && s != SectionPromptTesting
}

// ParseSection accepts a slug or a title, case-insensitively.
func ParseSection(value string) (Section, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for i, meta := range sectionMeta {
		if normalized == meta.slug || normalized == strings.ToLower(meta.title) {
			return Section(i), nil
		}
	}
	return 0, fmt.Errorf("unknown section %q", value)
}
