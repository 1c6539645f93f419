package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/doeshing/safety-dash/internal/domain"
	"github.com/doeshing/safety-dash/internal/infrastructure/view"
)

var (
	sidebarStyle = lipgloss.NewStyle().
			Width(sidebarWidth).
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("#6B7280"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#9CA3AF"))

	focusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#7C3AED"))

	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9FAFB"))
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")).Bold(true)
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
)

func (m Model) label(f Focus, text string) string {
	if m.focus == f {
		return focusedLabelStyle.Render("▸ " + text)
	}
	return labelStyle.Render("  " + text)
}

func picker(value string) string {
	return valueStyle.Render("‹ " + value + " ›")
}

func (m Model) renderSidebar() string {
	var b strings.Builder

	b.WriteString(m.label(FocusCredential, "API Configuration"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.configured {
		b.WriteString(view.RenderConfigured())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.label(FocusModel, "Model"))
	b.WriteString("\n")
	b.WriteString(picker(m.state.Model().DisplayName))
	b.WriteString("\n\n")

	b.WriteString(m.label(FocusCategory, "Prompt Category"))
	b.WriteString("\n")
	b.WriteString(picker(m.state.Category().Title()))
	b.WriteString("\n\n")

	b.WriteString(m.label(FocusPrompt, "Prompt"))
	b.WriteString("\n")
	b.WriteString(picker(m.state.Label()))
	b.WriteString("\n\n")

	b.WriteString(m.label(FocusSection, "Navigation"))
	b.WriteString("\n")
	for _, s := range domain.Sections() {
		if s == m.section {
			b.WriteString(activeStyle.Render("● " + s.Title()))
		} else {
			b.WriteString(inactiveStyle.Render("○ " + s.Title()))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.pending:
		b.WriteString(m.spinner.View() + " Testing prompt...")
	case m.state.CanTest():
		b.WriteString(statusStyle.Render("ctrl+t: Test Prompt"))
	default:
		b.WriteString(inactiveStyle.Render("Test Prompt (needs API key)"))
	}

	return sidebarStyle.Height(max(m.height-2, 1)).Render(b.String())
}
