// Package view turns dashboard state into terminal text. Rendering is pure:
// the same Input always yields the same string.
package view

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/doeshing/safety-dash/internal/domain"
)

// Testing is the Prompt Testing state at render time.
type Testing struct {
	CanTest bool
	Prompt  domain.PromptEntry
	Pending bool
	Report  *domain.TestReport
	Error   string
}

// Input is everything a frame depends on.
type Input struct {
	Section domain.Section
	Dataset domain.Dataset
	Testing Testing
}

// Renderer draws sections. It holds no per-frame state.
type Renderer struct {
	width    int
	markdown *glamour.TermRenderer
}

// New builds a renderer using the given glamour style and wrap width.
func New(style string, width int) *Renderer {
	if width <= 0 {
		width = domain.DefaultRenderWidth
	}
	if style == "" {
		style = domain.DefaultMarkdownStyle
	}
	md, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		// Fall back to plain text if glamour cannot initialize
		md = nil
	}
	return &Renderer{width: width, markdown: md}
}

// Render draws the dashboard title, the selected section and the footer.
func (r *Renderer) Render(in Input) string {
	var b strings.Builder
	b.WriteString(r.RenderTitle(in.Dataset))
	b.WriteString("\n")
	if in.Section == domain.SectionPromptTesting {
		b.WriteString(r.RenderPromptTesting(in.Dataset, in.Testing))
	} else {
		b.WriteString(r.RenderSection(in.Dataset, in.Section))
	}
	b.WriteString("\n")
	b.WriteString(RenderFooter(in.Dataset))
	return b.String()
}

// RenderTitle draws the dashboard heading.
func (r *Renderer) RenderTitle(ds domain.Dataset) string {
	title := ds.Title
	if title == "" {
		title = "AI Safety & Security Dashboard"
	}
	out := titleStyle.Render(title)
	if ds.Subtitle != "" {
		out += "\n" + subtitleStyle.Render(ds.Subtitle)
	}
	return out + "\n"
}

// RenderSection draws a static section from the dataset.
func (r *Renderer) RenderSection(ds domain.Dataset, s domain.Section) string {
	data, ok := ds.Section(s)
	if !ok {
		return mutedStyle.Render("No data for "+s.Title()) + "\n"
	}

	var b strings.Builder
	header := data.Header
	if header == "" {
		header = s.Title()
	}
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n\n")
	for _, block := range data.Blocks {
		b.WriteString(r.renderBlock(block))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderBlock(block domain.Block) string {
	var body string
	switch block.Kind {
	case domain.BlockMarkdown:
		body = r.renderMarkdown(block.Markdown)
	case domain.BlockBar:
		body = renderBarChart(block)
	case domain.BlockGroupedBar:
		body = renderGroupedBars(block)
	case domain.BlockPie:
		body = renderPie(block)
	case domain.BlockRisk:
		body = renderRisks(block)
	default:
		body = mutedStyle.Render("unsupported block "+string(block.Kind)) + "\n"
	}
	if block.Title == "" {
		return body
	}
	return blockTitleStyle.Render(block.Title) + "\n" + body
}

func (r *Renderer) renderMarkdown(md string) string {
	if r.markdown == nil {
		return strings.TrimSpace(md) + "\n"
	}
	out, err := r.markdown.Render(md)
	if err != nil {
		return strings.TrimSpace(md) + "\n"
	}
	return strings.Trim(out, "\n") + "\n"
}

// RenderPromptTesting draws the interactive section.
func (r *Renderer) RenderPromptTesting(ds domain.Dataset, t Testing) string {
	data, hasData := ds.Section(domain.SectionPromptTesting)
	header := data.Header
	if header == "" {
		header = domain.SectionPromptTesting.Title()
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n\n")

	if !t.CanTest {
		b.WriteString(infoStyle.Render(domain.MissingCredentialMessage))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(blockTitleStyle.Render("Selected Prompt"))
	b.WriteString("\n")
	b.WriteString(panelStyle.Width(r.width - 2).Render(t.Prompt.Text))
	b.WriteString("\n\n")

	if hasData {
		for _, block := range data.Blocks {
			b.WriteString(r.renderBlock(block))
		}
		b.WriteString("\n")
	}

	switch {
	case t.Pending:
		b.WriteString(infoStyle.Render("Testing prompt..."))
		b.WriteString("\n")
	case t.Error != "":
		b.WriteString(RenderError(t.Error))
	case t.Report != nil:
		b.WriteString(r.RenderReport(*t.Report))
	}
	return b.String()
}

// RenderReport draws the model response followed by the metrics table.
func (r *Renderer) RenderReport(report domain.TestReport) string {
	var b strings.Builder
	b.WriteString(blockTitleStyle.Render("Model Response"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(r.width).Render(strings.TrimSpace(report.Result.Text)))
	b.WriteString("\n\n")
	b.WriteString(blockTitleStyle.Render("Safety Metrics"))
	b.WriteString("\n")
	b.WriteString(RenderMetrics(report.Metrics))
	b.WriteString("\n")
	return b.String()
}

// RenderMetrics draws the two-column metrics table.
func RenderMetrics(m domain.Metrics) string {
	rows := m.Rows()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers("Metric", "Value")
	for _, row := range rows {
		t.Row(row.Metric, row.Value)
	}
	return t.String()
}

// RenderError draws a failed interaction.
func RenderError(msg string) string {
	return errorStyle.Render("Error: "+msg) + "\n"
}

// RenderFooter draws the data-source line.
func RenderFooter(ds domain.Dataset) string {
	line := "Data source: " + ds.Source
	if ds.Version != "" {
		line += " (dataset " + ds.Version + ")"
	}
	return mutedStyle.Render(line)
}

// RenderConfigured confirms a credential was accepted.
func RenderConfigured() string {
	return successStyle.Render(domain.CredentialConfiguredMessage)
}
