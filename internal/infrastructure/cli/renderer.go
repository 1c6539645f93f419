package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/doeshing/safety-dash/internal/domain"
	"github.com/doeshing/safety-dash/internal/ports"
)

func renderPrompts(out io.Writer, catalog ports.PromptCatalog, categories []domain.Category, full bool) {
	for i, category := range categories {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s (%s)\n", category.Title(), category)
		for _, entry := range catalog.PromptsFor(category) {
			if full {
				fmt.Fprintf(out, "  %-22s %s\n", entry.Label, entry.Text)
			} else {
				fmt.Fprintf(out, "  %s\n", entry.Label)
			}
		}
	}
}

func renderModels(out io.Writer, cfg domain.Config) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "MODEL ID", "ENDPOINT", "DEFAULT")
	for _, model := range cfg.Models {
		marker := ""
		if cfg.Preferences.DefaultModel == model.Name {
			marker = "*"
		}
		t.Row(model.Name, model.ModelID, cfg.EndpointFor(model.Descriptor()), marker)
	}
	fmt.Fprintln(out, t.String())
}

func renderDoctorReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s - %s\n",
			strings.ToUpper(string(check.Status)),
			check.Name,
			check.Details)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func terminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return domain.DefaultRenderWidth
}
