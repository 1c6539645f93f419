package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/doeshing/safety-dash/internal/domain"
)

const barWidth = 30

// renderBar draws value/max as a fixed-width bar of '#' and '-'.
func renderBar(value, max float64, width int, color lipgloss.Color) string {
	filled := 0
	if max > 0 && value > 0 {
		filled = int(math.Round(value / max * float64(width)))
	}
	if filled > width {
		filled = width
	}

	barStyle := lipgloss.NewStyle().Foreground(color)
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	return barStyle.Render(strings.Repeat("#", filled)) + emptyStyle.Render(strings.Repeat("-", width-filled))
}

func labelWidth(points []domain.Point) int {
	w := 0
	for _, p := range points {
		if n := lipgloss.Width(p.Label); n > w {
			w = n
		}
	}
	return w
}

func formatValue(v float64, unit string) string {
	s := fmt.Sprintf("%.2f", v)
	if unit == "" {
		return s
	}
	return s + unit
}

func pointsMax(points []domain.Point) float64 {
	max := 0.0
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}
	return max
}

func renderBarChart(b domain.Block) string {
	max := b.Max
	if max <= 0 {
		max = pointsMax(b.Points)
	}
	lw := labelWidth(b.Points)

	var out strings.Builder
	for _, p := range b.Points {
		fmt.Fprintf(&out, "%-*s %s %s\n", lw, p.Label, renderBar(p.Value, max, barWidth, colorSecondary), formatValue(p.Value, b.Unit))
	}
	return out.String()
}

// renderGroupedBars draws one bar per series for every label, grouped by label.
func renderGroupedBars(b domain.Block) string {
	max := b.Max
	nameWidth := 0
	for _, s := range b.Series {
		if max <= 0 && pointsMax(s.Points) > max {
			max = pointsMax(s.Points)
		}
		if n := lipgloss.Width(s.Name); n > nameWidth {
			nameWidth = n
		}
	}

	var labels []string
	seen := map[string]bool{}
	for _, s := range b.Series {
		for _, p := range s.Points {
			if !seen[p.Label] {
				seen[p.Label] = true
				labels = append(labels, p.Label)
			}
		}
	}

	var out strings.Builder
	for _, label := range labels {
		out.WriteString(label + "\n")
		for i, s := range b.Series {
			v, ok := valueFor(s.Points, label)
			if !ok {
				continue
			}
			color := seriesColors[i%len(seriesColors)]
			fmt.Fprintf(&out, "  %-*s %s %s\n", nameWidth, s.Name, renderBar(v, max, barWidth, color), formatValue(v, b.Unit))
		}
	}
	return out.String()
}

func valueFor(points []domain.Point, label string) (float64, bool) {
	for _, p := range points {
		if p.Label == label {
			return p.Value, true
		}
	}
	return 0, false
}

// renderPie lists each slice as its share of the total.
func renderPie(b domain.Block) string {
	total := 0.0
	for _, p := range b.Points {
		total += p.Value
	}
	lw := labelWidth(b.Points)

	var out strings.Builder
	for i, p := range b.Points {
		share := 0.0
		if total > 0 {
			share = p.Value / total
		}
		color := seriesColors[i%len(seriesColors)]
		fmt.Fprintf(&out, "%-*s %s %5.1f%% (%s)\n", lw, p.Label, renderBar(share, 1, barWidth, color), share*100, formatValue(p.Value, b.Unit))
	}
	return out.String()
}

func riskRank(level domain.RiskLevel) int {
	switch level {
	case domain.RiskLow:
		return 1
	case domain.RiskMedium:
		return 2
	case domain.RiskHigh:
		return 3
	case domain.RiskCritical:
		return 4
	default:
		return 0
	}
}

func riskColor(level domain.RiskLevel) lipgloss.Color {
	switch level {
	case domain.RiskLow:
		return lipgloss.Color("2")
	case domain.RiskMedium:
		return lipgloss.Color("#FFA500")
	case domain.RiskHigh:
		return lipgloss.Color("1")
	case domain.RiskCritical:
		return lipgloss.Color("#8B0000")
	default:
		return colorMuted
	}
}

func renderRisks(b domain.Block) string {
	lw := 0
	for _, r := range b.Risks {
		if n := lipgloss.Width(r.Category); n > lw {
			lw = n
		}
	}

	var out strings.Builder
	for _, r := range b.Risks {
		color := riskColor(r.Level)
		level := lipgloss.NewStyle().Foreground(color).Render(string(r.Level))
		fmt.Fprintf(&out, "%-*s %s %s\n", lw, r.Category, renderBar(float64(riskRank(r.Level)), 4, barWidth, color), level)
	}
	return out.String()
}
