package analysis

import (
	"strings"

	"github.com/bnema/dreamlog/internal/adapters/render"
	"github.com/bnema/dreamlog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func Render(result domain.DreamAnalysisResult) (string, error) {
	s := newStyles()
	return render.Run(func() string {
		return renderView(result, s)
	})
}

func renderView(result domain.DreamAnalysisResult, s styles) string {
	title := s.title.Render("Dream Analysis")
	if result.IsLucid() {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, " ", s.lucid.Render("[lucid]"))
	}

	lines := []string{
		title,
		s.summary.Render(result.Summary),
		s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
			labelled("themes", result.Themes, s),
			labelled("emotions", result.Emotions, s),
			labelled("lucidity", result.LucidityIndicators, s),
		)),
	}

	insights := make([]string, 0, len(result.Insights)+1)
	insights = append(insights, s.label.Render("insights:"))
	for _, insight := range result.Insights {
		insights = append(insights, s.insight.Render("- "+insight))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, insights...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func labelled(label string, values []string, s styles) string {
	rendered := s.empty.Render("none")
	if len(values) > 0 {
		rendered = s.value.Render(strings.Join(values, ", "))
	}

	return s.label.Render(label+":") + " " + rendered
}
