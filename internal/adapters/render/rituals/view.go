package rituals

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/bnema/dreamlog/internal/adapters/render"
	"github.com/bnema/dreamlog/internal/application"
	"github.com/bnema/dreamlog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const categoryBarWidth = 20

// RenderCatalog lists rituals grouped by category. Rituals whose id appears
// in completedToday are checked off.
func RenderCatalog(catalog []domain.Ritual, completedToday []string) (string, error) {
	s := newStyles()
	return render.Run(func() string {
		return catalogView(catalog, completedToday, s)
	})
}

func RenderRitual(ritual domain.Ritual) (string, error) {
	s := newStyles()
	return render.Run(func() string {
		return ritualView(ritual, s)
	})
}

// RenderSessions prints sessions oldest first in loc. Ritual names come from
// catalog; unknown ids are shown as-is.
func RenderSessions(sessions []domain.RitualSession, catalog []domain.Ritual, loc *time.Location) (string, error) {
	s := newStyles()
	return render.Run(func() string {
		return sessionsView(sessions, catalog, loc, s)
	})
}

func RenderStats(stats application.RitualStats) (string, error) {
	s := newStyles()
	return render.Run(func() string {
		return statsView(stats, s)
	})
}

func catalogView(catalog []domain.Ritual, completedToday []string, s styles) string {
	lines := []string{
		s.title.Render("Dream Rituals"),
		s.header.Render(fmt.Sprintf("rituals: %d, completed today: %d", len(catalog), len(completedToday))),
	}

	if len(catalog) == 0 {
		lines = append(lines, s.empty.Render("No rituals match."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, category := range domain.RitualCategories() {
		group := []string{s.category.Render(category.Label())}
		for _, ritual := range catalog {
			if ritual.Category != category {
				continue
			}
			group = append(group, ritualLine(ritual, slices.Contains(completedToday, ritual.ID), s))
		}
		if len(group) == 1 {
			continue
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, group...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func ritualLine(ritual domain.Ritual, completed bool, s styles) string {
	mark := s.meta.Render("[ ]")
	if completed {
		mark = s.done.Render("[x]")
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		mark,
		" ",
		s.name.Render(ritual.Name),
		" ",
		s.meta.Render(fmt.Sprintf("(%s, %s, %s)", ritual.ID, durationLabel(ritual.Duration), ritual.Difficulty)),
	)
}

func ritualView(ritual domain.Ritual, s styles) string {
	steps := make([]string, 0, len(ritual.Instructions)+1)
	steps = append(steps, s.header.Render("instructions:"))
	for i, instruction := range ritual.Instructions {
		steps = append(steps, s.step.Render(fmt.Sprintf("%d. %s", i+1, instruction)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render(ritual.Name),
		s.meta.Render(fmt.Sprintf("%s | %s | %s", ritual.Category.Label(), durationLabel(ritual.Duration), ritual.Difficulty)),
		s.detail.Render(ritual.Description),
		s.section.Render(lipgloss.JoinVertical(lipgloss.Left, steps...)),
	)
}

func sessionsView(sessions []domain.RitualSession, catalog []domain.Ritual, loc *time.Location, s styles) string {
	if loc == nil {
		loc = time.Local
	}

	lines := []string{
		s.title.Render("Ritual Sessions"),
		s.header.Render(fmt.Sprintf("sessions: %d", len(sessions))),
	}
	if len(sessions) == 0 {
		lines = append(lines, s.empty.Render("No sessions recorded."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	names := make(map[string]string, len(catalog))
	for _, ritual := range catalog {
		names[ritual.ID] = ritual.Name
	}

	ordered := slices.Clone(sessions)
	slices.SortStableFunc(ordered, func(a, b domain.RitualSession) int {
		return a.CompletedAt.Compare(b.CompletedAt)
	})

	for _, session := range ordered {
		name, ok := names[session.RitualID]
		if !ok {
			name = session.RitualID
		}

		parts := []string{
			s.meta.Render(session.CompletedAt.In(loc).Format("2006-01-02 15:04")),
			s.name.Render(name),
		}
		if session.Rating != nil {
			parts = append(parts, s.detail.Render(fmt.Sprintf("rating %d/5", *session.Rating)))
		}
		if session.Notes != nil && strings.TrimSpace(*session.Notes) != "" {
			parts = append(parts, s.meta.Render(fmt.Sprintf("%q", *session.Notes)))
		}
		lines = append(lines, strings.Join(parts, "  "))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func statsView(stats application.RitualStats, s styles) string {
	lines := []string{
		s.title.Render("Ritual Progress"),
		s.detail.Render(fmt.Sprintf("today: %d  total: %d  streak: %s", stats.Today, stats.Total, dayLabel(stats.StreakDays))),
	}

	bars := make([]string, 0, len(stats.ByCategory))
	for _, category := range domain.RitualCategories() {
		count := stats.ByCategory[category]
		bars = append(bars, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.meta.Render(fmt.Sprintf("%-15s", category.Label())),
			" ",
			progressBar(count, stats.Total, categoryBarWidth, s),
			" ",
			s.detail.Render(fmt.Sprintf("%d", count)),
		))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, bars...)))

	if len(stats.CompletedToday) > 0 {
		lines = append(lines, s.section.Render(s.done.Render("done today: "+strings.Join(stats.CompletedToday, ", "))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func progressBar(count, total, width int, s styles) string {
	filled := 0
	if total > 0 {
		filled = int(math.Round(float64(width) * float64(count) / float64(total)))
	}
	filled = min(max(filled, 0), width)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func durationLabel(minutes int) string {
	if minutes == 1 {
		return "1 min"
	}
	return fmt.Sprintf("%d min", minutes)
}

func dayLabel(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
