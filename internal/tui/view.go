package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/oneview-community/ovapply/internal/model"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	sections = append(sections, titleStyle.Render(fmt.Sprintf("ovapply • %s", m.title())))

	ratio := 0.0
	if m.total > 0 {
		ratio = math.Min(1.0, float64(m.completed)/float64(m.total))
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d", m.completed, m.total))
	sections = append(sections,
		sectionStyle.Render("Progress"),
		lipgloss.JoinHorizontal(lipgloss.Left, label, " ", m.bar.ViewAs(ratio)))

	if len(m.order) > 0 {
		sections = append(sections, sectionStyle.Render("Tasks"), m.renderTasks())
	}

	if summary := m.renderSummary(); summary != "" {
		sections = append(sections, sectionStyle.Render("Summary"), summaryStyle.Render(summary))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTasks() string {
	var lines []string
	for _, id := range m.order {
		res := m.results[id]
		icon := m.statusIcon(res.Status)
		line := fmt.Sprintf(" %s %s", icon, id)
		if strings.TrimSpace(res.Msg) != "" {
			line = fmt.Sprintf("%s  %s", line, res.Msg)
		}
		if res.Duration > 0 {
			line = fmt.Sprintf("%s (%s)", line, res.Duration.Truncate(10*time.Millisecond))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSummary() string {
	if !m.finished {
		return ""
	}
	if m.cancelled {
		return failureStyle.Render("Run cancelled.")
	}
	if m.summary == nil {
		return ""
	}

	line := fmt.Sprintf("ok=%d changed=%d would_change=%d failed=%d",
		m.summary.Ok, m.summary.Changed, m.summary.WouldChange, m.summary.Failed)
	if m.runErr != nil {
		return fmt.Sprintf("%s\n%s", line, failureStyle.Render(m.runErr.Error()))
	}
	return line
}

func (m Model) title() string {
	if m.playbook != nil && strings.TrimSpace(m.playbook.Name) != "" {
		return m.playbook.Name
	}
	return "Apply"
}

func (m Model) statusIcon(status string) string {
	switch status {
	case model.StatusOk:
		return okStyle.Render("✓")
	case model.StatusChanged:
		return changedStyle.Render("~")
	case model.StatusRunning:
		return m.spin.View()
	case model.StatusFailed:
		return failureStyle.Render("✗")
	case model.StatusWouldChange:
		return wouldChangeStyle.Render("≈")
	default:
		return pendingStyle.Render("…")
	}
}
