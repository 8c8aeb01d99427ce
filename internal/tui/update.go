package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oneview-community/ovapply/internal/model"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case TaskStartMsg:
		m.ensureTask(msg.ID)
		res := m.results[msg.ID]
		res.Status = model.StatusRunning
		return m, nil

	case TaskCompleteMsg:
		if msg.Result == nil || msg.Result.TaskID == "" {
			return m, nil
		}
		id := msg.Result.TaskID
		m.ensureTask(id)
		if !terminal(m.results[id].Status) {
			m.completed++
		}
		m.results[id] = msg.Result
		return m, nil

	case RunDoneMsg:
		m.summary = msg.Summary
		m.runErr = msg.Err
		m.finished = true
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			m.finished = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func terminal(status string) bool {
	switch status {
	case model.StatusOk, model.StatusChanged, model.StatusWouldChange, model.StatusFailed:
		return true
	}
	return false
}
