// Package tui renders playbook execution progress in the terminal with a
// Bubbletea program: one line per task, a progress bar, and a run
// summary.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oneview-community/ovapply/internal/config"
	"github.com/oneview-community/ovapply/internal/model"
	"github.com/oneview-community/ovapply/internal/runner"
)

// TaskStartMsg indicates a task has started executing.
type TaskStartMsg struct {
	ID   string
	Time time.Time
}

// TaskCompleteMsg reports a finished task.
type TaskCompleteMsg struct {
	Result *model.Result
}

// RunDoneMsg carries the final run summary.
type RunDoneMsg struct {
	Summary *runner.Summary
	Err     error
}

// Model contains the Bubbletea state for the apply TUI.
type Model struct {
	playbook  *config.Playbook
	results   map[string]*model.Result
	order     []string
	spin      spinner.Model
	bar       progress.Model
	total     int
	completed int
	finished  bool
	cancelled bool
	summary   *runner.Summary
	runErr    error
}

// NewModel constructs a TUI model covering every task in the playbook.
func NewModel(playbook *config.Playbook) Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = runningStyle

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30

	m := Model{
		playbook: playbook,
		results:  make(map[string]*model.Result),
		spin:     spin,
		bar:      bar,
	}

	for _, task := range playbook.Tasks {
		if _, exists := m.results[task.ID]; exists {
			continue
		}
		m.results[task.ID] = &model.Result{TaskID: task.ID, Status: model.StatusPending}
		m.order = append(m.order, task.ID)
		m.total++
	}

	return m
}

// Init starts the spinner tick loop.
func (m Model) Init() tea.Cmd {
	return m.spin.Tick
}

// Finished reports whether the run has completed.
func (m Model) Finished() bool {
	return m.finished
}

// Cancelled reports whether the user interrupted the run.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Summary returns the final run summary, nil until the run completes.
func (m Model) Summary() *runner.Summary {
	return m.summary
}

func (m *Model) ensureTask(id string) {
	if id == "" {
		return
	}
	if _, exists := m.results[id]; !exists {
		m.results[id] = &model.Result{TaskID: id, Status: model.StatusPending}
		m.order = append(m.order, id)
		m.total++
	}
}
