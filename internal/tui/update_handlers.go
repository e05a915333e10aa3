package tui

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/sessionplan/internal/models"
	"github.com/akyairhashvil/sessionplan/internal/scheduler"
	"github.com/akyairhashvil/sessionplan/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

var sessionPanes = []Pane{PaneUpcoming, PanePast}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "quit", Priority: 100})
	r.Register(KeyBinding{Key: "ctrl+c", Handler: handleQuit, Priority: 100})
	r.Register(KeyBinding{Key: "?", Handler: handleHelp, Description: "help", Priority: 90})

	r.Register(KeyBinding{Key: "tab", Handler: handleTabFocus, Description: "pane", Priority: 80})
	r.Register(KeyBinding{Key: "shift+tab", Handler: handleTabFocus, Priority: 80})
	for _, key := range []string{"j", "down", "k", "up"} {
		desc := ""
		if key == "j" || key == "k" {
			desc = "move"
		}
		r.Register(KeyBinding{Key: key, Handler: handleArrowKeys, Description: desc, Priority: 80})
	}

	r.Register(KeyBinding{Key: "c", Handler: handleCopy, Description: "copy", Panes: []Pane{PaneUpcoming}, Priority: 50})
	r.Register(KeyBinding{Key: "enter", Handler: handleCopy, Panes: []Pane{PaneUpcoming}, Priority: 50})
	r.Register(KeyBinding{Key: "d", Handler: handleMarkDone, Description: "done", Panes: []Pane{PaneUpcoming}, Priority: 50})
	r.Register(KeyBinding{Key: "x", Handler: handleDeleteSession, Description: "delete", Panes: sessionPanes, Priority: 50})
	r.Register(KeyBinding{Key: "x", Handler: handleCompleteTask, Description: "complete", Panes: []Pane{PaneBacklog}, Priority: 50})
	r.Register(KeyBinding{Key: "A", Handler: handleAddSubtask, Description: "subtask", Panes: []Pane{PaneBacklog}, Priority: 50})

	r.Register(KeyBinding{Key: "a", Handler: handleAddTask, Description: "task", Priority: 40})
	r.Register(KeyBinding{Key: "s", Handler: handleAddSession, Description: "session", Priority: 40})
	r.Register(KeyBinding{Key: "p", Handler: handleExport, Description: "pdf", Priority: 30})
	r.Register(KeyBinding{Key: "r", Handler: handleReload, Description: "reload", Priority: 30})
	r.Register(KeyBinding{Key: "t", Handler: handleTheme, Description: "theme", Priority: 30})
	return r
}

func handleQuit(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func handleHelp(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.view.showHelp = !m.view.showHelp
	return m, nil, true
}

func handleCopy(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	if len(m.plan.Assignments) == 0 {
		m.Message = "No upcoming sessions"
		return m, nil, true
	}
	return m, copySummaryCmd(m.plan.Summary(m.view.cursor())), true
}

// handleMarkDone completes the selected session together with the tasks that
// finish in it.
func handleMarkDone(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	idx := m.view.cursor()
	if idx >= len(m.plan.Assignments) {
		return m, nil, true
	}
	session := m.plan.Assignments[idx].Session
	var ids []string
	for _, t := range scheduler.Finished(m.plan.Assignments, idx) {
		ids = append(ids, t.ID)
	}
	status := fmt.Sprintf("Session %s done, %s completed", formatDay(session.ScheduledDate), FormatTaskCount(len(ids)))
	return m, m.storeCmd(status, func(ctx context.Context) error {
		return m.store.CompleteSession(ctx, session.ID, ids)
	}), true
}

func handleDeleteSession(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	session, ok := m.selectedSession()
	if !ok {
		return m, nil, true
	}
	status := "Deleted session on " + formatDay(session.ScheduledDate)
	return m, m.storeCmd(status, func(ctx context.Context) error {
		return m.store.DeleteSession(ctx, session.ID)
	}), true
}

func handleCompleteTask(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	task, ok := m.selectedUnit()
	if !ok {
		return m, nil, true
	}
	return m, m.storeCmd("Completed: "+task.Title, func(ctx context.Context) error {
		return m.store.UpdateTaskStatus(ctx, task.ID, models.TaskStatusCompleted)
	}), true
}

func handleAddTask(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	next, cmd := m.openForm(InputTask, "New task", "Title p:high h:2.5")
	return next, cmd, true
}

// handleAddSubtask adds under the selected unit, or under its parent when the
// unit is itself a subtask.
func handleAddSubtask(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	task, ok := m.selectedUnit()
	if !ok {
		m.Message = "Select a backlog task first"
		return m, nil, true
	}
	parentID, parentTitle := task.ID, task.Title
	if parent := util.Deref(task.ParentID); parent != "" {
		parentID, parentTitle = parent, m.plan.TaskTitle(parent)
	}
	next, cmd := m.openForm(InputSubtask, "Subtask of "+parentTitle, "Title p:low h:0.5")
	next.form.parentID = parentID
	return next, cmd, true
}

func handleAddSession(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	placeholder := fmt.Sprintf("tomorrow h:%s note", humanize.FtoaWithDigits(m.defaultSessionHours, 2))
	next, cmd := m.openForm(InputSession, "New session", placeholder)
	return next, cmd, true
}

func handleExport(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	return m, m.exportPDFCmd(), true
}

func handleReload(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	return m, m.loadPlanCmd(), true
}

func handleTheme(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	name := NextTheme(currentThemeKey)
	SetTheme(name)
	return m, m.saveThemeCmd(name), true
}

func (m DashboardModel) selectedSession() (models.Session, bool) {
	idx := m.view.cursor()
	switch m.view.focused {
	case PaneUpcoming:
		if idx < len(m.plan.Assignments) {
			return m.plan.Assignments[idx].Session, true
		}
	case PanePast:
		if idx < len(m.plan.Past) {
			return m.plan.Past[idx], true
		}
	}
	return models.Session{}, false
}

func (m DashboardModel) selectedUnit() (models.Task, bool) {
	idx := m.view.cursor()
	if m.view.focused != PaneBacklog || idx >= len(m.plan.Units) {
		return models.Task{}, false
	}
	return m.plan.Units[idx], true
}
