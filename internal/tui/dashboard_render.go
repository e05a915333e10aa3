package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/sessionplan/internal/config"
	"github.com/akyairhashvil/sessionplan/internal/scheduler"
	"github.com/charmbracelet/lipgloss"
)

func (m DashboardModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if !m.loaded && m.err == nil {
		return "Loading plan..."
	}

	sections := []string{m.renderHeader()}
	if m.form.Active() {
		sections = append(sections, m.renderInput())
	}
	sections = append(sections, m.renderBoard(), m.renderFooter())
	return CurrentTheme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m DashboardModel) renderHeader() string {
	used, available := m.plan.Capacity()
	title := fmt.Sprintf("%s %s | %s | %s", config.AppName, versionLabel(), m.project.Name, formatDay(m.today()))
	stats := fmt.Sprintf("%d upcoming, %s of %s planned", len(m.plan.Assignments), formatHours(used), formatHours(available))
	return CurrentTheme.Header.Render(title) + "  " + CurrentTheme.Dim.Render(stats)
}

func (m DashboardModel) renderInput() string {
	return CurrentTheme.Input.Render(CurrentTheme.Focused.Render(m.form.prompt+": ") + m.form.input.View())
}

// paneWidth is the width of one pane including its horizontal padding; panes
// stack below the compact threshold.
func (m DashboardModel) paneWidth() (int, bool) {
	usable := m.width - 4
	if m.width < config.CompactModeThreshold {
		if usable < config.MinPaneWidth {
			usable = config.MinPaneWidth
		}
		return usable - 4, true
	}
	w := usable/int(paneCount) - 4
	if w < config.MinPaneWidth {
		w = config.MinPaneWidth
	}
	return w, false
}

func (m DashboardModel) renderBoard() string {
	width, stacked := m.paneWidth()
	panes := []string{
		m.renderPane(PaneUpcoming, m.upcomingLines(width), width),
		m.renderPane(PanePast, m.pastLines(width), width),
		m.renderPane(PaneBacklog, m.backlogLines(width), width),
	}
	if stacked {
		return lipgloss.JoinVertical(lipgloss.Left, panes...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panes...)
}

func (m DashboardModel) renderPane(p Pane, lines []string, width int) string {
	var border lipgloss.TerminalColor = CurrentTheme.Border
	title := CurrentTheme.Dim.Render(p.String())
	if m.view.focused == p {
		border = CurrentTheme.Focused.GetForeground()
		title = CurrentTheme.Focused.Render(p.String())
	}
	if len(lines) == 0 {
		lines = []string{CurrentTheme.Dim.Render("(empty)")}
	}
	body := title + "\n" + strings.Join(lines, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width).
		Render(body)
}

// itemPrefix marks the cursor row of the focused pane.
func (m DashboardModel) itemPrefix(p Pane, idx int) (string, bool) {
	if m.view.focused == p && m.view.cursors[p] == idx {
		return CurrentTheme.Focused.Render("> "), true
	}
	return "  ", false
}

func (m DashboardModel) upcomingLines(width int) []string {
	start, end := visibleWindow(m.view.cursors[PaneUpcoming], len(m.plan.Assignments), config.MaxVisibleSessions)
	var lines []string
	for i := start; i < end; i++ {
		a := m.plan.Assignments[i]
		prefix, selected := m.itemPrefix(PaneUpcoming, i)
		label := fmt.Sprintf("%s  %s/%s", formatDay(a.Session.ScheduledDate),
			formatHours(a.HoursUsed()), formatHours(scheduler.Capacity(a.Session)))
		if a.Session.Note != "" {
			label += "  " + a.Session.Note
		}
		label = truncateLabel(label, width-4)
		if selected {
			label = CurrentTheme.Focused.Render(label)
		} else {
			label = CurrentTheme.Task.Render(label)
		}
		lines = append(lines, prefix+label)

		if len(a.AssignedTasks) == 0 {
			lines = append(lines, "    "+CurrentTheme.Dim.Render(scheduler.NoTasksAssigned))
		}
		for _, alloc := range a.AssignedTasks {
			item := truncateLabel(fmt.Sprintf("%s %s", alloc.Task.Title, formatHours(alloc.Hours)), width-8)
			lines = append(lines, "    "+priorityBadge(alloc.Task.Priority)+" "+CurrentTheme.Subtask.Render(item))
		}
	}
	return lines
}

func (m DashboardModel) pastLines(width int) []string {
	start, end := visibleWindow(m.view.cursors[PanePast], len(m.plan.Past), config.MaxVisibleSessions)
	var lines []string
	for i := start; i < end; i++ {
		s := m.plan.Past[i]
		prefix, selected := m.itemPrefix(PanePast, i)
		state := "missed"
		if s.IsCompleted() || s.HasCompletedTasks() {
			state = FormatTaskCount(len(s.CompletedTaskIDs)) + " done"
		}
		label := truncateLabel(fmt.Sprintf("%s  %s  %s", formatDay(s.ScheduledDate), formatAge(s.ScheduledDate, m.today()), state), width-4)
		switch {
		case selected:
			label = CurrentTheme.Focused.Render(label)
		case s.IsCompleted():
			label = CurrentTheme.Done.Render(label)
		default:
			label = CurrentTheme.Dim.Render(label)
		}
		lines = append(lines, prefix+label)
	}
	return lines
}

func (m DashboardModel) backlogLines(width int) []string {
	var lines []string
	for i, t := range m.plan.Units {
		prefix, selected := m.itemPrefix(PaneBacklog, i)
		indent := ""
		style := CurrentTheme.Task
		if t.ParentID != nil {
			indent = "↳ "
			style = CurrentTheme.Subtask
		}
		label := truncateLabel(fmt.Sprintf("%s%s %s", indent, t.Title, formatHours(scheduler.RequiredHours(t))), width-6)
		if selected {
			style = CurrentTheme.Focused
		}
		lines = append(lines, prefix+priorityBadge(t.Priority)+" "+style.Render(label))
	}
	start, end := visibleWindow(m.view.cursors[PaneBacklog], len(lines), config.MaxVisibleSessions*2)
	return lines[start:end]
}

func (m DashboardModel) renderFooter() string {
	var rows []string
	if len(m.plan.Shortfalls) > 0 {
		var parts []string
		for i, s := range m.plan.Shortfalls {
			if i == config.MaxShortfallsDisplayed {
				parts = append(parts, fmt.Sprintf("+%d more", len(m.plan.Shortfalls)-i))
				break
			}
			parts = append(parts, fmt.Sprintf("%s (%s short)", s.Task.Title, formatHours(s.Missing())))
		}
		rows = append(rows, CurrentTheme.Warn.Render("Not scheduled: "+strings.Join(parts, ", ")))
	}
	switch {
	case m.err != nil:
		rows = append(rows, CurrentTheme.Error.Render("Error: "+m.err.Error()))
	case m.Message != "":
		rows = append(rows, CurrentTheme.Highlight.Render(m.Message))
	}
	if m.view.showHelp {
		rows = append(rows, CurrentTheme.Dim.Render(m.registry.HelpForPane(m.view.focused)))
	} else {
		rows = append(rows, CurrentTheme.Dim.Render("[?]help [q]quit"))
	}
	return strings.Join(rows, "\n")
}
