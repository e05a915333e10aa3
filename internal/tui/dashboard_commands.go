package tui

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/sessionplan/internal/util"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---
type planLoadedMsg struct{ plan Plan }

// actionDoneMsg reports a successful write; the plan is reloaded after it.
type actionDoneMsg struct{ status string }

type statusMsg string

type errMsg struct{ err error }

var writeClipboard = clipboard.WriteAll

func (m DashboardModel) loadPlanCmd() tea.Cmd {
	ctx, store, project, today := m.ctx, m.store, m.project, m.today()
	return func() tea.Msg {
		plan, err := BuildPlan(ctx, store, project, today)
		if err != nil {
			util.LogError("load plan", err)
			return errMsg{err}
		}
		return planLoadedMsg{plan}
	}
}

// storeCmd runs a write against the store and reports status on success.
func (m DashboardModel) storeCmd(status string, fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		if err := fn(ctx); err != nil {
			util.LogError(status, err)
			return errMsg{err}
		}
		return actionDoneMsg{status}
	}
}

func copySummaryCmd(summary string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(summary); err != nil {
			return errMsg{fmt.Errorf("copy to clipboard: %w", err)}
		}
		return statusMsg("Copied: " + summary)
	}
}

func (m DashboardModel) exportPDFCmd() tea.Cmd {
	plan, dir := m.plan, m.reportsDir
	return func() tea.Msg {
		path, err := GeneratePDFReport(plan, dir)
		if err != nil {
			util.LogError("export pdf", err)
			return errMsg{err}
		}
		return statusMsg("PDF report generated: " + path)
	}
}

func (m DashboardModel) saveThemeCmd(name string) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		if err := store.SetSetting(ctx, themeSettingKey, name); err != nil {
			return errMsg{fmt.Errorf("save theme: %w", err)}
		}
		return statusMsg("Theme: " + CurrentTheme.Name)
	}
}
