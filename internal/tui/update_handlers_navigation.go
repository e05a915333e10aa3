package tui

import tea "github.com/charmbracelet/bubbletea"

func handleTabFocus(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool) {
	switch key {
	case "tab":
		m.view.focusNext()
	case "shift+tab":
		m.view.focusPrev()
	default:
		return m, nil, false
	}
	return m, nil, true
}

func handleArrowKeys(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool) {
	length := m.paneLengths()[m.view.focused]
	switch key {
	case "up", "k":
		m.view.move(-1, length)
	case "down", "j":
		m.view.move(1, length)
	default:
		return m, nil, false
	}
	return m, nil, true
}

// visibleWindow returns the [start, end) slice of n items that keeps cursor
// on screen when at most max fit.
func visibleWindow(cursor, n, max int) (int, int) {
	if n <= max || max <= 0 {
		return 0, n
	}
	start := cursor - max + 1
	if start < 0 {
		start = 0
	}
	return start, start + max
}
