package tui

import (
	"context"
	"testing"
	"time"

	"github.com/akyairhashvil/sessionplan/internal/models"
	"github.com/akyairhashvil/sessionplan/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"
)

var testProject = models.Project{ID: "p1", Name: "Thesis", Slug: "thesis"}

func fixedToday() time.Time { return testutil.Day(0) }

// fixtureSessions holds two upcoming two-hour sessions and one completed
// session in the past.
func fixtureSessions() []models.Session {
	return []models.Session{
		testutil.NewSession("old").OnDay(-2).WithStatus(models.SessionStatusCompleted).WithCompletedTasks("z").Build(),
		testutil.NewSession("s1").OnDay(1).WithHours(2).Build(),
		testutil.NewSession("s2").OnDay(2).WithHours(2).Build(),
	}
}

// fixtureBacklog allocates as s1: A, B1 and s2: B2, C with one hour of C
// left over.
func fixtureBacklog() []models.Task {
	return []models.Task{
		testutil.NewTask("A").WithPriority(models.PriorityHigh).WithHours(1).Build(),
		testutil.NewTask("B").CreatedAfter(1).WithSubtasks(
			testutil.NewTask("B1").WithHours(1).Build(),
			testutil.NewTask("B2").WithHours(1).Build(),
		).Build(),
		testutil.NewTask("C").WithPriority(models.PriorityLow).WithHours(2).CreatedAfter(2).Build(),
	}
}

func setupTestDashboard(t *testing.T) (DashboardModel, *MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	store.EXPECT().GetSetting(gomock.Any(), themeSettingKey).Return("", false).AnyTimes()
	t.Cleanup(func() { SetTheme("default") })

	m := NewDashboardModel(context.Background(), store, testProject, Options{
		ReportsDir:          t.TempDir(),
		DefaultSessionHours: 2,
		Theme:               "default",
		Today:               fixedToday,
	})
	m.width, m.height = 120, 40
	return m, store
}

// loadedDashboard runs the initial load against the fixture data.
func loadedDashboard(t *testing.T) (DashboardModel, *MockStore) {
	t.Helper()
	m, store := setupTestDashboard(t)
	store.EXPECT().GetSessions(gomock.Any(), testProject.ID).Return(fixtureSessions(), nil)
	store.EXPECT().GetBacklog(gomock.Any(), testProject.ID).Return(fixtureBacklog(), nil)
	m = update(t, m, m.Init()())
	if !m.loaded {
		t.Fatalf("expected plan to be loaded")
	}
	return m, store
}

func update(t *testing.T, m DashboardModel, msg tea.Msg) DashboardModel {
	t.Helper()
	model, _ := m.Update(msg)
	next, ok := model.(DashboardModel)
	if !ok {
		t.Fatalf("expected DashboardModel, got %T", model)
	}
	return next
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func press(t *testing.T, m DashboardModel, key string) (DashboardModel, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(keyMsg(key))
	return model.(DashboardModel), cmd
}
