package tui

import (
	"context"
	"strings"
	"time"

	"github.com/akyairhashvil/sessionplan/internal/config"
	"github.com/akyairhashvil/sessionplan/internal/database"
	"github.com/akyairhashvil/sessionplan/internal/models"
	"github.com/akyairhashvil/sessionplan/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const themeSettingKey = "theme"

// Options configures a DashboardModel.
type Options struct {
	ReportsDir          string
	DefaultSessionHours float64
	Theme               string
	Today               func() time.Time
}

// --- Model ---
type DashboardModel struct {
	ctx                 context.Context
	store               Store
	project             models.Project
	reportsDir          string
	defaultSessionHours float64
	today               func() time.Time
	registry            *HandlerRegistry

	plan   Plan
	loaded bool
	view   ViewState
	form   InputForm

	err           error
	Message       string
	width, height int
}

func NewDashboardModel(ctx context.Context, store Store, project models.Project, opts Options) DashboardModel {
	if opts.Today == nil {
		opts.Today = util.Today
	}
	if opts.DefaultSessionHours <= 0 {
		opts.DefaultSessionHours = config.DefaultSessionHours
	}
	theme := opts.Theme
	if saved, ok := store.GetSetting(ctx, themeSettingKey); ok {
		theme = saved
	}
	if !SetTheme(theme) {
		SetTheme(config.DefaultTheme)
	}
	return DashboardModel{
		ctx:                 ctx,
		store:               store,
		project:             project,
		reportsDir:          opts.ReportsDir,
		defaultSessionHours: opts.DefaultSessionHours,
		today:               opts.Today,
		registry:            defaultRegistry(),
		form:                newInputForm(),
	}
}

func (m DashboardModel) Init() tea.Cmd { return m.loadPlanCmd() }

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case planLoadedMsg:
		m.plan, m.loaded = msg.plan, true
		m.view.clamp(m.paneLengths())
		return m, nil
	case actionDoneMsg:
		m.Message = msg.status
		return m, m.loadPlanCmd()
	case statusMsg:
		m.Message = string(msg)
		return m, nil
	case errMsg:
		m.err = msg.err
		return m, nil
	case tea.KeyMsg:
		if m.form.Active() {
			return m.handleInputMode(msg)
		}
		// Clear transient messages on keypress
		m.err, m.Message = nil, ""
		next, cmd, _ := m.registry.Handle(m, msg.String())
		return next, cmd
	}
	if m.form.Active() {
		var cmd tea.Cmd
		m.form.input, cmd = m.form.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m DashboardModel) paneLengths() [paneCount]int {
	return [paneCount]int{
		PaneUpcoming: len(m.plan.Assignments),
		PanePast:     len(m.plan.Past),
		PaneBacklog:  len(m.plan.Units),
	}
}

func (m DashboardModel) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.form.Close()
		return m, nil
	case tea.KeyEnter:
		return m.submitInput()
	}
	var cmd tea.Cmd
	m.form.input, cmd = m.form.input.Update(msg)
	return m, cmd
}

func (m DashboardModel) submitInput() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.form.input.Value())
	kind, parentID := m.form.kind, m.form.parentID
	m.form.Close()
	if value == "" {
		return m, nil
	}

	switch kind {
	case InputTask, InputSubtask:
		in := util.ParseTaskInput(value)
		seed := database.TaskSeed{
			Title:          in.Title,
			Priority:       models.Priority(in.Priority),
			EstimatedHours: in.Hours,
		}
		if kind == InputSubtask {
			return m, m.storeCmd("Added subtask: "+seed.Title, func(ctx context.Context) error {
				_, err := m.store.AddSubtask(ctx, parentID, seed)
				return err
			})
		}
		return m, m.storeCmd("Added task: "+seed.Title, func(ctx context.Context) error {
			_, err := m.store.AddTask(ctx, m.project.ID, seed)
			return err
		})
	case InputSession:
		in, err := util.ParseSessionInput(value, m.today(), m.defaultSessionHours)
		if err != nil {
			m.err = err
			return m, nil
		}
		seed := database.SessionSeed{Date: in.Date, Hours: in.Hours, Note: in.Note}
		status := "Added session on " + util.FormatDate(in.Date)
		return m, m.storeCmd(status, func(ctx context.Context) error {
			_, err := m.store.AddSession(ctx, m.project.ID, seed)
			return err
		})
	}
	return m, nil
}

// openForm shows the prompt and starts the cursor blinking.
func (m DashboardModel) openForm(kind InputKind, prompt, placeholder string) (DashboardModel, tea.Cmd) {
	m.form.Open(kind, prompt, placeholder)
	return m, textinput.Blink
}
