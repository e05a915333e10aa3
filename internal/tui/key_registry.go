package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to a key press. Returning false lets lower-priority
// bindings for the same key try.
type KeyHandler func(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool)

// KeyBinding ties a key to a handler. Empty Panes means every pane; bindings
// without a Description are left out of the help line.
type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Panes       []Pane
	Priority    int
}

func (b KeyBinding) AppliesToPane(p Pane) bool {
	return len(b.Panes) == 0 || slices.Contains(b.Panes, p)
}

// HandlerRegistry keeps bindings ordered by descending priority; equal
// priorities keep registration order.
type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	at := len(r.bindings)
	for i, existing := range r.bindings {
		if b.Priority > existing.Priority {
			at = i
			break
		}
	}
	r.bindings = slices.Insert(r.bindings, at, b)
}

// Handle dispatches key for the focused pane.
func (r *HandlerRegistry) Handle(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool) {
	for _, b := range r.BindingsForPane(m.view.focused) {
		if b.Key != key {
			continue
		}
		if next, cmd, handled := b.Handler(m, key); handled {
			return next, cmd, true
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsForPane(p Pane) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if b.AppliesToPane(p) {
			out = append(out, b)
		}
	}
	return out
}

// HelpForPane renders "[key]desc" entries separated by '|', first binding per
// key wins.
func (r *HandlerRegistry) HelpForPane(p Pane) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsForPane(p) {
		if b.Description == "" || seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}
