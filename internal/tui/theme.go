package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name           string
	Base           lipgloss.Style
	Border         lipgloss.Color
	Header         lipgloss.Style
	Task           lipgloss.Style
	Subtask        lipgloss.Style
	Done           lipgloss.Style
	Warn           lipgloss.Style
	Error          lipgloss.Style
	Input          lipgloss.Style
	PriorityHigh   lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityLow    lipgloss.Style
	Focused        lipgloss.Style
	Dim            lipgloss.Style
	Highlight      lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:           "Default",
		Base:           lipgloss.NewStyle().Margin(1, 2),
		Border:         lipgloss.Color("63"),
		Header:         lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Task:           lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Subtask:        lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		Done:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Warn:           lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Input:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(60),
		PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Focused:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:      lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:           "Dracula",
		Base:           lipgloss.NewStyle().Margin(1, 2),
		Border:         lipgloss.Color("62"),                                              // Purple
		Header:         lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),   // Cyan
		Task:           lipgloss.NewStyle().Foreground(lipgloss.Color("255")),             // White
		Subtask:        lipgloss.NewStyle().Foreground(lipgloss.Color("189")),             // Lavender
		Done:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true), // Comment
		Warn:           lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),  // Orange
		Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),  // Red
		Input:          lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(60),
		PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true), // Pink
		PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("228")),            // Yellow
		PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),            // Grey
		Focused:        lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:      lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

var currentThemeKey = "default"

// SetTheme switches to the named theme and reports whether it exists.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if ok {
		CurrentTheme, currentThemeKey = t, name
	}
	return ok
}

// ThemeNames lists theme keys in a stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NextTheme returns the theme key that follows current, wrapping around.
func NextTheme(current string) string {
	names := ThemeNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
