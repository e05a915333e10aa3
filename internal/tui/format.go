package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/sessionplan/internal/config"
	"github.com/akyairhashvil/sessionplan/internal/models"
	"github.com/akyairhashvil/sessionplan/internal/util"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
)

// formatHours renders hours with at most two decimals, e.g. "1.5h".
func formatHours(h float64) string {
	return humanize.FtoaWithDigits(h, 2) + "h"
}

func formatDay(t time.Time) string {
	return t.Format("Mon 2006-01-02")
}

// formatAge describes how long ago a session date was relative to today.
func formatAge(date, today time.Time) string {
	date, today = util.DateOf(date), util.DateOf(today)
	if date.Equal(today) {
		return "today"
	}
	return humanize.RelTime(date, today, "ago", "from now")
}

// FormatTaskCount formats completed-task counts for display.
func FormatTaskCount(n int) string {
	switch n {
	case 0:
		return "no tasks"
	case 1:
		return "1 task"
	default:
		return fmt.Sprintf("%s tasks", humanize.Comma(int64(n)))
	}
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func priorityBadge(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return CurrentTheme.PriorityHigh.Render("H")
	case models.PriorityMedium:
		return CurrentTheme.PriorityMedium.Render("M")
	case models.PriorityLow:
		return CurrentTheme.PriorityLow.Render("L")
	default:
		return CurrentTheme.Dim.Render("?")
	}
}
