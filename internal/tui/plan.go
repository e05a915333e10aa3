package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/sessionplan/internal/models"
	"github.com/akyairhashvil/sessionplan/internal/scheduler"
	"github.com/akyairhashvil/sessionplan/internal/util"
)

// Plan is one computed view of a project: sessions split around today, the
// backlog spread over the upcoming ones, and whatever did not fit.
type Plan struct {
	Project     models.Project
	Today       time.Time
	Past        []models.Session
	Assignments []scheduler.Assignment
	Backlog     []models.Task
	Units       []models.Task
	Shortfalls  []scheduler.Shortfall
}

// BuildPlan loads sessions and backlog for the project and runs the
// scheduler over them.
func BuildPlan(ctx context.Context, src PlanSource, project models.Project, today time.Time) (Plan, error) {
	sessions, err := src.GetSessions(ctx, project.ID)
	if err != nil {
		return Plan{}, fmt.Errorf("load sessions: %w", err)
	}
	backlog, err := src.GetBacklog(ctx, project.ID)
	if err != nil {
		return Plan{}, fmt.Errorf("load backlog: %w", err)
	}
	c := scheduler.Classify(today, sessions)
	assignments := scheduler.Allocate(c.Upcoming, backlog)
	return Plan{
		Project:     project,
		Today:       util.DateOf(today),
		Past:        c.Past,
		Assignments: assignments,
		Backlog:     backlog,
		Units:       scheduler.WorkUnits(backlog),
		Shortfalls:  scheduler.Shortfalls(backlog, assignments),
	}, nil
}

// Summary is the clipboard text for the upcoming session at index i.
func (p Plan) Summary(i int) string {
	return scheduler.Summarize(p.Assignments, i)
}

// TaskTitle finds a backlog task or subtask title by id.
func (p Plan) TaskTitle(id string) string {
	for _, t := range p.Backlog {
		if t.ID == id {
			return t.Title
		}
		for _, s := range t.Subtasks {
			if s.ID == id {
				return s.Title
			}
		}
	}
	return ""
}

// Capacity returns the planned and available hours across upcoming sessions.
func (p Plan) Capacity() (used, available float64) {
	for _, a := range p.Assignments {
		used += a.HoursUsed()
		available += scheduler.Capacity(a.Session)
	}
	return used, available
}

// RenderPlain formats the plan as plain text for non-interactive output.
func RenderPlain(p Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s plan for %s\n", p.Project.Name, util.FormatDate(p.Today))
	used, available := p.Capacity()
	fmt.Fprintf(&b, "%d upcoming sessions, %s of %s planned\n\n",
		len(p.Assignments), formatHours(used), formatHours(available))

	if len(p.Assignments) == 0 {
		b.WriteString("No upcoming sessions.\n")
	}
	for i, a := range p.Assignments {
		fmt.Fprintf(&b, "%d. %s  %s/%s", i+1, formatDay(a.Session.ScheduledDate),
			formatHours(a.HoursUsed()), formatHours(scheduler.Capacity(a.Session)))
		if a.Session.Note != "" {
			fmt.Fprintf(&b, "  (%s)", a.Session.Note)
		}
		b.WriteString("\n")
		if len(a.AssignedTasks) == 0 {
			fmt.Fprintf(&b, "   %s\n", scheduler.NoTasksAssigned)
		}
		for _, alloc := range a.AssignedTasks {
			fmt.Fprintf(&b, "   - %s  %s\n", alloc.Task.Title, formatHours(alloc.Hours))
		}
	}

	if len(p.Shortfalls) > 0 {
		b.WriteString("\nNot scheduled:\n")
		for _, s := range p.Shortfalls {
			fmt.Fprintf(&b, "   - %s  %s of %s missing\n", s.Task.Title,
				formatHours(s.Missing()), formatHours(s.Required))
		}
	}
	return b.String()
}
