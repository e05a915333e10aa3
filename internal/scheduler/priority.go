// Package scheduler plans an outstanding task backlog into upcoming work
// sessions. Every function here is pure: inputs are never mutated and results
// are rebuilt from scratch on each call, so callers recompute whenever the
// backlog or the session list changes.
package scheduler

import (
	"cmp"
	"math"
	"slices"

	"github.com/akyairhashvil/sessionplan/internal/models"
)

// DefaultEstimateHours is the required time of a task without a usable estimate.
const DefaultEstimateHours = 1.0

// epsilon absorbs floating point residue when comparing hours.
const epsilon = 1e-9

// Rank maps a priority to its ordinal. Unknown priorities rank below low.
func Rank(p models.Priority) int {
	switch p {
	case models.PriorityHigh:
		return 3
	case models.PriorityMedium:
		return 2
	case models.PriorityLow:
		return 1
	default:
		return 0
	}
}

// Compare orders work-units by priority rank descending, then by creation
// time ascending (older first).
func Compare(a, b models.Task) int {
	if ra, rb := Rank(a.Priority), Rank(b.Priority); ra != rb {
		return cmp.Compare(rb, ra)
	}
	return a.CreatedAt.Compare(b.CreatedAt)
}

// RequiredHours returns the hours a work-unit needs, falling back to
// DefaultEstimateHours for missing, non-finite or non-positive estimates.
func RequiredHours(t models.Task) float64 {
	if t.EstimatedHours == nil {
		return DefaultEstimateHours
	}
	h := *t.EstimatedHours
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return DefaultEstimateHours
	}
	return h
}

// Capacity returns the usable hours of a session. Negative or non-finite
// values count as zero.
func Capacity(s models.Session) float64 {
	h := s.ScheduledHours
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return 0
	}
	return h
}

// WorkUnits flattens a backlog into the ordered sequence the allocator
// consumes. A task with open subtasks contributes those subtasks (one level
// only); any other open task contributes itself. Completed entries are dropped.
func WorkUnits(backlog []models.Task) []models.Task {
	units := make([]models.Task, 0, len(backlog))
	for _, t := range backlog {
		if t.IsCompleted() {
			continue
		}
		open := openSubtasks(t)
		if len(open) == 0 {
			unit := t
			unit.Subtasks = nil
			units = append(units, unit)
			continue
		}
		slices.SortStableFunc(open, Compare)
		units = append(units, open...)
	}
	slices.SortStableFunc(units, Compare)
	return units
}

func openSubtasks(parent models.Task) []models.Task {
	var open []models.Task
	for _, st := range parent.Subtasks {
		if st.IsCompleted() {
			continue
		}
		st.Subtasks = nil
		if st.ParentID == nil {
			id := parent.ID
			st.ParentID = &id
		}
		if st.ProjectID == "" {
			st.ProjectID = parent.ProjectID
		}
		open = append(open, st)
	}
	return open
}
