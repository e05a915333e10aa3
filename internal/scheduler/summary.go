package scheduler

import "strings"

// NoTasksAssigned is the summary of a session with nothing planned now or later.
const NoTasksAssigned = "No tasks assigned"

// Summarize renders the work of assignments[index] followed by a preview of
// everything planned in later sessions, e.g. "A, B, Next: C".
func Summarize(assignments []Assignment, index int) string {
	var current, later []string
	for i, a := range assignments {
		switch {
		case i == index:
			current = append(current, a.Titles()...)
		case i > index:
			later = append(later, a.Titles()...)
		}
	}
	switch {
	case len(current) > 0 && len(later) > 0:
		return strings.Join(current, ", ") + ", Next: " + strings.Join(later, ", ")
	case len(current) > 0:
		return strings.Join(current, ", ")
	case len(later) > 0:
		return "Next: " + strings.Join(later, ", ")
	default:
		return NoTasksAssigned
	}
}
