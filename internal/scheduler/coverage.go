package scheduler

import "github.com/akyairhashvil/sessionplan/internal/models"

// Shortfall is a work-unit whose required hours did not all fit.
type Shortfall struct {
	Task      models.Task
	Required  float64
	Allocated float64
}

// Missing returns the hours that were dropped for this run.
func (s Shortfall) Missing() float64 {
	return s.Required - s.Allocated
}

// Shortfalls reports the under-allocated work-units of an Allocate result,
// in allocation order. Units are matched by task ID.
func Shortfalls(backlog []models.Task, assignments []Assignment) []Shortfall {
	allocated := allocatedHours(assignments, len(assignments)-1)
	var out []Shortfall
	for _, unit := range WorkUnits(backlog) {
		required := RequiredHours(unit)
		got := allocated[unit.ID]
		if required-got > epsilon {
			out = append(out, Shortfall{Task: unit, Required: required, Allocated: got})
		}
	}
	return out
}

// Finished returns the work-units of assignments[index] that are fully
// covered once that session ends and do not continue in a later session.
func Finished(assignments []Assignment, index int) []models.Task {
	if index < 0 || index >= len(assignments) {
		return nil
	}
	later := make(map[string]bool)
	for _, a := range assignments[index+1:] {
		for _, at := range a.AssignedTasks {
			later[at.Task.ID] = true
		}
	}
	allocated := allocatedHours(assignments, index)
	var out []models.Task
	for _, at := range assignments[index].AssignedTasks {
		if later[at.Task.ID] {
			continue
		}
		if RequiredHours(at.Task)-allocated[at.Task.ID] > epsilon {
			continue
		}
		out = append(out, at.Task)
	}
	return out
}

// allocatedHours sums hours per task ID over assignments[0..last].
func allocatedHours(assignments []Assignment, last int) map[string]float64 {
	hours := make(map[string]float64)
	for i := 0; i <= last && i < len(assignments); i++ {
		for _, at := range assignments[i].AssignedTasks {
			hours[at.Task.ID] += at.Hours
		}
	}
	return hours
}
