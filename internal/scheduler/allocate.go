package scheduler

import (
	"math"

	"github.com/akyairhashvil/sessionplan/internal/models"
)

// Allocation is one work-unit's share of a session.
type Allocation struct {
	Task  models.Task
	Hours float64
}

// Assignment is a session annotated with the work planned into it.
type Assignment struct {
	Session       models.Session
	AssignedTasks []Allocation
}

// HoursUsed sums the hours allocated to the session.
func (a Assignment) HoursUsed() float64 {
	var total float64
	for _, at := range a.AssignedTasks {
		total += at.Hours
	}
	return total
}

// Titles lists the assigned work-unit titles in order.
func (a Assignment) Titles() []string {
	titles := make([]string, 0, len(a.AssignedTasks))
	for _, at := range a.AssignedTasks {
		titles = append(titles, at.Task.Title)
	}
	return titles
}

// fold is the allocator state threaded through the work-unit sequence.
type fold struct {
	cursor int     // index of the session being filled
	used   float64 // hours already consumed in that session
}

// Allocate distributes the backlog over the upcoming sessions, which must
// already be in chronological order. Work-units are taken in WorkUnits order
// and poured into the session at the cursor; a unit that does not fit spills
// into the next session. Hours that remain once every session is full are
// dropped for this run. The result has one Assignment per input session, in
// input order.
func Allocate(upcoming []models.Session, backlog []models.Task) []Assignment {
	out := make([]Assignment, len(upcoming))
	for i, s := range upcoming {
		out[i] = Assignment{Session: s}
	}
	if len(out) == 0 {
		return out
	}
	var st fold
	for _, unit := range WorkUnits(backlog) {
		if st.cursor >= len(out) {
			break
		}
		st = st.place(out, unit)
	}
	return out
}

// place pours one work-unit into out starting at the cursor and returns the
// advanced state.
func (st fold) place(out []Assignment, unit models.Task) fold {
	remaining := RequiredHours(unit)
	recordedAt := -1
	for remaining > epsilon && st.cursor < len(out) {
		a := &out[st.cursor]
		capacity := Capacity(a.Session)
		available := capacity - st.used
		if available > epsilon {
			placed := math.Min(remaining, available)
			if recordedAt == st.cursor {
				a.AssignedTasks[len(a.AssignedTasks)-1].Hours += placed
			} else {
				a.AssignedTasks = append(a.AssignedTasks, Allocation{Task: unit, Hours: placed})
				recordedAt = st.cursor
			}
			remaining -= placed
			if placed == available {
				st.used = capacity
			} else {
				st.used += placed
			}
		}
		if st.used >= capacity-epsilon || remaining <= epsilon {
			if remaining > epsilon {
				st.cursor++
				st.used = 0
			}
		}
	}
	return st
}
