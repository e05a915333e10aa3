package testutil

import (
	"time"

	"github.com/akyairhashvil/sessionplan/internal/models"
	"github.com/akyairhashvil/sessionplan/internal/util"
)

// Epoch is a fixed reference instant for deterministic fixtures.
var Epoch = time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)

// Day returns the calendar date n days after Epoch.
func Day(n int) time.Time {
	return time.Date(Epoch.Year(), Epoch.Month(), Epoch.Day()+n, 0, 0, 0, 0, time.UTC)
}

// TaskBuilder provides fluent API for creating test tasks.
type TaskBuilder struct {
	task models.Task
}

func NewTask(id string) *TaskBuilder {
	return &TaskBuilder{
		task: models.Task{
			ID:             id,
			Title:          id,
			Priority:       models.PriorityMedium,
			EstimatedHours: util.Ptr(1.0),
			Status:         models.TaskStatusTodo,
			CreatedAt:      Epoch,
		},
	}
}

func (b *TaskBuilder) WithTitle(title string) *TaskBuilder {
	b.task.Title = title
	return b
}

func (b *TaskBuilder) WithPriority(p models.Priority) *TaskBuilder {
	b.task.Priority = p
	return b
}

func (b *TaskBuilder) WithHours(h float64) *TaskBuilder {
	b.task.EstimatedHours = &h
	return b
}

func (b *TaskBuilder) WithoutEstimate() *TaskBuilder {
	b.task.EstimatedHours = nil
	return b
}

// CreatedAfter sets CreatedAt to Epoch plus the given number of minutes.
func (b *TaskBuilder) CreatedAfter(minutes int) *TaskBuilder {
	b.task.CreatedAt = Epoch.Add(time.Duration(minutes) * time.Minute)
	return b
}

func (b *TaskBuilder) WithStatus(s models.TaskStatus) *TaskBuilder {
	b.task.Status = s
	return b
}

func (b *TaskBuilder) WithProject(id string) *TaskBuilder {
	b.task.ProjectID = id
	return b
}

func (b *TaskBuilder) WithSubtasks(subtasks ...models.Task) *TaskBuilder {
	b.task.Subtasks = append(b.task.Subtasks, subtasks...)
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}

// SessionBuilder provides fluent API for creating test sessions.
type SessionBuilder struct {
	session models.Session
}

func NewSession(id string) *SessionBuilder {
	return &SessionBuilder{
		session: models.Session{
			ID:             id,
			ScheduledDate:  Day(1),
			ScheduledHours: 2,
			Status:         models.SessionStatusScheduled,
		},
	}
}

// OnDay schedules the session n days after Epoch.
func (b *SessionBuilder) OnDay(n int) *SessionBuilder {
	b.session.ScheduledDate = Day(n)
	return b
}

func (b *SessionBuilder) WithHours(h float64) *SessionBuilder {
	b.session.ScheduledHours = h
	return b
}

func (b *SessionBuilder) WithStatus(s models.SessionStatus) *SessionBuilder {
	b.session.Status = s
	return b
}

func (b *SessionBuilder) WithCompletedTasks(ids ...string) *SessionBuilder {
	b.session.CompletedTaskIDs = append(b.session.CompletedTaskIDs, ids...)
	return b
}

func (b *SessionBuilder) WithProject(id string) *SessionBuilder {
	b.session.ProjectID = id
	return b
}

func (b *SessionBuilder) Build() models.Session {
	return b.session
}
