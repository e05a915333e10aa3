package models

import (
	"strings"
	"time"
)

// Priority is the urgency label of a task. Unknown values rank below low.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority maps user input to a Priority. Unrecognized input is returned
// as-is so the scheduler can rank it as unknown.
func ParsePriority(s string) Priority {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "h", "high", "1":
		return PriorityHigh
	case "m", "med", "medium", "2":
		return PriorityMedium
	case "l", "low", "3":
		return PriorityLow
	default:
		return Priority(s)
	}
}

// TaskStatus enumerates the lifecycle of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// SessionStatus enumerates the states of a work session.
type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusCompleted SessionStatus = "completed"
)

// Project scopes tasks and sessions.
type Project struct {
	ID        string
	Name      string
	Slug      string
	CreatedAt time.Time
}

// Task represents a unit of work (or a subtask when ParentID is set).
type Task struct {
	ID             string
	ProjectID      string
	ParentID       *string // For Subtasks
	Title          string
	Priority       Priority
	EstimatedHours *float64 // nil means unestimated
	Status         TaskStatus
	CreatedAt      time.Time
	CompletedAt    *time.Time
	Subtasks       []Task
}

// IsCompleted reports whether the task is done.
func (t Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// Session represents a scheduled block of available work time.
type Session struct {
	ID               string
	ProjectID        string
	ScheduledDate    time.Time // calendar date; time of day is ignored
	ScheduledHours   float64
	Status           SessionStatus
	CompletedTaskIDs []string // linked completed-task records
	Note             string
	CreatedAt        time.Time
}

// IsCompleted reports whether the session was marked done.
func (s Session) IsCompleted() bool {
	return s.Status == SessionStatusCompleted
}

// HasCompletedTasks reports whether completed-task records are linked.
func (s Session) HasCompletedTasks() bool {
	return len(s.CompletedTaskIDs) > 0
}
