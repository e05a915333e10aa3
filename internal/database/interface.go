package database

import (
	"context"

	"github.com/akyairhashvil/sessionplan/internal/models"
)

// ProjectRepository defines project-related database operations.
type ProjectRepository interface {
	GetProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, name, slug string) (string, error)
	GetProjectBySlug(ctx context.Context, slug string) (models.Project, bool, error)
	EnsureProject(ctx context.Context, slug string) (models.Project, error)
	EnsureDefaultProject(ctx context.Context) (models.Project, error)
}

// TaskRepository defines task-related database operations.
type TaskRepository interface {
	AddTask(ctx context.Context, projectID string, seed TaskSeed) (string, error)
	AddSubtask(ctx context.Context, parentID string, seed TaskSeed) (string, error)
	GetTask(ctx context.Context, id string) (models.Task, error)
	GetBacklog(ctx context.Context, projectID string) ([]models.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) error
	UpdateTaskPriority(ctx context.Context, id string, priority models.Priority) error
	UpdateTaskEstimate(ctx context.Context, id string, hours *float64) error
	DeleteTask(ctx context.Context, id string) error
}

// SessionRepository defines session-related database operations.
type SessionRepository interface {
	AddSession(ctx context.Context, projectID string, seed SessionSeed) (string, error)
	GetSession(ctx context.Context, id string) (models.Session, error)
	GetSessions(ctx context.Context, projectID string) ([]models.Session, error)
	UpdateSessionHours(ctx context.Context, id string, hours float64) error
	DeleteSession(ctx context.Context, id string) error
	CompleteSession(ctx context.Context, sessionID string, taskIDs []string) error
}

// SettingsRepository stores key/value preferences.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -source=interface.go -destination=mock_repository_test.go -package=database
type Repository interface {
	ProjectRepository
	TaskRepository
	SessionRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
