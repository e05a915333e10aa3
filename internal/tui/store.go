package tui

import (
	"context"

	"github.com/akyairhashvil/sessionplan/internal/database"
	"github.com/akyairhashvil/sessionplan/internal/models"
)

// PlanSource supplies the inputs of a plan.
type PlanSource interface {
	GetSessions(ctx context.Context, projectID string) ([]models.Session, error)
	GetBacklog(ctx context.Context, projectID string) ([]models.Task, error)
}

// Store defines the persistence methods the TUI requires.
//
//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=tui
type Store interface {
	PlanSource

	AddTask(ctx context.Context, projectID string, seed database.TaskSeed) (string, error)
	AddSubtask(ctx context.Context, parentID string, seed database.TaskSeed) (string, error)
	UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) error

	AddSession(ctx context.Context, projectID string, seed database.SessionSeed) (string, error)
	CompleteSession(ctx context.Context, sessionID string, taskIDs []string) error
	DeleteSession(ctx context.Context, id string) error

	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

var _ Store = (*database.Database)(nil)
