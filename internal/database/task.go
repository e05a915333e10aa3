package database

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"

	"github.com/akyairhashvil/sessionplan/internal/config"
	"github.com/akyairhashvil/sessionplan/internal/models"
)

// TaskSeed carries the user-supplied fields of a new task.
type TaskSeed struct {
	Title          string
	Priority       models.Priority
	EstimatedHours *float64
}

func (s TaskSeed) normalize() (TaskSeed, error) {
	s.Title = strings.Join(strings.Fields(s.Title), " ")
	if s.Title == "" {
		return s, invalid("task title is required")
	}
	if len(s.Title) > config.MaxTitleLength {
		return s, invalid("task title longer than %d characters", config.MaxTitleLength)
	}
	if s.Priority == "" {
		s.Priority = models.PriorityMedium
	}
	p, err := validPriority(s.Priority)
	if err != nil {
		return s, err
	}
	s.Priority = p
	if s.EstimatedHours != nil {
		if err := validEstimate(*s.EstimatedHours); err != nil {
			return s, err
		}
	}
	return s, nil
}

func validPriority(p models.Priority) (models.Priority, error) {
	switch p = models.ParsePriority(string(p)); p {
	case models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
		return p, nil
	default:
		return "", invalid("unknown priority %q (use high, medium or low)", p)
	}
}

func validEstimate(h float64) error {
	if math.IsNaN(h) || h <= 0 || h > config.MaxTaskHours {
		return invalid("estimate must be in (0, %g] hours", config.MaxTaskHours)
	}
	return nil
}

func scanTask(row interface{ Scan(...interface{}) error }) (models.Task, error) {
	var t models.Task
	var priority, status string
	if err := row.Scan(
		&t.ID,
		&t.ProjectID,
		&t.ParentID,
		&t.Title,
		&priority,
		&t.EstimatedHours,
		&status,
		&t.CreatedAt,
		&t.CompletedAt,
	); err != nil {
		return models.Task{}, err
	}
	t.Priority = models.ParsePriority(priority)
	t.Status = models.TaskStatus(status)
	return t, nil
}

func (d *Database) queryTasks(ctx context.Context, q *TaskQuery) ([]models.Task, error) {
	query, args := q.Build()
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// AddTask creates a top-level task in the project.
func (d *Database) AddTask(ctx context.Context, projectID string, seed TaskSeed) (string, error) {
	seed, err := seed.normalize()
	if err != nil {
		return "", wrapErr(EntityTask, "add", "", err)
	}
	return withDBContextResult(d, ctx, func(ctx context.Context) (string, error) {
		id := d.newID()
		_, err := d.DB.ExecContext(ctx, `
			INSERT INTO tasks (id, project_id, parent_id, title, priority, estimated_hours, status, created_at)
			VALUES (?, ?, NULL, ?, ?, ?, 'todo', ?)`,
			id, projectID, seed.Title, string(seed.Priority), toNullableArg(seed.EstimatedHours), d.now())
		if err != nil {
			return "", wrapErr(EntityTask, "add", "", err)
		}
		return id, nil
	})
}

// AddSubtask creates a subtask under parentID. Only one level of nesting is
// allowed; a completed parent is reopened so the new subtask reaches the
// backlog.
func (d *Database) AddSubtask(ctx context.Context, parentID string, seed TaskSeed) (string, error) {
	seed, err := seed.normalize()
	if err != nil {
		return "", wrapErr(EntityTask, "add subtask", parentID, err)
	}
	id := d.newID()
	err = d.WithTx(ctx, func(tx *sql.Tx) error {
		var projectID, status string
		var grandparent sql.NullString
		err := tx.QueryRowContext(ctx, "SELECT project_id, parent_id, status FROM tasks WHERE id = ?", parentID).
			Scan(&projectID, &grandparent, &status)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if grandparent.Valid {
			return ErrNestedSubtask
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO tasks (id, project_id, parent_id, title, priority, estimated_hours, status, created_at)
			VALUES (?, ?, ?, ?, ?, ?, 'todo', ?)`,
			id, projectID, parentID, seed.Title, string(seed.Priority), toNullableArg(seed.EstimatedHours), d.now()); err != nil {
			return err
		}
		if models.TaskStatus(status) == models.TaskStatusCompleted {
			if _, err := tx.ExecContext(ctx, "UPDATE tasks SET status = 'todo', completed_at = NULL WHERE id = ?", parentID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", wrapErr(EntityTask, "add subtask", parentID, err)
	}
	return id, nil
}

// GetTask loads a task with all of its subtasks.
func (d *Database) GetTask(ctx context.Context, id string) (models.Task, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.Task, error) {
		query, args := NewTaskQuery().WhereID(id).Build()
		t, err := scanTask(d.DB.QueryRowContext(ctx, query, args...))
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, wrapErr(EntityTask, "get", id, ErrNotFound)
		}
		if err != nil {
			return models.Task{}, wrapErr(EntityTask, "get", id, err)
		}
		subtasks, err := d.queryTasks(ctx, NewTaskQuery().WhereParent(id))
		if err != nil {
			return models.Task{}, wrapErr(EntityTask, "get", id, err)
		}
		t.Subtasks = subtasks
		return t, nil
	})
}

// GetBacklog returns the open top-level tasks of a project, oldest first,
// each carrying its open subtasks. Subtasks of completed parents are left out.
func (d *Database) GetBacklog(ctx context.Context, projectID string) ([]models.Task, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Task, error) {
		flat, err := d.queryTasks(ctx, NewTaskQuery().WhereProject(projectID).WhereOpen())
		if err != nil {
			return nil, wrapErr(EntityTask, "backlog", "", err)
		}
		return nestSubtasks(flat), nil
	})
}

// nestSubtasks folds a flat task list into top-level tasks with Subtasks
// filled, keeping the input order at both levels.
func nestSubtasks(flat []models.Task) []models.Task {
	index := make(map[string]int)
	var roots []models.Task
	for _, t := range flat {
		if t.ParentID == nil {
			index[t.ID] = len(roots)
			roots = append(roots, t)
		}
	}
	for _, t := range flat {
		if t.ParentID == nil {
			continue
		}
		if i, ok := index[*t.ParentID]; ok {
			roots[i].Subtasks = append(roots[i].Subtasks, t)
		}
	}
	return roots
}

// UpdateTaskStatus sets a task's status. Completing a top-level task also
// completes its open subtasks.
func (d *Database) UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) error {
	switch status {
	case models.TaskStatusTodo, models.TaskStatusInProgress, models.TaskStatusCompleted:
	default:
		return wrapErr(EntityTask, "update status", id, invalid("unknown status %q", status))
	}
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		var res sql.Result
		var err error
		if status == models.TaskStatusCompleted {
			now := d.now()
			res, err = tx.ExecContext(ctx, "UPDATE tasks SET status = ?, completed_at = ? WHERE id = ?", string(status), now, id)
			if err == nil {
				_, err = tx.ExecContext(ctx, "UPDATE tasks SET status = ?, completed_at = ? WHERE parent_id = ? AND status != 'completed'", string(status), now, id)
			}
		} else {
			res, err = tx.ExecContext(ctx, "UPDATE tasks SET status = ?, completed_at = NULL WHERE id = ?", string(status), id)
		}
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
	return wrapErr(EntityTask, "update status", id, err)
}

func (d *Database) UpdateTaskPriority(ctx context.Context, id string, priority models.Priority) error {
	p, err := validPriority(priority)
	if err != nil {
		return wrapErr(EntityTask, "update priority", id, err)
	}
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "UPDATE tasks SET priority = ? WHERE id = ?", string(p), id)
		if err == nil {
			err = requireAffected(res)
		}
		return wrapErr(EntityTask, "update priority", id, err)
	})
}

// UpdateTaskEstimate sets the estimate; nil clears it.
func (d *Database) UpdateTaskEstimate(ctx context.Context, id string, hours *float64) error {
	if hours != nil {
		if err := validEstimate(*hours); err != nil {
			return wrapErr(EntityTask, "update estimate", id, err)
		}
	}
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "UPDATE tasks SET estimated_hours = ? WHERE id = ?", toNullableArg(hours), id)
		if err == nil {
			err = requireAffected(res)
		}
		return wrapErr(EntityTask, "update estimate", id, err)
	})
}

// DeleteTask removes a task, its subtasks and any session links.
func (d *Database) DeleteTask(ctx context.Context, id string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
		if err == nil {
			err = requireAffected(res)
		}
		return wrapErr(EntityTask, "delete", id, err)
	})
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
