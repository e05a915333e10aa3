package database

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/akyairhashvil/sessionplan/internal/config"
	"github.com/akyairhashvil/sessionplan/internal/models"
	"github.com/akyairhashvil/sessionplan/internal/util"
)

const sessionColumns = `id, project_id, scheduled_date, scheduled_hours, status, note, created_at`

// SessionSeed carries the user-supplied fields of a new session.
type SessionSeed struct {
	Date  time.Time
	Hours float64
	Note  string
}

func (s SessionSeed) normalize() (SessionSeed, error) {
	if s.Date.IsZero() {
		return s, invalid("session date is required")
	}
	if err := validCapacity(s.Hours); err != nil {
		return s, err
	}
	s.Note = strings.TrimSpace(s.Note)
	if len(s.Note) > config.MaxNoteLength {
		return s, invalid("note longer than %d characters", config.MaxNoteLength)
	}
	return s, nil
}

func validCapacity(h float64) error {
	if math.IsNaN(h) || h < 0 || h > config.MaxSessionHours {
		return invalid("session hours must be in [0, %g]", config.MaxSessionHours)
	}
	return nil
}

func scanSession(row interface{ Scan(...interface{}) error }) (models.Session, error) {
	var s models.Session
	var date, status string
	var note sql.NullString
	if err := row.Scan(&s.ID, &s.ProjectID, &date, &s.ScheduledHours, &status, &note, &s.CreatedAt); err != nil {
		return models.Session{}, err
	}
	parsed, err := util.ParseDate(date)
	if err != nil {
		return models.Session{}, err
	}
	s.ScheduledDate = parsed
	s.Status = models.SessionStatus(status)
	s.Note = note.String
	return s, nil
}

// AddSession schedules a work session for the project.
func (d *Database) AddSession(ctx context.Context, projectID string, seed SessionSeed) (string, error) {
	seed, err := seed.normalize()
	if err != nil {
		return "", wrapErr(EntitySession, "add", "", err)
	}
	return withDBContextResult(d, ctx, func(ctx context.Context) (string, error) {
		id := d.newID()
		_, err := d.DB.ExecContext(ctx, `
			INSERT INTO sessions (id, project_id, scheduled_date, scheduled_hours, status, note, created_at)
			VALUES (?, ?, ?, ?, 'scheduled', ?, ?)`,
			id, projectID, util.FormatDate(seed.Date), seed.Hours, nullableString(seed.Note), d.now())
		if err != nil {
			return "", wrapErr(EntitySession, "add", "", err)
		}
		return id, nil
	})
}

// GetSession loads one session with its completed-task links.
func (d *Database) GetSession(ctx context.Context, id string) (models.Session, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.Session, error) {
		s, err := scanSession(d.DB.QueryRowContext(ctx, "SELECT "+sessionColumns+" FROM sessions WHERE id = ?", id))
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, wrapErr(EntitySession, "get", id, ErrNotFound)
		}
		if err != nil {
			return models.Session{}, wrapErr(EntitySession, "get", id, err)
		}
		links, err := d.completedLinks(ctx, "st.session_id = ?", id)
		if err != nil {
			return models.Session{}, wrapErr(EntitySession, "get", id, err)
		}
		s.CompletedTaskIDs = links[id]
		return s, nil
	})
}

// GetSessions returns every session of the project ordered by date, each
// with its completed-task links.
func (d *Database) GetSessions(ctx context.Context, projectID string) ([]models.Session, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Session, error) {
		rows, err := d.DB.QueryContext(ctx, `
			SELECT `+sessionColumns+`
			FROM sessions
			WHERE project_id = ?
			ORDER BY scheduled_date ASC, created_at ASC`, projectID)
		if err != nil {
			return nil, wrapErr(EntitySession, "list", "", err)
		}
		var sessions []models.Session
		for rows.Next() {
			s, err := scanSession(rows)
			if err != nil {
				rows.Close()
				return nil, wrapErr(EntitySession, "list", "", err)
			}
			sessions = append(sessions, s)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, wrapErr(EntitySession, "list", "", err)
		}
		rows.Close()

		links, err := d.completedLinks(ctx, "s.project_id = ?", projectID)
		if err != nil {
			return nil, wrapErr(EntitySession, "list", "", err)
		}
		for i := range sessions {
			sessions[i].CompletedTaskIDs = links[sessions[i].ID]
		}
		return sessions, nil
	})
}

// completedLinks maps session id to the ids of tasks completed in it.
func (d *Database) completedLinks(ctx context.Context, filter string, arg interface{}) (map[string][]string, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT st.session_id, st.task_id
		FROM session_tasks st
		JOIN sessions s ON s.id = st.session_id
		WHERE `+filter+`
		ORDER BY st.completed_at ASC, st.task_id ASC`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make(map[string][]string)
	for rows.Next() {
		var sessionID, taskID string
		if err := rows.Scan(&sessionID, &taskID); err != nil {
			return nil, err
		}
		links[sessionID] = append(links[sessionID], taskID)
	}
	return links, rows.Err()
}

func (d *Database) UpdateSessionHours(ctx context.Context, id string, hours float64) error {
	if err := validCapacity(hours); err != nil {
		return wrapErr(EntitySession, "update hours", id, err)
	}
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "UPDATE sessions SET scheduled_hours = ? WHERE id = ?", hours, id)
		if err == nil {
			err = requireAffected(res)
		}
		return wrapErr(EntitySession, "update hours", id, err)
	})
}

func (d *Database) DeleteSession(ctx context.Context, id string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
		if err == nil {
			err = requireAffected(res)
		}
		return wrapErr(EntitySession, "delete", id, err)
	})
}

// CompleteSession marks the session done, links the given tasks to it and
// marks those tasks (and their open subtasks) completed, all in one
// transaction. Task ids outside the session's project are rejected.
func (d *Database) CompleteSession(ctx context.Context, sessionID string, taskIDs []string) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		var projectID string
		err := tx.QueryRowContext(ctx, "SELECT project_id FROM sessions WHERE id = ?", sessionID).Scan(&projectID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		now := d.now()
		if _, err := tx.ExecContext(ctx, "UPDATE sessions SET status = 'completed', completed_at = ? WHERE id = ?", now, sessionID); err != nil {
			return err
		}
		if len(taskIDs) == 0 {
			return nil
		}

		var count int
		args := append([]interface{}{projectID}, stringArgs(taskIDs)...)
		if err := tx.QueryRowContext(ctx,
			"SELECT COUNT(1) FROM tasks WHERE project_id = ? AND id IN ("+placeholders(len(taskIDs))+")", args...,
		).Scan(&count); err != nil {
			return err
		}
		if count != len(dedupe(taskIDs)) {
			return invalid("tasks do not all belong to the session's project")
		}

		for _, id := range taskIDs {
			if _, err := tx.ExecContext(ctx,
				"INSERT OR IGNORE INTO session_tasks (session_id, task_id, completed_at) VALUES (?, ?, ?)",
				sessionID, id, now); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx,
				"UPDATE tasks SET status = 'completed', completed_at = ? WHERE (id = ? OR parent_id = ?) AND status != 'completed'",
				now, id, id); err != nil {
				return err
			}
		}
		return nil
	})
	return wrapErr(EntitySession, "complete", sessionID, err)
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
