package database

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/akyairhashvil/sessionplan/internal/models"
	"github.com/akyairhashvil/sessionplan/internal/testutil"
)

func TestAddAndGetSession(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	p, _ := db.EnsureDefaultProject(ctx)
	id, err := db.AddSession(ctx, p.ID, SessionSeed{Date: testutil.Day(2), Hours: 1.5, Note: "  library  "})
	if err != nil {
		t.Fatalf("AddSession failed: %v", err)
	}
	s, err := db.GetSession(ctx, id)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if !s.ScheduledDate.Equal(testutil.Day(2)) {
		t.Fatalf("expected date %v, got %v", testutil.Day(2), s.ScheduledDate)
	}
	if s.ScheduledHours != 1.5 || s.Note != "library" || s.Status != models.SessionStatusScheduled {
		t.Fatalf("unexpected session: %+v", s)
	}
	if len(s.CompletedTaskIDs) != 0 {
		t.Fatalf("expected no completed tasks, got %v", s.CompletedTaskIDs)
	}
	if _, err := db.GetSession(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddSessionValidation(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	p, _ := db.EnsureDefaultProject(ctx)
	tests := []struct {
		name string
		seed SessionSeed
	}{
		{"missing date", SessionSeed{Hours: 1}},
		{"negative hours", SessionSeed{Date: testutil.Day(1), Hours: -1}},
		{"too many hours", SessionSeed{Date: testutil.Day(1), Hours: 25}},
		{"long note", SessionSeed{Date: testutil.Day(1), Hours: 1, Note: strings.Repeat("n", 201)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := db.AddSession(ctx, p.ID, tt.seed); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAddSessionAllowsZeroHours(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	p, _ := db.EnsureDefaultProject(ctx)
	if _, err := db.AddSession(ctx, p.ID, SessionSeed{Date: testutil.Day(1)}); err != nil {
		t.Fatalf("expected zero-hour session to be accepted, got %v", err)
	}
}

func TestGetSessionsOrderedByDate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	p, _ := db.EnsureDefaultProject(ctx)
	late, _ := db.AddSession(ctx, p.ID, SessionSeed{Date: testutil.Day(5), Hours: 1})
	early, _ := db.AddSession(ctx, p.ID, SessionSeed{Date: testutil.Day(1), Hours: 1})
	sameDay, _ := db.AddSession(ctx, p.ID, SessionSeed{Date: testutil.Day(1), Hours: 2})

	sessions, err := db.GetSessions(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetSessions failed: %v", err)
	}
	got := []string{}
	for _, s := range sessions {
		got = append(got, s.ID)
	}
	want := []string{early, sameDay, late}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected order %v, got %v", want, got)
	}
}

func TestCompleteSession(t *testing.T) {
	db, tasks, sessions := NewTestDataBuilder(t).WithTasks(3).WithSessions(2).Build()
	ctx := context.Background()
	child, err := db.AddSubtask(ctx, tasks[0], TaskSeed{Title: "Child"})
	if err != nil {
		t.Fatalf("AddSubtask failed: %v", err)
	}

	if err := db.CompleteSession(ctx, sessions[0], []string{tasks[0], tasks[1], tasks[1]}); err != nil {
		t.Fatalf("CompleteSession failed: %v", err)
	}

	s, err := db.GetSession(ctx, sessions[0])
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if !s.IsCompleted() || !s.HasCompletedTasks() {
		t.Fatalf("expected completed session with links, got %+v", s)
	}
	if len(s.CompletedTaskIDs) != 2 {
		t.Fatalf("expected 2 distinct links, got %v", s.CompletedTaskIDs)
	}
	for _, id := range []string{tasks[0], tasks[1], child} {
		task, err := db.GetTask(ctx, id)
		if err != nil {
			t.Fatalf("GetTask failed: %v", err)
		}
		if !task.IsCompleted() {
			t.Fatalf("expected task %s completed", id)
		}
	}
	third, _ := db.GetTask(ctx, tasks[2])
	if third.IsCompleted() {
		t.Fatalf("expected untouched task to stay open")
	}

	all, err := db.GetSessions(ctx, s.ProjectID)
	if err != nil {
		t.Fatalf("GetSessions failed: %v", err)
	}
	if len(all[0].CompletedTaskIDs) != 2 || len(all[1].CompletedTaskIDs) != 0 {
		t.Fatalf("links attached to wrong sessions: %+v", all)
	}
}

func TestCompleteSessionWithoutTasks(t *testing.T) {
	db, _, sessions := NewTestDataBuilder(t).WithSessions(1).Build()
	ctx := context.Background()
	if err := db.CompleteSession(ctx, sessions[0], nil); err != nil {
		t.Fatalf("CompleteSession failed: %v", err)
	}
	s, _ := db.GetSession(ctx, sessions[0])
	if !s.IsCompleted() || s.HasCompletedTasks() {
		t.Fatalf("expected completed session without links, got %+v", s)
	}
	if err := db.CompleteSession(ctx, "missing", nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateAndDeleteSession(t *testing.T) {
	db, tasks, sessions := NewTestDataBuilder(t).WithTasks(1).WithSessions(1).Build()
	ctx := context.Background()
	if err := db.UpdateSessionHours(ctx, sessions[0], 4); err != nil {
		t.Fatalf("UpdateSessionHours failed: %v", err)
	}
	s, _ := db.GetSession(ctx, sessions[0])
	if s.ScheduledHours != 4 {
		t.Fatalf("expected 4 hours, got %v", s.ScheduledHours)
	}
	if err := db.UpdateSessionHours(ctx, sessions[0], 30); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := db.CompleteSession(ctx, sessions[0], tasks); err != nil {
		t.Fatalf("CompleteSession failed: %v", err)
	}
	if err := db.DeleteSession(ctx, sessions[0]); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	var links int
	if err := db.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM session_tasks").Scan(&links); err != nil {
		t.Fatalf("count links failed: %v", err)
	}
	if links != 0 {
		t.Fatalf("expected links removed with session, got %d", links)
	}
	if err := db.DeleteSession(ctx, sessions[0]); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
