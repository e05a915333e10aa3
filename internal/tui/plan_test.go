package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/sessionplan/internal/testutil"
	"github.com/golang/mock/gomock"
)

func TestBuildPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockPlanSource(ctrl)
	src.EXPECT().GetSessions(gomock.Any(), "p1").Return(fixtureSessions(), nil)
	src.EXPECT().GetBacklog(gomock.Any(), "p1").Return(fixtureBacklog(), nil)

	plan, err := BuildPlan(context.Background(), src, testProject, testutil.Day(0).Add(15*time.Hour))
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}
	if !plan.Today.Equal(testutil.Day(0)) {
		t.Fatalf("expected today truncated to date, got %v", plan.Today)
	}
	if len(plan.Assignments) != 2 || len(plan.Past) != 1 {
		t.Fatalf("expected 2 upcoming and 1 past, got %d and %d", len(plan.Assignments), len(plan.Past))
	}
	if got := plan.Summary(0); got != "A, B1, Next: B2, C" {
		t.Fatalf("unexpected summary %q", got)
	}
	if len(plan.Units) != 4 || plan.Units[1].ID != "B1" {
		t.Fatalf("unexpected units %+v", plan.Units)
	}
	if len(plan.Shortfalls) != 1 || plan.Shortfalls[0].Task.ID != "C" || plan.Shortfalls[0].Missing() != 1 {
		t.Fatalf("unexpected shortfalls %+v", plan.Shortfalls)
	}
	used, available := plan.Capacity()
	if used != 4 || available != 4 {
		t.Fatalf("expected 4/4 hours, got %v/%v", used, available)
	}
	if plan.TaskTitle("B2") != "B2" || plan.TaskTitle("missing") != "" {
		t.Fatalf("unexpected TaskTitle lookups")
	}
}

func TestBuildPlanErrors(t *testing.T) {
	boom := errors.New("boom")

	ctrl := gomock.NewController(t)
	src := NewMockPlanSource(ctrl)
	src.EXPECT().GetSessions(gomock.Any(), "p1").Return(nil, boom)
	if _, err := BuildPlan(context.Background(), src, testProject, fixedToday()); !errors.Is(err, boom) {
		t.Fatalf("expected sessions error, got %v", err)
	}

	src.EXPECT().GetSessions(gomock.Any(), "p1").Return(nil, nil)
	src.EXPECT().GetBacklog(gomock.Any(), "p1").Return(nil, boom)
	_, err := BuildPlan(context.Background(), src, testProject, fixedToday())
	if !errors.Is(err, boom) || !strings.Contains(err.Error(), "load backlog") {
		t.Fatalf("expected wrapped backlog error, got %v", err)
	}
}

func TestRenderPlain(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockPlanSource(ctrl)
	src.EXPECT().GetSessions(gomock.Any(), "p1").Return(fixtureSessions(), nil)
	src.EXPECT().GetBacklog(gomock.Any(), "p1").Return(fixtureBacklog(), nil)
	plan, err := BuildPlan(context.Background(), src, testProject, fixedToday())
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}

	out := RenderPlain(plan)
	for _, want := range []string{
		"Thesis plan for 2024-03-04",
		"2 upcoming sessions, 4h of 4h planned",
		"1. Tue 2024-03-05  2h/2h",
		"   - A  1h",
		"2. Wed 2024-03-06  2h/2h",
		"Not scheduled:",
		"   - C  1h of 2h missing",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderPlainEmpty(t *testing.T) {
	out := RenderPlain(Plan{Project: testProject, Today: fixedToday()})
	if !strings.Contains(out, "No upcoming sessions.") {
		t.Fatalf("expected empty notice, got:\n%s", out)
	}
	if strings.Contains(out, "Not scheduled") {
		t.Fatalf("did not expect shortfall section")
	}
}
