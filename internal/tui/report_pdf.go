package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/sessionplan/internal/config"
	"github.com/akyairhashvil/sessionplan/internal/scheduler"
	"github.com/akyairhashvil/sessionplan/internal/util"
	"github.com/go-pdf/fpdf"
)

// GeneratePDFReport writes the plan to dir and returns the file path.
func GeneratePDFReport(plan Plan, dir string) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(fmt.Sprintf("%s plan", plan.Project.Name), true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Session Plan: %s (%s)", plan.Project.Name, util.FormatDate(plan.Today))))
	pdf.Ln(10)
	used, available := plan.Capacity()
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("%d upcoming sessions, %s of %s planned", len(plan.Assignments), formatHours(used), formatHours(available)))
	pdf.Ln(12)

	for i, a := range plan.Assignments {
		pdf.SetFont("Arial", "B", 13)
		header := fmt.Sprintf("Session %d: %s (%s/%s)", i+1, formatDay(a.Session.ScheduledDate),
			formatHours(a.HoursUsed()), formatHours(scheduler.Capacity(a.Session)))
		pdf.Cell(0, 9, tr(header))
		pdf.Ln(7)

		pdf.SetFont("Arial", "", 11)
		if a.Session.Note != "" {
			pdf.MultiCell(0, 6, tr("  "+a.Session.Note), "", "", false)
		}
		if len(a.AssignedTasks) == 0 {
			pdf.Cell(0, 7, "  - "+scheduler.NoTasksAssigned)
			pdf.Ln(6)
		}
		for _, alloc := range a.AssignedTasks {
			line := fmt.Sprintf("  [ ] %s  (%s, %s)", alloc.Task.Title, alloc.Task.Priority, formatHours(alloc.Hours))
			pdf.Cell(0, 7, tr(line))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	if len(plan.Shortfalls) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 9, "Not scheduled")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 11)
		for _, s := range plan.Shortfalls {
			line := fmt.Sprintf("  - %s: %s of %s missing", s.Task.Title, formatHours(s.Missing()), formatHours(s.Required))
			pdf.Cell(0, 7, tr(line))
			pdf.Ln(6)
		}
	}

	completed := 0
	for _, s := range plan.Past {
		if s.IsCompleted() {
			completed++
		}
	}
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Past sessions: %d (%d completed)", len(plan.Past), completed))

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	name := fmt.Sprintf("%s_%s_%s.pdf", config.ReportFilePrefix, plan.Project.Slug, util.FormatDate(plan.Today))
	path := filepath.Join(dir, name)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return path, nil
}
