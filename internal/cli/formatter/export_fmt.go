package formatter

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/nuclides/internal/domain"
)

const runTimeLayout = "2006-01-02 15:04:05"

// shortID returns the first eight characters of a run ID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// ExportStatusPill colors an export status.
func ExportStatusPill(status domain.ExportStatus) string {
	switch status {
	case domain.ExportDone:
		return StyleGreen.Render(string(status))
	case domain.ExportFailed:
		return StyleRed.Render(string(status))
	default:
		return StyleYellow.Render(string(status))
	}
}

// FormatExportResult summarizes a finished export.
func FormatExportResult(run *domain.ExportRun, path string) string {
	return fmt.Sprintf("%s Exported %d nuclides and %d isotopes to %s %s\n",
		StyleGreen.Render("✔"),
		run.NuclideCount,
		run.IsotopeCount,
		path,
		Dim("(run "+shortID(run.ID)+")"),
	)
}

// FormatExportRuns renders the export history, newest first.
func FormatExportRuns(runs []*domain.ExportRun) string {
	if len(runs) == 0 {
		return Dim("No exports yet.") + "\n"
	}
	cols := append(Cols("RUN", "STARTED", "LANG"),
		Column{Title: "TEMP", Right: true},
		Column{Title: "STATUS"},
		Column{Title: "NUCLIDES", Right: true},
		Column{Title: "ISOTOPES", Right: true},
	)
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			Dim(shortID(r.ID)),
			r.StartedAt.Local().Format(runTimeLayout),
			r.Lang,
			FormatNumber(r.Temperature, '.') + " K",
			ExportStatusPill(r.Status),
			strconv.Itoa(r.NuclideCount),
			strconv.Itoa(r.IsotopeCount),
		})
	}
	return RenderColumns(cols, rows)
}
