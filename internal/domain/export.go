package domain

import "time"

// ExportStatus is the lifecycle state of an export run.
type ExportStatus string

const (
	ExportRunning ExportStatus = "running"
	ExportDone    ExportStatus = "done"
	ExportFailed  ExportStatus = "failed"
)

// ExportRun records one copy of the catalog into a SQLite database.
type ExportRun struct {
	ID           string
	Lang         string
	Temperature  float64
	Status       ExportStatus
	NuclideCount int
	IsotopeCount int
	StartedAt    time.Time
	FinishedAt   *time.Time
}
