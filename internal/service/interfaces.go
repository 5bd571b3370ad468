package service

import (
	"context"

	"github.com/alexanderramin/nuclides/internal/domain"
)

// ExportRequest selects the language and temperature the exported names
// and physical states are evaluated for.
type ExportRequest struct {
	Lang        string
	Temperature float64
}

type ExportService interface {
	Export(ctx context.Context, req ExportRequest) (*domain.ExportRun, error)
	ListRuns(ctx context.Context, limit int) ([]*domain.ExportRun, error)
}
