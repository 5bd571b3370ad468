package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/nuclides/internal/catalog"
	"github.com/alexanderramin/nuclides/internal/db"
	"github.com/alexanderramin/nuclides/internal/domain"
	"github.com/alexanderramin/nuclides/internal/repository"
	"github.com/google/uuid"
)

type exportService struct {
	catalog  *catalog.Catalog
	runs     repository.ExportRunRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewExportService(
	c *catalog.Catalog,
	runs repository.ExportRunRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ExportService {
	return &exportService{
		catalog:  c,
		runs:     runs,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Export replaces the exported catalog with a fresh copy inside one
// transaction. A failed export leaves the previous copy untouched and is
// recorded as a failed run.
func (s *exportService) Export(ctx context.Context, req ExportRequest) (run *domain.ExportRun, err error) {
	startedAt := s.now()
	fields := map[string]any{
		"lang":        req.Lang,
		"temperature": req.Temperature,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "export",
			StartedAt: startedAt,
			Duration:  s.now().Sub(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if req.Temperature < 0 {
		return nil, fmt.Errorf("temperature %g K: %w", req.Temperature, domain.ErrInvalidArgument)
	}

	run = &domain.ExportRun{
		ID:          uuid.New().String(),
		Lang:        req.Lang,
		Temperature: req.Temperature,
		Status:      domain.ExportRunning,
		StartedAt:   startedAt,
	}
	fields["run_id"] = run.ID

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRuns := repository.NewSQLiteExportRunRepo(tx)
		txNuclides := repository.NewSQLiteNuclideRepo(tx)

		if err := txNuclides.DeleteAll(ctx); err != nil {
			return err
		}
		if err := txRuns.Create(ctx, run); err != nil {
			return err
		}

		nuclides, isotopes := 0, 0
		for n := range s.catalog.All() {
			if err := ctx.Err(); err != nil {
				return err
			}
			written, err := s.writeNuclide(ctx, txNuclides, run, n)
			if err != nil {
				return err
			}
			nuclides++
			isotopes += written
		}

		finishedAt := s.now()
		if err := txRuns.Finish(ctx, run.ID, domain.ExportDone, nuclides, isotopes, finishedAt); err != nil {
			return err
		}
		run.Status = domain.ExportDone
		run.NuclideCount = nuclides
		run.IsotopeCount = isotopes
		run.FinishedAt = &finishedAt
		return nil
	})
	if err != nil {
		s.recordFailure(ctx, run, fields)
		return nil, fmt.Errorf("exporting catalog: %w", err)
	}

	fields["nuclide_count"] = run.NuclideCount
	fields["isotope_count"] = run.IsotopeCount
	return run, nil
}

func (s *exportService) writeNuclide(ctx context.Context, repo repository.NuclideRepo, run *domain.ExportRun, n *domain.Nuclide) (int, error) {
	summary := s.catalog.Summarize(n, run.Lang, run.Temperature)
	if err := repo.Insert(ctx, run.ID, summary); err != nil {
		return 0, err
	}
	for _, iso := range summary.Isotopes {
		if err := repo.InsertIsotope(ctx, n.Z(), iso); err != nil {
			return 0, err
		}
	}
	if err := repo.InsertName(ctx, n.Z(), domain.DefaultLanguage, n.Name()); err != nil {
		return 0, err
	}
	for _, lang := range n.Languages() {
		if err := repo.InsertName(ctx, n.Z(), lang, n.GetName(lang)); err != nil {
			return 0, err
		}
	}
	return len(summary.Isotopes), nil
}

// recordFailure stores the failed run outside the rolled-back transaction.
func (s *exportService) recordFailure(ctx context.Context, run *domain.ExportRun, fields map[string]any) {
	finishedAt := s.now()
	failed := *run
	failed.Status = domain.ExportFailed
	failed.NuclideCount, failed.IsotopeCount = 0, 0
	failed.FinishedAt = &finishedAt
	if err := s.runs.Create(context.WithoutCancel(ctx), &failed); err != nil {
		fields["record_failure_error"] = err.Error()
	}
}

func (s *exportService) ListRuns(ctx context.Context, limit int) ([]*domain.ExportRun, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit %d: %w", limit, domain.ErrInvalidArgument)
	}
	return s.runs.ListRecent(ctx, limit)
}
