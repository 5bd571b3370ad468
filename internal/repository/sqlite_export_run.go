package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/nuclides/internal/db"
	"github.com/alexanderramin/nuclides/internal/domain"
)

// SQLiteExportRunRepo implements ExportRunRepo using a SQLite database.
type SQLiteExportRunRepo struct {
	db db.DBTX
}

// NewSQLiteExportRunRepo creates a new SQLiteExportRunRepo.
func NewSQLiteExportRunRepo(conn db.DBTX) *SQLiteExportRunRepo {
	return &SQLiteExportRunRepo{db: conn}
}

func (r *SQLiteExportRunRepo) Create(ctx context.Context, run *domain.ExportRun) error {
	query := `INSERT INTO export_runs (id, lang, temperature, status, nuclide_count, isotope_count, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.Lang,
		run.Temperature,
		string(run.Status),
		run.NuclideCount,
		run.IsotopeCount,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		nullableTimeToString(run.FinishedAt, time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting export run: %w", err)
	}
	return nil
}

func (r *SQLiteExportRunRepo) Finish(ctx context.Context, id string, status domain.ExportStatus, nuclides, isotopes int, at time.Time) error {
	query := `UPDATE export_runs SET status = ?, nuclide_count = ?, isotope_count = ?, finished_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, string(status), nuclides, isotopes, at.UTC().Format(time.RFC3339Nano), id)
	if err != nil {
		return fmt.Errorf("finishing export run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finishing export run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("export run %s: %w", id, ErrNotFound)
	}
	return nil
}

const exportRunColumns = `id, lang, temperature, status, nuclide_count, isotope_count, started_at, finished_at`

func (r *SQLiteExportRunRepo) GetByID(ctx context.Context, id string) (*domain.ExportRun, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+exportRunColumns+` FROM export_runs WHERE id = ?`, id)
	run, err := scanExportRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("export run: %w", ErrNotFound)
	}
	return run, err
}

func (r *SQLiteExportRunRepo) ListRecent(ctx context.Context, limit int) ([]*domain.ExportRun, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+exportRunColumns+` FROM export_runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing export runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.ExportRun
	for rows.Next() {
		run, err := scanExportRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExportRun(s scanner) (*domain.ExportRun, error) {
	var run domain.ExportRun
	var status, startedAt string
	var finishedAt sql.NullString
	err := s.Scan(&run.ID, &run.Lang, &run.Temperature, &status, &run.NuclideCount, &run.IsotopeCount,
		&startedAt, &finishedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning export run: %w", err)
	}
	run.Status = domain.ExportStatus(status)
	run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing export run start: %w", err)
	}
	run.FinishedAt = parseNullableTime(finishedAt, time.RFC3339Nano)
	return &run, nil
}
