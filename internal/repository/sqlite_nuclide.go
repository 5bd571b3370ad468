package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/nuclides/internal/catalog"
	"github.com/alexanderramin/nuclides/internal/db"
)

// SQLiteNuclideRepo implements NuclideRepo using a SQLite database.
type SQLiteNuclideRepo struct {
	db db.DBTX
}

// NewSQLiteNuclideRepo creates a new SQLiteNuclideRepo.
func NewSQLiteNuclideRepo(conn db.DBTX) *SQLiteNuclideRepo {
	return &SQLiteNuclideRepo{db: conn}
}

// DeleteAll removes every exported nuclide; isotopes and names cascade.
func (r *SQLiteNuclideRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM nuclides`); err != nil {
		return fmt.Errorf("clearing nuclides: %w", err)
	}
	return nil
}

func (r *SQLiteNuclideRepo) Insert(ctx context.Context, runID string, s catalog.NuclideSummary) error {
	query := `INSERT INTO nuclides (z, run_id, symbol, name, period, group_no, block, category, weight,
		melt, boil, state, stability, origin, bio, known_index, year, discoverer, etymology)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.Z,
		runID,
		s.Symbol,
		s.Name,
		s.Period,
		s.Group,
		s.Block,
		s.CategoryKey,
		s.Weight,
		nullableFloat(s.Melt),
		nullableFloat(s.Boil),
		s.State,
		s.Life,
		s.Origin,
		s.Bio,
		s.Era,
		s.Year,
		s.Discoverer,
		s.Etymology,
	)
	if err != nil {
		return fmt.Errorf("inserting nuclide %s: %w", s.Symbol, err)
	}
	return nil
}

func (r *SQLiteNuclideRepo) InsertIsotope(ctx context.Context, z int, iso catalog.IsotopeSummary) error {
	query := `INSERT INTO isotopes (z, a, abundance, halflife, decay_code, occurrence, stability)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		z,
		iso.A,
		nullableFloat(iso.Abundance),
		nullableFloat(iso.Halflife),
		iso.DecayCode,
		iso.Occurrence,
		iso.Stability,
	)
	if err != nil {
		return fmt.Errorf("inserting isotope %s: %w", iso.Label, err)
	}
	return nil
}

func (r *SQLiteNuclideRepo) InsertName(ctx context.Context, z int, lang, name string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO nuclide_names (z, lang, name) VALUES (?, ?, ?)`, z, lang, name)
	if err != nil {
		return fmt.Errorf("inserting name %d/%s: %w", z, lang, err)
	}
	return nil
}

func (r *SQLiteNuclideRepo) GetBySymbol(ctx context.Context, symbol string) (*StoredNuclide, error) {
	query := `SELECT z, run_id, symbol, name, category, weight, melt, boil, state, stability
		FROM nuclides WHERE symbol = ?`
	var n StoredNuclide
	var melt, boil sql.NullFloat64
	err := r.db.QueryRowContext(ctx, query, symbol).Scan(
		&n.Z, &n.RunID, &n.Symbol, &n.Name, &n.Category, &n.Weight, &melt, &boil, &n.State, &n.Stability,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("nuclide %s: %w", symbol, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning nuclide: %w", err)
	}
	n.Melt = floatPtr(melt)
	n.Boil = floatPtr(boil)
	return &n, nil
}

func (r *SQLiteNuclideRepo) ListIsotopes(ctx context.Context, z int) ([]StoredIsotope, error) {
	query := `SELECT z, a, abundance, halflife, decay_code, occurrence, stability
		FROM isotopes WHERE z = ? ORDER BY a`
	rows, err := r.db.QueryContext(ctx, query, z)
	if err != nil {
		return nil, fmt.Errorf("listing isotopes: %w", err)
	}
	defer rows.Close()

	var out []StoredIsotope
	for rows.Next() {
		var iso StoredIsotope
		var abundance, halflife sql.NullFloat64
		if err := rows.Scan(&iso.Z, &iso.A, &abundance, &halflife, &iso.DecayCode, &iso.Occurrence, &iso.Stability); err != nil {
			return nil, fmt.Errorf("scanning isotope: %w", err)
		}
		iso.Abundance = floatPtr(abundance)
		iso.Halflife = floatPtr(halflife)
		out = append(out, iso)
	}
	return out, rows.Err()
}

func (r *SQLiteNuclideRepo) ListNames(ctx context.Context, z int) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT lang, name FROM nuclide_names WHERE z = ? ORDER BY lang`, z)
	if err != nil {
		return nil, fmt.Errorf("listing names: %w", err)
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var lang, name string
		if err := rows.Scan(&lang, &name); err != nil {
			return nil, fmt.Errorf("scanning name: %w", err)
		}
		names[lang] = name
	}
	return names, rows.Err()
}

func (r *SQLiteNuclideRepo) Count(ctx context.Context) (nuclides, isotopes int, err error) {
	err = r.db.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM nuclides), (SELECT COUNT(*) FROM isotopes)`).Scan(&nuclides, &isotopes)
	if err != nil {
		return 0, 0, fmt.Errorf("counting nuclides: %w", err)
	}
	return nuclides, isotopes, nil
}
