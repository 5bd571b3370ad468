package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/nuclides/internal/catalog"
	"github.com/alexanderramin/nuclides/internal/domain"
)

// StoredNuclide is the exported row of one nuclide as read back.
type StoredNuclide struct {
	Z         int
	RunID     string
	Symbol    string
	Name      string
	Category  string
	Weight    float64
	Melt      *float64
	Boil      *float64
	State     string
	Stability string
}

// StoredIsotope is the exported row of one isotope as read back.
type StoredIsotope struct {
	Z, A       int
	Abundance  *float64
	Halflife   *float64
	DecayCode  string
	Occurrence string
	Stability  string
}

// Modes decodes the stored decay code.
func (s StoredIsotope) Modes() (domain.DecaySet, error) {
	return domain.ParseDecayCode(s.DecayCode)
}

type ExportRunRepo interface {
	Create(ctx context.Context, run *domain.ExportRun) error
	Finish(ctx context.Context, id string, status domain.ExportStatus, nuclides, isotopes int, at time.Time) error
	GetByID(ctx context.Context, id string) (*domain.ExportRun, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.ExportRun, error)
}

type NuclideRepo interface {
	DeleteAll(ctx context.Context) error
	Insert(ctx context.Context, runID string, s catalog.NuclideSummary) error
	InsertIsotope(ctx context.Context, z int, iso catalog.IsotopeSummary) error
	InsertName(ctx context.Context, z int, lang, name string) error
	GetBySymbol(ctx context.Context, symbol string) (*StoredNuclide, error)
	ListIsotopes(ctx context.Context, z int) ([]StoredIsotope, error)
	ListNames(ctx context.Context, z int) (map[string]string, error)
	Count(ctx context.Context) (nuclides, isotopes int, err error)
}
