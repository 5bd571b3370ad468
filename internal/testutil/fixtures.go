package testutil

import (
	"testing"
	"time"

	"github.com/alexanderramin/nuclides/internal/catalog"
	"github.com/alexanderramin/nuclides/internal/domain"
	"github.com/google/uuid"
)

// Export run options
type RunOption func(*domain.ExportRun)

func WithLang(lang string) RunOption {
	return func(r *domain.ExportRun) {
		r.Lang = lang
	}
}

func WithStartedAt(t time.Time) RunOption {
	return func(r *domain.ExportRun) {
		r.StartedAt = t
	}
}

func WithRunStatus(s domain.ExportStatus) RunOption {
	return func(r *domain.ExportRun) {
		r.Status = s
	}
}

// NewTestRun returns a running export run with a fresh ID.
func NewTestRun(opts ...RunOption) *domain.ExportRun {
	r := &domain.ExportRun{
		ID:          uuid.New().String(),
		Lang:        domain.DefaultLanguage,
		Temperature: domain.ZeroCelsius,
		Status:      domain.ExportRunning,
		StartedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Summary returns the English summary at 0 °C of the nuclide with symbol.
func Summary(t *testing.T, symbol string) catalog.NuclideSummary {
	t.Helper()
	c := catalog.Default()
	n, ok := c.GetBySymbol(symbol)
	if !ok {
		t.Fatalf("no nuclide with symbol %q", symbol)
	}
	return c.Summarize(n, domain.DefaultLanguage, domain.ZeroCelsius)
}
