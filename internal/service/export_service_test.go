package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/nuclides/internal/catalog"
	"github.com/alexanderramin/nuclides/internal/domain"
	"github.com/alexanderramin/nuclides/internal/repository"
	"github.com/alexanderramin/nuclides/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	zapobserver "go.uber.org/zap/zaptest/observer"
)

func catalogIsotopeCount(c *catalog.Catalog) int {
	total := 0
	for n := range c.All() {
		total += n.IsotopeCount()
	}
	return total
}

func TestExport_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	c := catalog.Default()
	svc := NewExportService(c, repository.NewSQLiteExportRunRepo(database), testutil.NewTestUoW(database))
	ctx := context.Background()

	run, err := svc.Export(ctx, ExportRequest{Lang: "de", Temperature: domain.ZeroCelsius})
	require.NoError(t, err)
	assert.Equal(t, domain.ExportDone, run.Status)
	assert.Equal(t, c.Len(), run.NuclideCount)
	assert.Equal(t, catalogIsotopeCount(c), run.IsotopeCount)
	require.NotNil(t, run.FinishedAt)

	nuclides := repository.NewSQLiteNuclideRepo(database)
	n, isotopes, err := nuclides.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, c.Len(), n)
	assert.Equal(t, run.IsotopeCount, isotopes)

	fe, err := nuclides.GetBySymbol(ctx, "Fe")
	require.NoError(t, err)
	assert.Equal(t, "Eisen", fe.Name)
	assert.Equal(t, run.ID, fe.RunID)

	names, err := nuclides.ListNames(ctx, 13)
	require.NoError(t, err)
	assert.Equal(t, "Aluminium", names["en"])
	assert.Equal(t, "Aluminum", names["en-US"])
	assert.Equal(t, "Алюминий", names["ru"])

	stored, err := repository.NewSQLiteExportRunRepo(database).GetByID(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExportDone, stored.Status)
	assert.Equal(t, run.NuclideCount, stored.NuclideCount)
}

func TestExport_TemperatureChangesStates(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewExportService(catalog.Default(), repository.NewSQLiteExportRunRepo(database), testutil.NewTestUoW(database))
	ctx := context.Background()

	_, err := svc.Export(ctx, ExportRequest{Lang: "en", Temperature: 700})
	require.NoError(t, err)

	hg, err := repository.NewSQLiteNuclideRepo(database).GetBySymbol(ctx, "Hg")
	require.NoError(t, err)
	assert.Equal(t, "g", hg.State)
}

func TestExport_ReplacesPreviousCopy(t *testing.T) {
	database := testutil.NewTestDB(t)
	runs := repository.NewSQLiteExportRunRepo(database)
	svc := NewExportService(catalog.Default(), runs, testutil.NewTestUoW(database))
	ctx := context.Background()

	_, err := svc.Export(ctx, ExportRequest{Lang: "en", Temperature: domain.ZeroCelsius})
	require.NoError(t, err)
	second, err := svc.Export(ctx, ExportRequest{Lang: "fr", Temperature: domain.ZeroCelsius})
	require.NoError(t, err)

	fe, err := repository.NewSQLiteNuclideRepo(database).GetBySymbol(ctx, "Fe")
	require.NoError(t, err)
	assert.Equal(t, "Fer", fe.Name)
	assert.Equal(t, second.ID, fe.RunID)

	history, err := svc.ListRuns(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, history, 2, "earlier runs stay in the history")
}

func TestExport_RollbackRecordsFailedRun(t *testing.T) {
	database := testutil.NewTestDB(t)
	runs := repository.NewSQLiteExportRunRepo(database)
	ctx := context.Background()

	ok := NewExportService(catalog.Default(), runs, testutil.NewTestUoW(database))
	first, err := ok.Export(ctx, ExportRequest{Lang: "en", Temperature: domain.ZeroCelsius})
	require.NoError(t, err)

	injected := errors.New("disk full")
	failing := &testutil.FailOnNthExecUoW{DB: database, FailOn: 10, Err: injected}
	svc := NewExportService(catalog.Default(), runs, failing)

	_, err = svc.Export(ctx, ExportRequest{Lang: "de", Temperature: domain.ZeroCelsius})
	require.ErrorIs(t, err, injected)
	assert.Contains(t, failing.FailedQuery, "INSERT")

	fe, err := repository.NewSQLiteNuclideRepo(database).GetBySymbol(ctx, "Fe")
	require.NoError(t, err)
	assert.Equal(t, "Iron", fe.Name, "previous copy survives")
	assert.Equal(t, first.ID, fe.RunID)

	history, err := svc.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	statuses := []domain.ExportStatus{history[0].Status, history[1].Status}
	assert.ElementsMatch(t, []domain.ExportStatus{domain.ExportDone, domain.ExportFailed}, statuses)
}

func TestExport_RejectsNegativeTemperature(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewExportService(catalog.Default(), repository.NewSQLiteExportRunRepo(database), testutil.NewTestUoW(database))

	_, err := svc.Export(context.Background(), ExportRequest{Lang: "en", Temperature: -1})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestExport_CancelledContext(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewExportService(catalog.Default(), repository.NewSQLiteExportRunRepo(database), testutil.NewTestUoW(database))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Export(ctx, ExportRequest{Lang: "en", Temperature: domain.ZeroCelsius})
	require.ErrorIs(t, err, context.Canceled)

	n, _, err := repository.NewSQLiteNuclideRepo(database).Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestListRuns_RejectsNonPositiveLimit(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewExportService(catalog.Default(), repository.NewSQLiteExportRunRepo(database), testutil.NewTestUoW(database))

	_, err := svc.ListRuns(context.Background(), 0)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestExport_ObserverReceivesEvent(t *testing.T) {
	database := testutil.NewTestDB(t)
	core, logs := zapobserver.New(zapcore.InfoLevel)
	svc := NewExportService(catalog.Default(), repository.NewSQLiteExportRunRepo(database),
		testutil.NewTestUoW(database), NewZapUseCaseObserver(zap.New(core)))

	run, err := svc.Export(context.Background(), ExportRequest{Lang: "en", Temperature: domain.ZeroCelsius})
	require.NoError(t, err)

	entries := logs.FilterMessage("service_use_case").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "export", fields["use_case"])
	assert.Equal(t, true, fields["success"])
	assert.Equal(t, run.ID, fields["run_id"])
	assert.EqualValues(t, run.NuclideCount, fields["nuclide_count"])
}

func TestZapUseCaseObserver_LogsErrors(t *testing.T) {
	core, logs := zapobserver.New(zapcore.InfoLevel)
	obs := NewZapUseCaseObserver(zap.New(core))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "export", Err: errors.New("boom")})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "boom", entries[0].ContextMap()["error"])
}

func TestNewZapUseCaseObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewZapUseCaseObserver(nil))
}
