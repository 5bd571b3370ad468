package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/nuclides/internal/domain"
	"github.com/alexanderramin/nuclides/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nuclideTestSetup creates the export run every nuclide row belongs to.
func nuclideTestSetup(t *testing.T) (*SQLiteNuclideRepo, string) {
	t.Helper()
	db := testutil.NewTestDB(t)
	run := testutil.NewTestRun()
	require.NoError(t, NewSQLiteExportRunRepo(db).Create(context.Background(), run))
	return NewSQLiteNuclideRepo(db), run.ID
}

func TestNuclideRepo_InsertAndGetBySymbol(t *testing.T) {
	repo, runID := nuclideTestSetup(t)
	ctx := context.Background()

	hg := testutil.Summary(t, "Hg")
	require.NoError(t, repo.Insert(ctx, runID, hg))

	got, err := repo.GetBySymbol(ctx, "Hg")
	require.NoError(t, err)
	assert.Equal(t, 80, got.Z)
	assert.Equal(t, runID, got.RunID)
	assert.Equal(t, "Mercury", got.Name)
	assert.Equal(t, "transition-metal", got.Category)
	assert.Equal(t, "l", got.State)
	assert.Equal(t, "S", got.Stability)
	require.NotNil(t, got.Melt)
	assert.InDelta(t, 234.32, *got.Melt, 1e-9)
}

func TestNuclideRepo_UnknownMeltingPointIsNull(t *testing.T) {
	repo, runID := nuclideTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, runID, testutil.Summary(t, "Og")))

	got, err := repo.GetBySymbol(ctx, "Og")
	require.NoError(t, err)
	assert.Nil(t, got.Melt)
	assert.Nil(t, got.Boil)
	assert.Equal(t, "?", got.State)
}

func TestNuclideRepo_GetBySymbol_NotFound(t *testing.T) {
	repo, _ := nuclideTestSetup(t)

	_, err := repo.GetBySymbol(context.Background(), "Xy")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNuclideRepo_Isotopes(t *testing.T) {
	repo, runID := nuclideTestSetup(t)
	ctx := context.Background()

	u := testutil.Summary(t, "U")
	require.NoError(t, repo.Insert(ctx, runID, u))
	for _, iso := range u.Isotopes {
		require.NoError(t, repo.InsertIsotope(ctx, u.Z, iso))
	}

	stored, err := repo.ListIsotopes(ctx, 92)
	require.NoError(t, err)
	require.Len(t, stored, len(u.Isotopes))
	last := stored[len(stored)-1]
	assert.Equal(t, 238, last.A)
	assert.Equal(t, "aF", last.DecayCode)
	modes, err := last.Modes()
	require.NoError(t, err)
	assert.True(t, modes.Has(domain.Alpha))
	assert.True(t, modes.Has(domain.SpontaneousFission))
	assert.Equal(t, 2, modes.Len())
	assert.Equal(t, "P", last.Occurrence)
	require.NotNil(t, last.Abundance)
	assert.InDelta(t, 99.2742, *last.Abundance, 1e-9)
	require.NotNil(t, last.Halflife)

	first := stored[0]
	assert.Nil(t, first.Abundance, "synthetic isotopes have no abundance")

	require.Error(t, repo.InsertIsotope(ctx, u.Z, u.Isotopes[0]), "duplicate isotope")
}

func TestNuclideRepo_NamesAndCascade(t *testing.T) {
	repo, runID := nuclideTestSetup(t)
	ctx := context.Background()

	fe := testutil.Summary(t, "Fe")
	require.NoError(t, repo.Insert(ctx, runID, fe))
	require.NoError(t, repo.InsertIsotope(ctx, fe.Z, fe.Isotopes[0]))
	require.NoError(t, repo.InsertName(ctx, fe.Z, "de", "Eisen"))
	require.NoError(t, repo.InsertName(ctx, fe.Z, "fr", "Fer"))

	names, err := repo.ListNames(ctx, fe.Z)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"de": "Eisen", "fr": "Fer"}, names)

	nuclides, isotopes, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, nuclides)
	assert.Equal(t, 1, isotopes)

	require.NoError(t, repo.DeleteAll(ctx))
	nuclides, isotopes, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, nuclides)
	assert.Zero(t, isotopes, "isotopes cascade with their nuclide")

	names, err = repo.ListNames(ctx, fe.Z)
	require.NoError(t, err)
	assert.Empty(t, names)
}
