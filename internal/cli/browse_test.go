package cli

import (
	"testing"

	"github.com/alexanderramin/nuclides/internal/catalog"
	"github.com/alexanderramin/nuclides/internal/config"
	"github.com/alexanderramin/nuclides/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// browseDriver wraps teatest.Driver with access to the browse model.
type browseDriver struct {
	*teatest.Driver
}

func newBrowseDriver(t *testing.T, lang string, w, h int) *browseDriver {
	t.Helper()
	app := &App{
		Catalog: catalog.Default(),
		Config:  config.Config{Lang: lang, Temperature: 273.15},
	}
	d := teatest.New(t, newBrowseModel(app.summaries(), lang), teatest.WithSize(w, h))
	d.DrainInit()
	return &browseDriver{Driver: d}
}

func (d *browseDriver) model() *browseModel {
	return d.Model.(*browseModel)
}

func (d *browseDriver) selectedSymbol() string {
	d.T.Helper()
	s, ok := d.model().Selected()
	require.True(d.T, ok, "nothing selected")
	return s.Symbol
}

func TestBrowse_InitialList(t *testing.T) {
	d := newBrowseDriver(t, "en", 100, 30)

	view := d.PlainView()
	assert.Contains(t, view, "Elements (118)")
	assert.Contains(t, view, "▸   1 H")
	assert.Contains(t, view, "Hydrogen")
	assert.Contains(t, view, "enter show")
	assert.Equal(t, "H", d.selectedSymbol())
}

func TestBrowse_Navigation(t *testing.T) {
	d := newBrowseDriver(t, "en", 100, 30)

	d.PressDown()
	d.PressKey('j')
	assert.Equal(t, "Li", d.selectedSymbol())

	d.PressUp()
	assert.Equal(t, "He", d.selectedSymbol())

	d.PressKey('k')
	d.PressKey('k')
	assert.Equal(t, "H", d.selectedSymbol(), "cursor stops at the top")

	d.PressKey('G')
	assert.Equal(t, "Og", d.selectedSymbol())
	d.PressDown()
	assert.Equal(t, "Og", d.selectedSymbol(), "cursor stops at the bottom")

	d.PressKey('g')
	assert.Equal(t, "H", d.selectedSymbol())
}

func TestBrowse_ScrollsWithCursor(t *testing.T) {
	d := newBrowseDriver(t, "en", 100, 10)

	assert.Contains(t, d.PlainView(), "Hydrogen")
	assert.NotContains(t, d.PlainView(), "Oganesson")

	d.PressKey('G')
	view := d.PlainView()
	assert.Contains(t, view, "Oganesson")
	assert.NotContains(t, view, "Hydrogen")
}

func TestBrowse_Filter(t *testing.T) {
	d := newBrowseDriver(t, "en", 100, 30)

	d.PressKey('/')
	d.Type("fe")
	view := d.PlainView()
	assert.Contains(t, view, "Elements (2)")
	assert.Contains(t, view, "/ fe█")
	assert.Contains(t, view, "Iron")
	assert.Contains(t, view, "Fermium")

	d.PressEnter()
	assert.False(t, d.model().filtering)
	assert.Equal(t, "Fe", d.selectedSymbol())

	d.PressDown()
	assert.Equal(t, "Fm", d.selectedSymbol())

	d.PressEsc()
	assert.Contains(t, d.PlainView(), "Elements (118)")
}

func TestBrowse_FilterBackspaceAndCancel(t *testing.T) {
	d := newBrowseDriver(t, "en", 100, 30)

	d.PressKey('/')
	d.Type("xyz")
	assert.Contains(t, d.PlainView(), "No elements match.")

	d.PressBackspace()
	d.PressBackspace()
	d.PressBackspace()
	assert.Contains(t, d.PlainView(), "Elements (118)")

	d.Type("q")
	assert.False(t, d.Quitting, "q is filter text while filtering")

	d.PressEsc()
	assert.False(t, d.model().filtering)
	assert.Empty(t, d.model().filter)
}

func TestBrowse_EmptyFilterSelectsNothing(t *testing.T) {
	d := newBrowseDriver(t, "en", 100, 30)

	d.PressKey('/')
	d.Type("xyz")
	d.PressEnter()
	d.PressEnter()

	_, ok := d.model().Selected()
	assert.False(t, ok)
	assert.Equal(t, -1, d.model().detail)
}

func TestBrowse_DetailCard(t *testing.T) {
	d := newBrowseDriver(t, "en", 120, 40)

	d.PressKey('/')
	d.Type("Fe")
	d.PressEnter()
	d.PressEnter()

	view := d.PlainView()
	assert.Contains(t, view, "Iron")
	assert.Contains(t, view, "WEIGHT")
	assert.Contains(t, view, "Fe-56")
	assert.Contains(t, view, "esc back")

	d.PressEsc()
	assert.Contains(t, d.PlainView(), "Elements (2)")
}

func TestBrowse_DetailMovesBetweenElements(t *testing.T) {
	d := newBrowseDriver(t, "en", 120, 40)

	d.PressEnter()
	assert.Contains(t, d.PlainView(), "Hydrogen")

	d.PressDown()
	assert.Contains(t, d.PlainView(), "Helium")
	assert.Equal(t, "He", d.selectedSymbol())
}

func TestBrowse_LocalizedNames(t *testing.T) {
	d := newBrowseDriver(t, "de", 120, 40)

	d.PressKey('/')
	d.Type("eis")
	d.PressEnter()
	assert.Equal(t, "Fe", d.selectedSymbol())
	assert.Contains(t, d.PlainView(), "Eisen")
}

func TestBrowse_Quit(t *testing.T) {
	d := newBrowseDriver(t, "en", 100, 30)
	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}

func TestBrowse_CtrlCQuitsWhileFiltering(t *testing.T) {
	d := newBrowseDriver(t, "en", 100, 30)
	d.PressKey('/')
	d.PressCtrlC()
	assert.True(t, d.Quitting)
}

func TestLanguageOptions(t *testing.T) {
	app := &App{Catalog: catalog.Default()}
	options := app.languageOptions()
	require.NotEmpty(t, options)
	assert.Equal(t, "en", options[0].Value)

	var values []string
	for _, o := range options {
		values = append(values, o.Value)
	}
	assert.Contains(t, values, "de")
}

func TestLanguageOptions_LabelsShowLocalizedSample(t *testing.T) {
	app := &App{Catalog: catalog.Default()}
	labels := map[string]string{}
	for _, o := range app.languageOptions() {
		labels[o.Value] = o.Key
	}
	assert.Equal(t, "en     Hydrogen", labels["en"])
	assert.Equal(t, "de     Wasserstoff", labels["de"])
	assert.Equal(t, "en-US  Aluminum", labels["en-US"])
	assert.Equal(t, "en-GB  Sulphur", labels["en-GB"])
}
