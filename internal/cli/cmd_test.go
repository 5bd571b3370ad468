package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/nuclides/internal/catalog"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testApp returns an App over the built-in catalog with HOME and the
// working directory pointed at empty temp dirs, so no stray config file
// or database is picked up.
func testApp(t *testing.T) *App {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	return &App{
		Catalog: catalog.Default(),
		Logger:  zap.NewNop(),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return ansi.Strip(buf.String()), err
}

func TestListCmd(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 119, "header plus 118 elements")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "Z"))
	assert.Contains(t, lines[1], "Hydrogen")
	assert.Contains(t, lines[118], "Oganesson")
}

func TestListCmd_Category(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app, "list", "--category", "noble")
	require.NoError(t, err)
	assert.Contains(t, out, "Neon")
	assert.NotContains(t, out, "Iron")

	_, err = executeCmd(t, testApp(t), "list", "--category", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no elements in category "nope"`)
}

func TestShowCmd(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app, "show", "Fe")
	require.NoError(t, err)
	assert.Contains(t, out, "Iron")
	assert.Contains(t, out, "WEIGHT")
	assert.Contains(t, out, "Fe-56")
}

func TestShowCmd_Lang(t *testing.T) {
	app := testApp(t)
	out, err := executeCmd(t, app, "show", "Fe", "--lang", "de")
	require.NoError(t, err)
	assert.Contains(t, out, "Eisen")
	assert.Equal(t, "de", app.Config.Lang)
	assert.True(t, app.langChosen)
}

func TestShowCmd_UnknownSymbol(t *testing.T) {
	for _, args := range [][]string{
		{"show", "Xy"},
		{"isotopes", "Xy"},
		{"decay", "Xy-12"},
		{"decay", "Xy"},
	} {
		_, err := executeCmd(t, testApp(t), args...)
		require.Error(t, err, args)
		assert.Equal(t, `no nuclide with symbol "Xy"`, err.Error())
	}
}

func TestShowCmd_SymbolIsCaseSensitive(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "show", "fe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"fe"`)
}

func TestIsotopesCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "isotopes", "U")
	require.NoError(t, err)
	assert.Contains(t, out, "ISOTOPE")
	assert.Contains(t, out, "U-238")
	assert.Contains(t, out, "U-235")
}

func TestDecayCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "decay", "U-238")
	require.NoError(t, err)
	assert.Contains(t, out, "DECAY CHAIN U-238")
	assert.Contains(t, out, "Th-234")
	assert.Contains(t, out, "Pb-206")
	assert.Contains(t, out, "α Alpha · β− Beta minus")
}

func TestDecayCmd_BareSymbolStartsAtFirstIsotope(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "decay", "C")
	require.NoError(t, err)
	assert.Contains(t, out, "DECAY CHAIN C-11")
	assert.Contains(t, out, "B-11")
	assert.Contains(t, out, "β+ Beta plus")
}

func TestDecayCmd_UnknownIsotope(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "decay", "U-999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no catalogued isotope "U-999"`)
}

func TestTableCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Periodic table")
	assert.Contains(t, out, "Og")
}

func TestPrintCmd_JSON(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "print", "--format", "json")
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 118)
	assert.Equal(t, "H", rows[0]["symbol"])
}

func TestPrintCmd_HTMLToFile(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "table.html")

	out, err := executeCmd(t, app, "print", "--format", "html", "--out", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<table")
	assert.Contains(t, string(data), "Oganesson")
}

func TestPrintCmd_OutFileErrors(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "print", "--format", "json", "--out", filepath.Join(t.TempDir(), "missing", "x.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing json output: creating output file")

	if _, statErr := os.Stat("/dev/full"); statErr != nil {
		t.Skip("no /dev/full")
	}
	_, err = executeCmd(t, testApp(t), "print", "--out", "/dev/full")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing text output")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, writeFile(path, "hello\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))

	err = writeFile(t.TempDir(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output file")
}

func TestPrintCmd_Text(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "print")
	require.NoError(t, err)
	assert.Contains(t, out, "Hydrogen")
}

func TestPrintCmd_UnknownFormat(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "print", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
}

func TestExportAndRunsCmd(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "sub", "nuclides.db")

	out, err := executeCmd(t, app, "export", "--db", path, "--lang", "de", "--temp", "300")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 119 nuclides")
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	out, err = executeCmd(t, testApp(t), "runs", "--db", path)
	require.NoError(t, err)
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "de")
	assert.Contains(t, out, "300 K")
}

func TestRunsCmd_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nuclides.db")
	out, err := executeCmd(t, testApp(t), "runs", "--db", path)
	require.NoError(t, err)
	assert.Contains(t, out, "No exports yet.")
}

func TestRunsCmd_RejectsBadLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nuclides.db")
	_, err := executeCmd(t, testApp(t), "runs", "--db", path, "--limit", "0")
	require.Error(t, err)
}

func TestBrowseCmd_NeedsTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "browse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative temperature", []string{"list", "--temp", "-1"}},
		{"bad log level", []string{"list", "--log-level", "loud"}},
		{"missing config file", []string{"list", "--config", "/nonexistent/nuclides.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCmd(t, testApp(t), tt.args...)
			require.Error(t, err)
		})
	}
}

func TestRootCmd_ConfigFile(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "nuclides.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lang: de\ntemperature: 400\n"), 0o644))

	out, err := executeCmd(t, app, "show", "Fe", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Eisen")
	assert.Equal(t, 400.0, app.Config.Temperature)
	assert.True(t, app.langChosen)
}

func TestRootCmd_DefaultsLeaveLanguageUnchosen(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "table")
	require.NoError(t, err)
	assert.Equal(t, "en", app.Config.Lang)
	assert.False(t, app.langChosen)
}

func TestRootCmd_FlagOverridesConfigFile(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "nuclides.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lang: de\n"), 0o644))

	out, err := executeCmd(t, app, "show", "Fe", "--config", path, "--lang", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "Iron")
}
