package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/alexanderramin/nuclides/internal/catalog"
	"github.com/alexanderramin/nuclides/internal/config"
	"github.com/alexanderramin/nuclides/internal/db"
	"github.com/alexanderramin/nuclides/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// App holds the catalog and the runtime collaborators used by CLI commands.
type App struct {
	Catalog *catalog.Catalog

	// Config is filled from flags, environment and config file before any
	// command runs.
	Config config.Config

	// Logger is built from Config.LogLevel when nil.
	Logger *zap.Logger

	// OpenDB opens the export database; db.OpenDB when nil.
	OpenDB func(path string) (*sql.DB, error)

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool

	// langChosen is true when the language came from a flag, the
	// environment or a config file rather than the built-in default.
	langChosen bool
}

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"lang":      config.KeyLang,
	"temp":      config.KeyTemperature,
	"log-level": config.KeyLogLevel,
	"db":        config.KeyDB,
}

func (app *App) interactive() bool {
	return app.IsInteractive != nil && app.IsInteractive()
}

func (app *App) openDB(path string) (*sql.DB, error) {
	if app.OpenDB != nil {
		return app.OpenDB(path)
	}
	return db.OpenDB(path)
}

// configure loads configuration for cmd, binding whichever of its flags
// map to configuration keys.
func (app *App) configure(cmd *cobra.Command, configFile string) error {
	v, err := config.NewViper(configFile)
	if err != nil {
		return err
	}
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	app.Config = cfg
	_, envLang := os.LookupEnv(config.EnvPrefix + "_LANG")
	app.langChosen = cmd.Flags().Changed("lang") || envLang || v.InConfig(config.KeyLang)

	if app.Logger == nil {
		logger, err := config.NewLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		app.Logger = logger
	}
	app.Logger.Debug("configuration loaded",
		zap.String("lang", cfg.Lang),
		zap.Float64("temperature", cfg.Temperature),
		zap.String("db", cfg.DB),
		zap.String("config_file", v.ConfigFileUsed()),
	)
	return nil
}

// bindFlags binds every flag in flags that maps to a configuration key.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

// summaries builds the printable rows of every element in the configured
// language and temperature.
func (app *App) summaries() []catalog.NuclideSummary {
	rows := make([]catalog.NuclideSummary, 0, app.Catalog.Len()-1)
	for n := range app.Catalog.GetElements() {
		rows = append(rows, app.Catalog.Summarize(n, app.Config.Lang, app.Config.Temperature))
	}
	return rows
}

// lookup finds a nuclide by symbol or reports a user-facing error.
func (app *App) lookup(symbol string) (*domain.Nuclide, error) {
	n, ok := app.Catalog.GetBySymbol(symbol)
	if !ok {
		return nil, fmt.Errorf("no nuclide with symbol %q", symbol)
	}
	return n, nil
}

// NewRootCmd creates the top-level "nuclides" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "nuclides",
		Short:         "Catalog of chemical elements and their isotopes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.configure(cmd, configFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				_ = app.Logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Config file (default .nuclides.yaml in the working or home directory)")
	pf.String("lang", domain.DefaultLanguage, "Language code for names and number formatting")
	pf.Float64("temp", domain.ZeroCelsius, "Temperature in kelvin used for physical state")
	pf.String("log-level", "warn", "Log level: debug, info, warn or error")

	root.AddCommand(
		newListCmd(app),
		newShowCmd(app),
		newIsotopesCmd(app),
		newDecayCmd(app),
		newTableCmd(app),
		newPrintCmd(app),
		newExportCmd(app),
		newRunsCmd(app),
		newBrowseCmd(app),
	)

	return root
}
