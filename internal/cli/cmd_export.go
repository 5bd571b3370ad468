package cli

import (
	"fmt"

	"github.com/alexanderramin/nuclides/internal/cli/formatter"
	"github.com/alexanderramin/nuclides/internal/db"
	"github.com/alexanderramin/nuclides/internal/repository"
	"github.com/alexanderramin/nuclides/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// withExportService opens the configured database, wires the export
// service against it and closes the database after fn returns.
func (app *App) withExportService(fn func(service.ExportService) error) error {
	database, err := app.openDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			app.Logger.Warn("closing database", zap.Error(err))
		}
	}()

	svc := service.NewExportService(
		app.Catalog,
		repository.NewSQLiteExportRunRepo(database),
		db.NewSQLiteUnitOfWork(database),
		service.NewZapUseCaseObserver(app.Logger),
	)
	return fn(svc)
}

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Copy the catalog into a SQLite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withExportService(func(svc service.ExportService) error {
				stop := func() {}
				if app.interactive() {
					stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Exporting catalog...")
				}
				run, err := svc.Export(cmd.Context(), service.ExportRequest{
					Lang:        app.Config.Lang,
					Temperature: app.Config.Temperature,
				})
				stop()
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatExportResult(run, app.Config.DB))
				return nil
			})
		},
	}

	cmd.Flags().String("db", "", "SQLite database path (default ~/.nuclides/nuclides.db)")

	return cmd
}

func newRunsCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show recent exports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withExportService(func(svc service.ExportService) error {
				runs, err := svc.ListRuns(cmd.Context(), limit)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatExportRuns(runs))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of runs to show")
	cmd.Flags().String("db", "", "SQLite database path (default ~/.nuclides/nuclides.db)")

	return cmd
}
