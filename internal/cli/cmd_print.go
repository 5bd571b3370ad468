package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/nuclides/internal/cli/formatter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Output formats accepted by the print command.
const (
	formatText = "text"
	formatHTML = "html"
	formatJSON = "json"
)

func newPrintCmd(app *App) *cobra.Command {
	var format, outPath string

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the whole catalog as text, HTML or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := app.render(format)
			if err != nil {
				return err
			}

			if outPath == "" {
				if _, err := io.WriteString(cmd.OutOrStdout(), text); err != nil {
					return fmt.Errorf("writing %s output: %w", format, err)
				}
			} else if err := writeFile(outPath, text); err != nil {
				return fmt.Errorf("writing %s output: %w", format, err)
			}
			app.Logger.Info("catalog printed",
				zap.String("format", format),
				zap.String("out", outPath),
				zap.Int("bytes", len(text)),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text, html or json")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to this file instead of stdout")

	return cmd
}

// writeFile writes text to path, reporting a failed close.
func writeFile(path, text string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()
	_, err = io.WriteString(f, text)
	return err
}

func (app *App) render(format string) (string, error) {
	rows := app.summaries()
	switch format {
	case formatText:
		return formatter.FormatTextTable(rows, app.Catalog.MaxNameLength(app.Config.Lang)), nil
	case formatHTML:
		return formatter.FormatHTML(rows)
	case formatJSON:
		return formatter.FormatJSON(rows)
	default:
		return "", fmt.Errorf("unknown format %q (want text, html or json)", format)
	}
}
