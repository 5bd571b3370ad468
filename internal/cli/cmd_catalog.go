package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/nuclides/internal/catalog"
	"github.com/alexanderramin/nuclides/internal/cli/formatter"
	"github.com/alexanderramin/nuclides/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every element as a fixed-width table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := app.summaries()
			if category != "" {
				rows = filterCategory(rows, category)
				if len(rows) == 0 {
					return fmt.Errorf("no elements in category %q", category)
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTextTable(rows, app.Catalog.MaxNameLength(app.Config.Lang)))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list elements whose category name contains this text")

	return cmd
}

func filterCategory(rows []catalog.NuclideSummary, category string) []catalog.NuclideSummary {
	want := strings.ToLower(category)
	var out []catalog.NuclideSummary
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.CategoryName), want) {
			out = append(out, r)
		}
	}
	return out
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show SYMBOL",
		Short: "Show the detail card of one element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.lookup(args[0])
			if err != nil {
				return err
			}
			s := app.Catalog.Summarize(n, app.Config.Lang, app.Config.Temperature)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatNuclide(s, app.Config.Lang))
			return nil
		},
	}
}

func newIsotopesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "isotopes SYMBOL",
		Short: "List the catalogued isotopes of one element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.lookup(args[0])
			if err != nil {
				return err
			}
			s := app.Catalog.Summarize(n, app.Config.Lang, app.Config.Temperature)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatIsotopes(s.Isotopes, app.Config.Lang))
			return nil
		},
	}
}

func newDecayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "decay SYMBOL[-A]",
		Short: "Follow the decay chain of an isotope, e.g. U-238",
		Long: "Follow the decay chain of an isotope, e.g. U-238. A bare symbol\n" +
			"starts from the element's first catalogued isotope.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iso, err := app.lookupIsotope(args[0])
			if err != nil {
				return err
			}
			chain, err := app.Catalog.DecayChain(iso.Z(), iso.A())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDecayChain(app.Catalog, chain, app.Config.Lang))
			return nil
		},
	}
}

// lookupIsotope resolves "SYMBOL-A", or a bare symbol to its first isotope.
func (app *App) lookupIsotope(text string) (domain.Isotope, error) {
	symbol, _, hasMass := strings.Cut(text, "-")
	if !hasMass {
		n, err := app.lookup(symbol)
		if err != nil {
			return domain.Isotope{}, err
		}
		iso, ok := n.FirstIsotope()
		if !ok {
			return domain.Isotope{}, fmt.Errorf("%s has no catalogued isotopes: %w", n.Symbol(), domain.ErrInvalidArgument)
		}
		return iso, nil
	}
	if iso, ok := app.Catalog.LookupIsotope(text); ok {
		return iso, nil
	}
	if _, err := app.lookup(symbol); err != nil {
		return domain.Isotope{}, err
	}
	return domain.Isotope{}, fmt.Errorf("no catalogued isotope %q: %w", text, domain.ErrInvalidArgument)
}

func newTableCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Draw the long-form periodic table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLongTable(app.Catalog))
			return nil
		},
	}
}
