package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/alexanderramin/nuclides/internal/cli/formatter"
	"github.com/alexanderramin/nuclides/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// huhTheme returns a huh theme using the formatter palette.
func huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// languageOptions lists the default language followed by every language
// with explicit names, each labelled with a sample name in that language.
func (app *App) languageOptions() []huh.Option[string] {
	langs := app.Catalog.Languages()
	if !slices.Contains(langs, domain.DefaultLanguage) {
		langs = append([]string{domain.DefaultLanguage}, langs...)
	}
	options := make([]huh.Option[string], 0, len(langs))
	for _, lang := range langs {
		label := lang
		if name := app.sampleName(lang); name != "" {
			label = fmt.Sprintf("%-6s %s", lang, name)
		}
		options = append(options, huh.NewOption(label, lang))
	}
	return options
}

// sampleName returns the first element name localized for lang, or the
// first element's canonical name when lang has no names of its own.
func (app *App) sampleName(lang string) string {
	var first *domain.Nuclide
	for n := range app.Catalog.GetElements() {
		if n.HasName(lang) {
			return n.GetName(lang)
		}
		if first == nil {
			first = n
		}
	}
	if first == nil {
		return ""
	}
	return first.Name()
}

// languageForm asks which language names should be shown in.
func (app *App) languageForm(result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which language?").
				Options(app.languageOptions()...).
				Value(result),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("browse needs an interactive terminal")
			}

			if !app.langChosen {
				lang := app.Config.Lang
				if err := app.languageForm(&lang).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}
				app.Config.Lang = lang
			}

			m := newBrowseModel(app.summaries(), app.Config.Lang)
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err := p.Run()
			return err
		},
	}
}
