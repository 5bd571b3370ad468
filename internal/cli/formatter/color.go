package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/nuclides/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorOrange = lipgloss.Color("#d65d0e")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// LifeColor returns the style for a stability index: green for stable,
// through yellow, to red for the most radioactive.
func LifeColor(index int) lipgloss.Style {
	switch {
	case index <= 0:
		return StyleGreen
	case index <= 2:
		return StyleYellow
	case index <= 4:
		return StyleOrange
	default:
		return StyleRed
	}
}

// LifeIndicator returns a colored stability marker such as "● S".
func LifeIndicator(index int) string {
	return LifeColor(index).Render("● " + string(domain.StabilityCode(index)))
}

// CategoryColor returns the style used for a chemical series.
func CategoryColor(cat domain.Category) lipgloss.Style {
	switch cat {
	case domain.AlkaliMetal, domain.AlkalineEarthMetal:
		return StyleRed
	case domain.Lanthanoid, domain.Actinoid:
		return StylePurple
	case domain.TransitionMetal:
		return StyleYellow
	case domain.PostTransitionMetal, domain.Metalloid:
		return StyleAqua
	case domain.Nonmetal, domain.Halogen:
		return StyleGreen
	case domain.NobleGas:
		return StyleBlue
	default:
		return StyleDim
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
