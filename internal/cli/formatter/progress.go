package formatter

import (
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderShare renders a natural-abundance bar like [████░░░░].
// The bar is colored green above 66%, yellow from 33%, red below.
func RenderShare(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	empty := width - filled

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	var style = StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return "[" + style.Render(bar) + "]"
}
