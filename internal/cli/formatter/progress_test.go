package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderShare(t *testing.T) {
	tests := []struct {
		name   string
		pct    float64
		width  int
		filled int
		total  int
	}{
		{"empty", 0.0, 10, 0, 10},
		{"half", 0.5, 10, 5, 10},
		{"full", 1.0, 10, 10, 10},
		{"over 100% clamps", 1.5, 10, 10, 10},
		{"negative clamps", -0.5, 10, 0, 10},
		{"tiny width clamps to 2", 0.5, 1, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderShare(tt.pct, tt.width))
			assert.True(t, strings.HasPrefix(got, "["))
			assert.True(t, strings.HasSuffix(got, "]"))
			assert.Equal(t, tt.filled, strings.Count(got, filledBlock))
			assert.Equal(t, tt.total-tt.filled, strings.Count(got, emptyBlock))
		})
	}
}
