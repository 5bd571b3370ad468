package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinner_DrawsAndClears(t *testing.T) {
	var buf bytes.Buffer
	stop := StartSpinner(&buf, "Exporting catalog...")
	time.Sleep(200 * time.Millisecond)
	stop()
	stop()

	out := buf.String()
	assert.Contains(t, stripANSI(out), "Exporting catalog...")
	assert.True(t, strings.HasSuffix(out, "\r\033[K"), "line is cleared on stop")
}

func TestSpinner_StopBeforeFirstFrame(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "quick")
	s.Start()
	s.Stop()
	assert.Equal(t, "\r\033[K", buf.String())
}
