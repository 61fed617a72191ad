package tuifrontend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"nesgo/internal/app"
	"nesgo/internal/system"
)

func TestRenderStatusShowsFrameCountAndMapperID(t *testing.T) {
	sys := system.New(nil)
	m := New(sys, app.Default())
	m.frameCount = 42

	status := m.renderStatus()

	assert.Contains(t, status, "frame 42")
	assert.Contains(t, status, "mapper 0")
}

func TestPollButtonsMapsConfiguredKeyToButtonBit(t *testing.T) {
	sys := system.New(nil)
	m := New(sys, app.Default())
	m.pressed[strings.ToUpper(m.keys.A)] = true

	assert.NotZero(t, m.pollButtons())
}
