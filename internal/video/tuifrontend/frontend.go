// Package tuifrontend is the terminal frontend collaborator: a bubbletea
// model that runs one emulated frame per tick and renders a downsampled
// view of the frame buffer with lipgloss-colored blocks.
package tuifrontend

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nesgo/internal/app"
	"nesgo/internal/input"
	"nesgo/internal/system"
)

const (
	cols = 64
	rows = 30
)

type frameMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(time.Time) tea.Msg { return frameMsg{} })
}

// Model is the bubbletea model driving one System.
type Model struct {
	sys  *system.System
	keys app.KeyMapping

	pressed map[string]bool

	frameCount     int
	fpsWindowStart time.Time
	fpsWindowCount int
	fps            float64
}

// New constructs a Model around sys using cfg's key bindings.
func New(sys *system.System, cfg *app.Config) Model {
	return Model{sys: sys, keys: cfg.Keys, pressed: map[string]bool{}, fpsWindowStart: time.Now()}
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		s := strings.ToUpper(msg.String())
		if s == "CTRL+C" || s == "Q" {
			return m, tea.Quit
		}
		m.pressed[s] = true
		return m, nil
	case frameMsg:
		m.sys.SetControllerState(0, m.pollButtons())
		m.sys.RunFrame()
		m.pressed = map[string]bool{}

		m.frameCount++
		m.fpsWindowCount++
		if elapsed := time.Since(m.fpsWindowStart); elapsed >= time.Second {
			m.fps = float64(m.fpsWindowCount) / elapsed.Seconds()
			m.fpsWindowCount = 0
			m.fpsWindowStart = time.Now()
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) pollButtons() uint8 {
	var bits uint8
	press := func(name string, bit uint8) {
		if m.pressed[strings.ToUpper(name)] {
			bits |= bit
		}
	}
	press(m.keys.A, input.ButtonA)
	press(m.keys.B, input.ButtonB)
	press(m.keys.Select, input.ButtonSelect)
	press(m.keys.Start, input.ButtonStart)
	press(m.keys.Up, input.ButtonUp)
	press(m.keys.Down, input.ButtonDown)
	press(m.keys.Left, input.ButtonLeft)
	press(m.keys.Right, input.ButtonRight)
	return bits
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// View renders a cols x rows block-character downsample of the 256x240
// frame buffer, averaging each cell's source pixels into one lipgloss color,
// plus a status line underneath.
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.renderFrame(), m.renderStatus())
}

func (m Model) renderFrame() string {
	fb := m.sys.PPU.FrameBuffer()
	cellW := 256 / cols
	cellH := 240 / rows

	var b strings.Builder
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			var rSum, gSum, bSum, n int
			for y := cy * cellH; y < (cy+1)*cellH; y++ {
				for x := cx * cellW; x < (cx+1)*cellW; x++ {
					px := fb[y*256+x]
					rSum += int(px[0])
					gSum += int(px[1])
					bSum += int(px[2])
					n++
				}
			}
			style := lipgloss.NewStyle().Background(lipgloss.Color(
				fmt.Sprintf("#%02x%02x%02x", rSum/n, gSum/n, bSum/n),
			))
			b.WriteString(style.Render(" "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderStatus() string {
	mapperID := uint8(0)
	if m.sys.Cart != nil {
		mapperID = m.sys.Cart.MapperID()
	}
	return statusStyle.Render(fmt.Sprintf(
		"frame %d  mapper %d  %.1f fps  (q to quit)",
		m.frameCount, mapperID, m.fps,
	))
}
