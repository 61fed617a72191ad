// Package ebitenfrontend is the windowed frontend collaborator: an
// ebiten.Game that runs one emulated frame per Update and blits the PPU's
// 256x240 buffer, scaled to fill the window.
package ebitenfrontend

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"nesgo/internal/app"
	"nesgo/internal/input"
	"nesgo/internal/system"
)

const (
	nesWidth  = 256
	nesHeight = 240
)

// Game drives one System per Update/Draw cycle.
type Game struct {
	sys         *system.System
	keys        app.KeyMapping
	frameImage  *ebiten.Image
	windowW     int
	windowH     int
	imageBuffer []byte
}

// New constructs a Game around sys using cfg's key bindings and window
// scale.
func New(sys *system.System, cfg *app.Config) *Game {
	scale := cfg.Window.Scale
	if scale < 1 {
		scale = 1
	}
	return &Game{
		sys:         sys,
		keys:        cfg.Keys,
		frameImage:  ebiten.NewImage(nesWidth, nesHeight),
		windowW:     nesWidth * scale,
		windowH:     nesHeight * scale,
		imageBuffer: make([]byte, nesWidth*nesHeight*4),
	}
}

// WindowSize returns the initial window dimensions for ebiten.SetWindowSize.
func (g *Game) WindowSize() (int, int) { return g.windowW, g.windowH }

// Update runs one emulated frame and latches the current keyboard state
// into controller port 0.
func (g *Game) Update() error {
	g.sys.SetControllerState(0, g.pollButtons())
	g.sys.RunFrame()
	return nil
}

func (g *Game) pollButtons() uint8 {
	var bits uint8
	press := func(name string, bit uint8) {
		if ebiten.IsKeyPressed(keyByName(name)) {
			bits |= bit
		}
	}
	press(g.keys.A, input.ButtonA)
	press(g.keys.B, input.ButtonB)
	press(g.keys.Select, input.ButtonSelect)
	press(g.keys.Start, input.ButtonStart)
	press(g.keys.Up, input.ButtonUp)
	press(g.keys.Down, input.ButtonDown)
	press(g.keys.Left, input.ButtonLeft)
	press(g.keys.Right, input.ButtonRight)
	return bits
}

// Draw blits the PPU's frame buffer, scaled to fill the window while
// preserving aspect ratio.
func (g *Game) Draw(screen *ebiten.Image) {
	fb := g.sys.PPU.FrameBuffer()
	for i, px := range fb {
		o := i * 4
		g.imageBuffer[o] = px[0]
		g.imageBuffer[o+1] = px[1]
		g.imageBuffer[o+2] = px[2]
		g.imageBuffer[o+3] = 255
	}
	g.frameImage.WritePixels(g.imageBuffer)

	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}

	bounds := screen.Bounds()
	scaleX := float64(bounds.Dx()) / float64(nesWidth)
	scaleY := float64(bounds.Dy()) / float64(nesHeight)
	scale := scaleX
	if scaleY < scaleX {
		scale = scaleY
	}
	offsetX := (float64(bounds.Dx()) - float64(nesWidth)*scale) / 2
	offsetY := (float64(bounds.Dy()) - float64(nesHeight)*scale) / 2

	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offsetX, offsetY)
	screen.DrawImage(g.frameImage, op)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
