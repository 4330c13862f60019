package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

const (
	panelWidth = 140

	// auto-repeat for held keys, in ticks
	repeatDelay = 12
	repeatRate  = 3
)

var keyBindings = []struct {
	key    ebiten.Key
	action game.Action
	repeat bool
}{
	{ebiten.KeyLeft, game.MoveLeft, true},
	{ebiten.KeyRight, game.MoveRight, true},
	{ebiten.KeyDown, game.SoftDrop, true},
	{ebiten.KeyUp, game.RotateClockwise, false},
	{ebiten.KeyZ, game.RotateClockwise, false},
	{ebiten.KeyX, game.RotateCounterClockwise, false},
	{ebiten.KeyEnter, game.HardDrop, false},
	{ebiten.KeySpace, game.HardDrop, false},
}

// Frontend implements ebiten.Game. Ebiten's update loop is the session's
// driving loop; Draw only reads snapshots.
type Frontend struct {
	cfg        tetris.Config
	newSession func() *game.Session
	session    *game.Session
	offsetX    int

	imgui       *debugui_ebiten.ImguiBackend
	imguiSystem *debugui.ImguiSystem
}

func (f *Frontend) restart() {
	f.session = f.newSession()
	if f.imguiSystem != nil {
		f.session.Register(f.imguiSystem)
	}
}

func (f *Frontend) screenSize() (int, int) {
	return f.offsetX + f.cfg.Columns*f.cfg.Scale + panelWidth, f.cfg.Rows * f.cfg.Scale
}

func (f *Frontend) over() bool {
	select {
	case <-f.session.Done():
		return true
	default:
		return false
	}
}

func (f *Frontend) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if f.over() && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		f.restart()
	}

	if f.imgui != nil {
		f.imgui.BeginFrame()
	}

	if f.imguiSystem == nil || !f.imguiSystem.InputState.WantCaptureKeyboard {
		f.handleInput()
	}
	f.session.Once(1.0 / float64(ebiten.TPS()))

	if f.imgui != nil {
		f.imgui.EndFrame()
	}

	return nil
}

func (f *Frontend) handleInput() {
	for _, binding := range keyBindings {
		if binding.repeat {
			if repeating(inpututil.KeyPressDuration(binding.key)) {
				f.session.Push(binding.action)
			}
			continue
		}
		if inpututil.IsKeyJustPressed(binding.key) {
			f.session.Push(binding.action)
		}
	}
}

// repeating reports whether a key held for the given number of ticks fires
// this tick.
func repeating(duration int) bool {
	if duration == 1 {
		return true
	}
	return duration >= repeatDelay && (duration-repeatDelay)%repeatRate == 0
}

func (f *Frontend) Draw(screen *ebiten.Image) {
	snap := f.session.Snapshot()
	offset := float32(f.offsetX)

	drawBackground(screen, snap, offset)
	drawLocked(screen, snap, offset)
	if snap.State == tetris.Active {
		drawGhost(screen, snap, offset)
		drawActive(screen, snap, offset)
	}

	f.drawPanel(screen, snap)

	if f.imgui != nil {
		f.imgui.Draw(screen)
	}
}

func (f *Frontend) drawPanel(screen *ebiten.Image, snap tetris.Snapshot) {
	x := f.offsetX + snap.Columns*snap.Scale + 10

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE\n%d", snap.Score), x, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES\n%d", snap.Lines), x, 50)

	if snap.State == tetris.GameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER\nR to restart\nEsc to quit", x, 100)
	}
}

func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	if f.imgui != nil {
		f.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return f.screenSize()
}

var ghostColor = color.RGBA{R: 255, G: 255, B: 255, A: 40}
