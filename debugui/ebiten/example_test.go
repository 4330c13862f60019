package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

// Game implements ebiten.Game and draws debugui windows over a session.
type Game struct {
	session      *game.Session
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before the session runs its systems
	g.imguiBackend.BeginFrame()

	g.session.Once(1.0 / 60.0)

	// End ImGui frame after the deferred render functions ran
	g.imguiBackend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the board to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	imguiBackend := debugui_ebiten.NewImguiBackend("Blockfall ImGui Example", 1280, 720)

	board, err := tetris.NewBoard(tetris.DefaultConfig())
	if err != nil {
		panic(err)
	}

	imguiSystem := &debugui.ImguiSystem{}
	imguiSystem.Add(func(frame *game.UpdateFrame) {
		imgui.Begin("Debug Window")
		imgui.Text("Hello from Blockfall!")
		imgui.End()
	})
	imguiSystem.Add(debugui.NewBoardInspector().Render)

	session := game.NewSession(board)
	session.Register(&game.GravitySystem{Interval: game.DefaultGravity})
	session.Register(imguiSystem)

	g := &Game{
		session:      session,
		imguiBackend: imguiBackend,
	}

	if err := ebiten.RunGame(g); err != nil {
		panic(err)
	}
}
