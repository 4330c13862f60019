package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/tetris"
)

const inspectorCellSize = 12

// BoardInspector shows the board's state, the shape histogram and a
// miniature of the grid, and lets the user apply actions by hand.
type BoardInspector struct {
	ShowGhost bool
}

func NewBoardInspector() *BoardInspector {
	return &BoardInspector{ShowGhost: true}
}

func (bi *BoardInspector) Render(frame *game.UpdateFrame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 520), imgui.CondOnce)
	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	snap := frame.Board.Snapshot()

	if snap.State == tetris.GameOver {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	} else {
		imgui.TextColored(imgui.NewVec4(0.3, 1.0, 0.3, 1.0), "ACTIVE")
	}
	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Lines: %d", snap.Lines))
	imgui.Text(fmt.Sprintf("Locked pieces: %d", snap.Stats.Locked))

	active := frame.Board.Active()
	imgui.Text(fmt.Sprintf("Active: %s at (%d, %d)", active.Shape(), active.Origin().X, active.Origin().Y))

	imgui.Separator()
	bi.renderControls(frame)

	if imgui.TreeNodeStr("Spawned Shapes") {
		bi.renderHistogram(snap.Stats)
		imgui.TreePop()
	}

	imgui.Separator()
	imgui.Checkbox("Show ghost", &bi.ShowGhost)
	bi.renderGrid(snap)

	imgui.End()
}

func (bi *BoardInspector) renderControls(frame *game.UpdateFrame) {
	buttons := []struct {
		label  string
		action game.Action
	}{
		{"Left", game.MoveLeft},
		{"Right", game.MoveRight},
		{"CW", game.RotateClockwise},
		{"CCW", game.RotateCounterClockwise},
		{"Down", game.SoftDrop},
		{"Drop", game.HardDrop},
	}

	for i, b := range buttons {
		if i > 0 {
			imgui.SameLine()
		}
		// render functions run on the session writer, so the board can be
		// driven directly
		if imgui.Button(b.label) {
			game.Apply(frame.Board, b.action)
		}
	}
}

func (bi *BoardInspector) renderHistogram(stats *tetris.Stats) {
	total := stats.TotalSpawned()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("ShapeTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Shape")
		imgui.TableSetupColumn("Count")
		imgui.TableSetupColumn("Share")
		imgui.TableHeadersRow()

		for _, shape := range tetris.Shapes() {
			count := stats.Spawned(shape)
			share := float32(0)
			if total > 0 {
				share = float32(count) / float32(total)
			}

			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(shape.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", count))
			imgui.TableNextColumn()
			imgui.ProgressBarV(share, imgui.NewVec2(-1, 0), fmt.Sprintf("%.0f%%", share*100))
		}

		imgui.EndTable()
	}
}

func (bi *BoardInspector) renderGrid(snap tetris.Snapshot) {
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()

	cell := func(p tetris.Point, c imgui.Vec4) {
		topLeft := imgui.NewVec2(origin.X+float32(p.X*inspectorCellSize), origin.Y+float32(p.Y*inspectorCellSize))
		bottomRight := imgui.NewVec2(topLeft.X+inspectorCellSize-1, topLeft.Y+inspectorCellSize-1)
		drawList.AddRectFilled(topLeft, bottomRight, imgui.ColorU32Vec4(c))
	}

	for y := range snap.Rows {
		for x := range snap.Columns {
			p := tetris.Point{X: x, Y: y}
			if shape := snap.At(x, y); shape != tetris.NoShape {
				cell(p, toVec4(shape.Color(), 1))
			} else {
				cell(p, imgui.NewVec4(0.1, 0.1, 0.1, 1))
			}
		}
	}

	if snap.State == tetris.Active {
		if bi.ShowGhost {
			for _, p := range snap.Ghost {
				cell(p, imgui.NewVec4(1, 1, 1, 0.3))
			}
		}
		for _, p := range snap.Active {
			cell(p, toVec4(snap.ActiveColor, 1))
		}
	}

	imgui.Dummy(imgui.NewVec2(float32(snap.Columns*inspectorCellSize), float32(snap.Rows*inspectorCellSize)))
}

func toVec4(c tetris.Color, alpha float32) imgui.Vec4 {
	rgba := c.HSB(1, 1)
	return imgui.NewVec4(float32(rgba.R)/255, float32(rgba.G)/255, float32(rgba.B)/255, alpha)
}
