// Package debugui provides Dear ImGui inspector windows for a running game
// session. Windows are drawn from inside a session frame, so they read the
// board on the session's single writer and never race with gameplay.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/game"
)

// ImguiItem holds a Dear ImGui render function run once per frame.
type ImguiItem struct {
	Render func(frame *game.UpdateFrame)
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Front ends should not forward keys to the game while
// WantCaptureKeyboard is set.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function to the end of the frame
// and refreshes InputState.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
}

// Add appends a render function.
func (i *ImguiSystem) Add(render func(frame *game.UpdateFrame)) {
	i.Items = append(i.Items, ImguiItem{Render: render})
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *game.UpdateFrame) {
	i.InputState.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range i.Items {
		frame.Commands.Defer(func() { item.Render(frame) })
	}
}
