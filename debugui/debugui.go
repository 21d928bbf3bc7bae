// Package debugui provides Dear ImGui panels for inspecting a running futris
// session. Panels are ImguiItems whose render functions the ImguiSystem defers
// to the end of each frame, after the board has been updated.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/futris/engine"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Drivers check it before translating keys into commands.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function and refreshes InputState.
// It must run between the backend's BeginFrame and EndFrame.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
	Hidden     bool
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *engine.UpdateFrame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	if i.Hidden {
		return
	}
	for _, item := range i.Items {
		frame.Commands.Defer(item.Render)
	}
}

// Toggle flips panel visibility.
func (i *ImguiSystem) Toggle() {
	i.Hidden = !i.Hidden
}

// DefaultItems returns the game and performance panels for session.
func DefaultItems(session *engine.Session) []ImguiItem {
	perf := NewPerformancePanel(session.Scheduler(), 120)
	game := NewGamePanel(session)
	return []ImguiItem{
		{Render: game.Render},
		{Render: perf.Render},
	}
}
