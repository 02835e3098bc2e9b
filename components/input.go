package components

import (
	cfg "github.com/automoto/tilerush/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
	CursorX  int                   // Pointer position in screen space
	CursorY  int
}

var Input = donburi.NewComponentType[InputData]()

// Action returns the temporal state of an action.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	cur, prev := in.Current[id], in.Previous[id]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}
