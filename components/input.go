package components

import (
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/yohamta/donburi"
)

// IntentData is the directional intent resolved for one tick. It is consumed
// (cleared) by the movement pass.
type IntentData struct {
	Left     bool
	Right    bool
	Up       bool
	Down     bool
	DigLeft  bool
	DigRight bool
}

// Horizontal returns -1, 0 or 1. Left and right together cancel.
func (i IntentData) Horizontal() float64 {
	switch {
	case i.Left && !i.Right:
		return -1
	case i.Right && !i.Left:
		return 1
	}
	return 0
}

// Vertical returns -1, 0 or 1 with up positive. Up and down together cancel.
func (i IntentData) Vertical() float64 {
	switch {
	case i.Up && !i.Down:
		return 1
	case i.Down && !i.Up:
		return -1
	}
	return 0
}

var Intent = donburi.NewComponentType[IntentData]()

// ActionState represents the temporal state of a viewer action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// viewer actions, merged across keyboard and gamepads.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
