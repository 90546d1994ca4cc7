package components

import "github.com/yohamta/donburi"

// PauseData stores the viewer pause state. Step asks for a single tick while
// paused and is cleared once consumed.
type PauseData struct {
	IsPaused bool
	Step     bool
}

var Pause = donburi.NewComponentType[PauseData]()
