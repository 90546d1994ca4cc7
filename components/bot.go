package components

import (
	"github.com/dakitten2358/loderunner/grid"
	"github.com/yohamta/donburi"
)

type BotState int

const (
	BotStateIdle BotState = iota
	BotStateCollect
	BotStateEscape
)

func (s BotState) String() string {
	switch s {
	case BotStateCollect:
		return "Collect"
	case BotStateEscape:
		return "Escape"
	}
	return "Idle"
}

// BotData drives a runner without a keyboard: it walks to the nearest
// treasure and, once the exit is open, to the top row.
type BotData struct {
	AIState        BotState
	Goal           grid.Pos
	Waypoints      []grid.Pos
	RepathCooldown float64
}

var Bot = donburi.NewComponentType[BotData]()
