package components

import (
	"github.com/dakitten2358/loderunner/grid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type BurnTransition struct {
	Entity donburi.Entity
	Cell   grid.Pos
	From   BurnState
	To     BurnState
}

type TreasureCollected struct {
	Runner    donburi.Entity
	Cell      grid.Pos
	Collected int
	Remaining int
}

type RunnerKilled struct {
	Runner donburi.Entity
	// By is the guard responsible, or donburi.Null when a brick closed on the runner.
	By   donburi.Entity
	Cell grid.Pos
}

type GuardStunned struct {
	Guard donburi.Entity
	Cell  grid.Pos
}

type ExitRevealed struct {
	Cells []grid.Pos
}

type LevelComplete struct {
	Runner donburi.Entity
	Tick   uint64
}

var (
	BurnTransitionEvent    = events.NewEventType[BurnTransition]()
	TreasureCollectedEvent = events.NewEventType[TreasureCollected]()
	RunnerKilledEvent      = events.NewEventType[RunnerKilled]()
	GuardStunnedEvent      = events.NewEventType[GuardStunned]()
	ExitRevealedEvent      = events.NewEventType[ExitRevealed]()
	LevelCompleteEvent     = events.NewEventType[LevelComplete]()
)
