package components

import (
	"github.com/dakitten2358/loderunner/grid"
	"github.com/dakitten2358/loderunner/nav"
	"github.com/yohamta/donburi"
)

// LevelData is the simulation context shared by every stage: the grid, the
// cached navmesh and the per-tick command buffer.
type LevelData struct {
	Name      string
	Grid      *grid.Grid
	NavMesh   *nav.Mesh
	DeltaTime float64
	Tick      uint64

	// Deferred holds tag changes queued by the movement passes, flushed
	// after both have run.
	Deferred []func()

	Collected  int
	ExitOpen   bool
	Complete   bool
	HiddenExit []grid.Pos
}

// Defer queues fn until the command buffer is flushed.
func (l *LevelData) Defer(fn func()) {
	l.Deferred = append(l.Deferred, fn)
}

// Flush runs and clears the queued commands in order.
func (l *LevelData) Flush() {
	for _, fn := range l.Deferred {
		fn()
	}
	l.Deferred = l.Deferred[:0]
}

var Level = donburi.NewComponentType[LevelData]()
