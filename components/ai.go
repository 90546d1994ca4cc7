package components

import (
	"github.com/dakitten2358/loderunner/grid"
	"github.com/yohamta/donburi"
)

// PathFollowerData holds the waypoints a guard is walking and the time left
// before it plans again.
type PathFollowerData struct {
	Waypoints      []grid.Pos
	RepathCooldown float64
}

var PathFollower = donburi.NewComponentType[PathFollowerData]()
