package components

import (
	"github.com/dakitten2358/loderunner/grid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type MovementData struct {
	HorizontalSpeed float64
	ClimbSpeed      float64

	FallStart grid.Pos
	// FallDrift is the sign of the horizontal velocity when the fall began.
	// Falling itself always drifts toward the column; only drawing reads it.
	FallDrift float64

	// Velocity is the last position delta, read by animation.
	Velocity math.Vec2
}

var Movement = donburi.NewComponentType[MovementData]()
