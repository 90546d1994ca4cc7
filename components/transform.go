package components

import (
	"github.com/dakitten2358/loderunner/grid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData is the continuous world position of an entity's center.
type TransformData struct {
	Position math.Vec2
}

var Transform = donburi.NewComponentType[TransformData]()

// GridTransformData is the cell derived from Transform each tick. Static
// entities (bricks, treasure) only carry this.
type GridTransformData struct {
	Pos grid.Pos
}

var GridTransform = donburi.NewComponentType[GridTransformData]()
