package tags

import "github.com/yohamta/donburi"

var (
	Brick       = donburi.NewTag().SetName("Brick")
	SolidBrick  = donburi.NewTag().SetName("SolidBrick")
	FalseBrick  = donburi.NewTag().SetName("FalseBrick")
	Treasure    = donburi.NewTag().SetName("Treasure")
	LocalPlayer = donburi.NewTag().SetName("LocalPlayer")
)

// Resolv tags for the level Space
const (
	ResolvCharacter = "character"
	ResolvRunner    = "runner"
	ResolvGuard     = "guard"
)
