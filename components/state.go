package components

import "github.com/yohamta/donburi"

type FallingState struct{}
type StunnedState struct{}
type KilledState struct{}

var Falling = donburi.NewComponentType[FallingState]()
var Stunned = donburi.NewComponentType[StunnedState]()
var Killed = donburi.NewComponentType[KilledState]()
