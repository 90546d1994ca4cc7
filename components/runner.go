package components

import "github.com/yohamta/donburi"

type RunnerData struct {
	Collected int
}

var Runner = donburi.NewComponentType[RunnerData]()
