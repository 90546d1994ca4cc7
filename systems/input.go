package systems

import (
	"github.com/dakitten2358/loderunner/components"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/dakitten2358/loderunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the keyboard and gamepads, then feeds the directional
// and dig actions into the intent of every locally controlled runner.
// Must run before the simulation steps.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	tags.LocalPlayer.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Intent) {
			return
		}
		ApplyActions(components.Intent.Get(e), input)
	})
}

// ApplyActions ORs the held actions into an intent. Flags accumulate until
// the movement pass consumes them.
func ApplyActions(intent *components.IntentData, input *components.InputData) {
	intent.Left = intent.Left || input.Current[cfg.ActionMoveLeft]
	intent.Right = intent.Right || input.Current[cfg.ActionMoveRight]
	intent.Up = intent.Up || input.Current[cfg.ActionMoveUp]
	intent.Down = intent.Down || input.Current[cfg.ActionMoveDown]
	intent.DigLeft = intent.DigLeft || input.Current[cfg.ActionDigLeft]
	intent.DigRight = intent.DigRight || input.Current[cfg.ActionDigRight]
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Actions returns the viewer's input state, or nil before the first poll.
func Actions(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}
