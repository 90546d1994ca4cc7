package systems

import (
	"testing"

	"github.com/dakitten2358/loderunner/components"
	cfg "github.com/dakitten2358/loderunner/config"
	"github.com/dakitten2358/loderunner/systems/factory"
	"github.com/stretchr/testify/assert"
)

func hold(tl *testLevel, actions ...cfg.ActionID) {
	input := getOrCreateInput(tl.ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func TestPauseToggleAndStep(t *testing.T) {
	tl := newTestLevelWith(t, factory.LevelOptions{Seed: 1, LocalRunner: true}, " & ", "###")

	assert.True(t, ShouldAdvance(tl.ecs))

	hold(tl, cfg.ActionPause)
	UpdatePause(tl.ecs)
	assert.False(t, ShouldAdvance(tl.ecs))

	// still held: no second toggle
	hold(tl, cfg.ActionPause)
	UpdatePause(tl.ecs)
	assert.False(t, ShouldAdvance(tl.ecs))

	hold(tl, cfg.ActionStep)
	UpdatePause(tl.ecs)
	assert.True(t, ShouldAdvance(tl.ecs))

	hold(tl, cfg.ActionStep)
	UpdatePause(tl.ecs)
	assert.False(t, ShouldAdvance(tl.ecs), "step fires once per press")

	hold(tl)
	UpdatePause(tl.ecs)
	hold(tl, cfg.ActionPause)
	UpdatePause(tl.ecs)
	assert.True(t, ShouldAdvance(tl.ecs))
}

func TestPauseClearsHeldIntents(t *testing.T) {
	tl := newTestLevelWith(t, factory.LevelOptions{Seed: 1, LocalRunner: true}, " & ", "###")
	runner := tl.runner()

	hold(tl, cfg.ActionPause)
	UpdatePause(tl.ecs)

	hold(tl, cfg.ActionPause, cfg.ActionMoveLeft)
	ApplyActions(components.Intent.Get(runner), getOrCreateInput(tl.ecs))
	UpdatePause(tl.ecs)
	assert.Equal(t, components.IntentData{}, *components.Intent.Get(runner))
}

func TestApplyActionsAccumulates(t *testing.T) {
	input := &components.InputData{}
	intent := &components.IntentData{}

	input.Current[cfg.ActionMoveLeft] = true
	ApplyActions(intent, input)
	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionDigRight] = true
	ApplyActions(intent, input)

	assert.Equal(t, components.IntentData{Left: true, DigRight: true}, *intent)
}

func TestGetAction(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionPause] = true
	assert.Equal(t, components.ActionState{Pressed: true, JustPressed: true}, GetAction(input, cfg.ActionPause))

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	assert.Equal(t, components.ActionState{JustReleased: true}, GetAction(input, cfg.ActionPause))
}
