// Package simulation drives one level: it owns the ECS world, runs the
// ordered stage pipeline once per tick and delivers gameplay events.
package simulation

import (
	"fmt"
	"log"

	"github.com/dakitten2358/loderunner/components"
	"github.com/dakitten2358/loderunner/grid"
	"github.com/dakitten2358/loderunner/shared/leveldata"
	"github.com/dakitten2358/loderunner/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	math2 "github.com/yohamta/donburi/features/math"
)

type Options struct {
	Seed int64
	// LocalRunner binds the first runner to the viewer's keyboard.
	LocalRunner bool
	// Autopilot hands the remaining runners to the bot stage.
	Autopilot bool
	// Stages replaces the default pipeline when non-nil.
	Stages []Stage
}

type Simulation struct {
	ecs    *ecs.ECS
	level  *donburi.Entry
	stages []Stage
}

// New spawns doc into a fresh world and orders the pipeline.
func New(doc *leveldata.Document, opts Options) (*Simulation, error) {
	stages := opts.Stages
	if stages == nil {
		stages = DefaultStages()
	}
	ordered, err := OrderStages(stages)
	if err != nil {
		return nil, err
	}

	e := ecs.NewECS(donburi.NewWorld())
	level, err := factory.CreateLevel(e, doc, factory.LevelOptions{
		Seed:        opts.Seed,
		LocalRunner: opts.LocalRunner,
		Autopilot:   opts.Autopilot,
	})
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}

	for _, s := range ordered {
		e.AddSystem(s.Run)
	}

	log.Printf("[simulation] %q ready with %d stages", doc.Name, len(ordered))
	return &Simulation{ecs: e, level: level, stages: ordered}, nil
}

// Step advances the simulation by dt seconds and then delivers the events
// published during the tick.
func (s *Simulation) Step(dt float64) {
	level := s.Level()
	level.DeltaTime = dt
	level.Tick++
	s.ecs.Update()
	events.ProcessAllEvents(s.ecs.World)
}

func (s *Simulation) ECS() *ecs.ECS        { return s.ecs }
func (s *Simulation) World() donburi.World { return s.ecs.World }
func (s *Simulation) Grid() *grid.Grid     { return s.Level().Grid }
func (s *Simulation) Tick() uint64         { return s.Level().Tick }
func (s *Simulation) Complete() bool       { return s.Level().Complete }
func (s *Simulation) Level() *components.LevelData {
	return components.Level.Get(s.level)
}

// StageNames lists the pipeline in execution order.
func (s *Simulation) StageNames() []string {
	names := make([]string, len(s.stages))
	for i, st := range s.stages {
		names[i] = st.Name
	}
	return names
}

// SetIntent buffers intent for e. Flags accumulate until the next movement
// pass consumes them.
func (s *Simulation) SetIntent(e donburi.Entity, intent components.IntentData) error {
	if !s.ecs.World.Valid(e) {
		return fmt.Errorf("simulation: entity %v is not alive", e)
	}
	entry := s.ecs.World.Entry(e)
	if !entry.HasComponent(components.Intent) {
		return fmt.Errorf("simulation: entity %v takes no intent", e)
	}
	current := components.Intent.Get(entry)
	current.Left = current.Left || intent.Left
	current.Right = current.Right || intent.Right
	current.Up = current.Up || intent.Up
	current.Down = current.Down || intent.Down
	current.DigLeft = current.DigLeft || intent.DigLeft
	current.DigRight = current.DigRight || intent.DigRight
	return nil
}

// Runners returns the runner entities in spawn order.
func (s *Simulation) Runners() []donburi.Entity {
	var out []donburi.Entity
	components.Runner.Each(s.ecs.World, func(e *donburi.Entry) {
		out = append(out, e.Entity())
	})
	return out
}

// Guards returns the guard entities in spawn order.
func (s *Simulation) Guards() []donburi.Entity {
	var out []donburi.Entity
	components.Guard.Each(s.ecs.World, func(e *donburi.Entry) {
		out = append(out, e.Entity())
	})
	return out
}

// Position returns the world-space center of e.
func (s *Simulation) Position(e donburi.Entity) (math2.Vec2, bool) {
	if !s.ecs.World.Valid(e) {
		return math2.Vec2{}, false
	}
	entry := s.ecs.World.Entry(e)
	if !entry.HasComponent(components.Transform) {
		return math2.Vec2{}, false
	}
	return components.Transform.Get(entry).Position, true
}

// Cell returns the grid cell e was derived into during the last tick.
func (s *Simulation) Cell(e donburi.Entity) (grid.Pos, bool) {
	if !s.ecs.World.Valid(e) {
		return grid.Pos{}, false
	}
	entry := s.ecs.World.Entry(e)
	if !entry.HasComponent(components.GridTransform) {
		return grid.Pos{}, false
	}
	return components.GridTransform.Get(entry).Pos, true
}

func (s *Simulation) OnBurnTransition(fn func(components.BurnTransition)) {
	components.BurnTransitionEvent.Subscribe(s.ecs.World, func(_ donburi.World, ev components.BurnTransition) { fn(ev) })
}

func (s *Simulation) OnTreasureCollected(fn func(components.TreasureCollected)) {
	components.TreasureCollectedEvent.Subscribe(s.ecs.World, func(_ donburi.World, ev components.TreasureCollected) { fn(ev) })
}

func (s *Simulation) OnRunnerKilled(fn func(components.RunnerKilled)) {
	components.RunnerKilledEvent.Subscribe(s.ecs.World, func(_ donburi.World, ev components.RunnerKilled) { fn(ev) })
}

func (s *Simulation) OnGuardStunned(fn func(components.GuardStunned)) {
	components.GuardStunnedEvent.Subscribe(s.ecs.World, func(_ donburi.World, ev components.GuardStunned) { fn(ev) })
}

func (s *Simulation) OnExitRevealed(fn func(components.ExitRevealed)) {
	components.ExitRevealedEvent.Subscribe(s.ecs.World, func(_ donburi.World, ev components.ExitRevealed) { fn(ev) })
}

func (s *Simulation) OnLevelComplete(fn func(components.LevelComplete)) {
	components.LevelCompleteEvent.Subscribe(s.ecs.World, func(_ donburi.World, ev components.LevelComplete) { fn(ev) })
}
