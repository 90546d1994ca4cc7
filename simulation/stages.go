package simulation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dakitten2358/loderunner/systems"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrStageCycle        = errors.New("simulation: stage ordering has a cycle")
	ErrUnorderedConflict = errors.New("simulation: conflicting stages are not ordered")
	ErrUnknownStage      = errors.New("simulation: unknown stage")
	ErrDuplicateStage    = errors.New("simulation: duplicate stage name")
)

// Resource names a piece of shared simulation state a stage touches.
// Published events are queued and delivered after the tick, so they are not
// a resource.
type Resource string

const (
	Grid       Resource = "grid"
	NavMesh    Resource = "navmesh"
	Intents    Resource = "intents"
	DigIntents Resource = "dig-intents"
	Transforms Resource = "transforms"
	GridCells  Resource = "grid-transforms"
	Motion     Resource = "movement"
	StateTags  Resource = "state-tags"
	Commands   Resource = "commands"
	Objects    Resource = "objects"
	Overlaps   Resource = "overlaps"
	Burnables  Resource = "burnables"
	Paths      Resource = "paths"
	Treasure   Resource = "treasure"
	GuardState Resource = "guard-state"
	Progress   Resource = "progress"
)

// Stage is one step of the tick pipeline.
type Stage struct {
	Name   string
	Run    ecs.System
	Reads  []Resource
	Writes []Resource
	After  []string
}

func (s Stage) touches(r Resource) (read, write bool) {
	for _, w := range s.Writes {
		if w == r {
			return true, true
		}
	}
	for _, rd := range s.Reads {
		if rd == r {
			return true, false
		}
	}
	return false, false
}

// DefaultStages is the tick pipeline: AI, bots and burn triggers, then movement,
// falling, the deferred tag changes, derived cells and collision boxes,
// overlaps, the burn cycle and finally the gameplay reactions.
func DefaultStages() []Stage {
	return []Stage{
		{
			Name:   "guard-ai",
			Run:    systems.UpdateGuardAI,
			Reads:  []Resource{Grid, Transforms, GridCells, StateTags},
			Writes: []Resource{Intents, NavMesh, Paths},
		},
		{
			Name:   "runner-bots",
			Run:    systems.UpdateBots,
			Reads:  []Resource{Grid, Transforms, GridCells, StateTags, Overlaps, Progress},
			Writes: []Resource{Intents, NavMesh, Paths},
			After:  []string{"guard-ai"},
		},
		{
			Name:   "burn-triggers",
			Run:    systems.UpdateBurnTriggers,
			Reads:  []Resource{Grid, GridCells, StateTags},
			Writes: []Resource{DigIntents, Burnables},
		},
		{
			Name:   "movement",
			Run:    systems.UpdateMovement,
			Reads:  []Resource{Grid, GridCells, StateTags},
			Writes: []Resource{Intents, Transforms, Motion, Commands},
			After:  []string{"guard-ai", "runner-bots", "burn-triggers"},
		},
		{
			Name:   "falling",
			Run:    systems.UpdateFalling,
			Reads:  []Resource{GridCells, StateTags, Burnables},
			Writes: []Resource{Grid, Intents, Transforms, Motion, Commands},
			After:  []string{"movement"},
		},
		{
			Name:   "apply-commands",
			Run:    systems.ApplyCommands,
			Writes: []Resource{Commands, StateTags},
			After:  []string{"falling"},
		},
		{
			Name:   "grid-transforms",
			Run:    systems.UpdateGridTransforms,
			Reads:  []Resource{Transforms},
			Writes: []Resource{GridCells},
			After:  []string{"apply-commands"},
		},
		{
			Name:   "sync-objects",
			Run:    systems.UpdateObjects,
			Reads:  []Resource{Transforms},
			Writes: []Resource{Objects},
			After:  []string{"grid-transforms"},
		},
		{
			Name:   "overlaps",
			Run:    systems.UpdateOverlaps,
			Reads:  []Resource{Transforms},
			Writes: []Resource{Overlaps},
			After:  []string{"sync-objects"},
		},
		{
			Name:   "burnables",
			Run:    systems.UpdateBurnables,
			Reads:  []Resource{Objects, Overlaps, Transforms},
			Writes: []Resource{Burnables, Grid, StateTags},
			After:  []string{"overlaps"},
		},
		{
			Name:   "pickups",
			Run:    systems.UpdatePickups,
			Reads:  []Resource{StateTags, GridCells},
			Writes: []Resource{Overlaps, Treasure, Grid, Progress, GuardState},
			After:  []string{"burnables"},
		},
		{
			Name:   "guard-kills",
			Run:    systems.UpdateGuardKills,
			Reads:  []Resource{Overlaps, GridCells},
			Writes: []Resource{StateTags},
			After:  []string{"pickups"},
		},
		{
			Name:   "treasure-drops",
			Run:    systems.UpdateTreasureDrops,
			Reads:  []Resource{StateTags},
			Writes: []Resource{GuardState, Treasure, Grid, Overlaps},
			After:  []string{"guard-kills"},
		},
		{
			Name:   "guard-respawn",
			Run:    systems.UpdateGuardRespawn,
			Writes: []Resource{StateTags, GuardState, Treasure, Grid, Overlaps, Transforms, GridCells, Paths},
			After:  []string{"treasure-drops"},
		},
		{
			Name:   "exit-ladders",
			Run:    systems.UpdateExitLadders,
			Reads:  []Resource{StateTags, GridCells},
			Writes: []Resource{Grid, Progress},
			After:  []string{"guard-respawn"},
		},
	}
}

// OrderStages sorts stages so every stage runs after the ones it names in
// After. Ties keep declaration order. It fails when the After edges form a
// cycle, or when two stages touch the same resource (at least one writing)
// with no ordering path between them.
func OrderStages(stages []Stage) ([]Stage, error) {
	index := make(map[string]int, len(stages))
	for i, s := range stages {
		if _, dup := index[s.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStage, s.Name)
		}
		index[s.Name] = i
	}

	// edges run from a prerequisite to its dependents
	next := make([][]int, len(stages))
	indegree := make([]int, len(stages))
	for i, s := range stages {
		for _, dep := range s.After {
			j, ok := index[dep]
			if !ok {
				return nil, fmt.Errorf("%w: %q (after of %q)", ErrUnknownStage, dep, s.Name)
			}
			next[j] = append(next[j], i)
			indegree[i]++
		}
	}

	order := make([]int, 0, len(stages))
	done := make([]bool, len(stages))
	for len(order) < len(stages) {
		picked := -1
		for i := range stages {
			if !done[i] && indegree[i] == 0 {
				picked = i
				break
			}
		}
		if picked < 0 {
			var stuck []string
			for i, s := range stages {
				if !done[i] {
					stuck = append(stuck, s.Name)
				}
			}
			return nil, fmt.Errorf("%w: %s", ErrStageCycle, strings.Join(stuck, ", "))
		}
		done[picked] = true
		order = append(order, picked)
		for _, j := range next[picked] {
			indegree[j]--
		}
	}

	reach := reachability(next)
	for a := 0; a < len(stages); a++ {
		for b := a + 1; b < len(stages); b++ {
			if reach[a][b] || reach[b][a] {
				continue
			}
			if r, ok := conflict(stages[a], stages[b]); ok {
				return nil, fmt.Errorf("%w: %q and %q both touch %s", ErrUnorderedConflict, stages[a].Name, stages[b].Name, r)
			}
		}
	}

	sorted := make([]Stage, len(order))
	for i, idx := range order {
		sorted[i] = stages[idx]
	}
	return sorted, nil
}

func conflict(a, b Stage) (Resource, bool) {
	for _, r := range append(append([]Resource(nil), a.Reads...), a.Writes...) {
		_, aw := a.touches(r)
		br, bw := b.touches(r)
		if br && (aw || bw) {
			return r, true
		}
	}
	return "", false
}

func reachability(next [][]int) [][]bool {
	reach := make([][]bool, len(next))
	for start := range next {
		reach[start] = make([]bool, len(next))
		stack := append([]int(nil), next[start]...)
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if reach[start][n] {
				continue
			}
			reach[start][n] = true
			stack = append(stack, next[n]...)
		}
	}
	return reach
}
