package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func noop(*ecs.ECS) {}

func names(stages []Stage) []string {
	out := make([]string, len(stages))
	for i, s := range stages {
		out[i] = s.Name
	}
	return out
}

func TestDefaultStagesOrder(t *testing.T) {
	ordered, err := OrderStages(DefaultStages())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"guard-ai",
		"runner-bots",
		"burn-triggers",
		"movement",
		"falling",
		"apply-commands",
		"grid-transforms",
		"sync-objects",
		"overlaps",
		"burnables",
		"pickups",
		"guard-kills",
		"treasure-drops",
		"guard-respawn",
		"exit-ladders",
	}, names(ordered))
}

func TestOrderStagesRespectsAfter(t *testing.T) {
	ordered, err := OrderStages([]Stage{
		{Name: "c", Run: noop, After: []string{"b"}},
		{Name: "b", Run: noop, After: []string{"a"}},
		{Name: "a", Run: noop},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names(ordered))
}

func TestOrderStagesKeepsDeclarationOrderForTies(t *testing.T) {
	ordered, err := OrderStages([]Stage{
		{Name: "x", Run: noop, Reads: []Resource{Grid}},
		{Name: "y", Run: noop, Reads: []Resource{Grid}},
		{Name: "z", Run: noop, After: []string{"y"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, names(ordered))
}

func TestOrderStagesCycle(t *testing.T) {
	_, err := OrderStages([]Stage{
		{Name: "a", Run: noop, After: []string{"b"}},
		{Name: "b", Run: noop, After: []string{"a"}},
	})
	assert.ErrorIs(t, err, ErrStageCycle)
}

func TestOrderStagesUnorderedConflict(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Stage
		wantOK bool
	}{
		{
			name: "two writers",
			a:    Stage{Name: "a", Run: noop, Writes: []Resource{Grid}},
			b:    Stage{Name: "b", Run: noop, Writes: []Resource{Grid}},
		},
		{
			name: "reader and writer",
			a:    Stage{Name: "a", Run: noop, Reads: []Resource{Overlaps}},
			b:    Stage{Name: "b", Run: noop, Writes: []Resource{Overlaps}},
		},
		{
			name:   "two readers",
			a:      Stage{Name: "a", Run: noop, Reads: []Resource{Grid}},
			b:      Stage{Name: "b", Run: noop, Reads: []Resource{Grid}},
			wantOK: true,
		},
		{
			name:   "ordered writers",
			a:      Stage{Name: "a", Run: noop, Writes: []Resource{Grid}},
			b:      Stage{Name: "b", Run: noop, Writes: []Resource{Grid}, After: []string{"a"}},
			wantOK: true,
		},
		{
			name:   "disjoint",
			a:      Stage{Name: "a", Run: noop, Writes: []Resource{Grid}},
			b:      Stage{Name: "b", Run: noop, Writes: []Resource{Treasure}},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OrderStages([]Stage{tt.a, tt.b})
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrUnorderedConflict)
			}
		})
	}
}

func TestOrderStagesTransitiveOrderingResolvesConflict(t *testing.T) {
	_, err := OrderStages([]Stage{
		{Name: "a", Run: noop, Writes: []Resource{Grid}},
		{Name: "b", Run: noop, After: []string{"a"}},
		{Name: "c", Run: noop, Reads: []Resource{Grid}, After: []string{"b"}},
	})
	assert.NoError(t, err)
}

func TestOrderStagesUnknownAndDuplicate(t *testing.T) {
	_, err := OrderStages([]Stage{{Name: "a", Run: noop, After: []string{"missing"}}})
	assert.ErrorIs(t, err, ErrUnknownStage)

	_, err = OrderStages([]Stage{{Name: "a", Run: noop}, {Name: "a", Run: noop}})
	assert.ErrorIs(t, err, ErrDuplicateStage)
}
