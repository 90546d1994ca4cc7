package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOverlaysOnlyGivenKeys(t *testing.T) {
	t.Cleanup(Reset)

	err := Apply([]byte(`
guard_ai:
  repath_interval: 0.5
nav:
  require_footing: false
`))
	require.NoError(t, err)

	assert.Equal(t, 0.5, GuardAI.RepathInterval)
	assert.Equal(t, 5.0, GuardAI.WaypointEpsilon)
	assert.False(t, Nav.RequireFooting)
	assert.Equal(t, 22.0, Grid.TileWidth)
}

func TestNavRequiresFootingByDefault(t *testing.T) {
	t.Cleanup(Reset)

	require.NoError(t, Apply([]byte("nav:\n  require_footing: false\n")))
	Reset()
	assert.True(t, Nav.RequireFooting)
}

func TestApplyRejectsUnknownKeys(t *testing.T) {
	t.Cleanup(Reset)

	err := Apply([]byte("grid:\n  tile_widht: 3\n"))
	assert.Error(t, err)
	assert.Equal(t, 22.0, Grid.TileWidth)
}

func TestApplyRejectsInvalidValues(t *testing.T) {
	t.Cleanup(Reset)

	tests := []struct {
		name string
		doc  string
	}{
		{"zero tile", "grid:\n  tile_width: 0\n"},
		{"burn out of order", "burn:\n  burnt_after: 6\n"},
		{"tick rate", "simulation:\n  tick_rate: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Apply([]byte(tt.doc)))
			assert.Equal(t, 60, Simulation.TickRate)
		})
	}
}

func TestApplyEmptyDocument(t *testing.T) {
	t.Cleanup(Reset)
	assert.NoError(t, Apply(nil))
	assert.Equal(t, 0.5, Burn.BurntAfter)
}

func TestLoadFile(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("movement:\n  fall_speed: 99\n"), 0o644))
	require.NoError(t, LoadFile(path))
	assert.Equal(t, 99.0, Movement.FallSpeed)

	assert.Error(t, LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))
}
