package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsLevelChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	level := filepath.Join(dir, "one.level")
	require.NoError(t, os.WriteFile(level, []byte(`{"rows":["#"]}`), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, level, name)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
	assert.Empty(t, w.Poll())
}

func TestWatchedExtensions(t *testing.T) {
	assert.True(t, isLevelFile("a/b.LEVEL"))
	assert.True(t, isLevelFile("campaign.playlist"))
	assert.True(t, isConfigFile("viewer.yml"))
	assert.False(t, isLevelFile("readme.md"))
}
