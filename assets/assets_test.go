package assets

import (
	"testing"

	"github.com/dakitten2358/loderunner/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCampaign(t *testing.T) {
	docs := MustLoadLevels(FS(""), Campaign)
	require.Len(t, docs, 3)
	assert.Equal(t, "First Steps", docs[0].Name)

	for _, doc := range docs {
		g, err := grid.FromDocument(doc, 1)
		require.NoError(t, err, doc.Name)
		assert.Positive(t, g.TreasureCount(), doc.Name)
	}
}

func TestEmbeddedLevelsByName(t *testing.T) {
	docs := MustLoadLevels(FS(""), "")
	require.Len(t, docs, 3)
	assert.Equal(t, "Under The Floor", docs[1].Name)
}

func TestMustLoadLevelsPanics(t *testing.T) {
	assert.Panics(t, func() { MustLoadLevels(FS(t.TempDir()), "") })
}
