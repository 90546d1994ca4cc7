package assets

import (
	"embed"
	"io/fs"
	"log"
	"os"

	"github.com/dakitten2358/loderunner/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelsDir is the directory holding level files within an assets root.
const LevelsDir = "levels"

// Campaign is the playlist bundled with the embedded levels.
const Campaign = "levels/campaign.playlist"

// FS returns the assets root: dir on disk when set, the embedded copy otherwise.
func FS(dir string) fs.FS {
	if dir == "" {
		return assetFS
	}
	return os.DirFS(dir)
}

// MustLoadLevels loads the level set from fsys, panicking on failure. An
// empty playlist loads every level in LevelsDir in name order.
func MustLoadLevels(fsys fs.FS, playlist string) []*leveldata.Document {
	docs, err := leveldata.LoadSet(fsys, LevelsDir, playlist)
	if err != nil {
		panic(err)
	}
	log.Printf("[assets] loaded %d levels", len(docs))
	return docs
}
