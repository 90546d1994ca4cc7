package core

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/dakitten2358/loderunner/shared/leveldata"
)

// LoadLevels returns the levels to cycle through: the playlist when one is
// named, otherwise every level file in dir in name order.
func LoadLevels(fsys fs.FS, dir, playlist string) ([]*leveldata.Document, error) {
	docs, err := leveldata.LoadSet(fsys, dir, playlist)
	if err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}
	source := dir
	if playlist != "" {
		source = playlist
	}
	log.Printf("[server] %s: %d levels", source, len(docs))
	return docs, nil
}
