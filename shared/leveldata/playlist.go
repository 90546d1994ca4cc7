package leveldata

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
)

// Playlist is an ordered list of level files, relative to the playlist.
type Playlist struct {
	Levels []string `json:"levels"`
}

// LoadPlaylist reads a .playlist document and loads every level it names.
func LoadPlaylist(fsys fs.FS, name string) ([]*Document, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read playlist %s: %w", name, err)
	}
	var pl Playlist
	if err := json.Unmarshal(data, &pl); err != nil {
		return nil, fmt.Errorf("decode playlist %s: %w", name, err)
	}
	if len(pl.Levels) == 0 {
		return nil, fmt.Errorf("playlist %s is empty", name)
	}

	dir := path.Dir(name)
	docs := make([]*Document, 0, len(pl.Levels))
	for _, lvl := range pl.Levels {
		doc, err := LoadFile(fsys, path.Join(dir, lvl))
		if err != nil {
			return nil, fmt.Errorf("playlist %s: %w", name, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// LoadSet returns an ordered level set: the playlist when one is named,
// otherwise every level file in dir in name order.
func LoadSet(fsys fs.FS, dir, playlist string) ([]*Document, error) {
	if playlist != "" {
		return LoadPlaylist(fsys, playlist)
	}

	byName, names, err := LoadAllLevels(fsys, dir)
	if err != nil {
		return nil, err
	}
	docs := make([]*Document, 0, len(names))
	for _, name := range names {
		docs = append(docs, byName[name])
	}
	return docs, nil
}
