package leveldata

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/lafriks/go-tiled"
)

// TileLayerName is the Tiled layer the level cells are read from. Maps without
// a layer of that name use their first tile layer.
const TileLayerName = "level"

// LoadTMX parses a Tiled map. Each non-empty tile contributes a cell tagged
// with its tileset "type" property; Tiled rows are flipped so y grows upward.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Document, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	doc := &Document{
		Name:   stem(tmxPath),
		Width:  levelMap.Width,
		Height: levelMap.Height,
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", tmxPath, err)
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == TileLayerName {
			layer = l
			break
		}
		if layer == nil {
			layer = l
		}
	}
	if layer == nil {
		return doc, nil
	}

	for row := 0; row < levelMap.Height; row++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[row*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}

			var tag string
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				tag = tilesetTile.Properties.GetString("type")
			}
			if tag == "" {
				log.Printf("[leveldata] warning: %s tile %d at (%d,%d) has no type property", tmxPath, tile.ID, x, row)
				continue
			}

			doc.Cells = append(doc.Cells, Cell{
				X:    x,
				Y:    levelMap.Height - 1 - row,
				Type: TileType(tag),
			})
		}
	}

	return doc, nil
}
