package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinyTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="22" tileheight="20" infinite="0" nextlayerid="2" nextobjectid="1">
 <tileset firstgid="1" name="tiles" tilewidth="22" tileheight="20" tilecount="4" columns="4">
  <tile id="0"><properties><property name="type" value="blocker"/></properties></tile>
  <tile id="1"><properties><property name="type" value="ladder"/></properties></tile>
 </tileset>
 <layer id="1" name="level" width="3" height="2">
  <data encoding="csv">
0,2,0,
1,1,1
</data>
 </layer>
</map>
`

func TestParseJSONCells(t *testing.T) {
	doc, err := ParseJSON("cells", []byte(`{"width":3,"height":2,"cells":[{"x":0,"y":0,"type":"blocker"},{"x":2,"y":1,"type":"treasure"}]}`))
	require.NoError(t, err)

	assert.Equal(t, "cells", doc.Name)
	assert.Equal(t, 3, doc.Width)
	assert.Equal(t, 2, doc.Height)
	assert.Equal(t, []Cell{{X: 0, Y: 0, Type: Brick}, {X: 2, Y: 1, Type: Treasure}}, doc.Cells)
}

func TestParseJSONMissingDimensions(t *testing.T) {
	_, err := ParseJSON("broken", []byte(`{"cells":[]}`))
	assert.ErrorIs(t, err, ErrMissingDimensions)

	_, err = ParseJSON("broken", []byte(`{"rows":[]}`))
	assert.ErrorIs(t, err, ErrMissingDimensions)
}

func TestParseRowsFlipsVertically(t *testing.T) {
	doc := ParseRows([]string{
		"$ H",
		"#@-",
	})

	assert.Equal(t, 3, doc.Width)
	assert.Equal(t, 2, doc.Height)
	assert.Equal(t, []Cell{{X: 0, Y: 0, Type: Brick}}, doc.CellsOf(Brick))
	assert.Equal(t, []Cell{{X: 0, Y: 1, Type: Treasure}}, doc.CellsOf(Treasure))
	assert.Equal(t, []Cell{{X: 2, Y: 1, Type: Ladder}}, doc.CellsOf(Ladder))
	assert.Equal(t, []Cell{{X: 1, Y: 0, Type: SolidBrick}}, doc.CellsOf(SolidBrick))
	assert.Len(t, doc.Cells, 5)
}

func TestParseRowsSkipsUnknown(t *testing.T) {
	doc := ParseRows([]string{"#?#"})
	assert.Equal(t, 3, doc.Width)
	assert.Len(t, doc.Cells, 2)
	assert.Equal(t, 2, doc.Cells[1].X)
}

func TestTileTypeValid(t *testing.T) {
	assert.True(t, Brick.Valid())
	assert.True(t, PlayerSpawn.Valid())
	assert.False(t, TileType("lava").Valid())
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.level": {Data: []byte(`{"rows":["&", "#"]}`)},
		"levels/a.json":  {Data: []byte(`{"width":1,"height":1,"cells":[]}`)},
		"levels/c.tmx":   {Data: []byte(tinyTMX)},
		"levels/notes":   {Data: []byte("ignored")},
	}

	levels, names, err := LoadAllLevels(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, []Cell{{X: 0, Y: 1, Type: PlayerSpawn}, {X: 0, Y: 0, Type: Brick}}, levels["b"].Cells)
}

func TestLoadAllLevelsEmptyDir(t *testing.T) {
	_, _, err := LoadAllLevels(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{"c.tmx": {Data: []byte(tinyTMX)}}

	doc, err := LoadTMX(fsys, "c.tmx")
	require.NoError(t, err)
	assert.Equal(t, 3, doc.Width)
	assert.Equal(t, 2, doc.Height)
	assert.ElementsMatch(t, []Cell{
		{X: 1, Y: 1, Type: Ladder},
		{X: 0, Y: 0, Type: Brick},
		{X: 1, Y: 0, Type: Brick},
		{X: 2, Y: 0, Type: Brick},
	}, doc.Cells)
}

func TestLoadPlaylist(t *testing.T) {
	fsys := fstest.MapFS{
		"campaign/main.playlist": {Data: []byte(`{"levels":["one.level","two.level"]}`)},
		"campaign/one.level":     {Data: []byte(`{"rows":["#"]}`)},
		"campaign/two.level":     {Data: []byte(`{"rows":["##"]}`)},
	}

	docs, err := LoadPlaylist(fsys, "campaign/main.playlist")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "one", docs[0].Name)
	assert.Equal(t, 2, docs[1].Width)
}

func TestLoadFileUnsupported(t *testing.T) {
	_, err := LoadFile(fstest.MapFS{"x.txt": {Data: []byte("")}}, "x.txt")
	assert.Error(t, err)
}

func TestLoadSet(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.level":      {Data: []byte(`{"rows":["&", "#"]}`)},
		"levels/a.level":      {Data: []byte(`{"rows":["#"]}`)},
		"levels/rev.playlist": {Data: []byte(`{"levels":["b.level","a.level"]}`)},
	}

	docs, err := LoadSet(fsys, "levels", "")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].Name)
	assert.Equal(t, "b", docs[1].Name)

	docs, err = LoadSet(fsys, "levels", "levels/rev.playlist")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "b", docs[0].Name)

	_, err = LoadSet(fsys, "missing", "")
	assert.Error(t, err)
}
