package leveldata

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"
)

// rowRunes maps the classic level characters to tags.
var rowRunes = map[rune]TileType{
	'#': Brick,
	'@': SolidBrick,
	'H': Ladder,
	'-': Rope,
	'X': FalseBrick,
	'S': HiddenLadder,
	'$': Treasure,
	'0': GuardSpawn,
	'&': PlayerSpawn,
}

type rawDocument struct {
	Document
	Rows []string `json:"rows"`
}

// ParseJSON decodes a .level document. Both the cell-list form
// ({"width","height","cells"}) and the classic row form ({"rows"}) are accepted.
func ParseJSON(name string, data []byte) (*Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode level %s: %w", name, err)
	}

	if len(raw.Rows) > 0 {
		doc := ParseRows(raw.Rows)
		doc.Name = name
		if raw.Name != "" {
			doc.Name = raw.Name
		}
		if err := doc.Validate(); err != nil {
			return nil, fmt.Errorf("level %s: %w", name, err)
		}
		return doc, nil
	}

	doc := raw.Document
	if doc.Name == "" {
		doc.Name = name
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return &doc, nil
}

// ParseRows converts classic row strings (top row first) into a Document.
// Spaces are empty cells; unknown characters are skipped with a warning.
func ParseRows(rows []string) *Document {
	doc := &Document{Height: len(rows)}
	for i, row := range rows {
		y := len(rows) - 1 - i
		x := 0
		for _, ch := range row {
			if t, ok := rowRunes[ch]; ok {
				doc.Cells = append(doc.Cells, Cell{X: x, Y: y, Type: t})
			} else if ch != ' ' && ch != '.' {
				log.Printf("[leveldata] warning: unexpected character %q at (%d,%d), treated as empty", ch, x, y)
			}
			x++
		}
		doc.Width = max(doc.Width, x)
	}
	return doc
}

// LoadFile loads one level from fsys, picking the decoder from the extension.
func LoadFile(fsys fs.FS, name string) (*Document, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".tmx":
		return LoadTMX(fsys, name)
	case ".level", ".json":
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read level %s: %w", name, err)
		}
		return ParseJSON(stem(name), data)
	}
	return nil, fmt.Errorf("level %s: unsupported extension %q", name, path.Ext(name))
}

// LoadAllLevels discovers every level file in levelsDir within fsys and returns
// them keyed by stem name, plus the sorted name list.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Document, []string, error) {
	var matches []string
	for _, ext := range []string{"*.level", "*.json", "*.tmx"} {
		pattern := path.Join(levelsDir, ext)
		m, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, m...)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no level files found in %s", levelsDir)
	}

	levels := make(map[string]*Document, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		doc, err := LoadFile(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		name := stem(p)
		if _, dup := levels[name]; dup {
			log.Printf("[leveldata] warning: duplicate level name %q, keeping %s", name, p)
		} else {
			names = append(names, name)
		}
		levels[name] = doc
	}

	sort.Strings(names)
	return levels, names, nil
}

func stem(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}
